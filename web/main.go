package main

import (
	"flag"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/dcasas/go-pathtracer/web/server"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	if err := server.New(*addr).ListenAndServe(); err != nil {
		logs.Fatal(err)
	}
}
