package server

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/url"
	"strconv"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"

	"github.com/dcasas/go-pathtracer/pkg/output"
	"github.com/dcasas/go-pathtracer/pkg/renderer"
	"github.com/dcasas/go-pathtracer/pkg/scene"
)

// snapshotInterval is how many scanlines accumulate between preview frames
const snapshotInterval = 16

// renderRequest carries render parameters, read from the websocket URL query
type renderRequest struct {
	Scene   string
	Width   int
	Height  int
	Samples int
	Depth   int
	Seed    int64
}

// progressUpdate is one preview frame pushed to the client
type progressUpdate struct {
	JobID      string `json:"jobId"`
	Scanlines  int    `json:"scanlines"`
	Total      int    `json:"total"`
	ImageData  string `json:"imageData"` // base64 PNG snapshot
	IsComplete bool   `json:"isComplete"`
}

func parseRenderRequest(query url.Values) renderRequest {
	req := renderRequest{
		Scene:   "default",
		Width:   400,
		Height:  300,
		Samples: 10,
		Depth:   1,
		Seed:    42,
	}
	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}
	if v, err := strconv.Atoi(query.Get("width")); err == nil && v > 0 {
		req.Width = v
	}
	if v, err := strconv.Atoi(query.Get("height")); err == nil && v > 0 {
		req.Height = v
	}
	if v, err := strconv.Atoi(query.Get("samples")); err == nil && v > 0 {
		req.Samples = v
	}
	if v, err := strconv.Atoi(query.Get("depth")); err == nil && v >= 0 {
		req.Depth = v
	}
	if v, err := strconv.ParseInt(query.Get("seed"), 10, 64); err == nil {
		req.Seed = v
	}
	return req
}

// handleRender renders a scene and streams progressive snapshots to the
// client as scanlines complete.
func (s *Server) handleRender(ws *websocket.Conn) {
	defer ws.Close()

	req := parseRenderRequest(ws.Request().URL.Query())
	jobID := uuid.NewString()

	var sc *scene.Scene
	switch req.Scene {
	case "cornell":
		sc = scene.NewCornellScene()
	default:
		sc = scene.NewDefaultScene()
	}

	logs.WithTag("job_id", jobID).
		WithTag("scene", req.Scene).
		WithTag("samples", req.Samples).
		Info("render started")

	r := renderer.New(sc, renderer.Config{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
		TreeDepth:       req.Depth,
		Seed:            req.Seed,
	}, renderer.NewDefaultLogger())

	total := req.Height
	sendErr := error(nil)
	r.OnScanline = func(completed int, img *output.Image) {
		if sendErr != nil || (completed%snapshotInterval != 0 && completed != total) {
			return
		}
		sendErr = sendUpdate(ws, progressUpdate{
			JobID:      jobID,
			Scanlines:  completed,
			Total:      total,
			ImageData:  encodeSnapshot(img),
			IsComplete: completed == total,
		})
	}

	_, stats := r.Render()
	if sendErr != nil {
		logs.WithTag("job_id", jobID).Warn(sendErr)
		return
	}

	logs.WithTag("job_id", jobID).
		WithTag("elapsed", stats.Elapsed.String()).
		Info("render complete")
}

func sendUpdate(ws *websocket.Conn, update progressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return websocket.Message.Send(ws, string(data))
}

func encodeSnapshot(img *output.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToNRGBA()); err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
