package core

import "math"

// Sample is a stochastically generated direction (or surface point) paired
// with an importance weight. The weight is the analytic reciprocal of the
// probability density used to draw the sample, so averaging value*W over many
// samples converges to the integral being estimated.
type Sample struct {
	P Vec3
	W float64
}

// tangentUp is the up axis of the tangent space both lobe samplers draw in
var tangentUp = Vec3{X: 0, Y: 0, Z: 1}

// halfVectorTo returns the unit vector halfway between the tangent-space up
// axis and the world-space axis. Reflecting a negated tangent-space sample
// about it rotates tangent-up onto axis. When axis is (anti)parallel to up
// the half vector degenerates to zero length; any unit vector orthogonal to
// both performs the same rotation, so fall back to the x axis.
func halfVectorTo(axis Vec3) Vec3 {
	half := tangentUp.Add(axis)
	if half.LengthSquared() < 1e-12 {
		return Vec3{X: 1, Y: 0, Z: 0}
	}
	return half.Normalize()
}

// SampleProjectedHemisphere draws a cosine-weighted direction in the
// hemisphere around the unit normal n. The sample is built on a disk in
// tangent space and projected up to the hemisphere, then reflected about the
// half vector between tangent-up and n to land in world space. The cosine
// density cancels against the integrand, leaving the constant weight π.
func SampleProjectedHemisphere(n Vec3, sampler Sampler) Sample {
	s := sampler.Get1D()
	t := sampler.Get1D()

	x := math.Sqrt(t) * math.Cos(2*math.Pi*s)
	y := math.Sqrt(t) * math.Sin(2*math.Pi*s)
	z2 := 1.0 - x*x - y*y
	z := 0.0
	if z2 > 0 {
		z = math.Sqrt(z2)
	}

	dir := Vec3{X: x, Y: y, Z: z}
	return Sample{
		P: dir.Negate().Reflect(halfVectorTo(n)),
		W: math.Pi,
	}
}

// SampleSpecularLobe draws a direction distributed as cos^phongExp around the
// unit reflection vector r, via the inverse-CDF Phong lobe formulas in
// tangent space, then reflects into world space about the half vector between
// tangent-up and r. Weight is the lobe normalization 2π/(phongExp+2).
func SampleSpecularLobe(r Vec3, phongExp float64, sampler Sampler) Sample {
	s := sampler.Get1D()
	t := sampler.Get1D()

	sinTheta := math.Sqrt(1.0 - math.Pow(s, 2.0/(phongExp+1.0)))
	x := sinTheta * math.Cos(2*math.Pi*t)
	y := sinTheta * math.Sin(2*math.Pi*t)
	z2 := 1.0 - x*x - y*y
	z := 0.0
	if z2 > 0 {
		z = math.Sqrt(z2)
	}

	dir := Vec3{X: x, Y: y, Z: z}
	return Sample{
		P: dir.Negate().Reflect(halfVectorTo(r)),
		W: 2.0 * math.Pi / (phongExp + 2.0),
	}
}
