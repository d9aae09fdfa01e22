// Package camera implements the thin-lens camera model: an
// orthonormal view basis plus a lens radius and focus distance, used
// to generate depth-of-field rays from normalized viewport
// coordinates.
package camera

import (
	"math"

	"lumentrace/pkg/core"
)

// Camera generates primary rays for a thin-lens projection.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// New builds a Camera from the standard lookfrom/lookat parameterization.
// vfovDegrees is the vertical field of view in degrees, aspect is
// width/height, aperture is the lens diameter, and focusDist is the
// distance to the plane of perfect focus.
func New(position, lookAt, vup core.Vec3, vfovDegrees, aspect, aperture, focusDist float64) *Camera {
	theta := vfovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2 * halfHeight * focusDist
	viewportWidth := aspect * viewportHeight

	w := position.Sub(lookAt).Normalized()
	u := vup.Cross(w).Normalized()
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth)
	vertical := v.Mul(viewportHeight)
	lowerLeftCorner := position.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(focusDist))

	return &Camera{
		origin:          position,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
	}
}

// Ray generates a ray through normalized viewport coordinate (s,t),
// each in [0,1], jittering the origin across the lens disk when
// lensRadius > 0 to produce depth-of-field blur.
func (c *Camera) Ray(s, t float64, sampler *core.Sampler) core.Ray {
	rd := sampler.RandomInUnitCircle().Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	return core.NewRay(origin, direction)
}
