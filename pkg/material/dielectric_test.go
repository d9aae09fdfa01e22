package material

import (
	"math"
	"testing"

	"lumentrace/pkg/core"
)

// TestSchlickAtNormalIncidence checks the Fresnel constant used by
// scenario S3: at cosTheta=1 the reflectance is r0 = ((1-ri)/(1+ri))^2.
func TestSchlickAtNormalIncidence(t *testing.T) {
	if got := schlick(1.0, 1.5); math.Abs(got-0.04) > 1e-6 {
		t.Errorf("schlick(1, 1.5) = %v, want 0.04", got)
	}
}

// TestDielectricRefractStraightOn is scenario S3: a straight-on front
// hit always produces a unit-length outbound direction and a white
// attenuation, regardless of which branch (reflect or refract) the
// sampler selects.
func TestDielectricRefractStraightOn(t *testing.T) {
	d := NewDielectric(1.5)
	hit := core.Hit{
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Face:     core.Front,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	sampler := core.NewSampler(2)
	result, ok := d.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("dielectric scatter should always succeed")
	}
	if result.Attenuation != core.White {
		t.Errorf("attenuation = %v, want white", result.Attenuation)
	}
	if math.Abs(result.Scattered.Direction.Length()-1.0) > 1e-4 {
		t.Errorf("scattered direction length = %v, want ~1", result.Scattered.Direction.Length())
	}

	// Directly exercise the refraction formula at normal incidence,
	// independent of which branch the sampler took: it must pass
	// straight through.
	refracted := core.Refract(rayIn.Direction.Normalized(), hit.Normal, 1.0/d.RI)
	want := core.NewVec3(0, 0, -1)
	if !refracted.Equal(want) {
		t.Errorf("Refract at normal incidence = %v, want %v", refracted, want)
	}
}
