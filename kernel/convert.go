package kernel

import (
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
)

// ConvertRotations canonicalizes every rotation sample's sign so W >= 0
// (q and -q represent the same rotation) and, for any format that drops
// W, populates RotSamplesXYZ with the resulting x,y,z components.
// Quat128 keeps all four components and does not populate RotSamplesXYZ.
func ConvertRotations(s *stream.BoneStream) {
	for i, q := range s.RotSamplesFull {
		if q.W < 0 {
			q = q.Negate()
			s.RotSamplesFull[i] = q
		}
	}

	if !s.RotFormat.DropsW() {
		return
	}

	s.RotSamplesXYZ = make([]vecmath.Vec3, len(s.RotSamplesFull))
	for i, q := range s.RotSamplesFull {
		s.RotSamplesXYZ[i] = vecmath.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	}
}
