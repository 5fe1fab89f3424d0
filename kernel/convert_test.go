package kernel

import (
	"testing"

	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/stream"
	"github.com/skelcodec/animclip/vecmath"
	"github.com/stretchr/testify/require"
)

func TestConvertRotationsNegatesNegativeW(t *testing.T) {
	require := require.New(t)

	s := &stream.BoneStream{
		RotFormat:      format.Quat96,
		RotSamplesFull: []vecmath.Quat{{X: 0.1, Y: 0.2, Z: 0.3, W: -0.9}},
	}
	ConvertRotations(s)

	require.GreaterOrEqual(s.RotSamplesFull[0].W, 0.0)
	require.Equal(-0.1, s.RotSamplesFull[0].X)
	require.Equal(s.RotSamplesFull[0].X, s.RotSamplesXYZ[0].X)
}

func TestConvertRotationsLeavesPositiveWAlone(t *testing.T) {
	require := require.New(t)

	q := vecmath.Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	s := &stream.BoneStream{
		RotFormat:      format.Quat96,
		RotSamplesFull: []vecmath.Quat{q},
	}
	ConvertRotations(s)

	require.Equal(q, s.RotSamplesFull[0])
}

func TestConvertRotationsQuat128SkipsXYZ(t *testing.T) {
	require := require.New(t)

	s := &stream.BoneStream{
		RotFormat:      format.Quat128,
		RotSamplesFull: []vecmath.Quat{{X: 0.1, Y: 0.2, Z: 0.3, W: -0.9}},
	}
	ConvertRotations(s)

	require.Nil(s.RotSamplesXYZ)
	require.GreaterOrEqual(s.RotSamplesFull[0].W, 0.0)
}
