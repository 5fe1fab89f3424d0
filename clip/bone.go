package clip

import "github.com/skelcodec/animclip/vecmath"

// RootParent marks a bone with no parent.
const RootParent = -1

// Bone is a single node in a skeleton hierarchy.
type Bone struct {
	// Name identifies the bone for debugging and lookup.
	Name string
	// ParentIndex is the index of this bone's parent in the owning
	// Skeleton's Bones slice, or RootParent for the root.
	ParentIndex int
	// BindPose is this bone's local transform relative to its parent at
	// bind time.
	BindPose vecmath.Transform
	// VertexDistance approximates how far a mesh vertex sits from this
	// bone along its local +X axis, used to weight angular error into a
	// positional error estimate.
	VertexDistance float64
}

// IsRoot reports whether b has no parent.
func (b Bone) IsRoot() bool {
	return b.ParentIndex == RootParent
}
