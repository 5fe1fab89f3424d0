package clip

import (
	"github.com/skelcodec/animclip/errs"
	"github.com/skelcodec/animclip/vecmath"
)

// Skeleton is an ordered bone hierarchy. Bones are stored in topological
// order: every bone's parent index is strictly less than its own index.
type Skeleton struct {
	Bones []Bone
}

// NewSkeleton wraps bones as a Skeleton without validating them; callers
// that need the topological-order, single-root, no-cycle invariants
// enforced must call Validate.
func NewSkeleton(bones []Bone) *Skeleton {
	return &Skeleton{Bones: bones}
}

// BoneCount returns the number of bones in the skeleton.
func (s *Skeleton) BoneCount() int {
	return len(s.Bones)
}

// Validate checks that this skeleton is well-formed: parent index < child
// index for every non-root bone, exactly one root, and by
// construction (since every parent index is smaller than its child's) no
// cycles are reachable.
func (s *Skeleton) Validate() error {
	if len(s.Bones) == 0 {
		return errs.New(errs.KindInvalidInput, "skeleton has no bones")
	}

	roots := 0
	for i, b := range s.Bones {
		switch {
		case b.IsRoot():
			roots++
		case b.ParentIndex < 0 || b.ParentIndex >= len(s.Bones):
			return errs.Newf(errs.KindInvalidInput, "bone %d: parent index %d out of range", i, b.ParentIndex)
		case b.ParentIndex >= i:
			return errs.Newf(errs.KindInvalidInput, "bone %d: parent index %d violates topological order", i, b.ParentIndex)
		}
	}

	if roots != 1 {
		return errs.Newf(errs.KindInvalidInput, "skeleton has %d roots, want exactly 1", roots)
	}

	return nil
}

// WorldTransform composes local transforms from the root down to bone i,
// using each bone's bind pose.
func (s *Skeleton) WorldTransform(i int) (result vecmath.Transform) {
	var chain []int
	for cur := i; cur != RootParent; cur = s.Bones[cur].ParentIndex {
		chain = append(chain, cur)
	}

	result = vecmath.IdentityTransform()
	for k := len(chain) - 1; k >= 0; k-- {
		result = s.Bones[chain[k]].BindPose.Apply(result)
	}

	return result
}
