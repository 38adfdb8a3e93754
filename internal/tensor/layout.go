package tensor

import (
	"math"
	"sort"
)

// MaxIndex32 is the default element bound for CanUse32BitIndexMath.
const MaxIndex32 = math.MaxInt32

// IsContiguous reports whether the view's access pattern matches row-major
// strides with no gaps. Dimensions of size 1 impose no layout constraint
// and are skipped, so a [3,1,4] view with strides [4,7,1] still counts as
// contiguous.
func (t *RawTensor) IsContiguous() bool {
	expected := 1
	for d := len(t.size) - 1; d >= 0; d-- {
		if t.size[d] != 1 {
			if t.stride[d] != expected {
				return false
			}
			expected *= t.size[d]
		}
	}
	return true
}

// AllContiguous reports whether every view individually passes IsContiguous.
// Views are checked independently, not for mutual compatibility.
func AllContiguous(views []*RawTensor) bool {
	for _, v := range views {
		if !v.IsContiguous() {
			return false
		}
	}
	return true
}

// NumElements returns 0 for a rank-0 view, else the product of all sizes.
func (t *RawTensor) NumElements() int {
	return Shape(t.size).NumElements()
}

// AllSameDevice reports whether every view's storage lives on the same
// device as the first view's. Panics on an empty input set.
func AllSameDevice(views []*RawTensor) bool {
	if len(views) == 0 {
		panic("tensor: AllSameDevice requires at least one view")
	}
	device := views[0].Device()
	for _, v := range views[1:] {
		if v.Device() != device {
			return false
		}
	}
	return true
}

type sizeAndStride struct {
	size   int
	stride int
}

// MaybeOverlappingIndices is a conservative aliasing-hazard test: could two
// distinct logical indices address the same storage location? Callers must
// consult it before issuing unsynchronized parallel writes across a view's
// elements.
//
// The test is sufficient but not necessary. It must never answer "no
// overlap" for a view where overlap is actually possible; answering "maybe"
// for a view that is in fact overlap-free costs only performance. That
// asymmetry is the contract — do not sharpen it. One consequence: any
// stride < 1 on a size>1 dimension (zero or negative, reversed views
// included) is reported as a hazard immediately.
func (t *RawTensor) MaybeOverlappingIndices() bool {
	// Dimensions of size <= 1 contribute a single index and cannot alias.
	info := make([]sizeAndStride, 0, MaxDims)
	for d := 0; d < len(t.size); d++ {
		if t.size[d] > 1 {
			if t.stride[d] < 1 {
				return true
			}
			info = append(info, sizeAndStride{size: t.size[d], stride: t.stride[d]})
		}
	}
	if len(info) == 0 {
		return false
	}

	sort.Slice(info, func(i, j int) bool {
		return info[i].stride < info[j].stride
	})

	// Innermost to outermost, each dimension's span must fit strictly
	// inside one step of the next; otherwise the dimensions are not
	// cleanly nested.
	for i := 0; i+1 < len(info); i++ {
		if (info[i].size-1)*info[i].stride >= info[i+1].stride {
			return true
		}
	}
	return false
}

// CanUse32BitIndexMath reports whether every storage offset this view can
// address fits below maxElem, gating narrow-width index arithmetic. It is
// false when the element count reaches maxElem; otherwise the storage
// offset of the final linear index is reconstructed by div/mod against each
// dimension, innermost to outermost, and must stay below maxElem.
func (t *RawTensor) CanUse32BitIndexMath(maxElem int) bool {
	elements := t.NumElements()
	if elements >= maxElem {
		return false
	}

	offset := 0
	linearID := elements - 1
	for d := len(t.size) - 1; d >= 0; d-- {
		offset += (linearID % t.size[d]) * t.stride[d]
		linearID /= t.size[d]
	}
	return offset < maxElem
}

// All32BitIndexable reports whether CanUse32BitIndexMath holds for every
// view.
func All32BitIndexable(views []*RawTensor, maxElem int) bool {
	for _, v := range views {
		if !v.CanUse32BitIndexMath(maxElem) {
			return false
		}
	}
	return true
}
