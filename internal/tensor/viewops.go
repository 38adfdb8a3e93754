package tensor

import "fmt"

// Set makes t an aliasing view identical to src: same storage (retaining
// the new reference, releasing the previous one), same offset, same shape
// and strides. Setting a view to itself is a no-op.
func (t *RawTensor) Set(src *RawTensor) {
	if t == src {
		return
	}
	// src's state is always a valid request, so this cannot fail.
	if err := t.SetStorage(src.storage, src.offset, src.size, src.stride); err != nil {
		panic(fmt.Sprintf("tensor: set from valid view failed: %v", err))
	}
}

// SetStorage rebinds the view to storage at the given element offset and
// applies sizes/strides via ResizeNd. A nil storage binds a fresh empty
// storage of the view's element type. The previous storage reference is
// released and the new one retained; rebinding to the already-bound storage
// leaves the reference counts alone.
//
// All arguments are validated before any state changes: a negative offset,
// nil sizes, or a stride/size length mismatch abort with no mutation.
func (t *RawTensor) SetStorage(storage *Storage, offset int, sizes, strides []int) error {
	if offset < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	if sizes == nil {
		return ErrNilSizes
	}
	if strides != nil && len(strides) != len(sizes) {
		return ErrStrideLength
	}

	if t.storage != storage {
		if t.storage != nil {
			t.storage.Release()
		}
		if storage != nil {
			storage.Retain()
			t.storage = storage
		} else {
			t.storage = NewStorage(t.dtype, t.device)
		}
	}
	t.offset = offset
	return t.ResizeNd(sizes, strides)
}

// Squeeze1d makes t a view of src with dimension dim removed, provided that
// dimension has size 1 and src has more than one dimension. Squeezing a
// non-unit dimension, or the sole remaining dimension, copies the view
// state unchanged. A nil src squeezes t in place.
func (t *RawTensor) Squeeze1d(src *RawTensor, dim int) error {
	if src == nil {
		src = t
	}
	if dim < 0 || dim >= src.Dim() {
		return fmt.Errorf("%w: squeeze1d(%d) on rank-%d view", ErrDimOutOfRange, dim, src.Dim())
	}

	t.Set(src)

	if t.size[dim] == 1 && len(t.size) > 1 {
		for d := dim; d < len(t.size)-1; d++ {
			t.size[d] = t.size[d+1]
			t.stride[d] = t.stride[d+1]
		}
		t.size = t.size[:len(t.size)-1]
		t.stride = t.stride[:len(t.stride)-1]
	}
	return nil
}

// Unsqueeze1d makes t a view of src with a new size-1 dimension inserted at
// position dim (0 <= dim <= src rank). The inserted dimension's stride is
// size[dim+1]*stride[dim+1] when a following dimension exists, else 1.
// A nil src unsqueezes t in place. Rank-0 views cannot be unsqueezed.
func (t *RawTensor) Unsqueeze1d(src *RawTensor, dim int) error {
	if src == nil {
		src = t
	}
	if dim < 0 || dim > src.Dim() {
		return fmt.Errorf("%w: unsqueeze1d(%d) on rank-%d view", ErrDimOutOfRange, dim, src.Dim())
	}
	if src.Dim() == 0 {
		return ErrUnsqueezeEmpty
	}

	t.Set(src)

	n := len(t.size) + 1
	size := make([]int, n)
	stride := make([]int, n)
	copy(size, t.size[:dim])
	copy(stride, t.stride[:dim])
	copy(size[dim+1:], t.size[dim:])
	copy(stride[dim+1:], t.stride[dim:])
	size[dim] = 1
	if dim+1 < n {
		stride[dim] = size[dim+1] * stride[dim+1]
	} else {
		stride[dim] = 1
	}
	t.size = size
	t.stride = stride
	return nil
}

// PreserveReduceDimSemantics restores the caller-visible rank after an
// in-place reduction over reducedDim that dropped the dimension instead of
// keeping it as size 1: when the view's rank is exactly inputRank-1 and the
// caller did not ask to keep the reduced dimension, a size-1 dimension is
// re-inserted at reducedDim.
func (t *RawTensor) PreserveReduceDimSemantics(inputRank, reducedDim int, keepRank bool) error {
	if inputRank > 0 && t.Dim() == inputRank-1 && !keepRank {
		return t.Unsqueeze1d(nil, reducedDim)
	}
	return nil
}
