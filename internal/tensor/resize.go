package tensor

// ResizeNd reshapes the view in place. This is the central mutation
// algorithm; everything else that changes shape funnels through it.
//
// The requested sizes are scanned left to right and truncated at the first
// non-positive entry: only the entries before it count, so a requested
// [2, 3, 0] means effective rank 2. Requested strides are taken verbatim
// where non-negative; a negative entry means "use the default row-major
// stride for this dimension". When the whole request already matches the
// view's current state the call touches nothing, and the size/stride arrays
// are reallocated only when the effective rank actually changes.
//
// If the resulting size/stride/offset combination needs more elements than
// the bound storage holds, the storage is grown (never shrunk) to exactly
// that extent; a view with no storage gets an empty one bound first.
func (t *RawTensor) ResizeNd(sizes, strides []int) error {
	if sizes == nil {
		return ErrNilSizes
	}
	if strides != nil && len(strides) != len(sizes) {
		return ErrStrideLength
	}

	// Effective rank and no-op detection in one scan.
	nd := 0
	sameShape := true
	for d, sz := range sizes {
		if sz <= 0 {
			break
		}
		nd++
		if d < len(t.size) && sz != t.size[d] {
			sameShape = false
		}
		if d < len(t.size) && strides != nil && strides[d] >= 0 && strides[d] != t.stride[d] {
			sameShape = false
		}
	}
	if nd != len(t.size) {
		sameShape = false
	}
	if sameShape {
		return nil
	}

	if nd == 0 {
		// Degenerate case: drop to rank 0. The arrays keep their backing
		// capacity but are logically unused.
		t.size = t.size[:0]
		t.stride = t.stride[:0]
		return nil
	}

	// Reallocate the shape arrays only when the rank changes; a same-rank
	// resize writes through the existing arrays.
	if nd != len(t.size) {
		t.size = make([]int, nd)
		t.stride = make([]int, nd)
	}

	// Innermost to outermost: resolve strides and accumulate the minimum
	// storage extent this layout addresses.
	extent := 1
	for d := nd - 1; d >= 0; d-- {
		t.size[d] = sizes[d]
		switch {
		case strides != nil && strides[d] >= 0:
			t.stride[d] = strides[d]
		case d == nd-1:
			t.stride[d] = 1
		default:
			t.stride[d] = t.size[d+1] * t.stride[d+1]
		}
		extent += (t.size[d] - 1) * t.stride[d]
	}

	if extent+t.offset > 0 {
		if t.storage == nil {
			t.storage = NewStorage(t.dtype, t.device)
		}
		if extent+t.offset > t.storage.Len() {
			t.storage.Resize(extent + t.offset)
		}
	}
	return nil
}

// Resize reshapes the view to shape with default row-major strides.
func (t *RawTensor) Resize(shape Shape) error {
	return t.ResizeNd(shape, nil)
}

// ResizeWithStrides reshapes the view to shape with the supplied strides;
// negative stride entries fall back to the row-major default.
func (t *RawTensor) ResizeWithStrides(shape Shape, strides []int) error {
	return t.ResizeNd(shape, strides)
}

// ResizeAs reshapes the view to match src's sizes with default strides.
// Already matching shapes are left untouched.
func (t *RawTensor) ResizeAs(src *RawTensor) error {
	if Shape(t.size).Equal(Shape(src.size)) {
		return nil
	}
	return t.ResizeNd(src.size, nil)
}
