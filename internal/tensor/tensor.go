package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is the typed front-end over RawTensor: one generic implementation
// of the whole operation surface, parameterized by element type. No
// algorithm is duplicated per type — every method forwards to the shared
// metadata engine.
//
// Example:
//
//	t := tensor.New[float32](tensor.CPU)
//	_ = t.Resize(tensor.Shape{3, 1, 4}) // strides [4, 4, 1]
type Tensor[T DType] struct {
	raw *RawTensor
}

// New creates an empty (rank-0) tensor of element type T. Storage is bound
// lazily on the first resize that needs capacity.
func New[T DType](device Device) *Tensor[T] {
	var dummy T
	return &Tensor[T]{raw: NewRaw(inferDataType(dummy), device)}
}

// NewWithShape creates a tensor resized to shape with default row-major
// strides.
func NewWithShape[T DType](shape Shape, device Device) (*Tensor[T], error) {
	var dummy T
	raw, err := NewRawWithShape(shape, inferDataType(dummy), device)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{raw: raw}, nil
}

// FromSlice creates a tensor from a Go slice. The slice is copied into the
// tensor's storage.
func FromSlice[T DType](data []T, shape Shape, device Device) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := NewWithShape[T](shape, device)
	if err != nil {
		return nil, err
	}
	copy(t.Data(), data)
	return t, nil
}

// FromRaw wraps an existing RawTensor. Panics if the view's element type
// does not match T.
func FromRaw[T DType](raw *RawTensor) *Tensor[T] {
	var dummy T
	if want := inferDataType(dummy); raw.DType() != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", raw.DType(), want))
	}
	return &Tensor[T]{raw: raw}
}

// Raw returns the underlying view. Used where the untyped engine surface is
// needed (AllContiguous, AllSameDevice, All32BitIndexable).
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// Raws extracts the underlying views of a tensor set, for the multi-view
// layout queries.
func Raws[T DType](tensors []*Tensor[T]) []*RawTensor {
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}
	return raws
}

// Dim returns the tensor's rank.
func (t *Tensor[T]) Dim() int { return t.raw.Dim() }

// Size returns the extent of dimension d.
func (t *Tensor[T]) Size(d int) (int, error) { return t.raw.Size(d) }

// Stride returns the element step of dimension d.
func (t *Tensor[T]) Stride(d int) (int, error) { return t.raw.Stride(d) }

// NewSizeOf returns a standalone copy of the current sizes.
func (t *Tensor[T]) NewSizeOf() Shape { return t.raw.NewSizeOf() }

// Strides returns a standalone copy of the current strides.
func (t *Tensor[T]) Strides() []int { return t.raw.Strides() }

// Offset returns the element offset into the bound storage.
func (t *Tensor[T]) Offset() int { return t.raw.Offset() }

// DType returns the tensor's element type.
func (t *Tensor[T]) DType() DataType { return t.raw.DType() }

// Device returns the bound storage's device, or DeviceNone when no storage
// is bound.
func (t *Tensor[T]) Device() Device { return t.raw.Device() }

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int { return t.raw.NumElements() }

// IsContiguous reports whether the access pattern is row-major with no
// gaps, ignoring size-1 dimensions.
func (t *Tensor[T]) IsContiguous() bool { return t.raw.IsContiguous() }

// MaybeOverlappingIndices reports whether two distinct logical indices
// could address the same storage location. See RawTensor.
func (t *Tensor[T]) MaybeOverlappingIndices() bool { return t.raw.MaybeOverlappingIndices() }

// CanUse32BitIndexMath reports whether all addressable offsets stay below
// maxElem.
func (t *Tensor[T]) CanUse32BitIndexMath(maxElem int) bool {
	return t.raw.CanUse32BitIndexMath(maxElem)
}

// Retain increments the view's reference count.
func (t *Tensor[T]) Retain() { t.raw.Retain() }

// Free decrements the view's reference count, releasing storage at zero.
func (t *Tensor[T]) Free() { t.raw.Free() }

// Resize reshapes the tensor to shape with default row-major strides.
func (t *Tensor[T]) Resize(shape Shape) error { return t.raw.Resize(shape) }

// ResizeNd reshapes the tensor with explicit sizes and strides; negative
// stride entries fall back to the row-major default.
func (t *Tensor[T]) ResizeNd(sizes, strides []int) error { return t.raw.ResizeNd(sizes, strides) }

// ResizeAs reshapes the tensor to match src's sizes with default strides.
func (t *Tensor[T]) ResizeAs(src *Tensor[T]) error { return t.raw.ResizeAs(src.raw) }

// Set makes t an aliasing view identical to src.
func (t *Tensor[T]) Set(src *Tensor[T]) { t.raw.Set(src.raw) }

// SetStorage rebinds the tensor's storage, offset and shape.
func (t *Tensor[T]) SetStorage(storage *Storage, offset int, sizes, strides []int) error {
	return t.raw.SetStorage(storage, offset, sizes, strides)
}

// Squeeze1d makes t a view of src with size-1 dimension dim removed; nil
// src squeezes in place.
func (t *Tensor[T]) Squeeze1d(src *Tensor[T], dim int) error {
	if src == nil {
		return t.raw.Squeeze1d(nil, dim)
	}
	return t.raw.Squeeze1d(src.raw, dim)
}

// Unsqueeze1d makes t a view of src with a size-1 dimension inserted at
// dim; nil src unsqueezes in place.
func (t *Tensor[T]) Unsqueeze1d(src *Tensor[T], dim int) error {
	if src == nil {
		return t.raw.Unsqueeze1d(nil, dim)
	}
	return t.raw.Unsqueeze1d(src.raw, dim)
}

// Squeeze returns a fresh aliasing view with size-1 dimension dim removed.
func (t *Tensor[T]) Squeeze(dim int) (*Tensor[T], error) {
	out := New[T](t.raw.device)
	if err := out.raw.Squeeze1d(t.raw, dim); err != nil {
		return nil, err
	}
	return out, nil
}

// Unsqueeze returns a fresh aliasing view with a size-1 dimension inserted
// at dim.
func (t *Tensor[T]) Unsqueeze(dim int) (*Tensor[T], error) {
	out := New[T](t.raw.device)
	if err := out.raw.Unsqueeze1d(t.raw, dim); err != nil {
		return nil, err
	}
	return out, nil
}

// PreserveReduceDimSemantics re-inserts a size-1 dimension at reducedDim
// when an in-place reduction dropped it and the caller expected it kept.
func (t *Tensor[T]) PreserveReduceDimSemantics(inputRank, reducedDim int, keepRank bool) error {
	return t.raw.PreserveReduceDimSemantics(inputRank, reducedDim, keepRank)
}

// Data returns the typed storage window this view can address, starting at
// the view's storage offset. The slice directly accesses the underlying
// memory (zero-copy).
//
// WARNING: modifications to the returned slice modify the shared storage.
func (t *Tensor[T]) Data() []T {
	s := t.raw.Storage()
	if s == nil {
		return nil
	}
	elemSize := t.raw.DType().Size()
	b := s.Data()
	start := t.raw.Offset() * elemSize
	if start >= len(b) {
		return nil
	}
	b = b[start:]
	//nolint:gosec // unsafe.Slice for zero-copy access; length bounded by storage capacity
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/elemSize)
}

// At returns the element at the given indices, following the view's
// strides. Panics on an index/rank mismatch or out-of-bounds index.
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.elementOffset(indices)]
}

// SetAt sets the element at the given indices. Panics on an index/rank
// mismatch or out-of-bounds index.
func (t *Tensor[T]) SetAt(value T, indices ...int) {
	t.Data()[t.elementOffset(indices)] = value
}

func (t *Tensor[T]) elementOffset(indices []int) int {
	if len(indices) != t.raw.Dim() {
		panic(fmt.Sprintf("expected %d indices, got %d", t.raw.Dim(), len(indices)))
	}
	offset := 0
	for d, idx := range indices {
		if idx < 0 || idx >= t.raw.size[d] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, d, t.raw.size[d]))
		}
		offset += idx * t.raw.stride[d]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.NewSizeOf(), t.raw.Device())
}
