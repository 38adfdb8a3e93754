package tensor

import (
	"fmt"
	"sync/atomic"
)

// MaxDims is the upper bound on view rank the layout-analysis routines are
// sized for.
const MaxDims = 25

// RawTensor is shape/stride/offset metadata bound to a Storage: the
// low-level view object the engine mutates. The size and stride arrays are
// exclusively owned by the view; all storage sharing goes through explicit
// Retain/Release at the defined mutation points.
//
// A nil storage is logically an empty storage of the view's element type;
// one is bound lazily the first time a resize needs capacity.
//
// Shape mutation is not internally synchronized: concurrent mutation of the
// same view requires external synchronization. The reference counts on both
// RawTensor and Storage are atomic, so the last reference may be dropped
// from any goroutine.
type RawTensor struct {
	storage  *Storage
	offset   int
	size     []int
	stride   []int
	dtype    DataType
	device   Device
	refCount atomic.Int32
}

// NewRaw creates an empty (rank-0) view of the given element type. No
// storage is bound yet; device records where storage will be placed once
// needed. The view starts with a reference count of 1.
func NewRaw(dtype DataType, device Device) *RawTensor {
	t := &RawTensor{
		size:   make([]int, 0),
		stride: make([]int, 0),
		dtype:  dtype,
		device: device,
	}
	t.refCount.Store(1)
	return t
}

// NewRawWithShape creates a view resized to shape with default row-major
// strides, backed by freshly bound storage.
func NewRawWithShape(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	t := NewRaw(dtype, device)
	if err := t.Resize(shape); err != nil {
		return nil, err
	}
	return t, nil
}

// Dim returns the view's rank.
func (t *RawTensor) Dim() int {
	return len(t.size)
}

// Size returns the extent of dimension d.
func (t *RawTensor) Size(d int) (int, error) {
	if d < 0 || d >= len(t.size) {
		return 0, fmt.Errorf("%w: size(%d) on rank-%d view", ErrDimOutOfRange, d, len(t.size))
	}
	return t.size[d], nil
}

// Stride returns the element step of dimension d.
func (t *RawTensor) Stride(d int) (int, error) {
	if d < 0 || d >= len(t.stride) {
		return 0, fmt.Errorf("%w: stride(%d) on rank-%d view", ErrDimOutOfRange, d, len(t.stride))
	}
	return t.stride[d], nil
}

// NewSizeOf returns a standalone copy of the current sizes.
func (t *RawTensor) NewSizeOf() Shape {
	return Shape(t.size).Clone()
}

// Strides returns a standalone copy of the current strides.
func (t *RawTensor) Strides() []int {
	out := make([]int, len(t.stride))
	copy(out, t.stride)
	return out
}

// Offset returns the element offset into the bound storage.
func (t *RawTensor) Offset() int {
	return t.offset
}

// Storage returns the bound storage, or nil if none is bound yet.
func (t *RawTensor) Storage() *Storage {
	return t.storage
}

// DType returns the view's element type.
func (t *RawTensor) DType() DataType {
	return t.dtype
}

// Device returns the bound storage's device, or DeviceNone if no storage is
// bound.
func (t *RawTensor) Device() Device {
	if t.storage == nil {
		return DeviceNone
	}
	return t.storage.Device()
}

// Retain increments the view's reference count (independent of the
// storage's).
func (t *RawTensor) Retain() {
	t.refCount.Add(1)
}

// Free decrements the view's reference count. At zero it releases the
// storage reference and drops the shape arrays.
func (t *RawTensor) Free() {
	if t.refCount.Add(-1) == 0 {
		if t.storage != nil {
			t.storage.Release()
			t.storage = nil
		}
		t.size = nil
		t.stride = nil
	}
}

// String returns a human-readable representation of the view.
func (t *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v strides %v offset %d on %s",
		t.dtype, Shape(t.size), t.stride, t.offset, t.Device())
}
