// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for the public API.

// DType is the constraint for supported element types.
type DType = tensor.DType

// DataType represents runtime type information for tensor elements.
type DataType = tensor.DataType

// Element type constants.
const (
	Uint8    DataType = tensor.Uint8
	Int8     DataType = tensor.Int8
	Int16    DataType = tensor.Int16
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
)

// Device identifies where a storage buffer lives.
type Device = tensor.Device

// Device constants. DeviceNone is reported by views with no storage bound.
const (
	CPU        Device = tensor.CPU
	CUDA       Device = tensor.CUDA
	Vulkan     Device = tensor.Vulkan
	Metal      Device = tensor.Metal
	WebGPU     Device = tensor.WebGPU
	DeviceNone Device = tensor.DeviceNone
)

// Shape represents the dimensions of a view.
// Example: Shape{2, 3, 4} is a 3D view with dimensions 2×3×4.
type Shape = tensor.Shape

// Storage is a shared, reference-counted, device-tagged element buffer.
type Storage = tensor.Storage

// RawTensor is the untyped low-level view: shape/stride/offset metadata
// bound to a Storage.
type RawTensor = tensor.RawTensor

// Tensor is the generic type-safe view over a RawTensor.
type Tensor[T DType] = tensor.Tensor[T]

// Engine limits.
const (
	// MaxDims is the upper bound on view rank the layout-analysis
	// routines are sized for.
	MaxDims = tensor.MaxDims

	// MaxIndex32 is the default element bound for CanUse32BitIndexMath.
	MaxIndex32 = tensor.MaxIndex32
)

// Argument-validation errors.
var (
	ErrNilSizes       = tensor.ErrNilSizes
	ErrStrideLength   = tensor.ErrStrideLength
	ErrDimOutOfRange  = tensor.ErrDimOutOfRange
	ErrInvalidOffset  = tensor.ErrInvalidOffset
	ErrUnsqueezeEmpty = tensor.ErrUnsqueezeEmpty
)

// NewStorage creates an empty storage of zero capacity bound to the given
// element type.
func NewStorage(dtype DataType, device Device) *Storage {
	return tensor.NewStorage(dtype, device)
}

// NewRaw creates an empty (rank-0) untyped view of the given element type.
func NewRaw(dtype DataType, device Device) *RawTensor {
	return tensor.NewRaw(dtype, device)
}

// NewRawWithShape creates an untyped view resized to shape with default
// row-major strides.
func NewRawWithShape(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRawWithShape(shape, dtype, device)
}

// New creates an empty (rank-0) tensor of element type T.
func New[T DType](device Device) *Tensor[T] {
	return tensor.New[T](device)
}

// NewWithShape creates a tensor resized to shape with default row-major
// strides.
func NewWithShape[T DType](shape Shape, device Device) (*Tensor[T], error) {
	return tensor.NewWithShape[T](shape, device)
}

// FromSlice creates a tensor from a Go slice, copying the data into fresh
// storage.
func FromSlice[T DType](data []T, shape Shape, device Device) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, device)
}

// FromRaw wraps an existing RawTensor; panics on an element-type mismatch.
func FromRaw[T DType](raw *RawTensor) *Tensor[T] {
	return tensor.FromRaw[T](raw)
}

// Raws extracts the underlying views of a tensor set for the multi-view
// layout queries.
func Raws[T DType](tensors []*Tensor[T]) []*RawTensor {
	return tensor.Raws(tensors)
}

// AllContiguous reports whether every view individually has a gap-free
// row-major access pattern.
func AllContiguous(views []*RawTensor) bool {
	return tensor.AllContiguous(views)
}

// AllSameDevice reports whether every view's storage lives on the same
// device as the first view's. Panics on an empty input set.
func AllSameDevice(views []*RawTensor) bool {
	return tensor.AllSameDevice(views)
}

// All32BitIndexable reports whether CanUse32BitIndexMath holds for every
// view.
func All32BitIndexable(views []*RawTensor, maxElem int) bool {
	return tensor.All32BitIndexable(views, maxElem)
}
