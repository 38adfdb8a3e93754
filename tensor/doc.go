// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the strided tensor metadata
// engine: shape, stride and storage-offset management over shared,
// reference-counted storage.
//
// # Overview
//
// The engine manages *views*, not values. A Tensor is shape/stride/offset
// metadata bound to a Storage; many views may share one Storage, and shape
// always belongs to the view. The package provides:
//   - Tensor[T]: generic type-safe view over all supported element types
//   - RawTensor: the untyped low-level view object
//   - Storage: shared, reference-counted, device-tagged element buffer
//   - Layout analysis: contiguity, element counts, device agreement,
//     aliasing-hazard detection, 32-bit index-math gating
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/tensor"
//
//	func main() {
//	    t := tensor.New[float32](tensor.CPU)
//	    _ = t.Resize(tensor.Shape{3, 1, 4}) // strides [4, 4, 1]
//
//	    v := tensor.New[float32](tensor.CPU)
//	    _ = v.Squeeze1d(t, 1) // shape [3, 4], same storage
//	}
//
// # Supported Element Types
//
// The DType constraint covers uint8, int8, int16, int32, int64, float32,
// float64, float16.Float16 (x448/float16) and bfloat16.BFloat16
// (gomlx/gopjrt). All operations run through one generic implementation;
// nothing is specialized per type.
//
// # Resizing Semantics
//
// ResizeNd truncates the requested sizes at the first non-positive entry
// (the effective rank), treats negative requested strides as "use the
// row-major default", reallocates shape arrays only when the rank changes,
// and grows — never shrinks — the backing storage when the new layout needs
// more elements.
//
// # Aliasing Hazards
//
// MaybeOverlappingIndices is deliberately conservative: it may report a
// hazard where none exists, but it never misses a real one. Callers must
// consult it before unsynchronized parallel writes; the engine itself does
// no locking.
package tensor
