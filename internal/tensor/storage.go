package tensor

import "sync/atomic"

// Device identifies where a storage buffer lives.
type Device int

// Supported devices. DeviceNone is the sentinel reported by views with no
// storage bound.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// DeviceNone is the "no device" sentinel.
const DeviceNone Device = -1

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	case DeviceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Storage is a reference-counted, device-tagged, resizable element buffer.
// Multiple views may share one Storage; the buffer lives as long as the
// longest-surviving reference. Shape never lives here: it belongs to the
// views, so resizing one view cannot disturb siblings sharing the buffer.
type Storage struct {
	data     []byte
	dtype    DataType
	device   Device
	refCount atomic.Int32
}

// NewStorage creates an empty storage of zero capacity bound to the given
// element type, with a reference count of 1.
func NewStorage(dtype DataType, device Device) *Storage {
	s := &Storage{
		dtype:  dtype,
		device: device,
	}
	s.refCount.Store(1)
	return s
}

// Retain increments the reference count.
func (s *Storage) Retain() {
	s.refCount.Add(1)
}

// Release decrements the reference count and frees the buffer when it
// reaches zero. Safe to call from any goroutine.
func (s *Storage) Release() {
	if s.refCount.Add(-1) == 0 {
		s.data = nil
	}
}

// Len returns the element capacity of the buffer.
func (s *Storage) Len() int {
	return len(s.data) / s.dtype.Size()
}

// Resize grows the buffer to hold at least n elements of the bound type.
// It never shrinks: a request at or below the current capacity is a no-op.
// Device placement is preserved. Allocation failure is fatal at this layer
// (the runtime panics); there is no partial growth.
func (s *Storage) Resize(n int) {
	byteLen := n * s.dtype.Size()
	if byteLen <= len(s.data) {
		return
	}
	grown := make([]byte, byteLen)
	copy(grown, s.data)
	s.data = grown
}

// DType returns the bound element type.
func (s *Storage) DType() DataType {
	return s.dtype
}

// Device returns the device tag.
func (s *Storage) Device() Device {
	return s.device
}

// Data returns the raw byte buffer.
// WARNING: direct access to underlying memory. Use with caution.
func (s *Storage) Data() []byte {
	return s.data
}
