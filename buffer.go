// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bufobj

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Buffer is a typed wrapper around one device buffer resource.
//
// A Buffer owns its handle exclusively: it is created by one of the New
// constructors, mutated only through the Update methods, and freed exactly
// once, by Release or by the cleanup that runs if the owner never released
// it. Copying a Buffer value would create a second owner and risk a double
// free; Buffer values are therefore only handed out by pointer and carry a
// vet-checked copy guard.
//
// The element type T determines the byte stride and, via TraitsOf, the
// attribute layout reported by Components and ScalarKind. T must have a
// fixed memory layout with no internal pointers (fixed-width numeric types,
// Vec2/Vec3/Vec4, or flat structs of those).
type Buffer[T any] struct {
	noCopy noCopy

	device  Device
	handle  Handle
	target  Target
	usage   Usage
	traits  Traits
	stride  int
	size    int
	count   int
	cleanup runtime.Cleanup
}

// ownedHandle carries the two values the cleanup needs to free a leaked
// resource. It deliberately references nothing else: the cleanup runs with
// no ordering guarantees relative to other finalizable objects and must not
// touch them.
type ownedHandle struct {
	device Device
	handle Handle
}

// freeHandle is the cleanup for buffers that were never released.
func freeHandle(o ownedHandle) {
	o.device.DeleteBuffer(o.handle)
}

// New creates a buffer object on device, bound to target, and uploads all
// of data to it. The attribute layout is derived from T once, at
// construction. Device allocation failures are returned unretried.
func New[T any](device Device, data []T, usage Usage, target Target) (*Buffer[T], error) {
	return upload(device, data, len(data), usage, target)
}

// NewCount is New with a caller-declared count of valid elements. The whole
// of data is still the upload source; count only bounds the logical length
// reported by Len and is silently clamped into [0, len(data)]. This
// supports reusing one oversized host slice across many uploads without
// reallocating it.
func NewCount[T any](device Device, data []T, count int, usage Usage, target Target) (*Buffer[T], error) {
	return upload(device, data, count, usage, target)
}

// NewRange uploads a sub-window of data starting at offset for count
// elements. Both offset and count are silently clamped so the window never
// reads outside data. Len reports the clamped count.
func NewRange[T any](device Device, data []T, offset, count int, usage Usage, target Target) (*Buffer[T], error) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	if count < 0 {
		count = 0
	}
	if count > len(data)-offset {
		count = len(data) - offset
	}
	return upload(device, data[offset:offset+count], count, usage, target)
}

// NewRangeStrict is NewRange without the silent clamping: a window that
// does not lie entirely inside data fails with ErrOutOfRange instead.
func NewRangeStrict[T any](device Device, data []T, offset, count int, usage Usage, target Target) (*Buffer[T], error) {
	if offset < 0 || count < 0 || offset+count > len(data) {
		return nil, fmt.Errorf("%w: offset %d count %d len %d", ErrOutOfRange, offset, count, len(data))
	}
	return upload(device, data[offset:offset+count], count, usage, target)
}

// upload allocates the device resource for src and wires up ownership.
// count is clamped to the source length; src itself is uploaded in full.
func upload[T any](device Device, src []T, count int, usage Usage, target Target) (*Buffer[T], error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if count < 0 {
		count = 0
	}
	if count > len(src) {
		count = len(src)
	}

	stride := int(unsafe.Sizeof(*new(T)))
	size := len(src) * stride

	// Pin the host slice for the duration of the device call only.
	// The pin is released on every exit path, including device failure.
	var ptr unsafe.Pointer
	if size > 0 {
		var pin runtime.Pinner
		pin.Pin(&src[0])
		defer pin.Unpin()
		ptr = unsafe.Pointer(&src[0])
	}

	handle, err := device.CreateBuffer(target, usage, size, ptr)
	if err != nil {
		return nil, fmt.Errorf("bufobj: create %v buffer: %w", target, err)
	}

	b := &Buffer[T]{
		device: device,
		handle: handle,
		target: target,
		usage:  usage,
		traits: TraitsOf[T](),
		stride: stride,
		size:   size,
		count:  count,
	}
	b.cleanup = runtime.AddCleanup(b, freeHandle, ownedHandle{device, handle})

	Logger().Debug("bufobj: buffer created",
		"handle", uint64(handle), "target", target, "bytes", size, "elements", count)
	return b, nil
}

// Handle returns the device resource identifier, or NilHandle after Release.
func (b *Buffer[T]) Handle() Handle { return b.handle }

// Target returns the binding class fixed at construction.
func (b *Buffer[T]) Target() Target { return b.target }

// Usage returns the usage hint fixed at construction.
func (b *Buffer[T]) Usage() Usage { return b.usage }

// Traits returns the attribute layout derived from T.
func (b *Buffer[T]) Traits() Traits { return b.traits }

// Components returns the number of scalar components per element, or zero
// when T's layout is unknown.
func (b *Buffer[T]) Components() int { return b.traits.Components }

// ScalarKind returns the scalar kind of T's components.
func (b *Buffer[T]) ScalarKind() ScalarKind { return b.traits.Kind }

// Len returns the number of logically valid elements. This is the count the
// caller asserted, not necessarily the physical capacity of the host slice
// the buffer was uploaded from.
func (b *Buffer[T]) Len() int { return b.count }

// SizeBytes returns the byte size of the device resource.
func (b *Buffer[T]) SizeBytes() int { return b.size }

// Stride returns the byte size of one element.
func (b *Buffer[T]) Stride() int { return b.stride }

// Released reports whether the device resource has been freed.
func (b *Buffer[T]) Released() bool { return b.handle == NilHandle }

// Bind attaches the buffer to its target's binding slot.
func (b *Buffer[T]) Bind() error {
	if b.handle == NilHandle {
		return ErrReleased
	}
	return b.device.Bind(b.handle, b.target)
}

// Update replaces the device resource's contents with all of data and sets
// the valid length to len(data). The resource identity is unchanged; only
// targets for which SupportsSubData is true accept updates.
func (b *Buffer[T]) Update(data []T) error {
	if err := b.UpdateBytesAt(data, len(data)*b.stride, 0); err != nil {
		return err
	}
	b.count = len(data)
	return nil
}

// UpdateBytes replaces the first sizeBytes bytes of the device resource
// with bytes from data. sizeBytes is clamped to data's byte length.
func (b *Buffer[T]) UpdateBytes(data []T, sizeBytes int) error {
	return b.UpdateBytesAt(data, sizeBytes, 0)
}

// UpdateBytesAt replaces sizeBytes bytes of the device resource starting at
// offsetBytes with bytes from data. sizeBytes is clamped to data's byte
// length and a negative offsetBytes is treated as zero. When the written
// range ends past the current valid length, Len grows to cover it.
//
// The host slice is pinned only for the duration of the device call and
// unpinned on every exit path.
func (b *Buffer[T]) UpdateBytesAt(data []T, sizeBytes, offsetBytes int) error {
	if b.handle == NilHandle {
		return ErrReleased
	}
	if !b.target.SupportsSubData() {
		return &InvalidTargetError{Target: b.target}
	}
	if offsetBytes < 0 {
		offsetBytes = 0
	}
	if limit := len(data) * b.stride; sizeBytes > limit {
		sizeBytes = limit
	}
	if sizeBytes < 0 {
		sizeBytes = 0
	}

	if err := b.device.Bind(b.handle, b.target); err != nil {
		return fmt.Errorf("bufobj: bind for sub-data update: %w", err)
	}

	var ptr unsafe.Pointer
	if sizeBytes > 0 {
		var pin runtime.Pinner
		pin.Pin(&data[0])
		defer pin.Unpin()
		ptr = unsafe.Pointer(&data[0])
	}

	if err := b.device.WriteSubData(b.target, offsetBytes, sizeBytes, ptr); err != nil {
		return fmt.Errorf("bufobj: sub-data update: %w", err)
	}

	if b.stride > 0 {
		if end := (offsetBytes + sizeBytes + b.stride - 1) / b.stride; end > b.count {
			b.count = end
		}
	}
	return nil
}

// Release frees the device resource. It is idempotent: the first call
// deletes the buffer and clears the handle, subsequent calls do nothing.
// Release also stops the leak-recovery cleanup, so an explicitly released
// buffer is never freed a second time when it becomes unreachable.
func (b *Buffer[T]) Release() {
	if b.handle == NilHandle {
		return
	}
	b.cleanup.Stop()
	b.device.DeleteBuffer(b.handle)
	Logger().Debug("bufobj: buffer released", "handle", uint64(b.handle), "target", b.target)
	b.handle = NilHandle
}

// noCopy triggers go vet's copylocks check when a guarded value is copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
