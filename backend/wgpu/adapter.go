// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the bufobj device call layer on top of the
// gogpu/wgpu hardware abstraction layer.
//
// An Adapter can run against a device it opened itself (Open), a device and
// queue handed in directly (NewAdapter), or a device shared by a host
// application such as gogpu (FromProvider). Shared devices are never
// destroyed by Close; owned ones are.
package wgpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/bufobj"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// Adapter errors.
var (
	// ErrUnknownHandle is returned when binding a handle the adapter never
	// allocated or has already deleted.
	ErrUnknownHandle = errors.New("wgpu: unknown buffer handle")

	// ErrNothingBound is returned when writing to a target with no bound
	// buffer.
	ErrNothingBound = errors.New("wgpu: no buffer bound to target")

	// ErrInvalidSize is returned when a buffer size or write range is
	// negative.
	ErrInvalidSize = errors.New("wgpu: invalid size")

	// ErrClosed is returned when operating on a closed adapter.
	ErrClosed = errors.New("wgpu: adapter is closed")
)

// copyAlignment is the allocation granularity required for buffer copy
// operations. Allocations are rounded up to it, with a one-unit floor
// because the HAL rejects zero-size buffers.
const copyAlignment = 4

// Adapter implements bufobj.Device over hal.Device and hal.Queue.
//
// wgpu has no context-global binding state, so the adapter keeps its own
// per-target table of bound handles and resolves sub-range writes through
// it, preserving the call-layer contract that writes address a target.
type Adapter struct {
	mu       sync.Mutex
	instance hal.Instance // non-nil only when Open created it
	device   hal.Device
	queue    hal.Queue
	owned    bool
	closed   bool

	buffers map[bufobj.Handle]hal.Buffer
	bound   map[bufobj.Target]bufobj.Handle
	nextID  atomic.Uint64
}

// NewAdapter wraps an existing device and queue. The caller keeps ownership
// of both; Close leaves them alive.
func NewAdapter(device hal.Device, queue hal.Queue) *Adapter {
	a := &Adapter{
		device:  device,
		queue:   queue,
		buffers: make(map[bufobj.Handle]hal.Buffer),
		bound:   make(map[bufobj.Target]bufobj.Handle),
	}
	// Handle 0 is the released sentinel, never allocated.
	a.nextID.Store(1)
	return a
}

// CreateBuffer allocates a device buffer with usage flags derived from
// target, uploads sizeBytes bytes from src through the queue and leaves the
// new buffer bound to target.
func (a *Adapter) CreateBuffer(target bufobj.Target, usage bufobj.Usage, sizeBytes int, src unsafe.Pointer) (bufobj.Handle, error) {
	if sizeBytes < 0 {
		return bufobj.NilHandle, fmt.Errorf("%w: %d", ErrInvalidSize, sizeBytes)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return bufobj.NilHandle, ErrClosed
	}

	desc := &hal.BufferDescriptor{
		Label: fmt.Sprintf("bufobj-%s-%s", target, usage),
		Size:  alignSize(sizeBytes),
		Usage: usageFlags(target),
	}
	buffer, err := a.device.CreateBuffer(desc)
	if err != nil {
		return bufobj.NilHandle, fmt.Errorf("wgpu: create buffer: %w", err)
	}

	if sizeBytes > 0 && src != nil {
		a.queue.WriteBuffer(buffer, 0, unsafe.Slice((*byte)(src), sizeBytes))
	}

	h := bufobj.Handle(a.nextID.Add(1) - 1)
	a.buffers[h] = buffer
	a.bound[target] = h

	bufobj.Logger().Debug("wgpu: buffer created",
		"handle", uint64(h), "target", target, "bytes", sizeBytes)
	return h, nil
}

// Bind attaches h to target's binding slot. Binding NilHandle clears the
// slot.
func (a *Adapter) Bind(h bufobj.Handle, target bufobj.Target) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}

	if h == bufobj.NilHandle {
		delete(a.bound, target)
		return nil
	}
	if _, ok := a.buffers[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	a.bound[target] = h
	return nil
}

// WriteSubData writes sizeBytes bytes from src into the buffer bound to
// target at offsetBytes, through the queue.
func (a *Adapter) WriteSubData(target bufobj.Target, offsetBytes, sizeBytes int, src unsafe.Pointer) error {
	if offsetBytes < 0 || sizeBytes < 0 {
		return fmt.Errorf("%w: offset %d size %d", ErrInvalidSize, offsetBytes, sizeBytes)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}

	h, ok := a.bound[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNothingBound, target)
	}
	buffer, ok := a.buffers[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}

	if sizeBytes > 0 && src != nil {
		a.queue.WriteBuffer(buffer, uint64(offsetBytes), unsafe.Slice((*byte)(src), sizeBytes))
	}
	return nil
}

// DeleteBuffer frees h and clears any binding slots still pointing at it.
// Deleting an unknown handle is a no-op.
func (a *Adapter) DeleteBuffer(h bufobj.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buffer, ok := a.buffers[h]
	if !ok {
		return
	}
	delete(a.buffers, h)
	for target, bound := range a.bound {
		if bound == h {
			delete(a.bound, target)
		}
	}
	a.device.DestroyBuffer(buffer)
}

// Close destroys all remaining buffers and, when the adapter owns its
// device (Open), the device and instance as well. Shared devices handed in
// via NewAdapter or FromProvider are left untouched.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true

	for h, buffer := range a.buffers {
		delete(a.buffers, h)
		a.device.DestroyBuffer(buffer)
	}
	a.bound = make(map[bufobj.Target]bufobj.Handle)

	if a.owned {
		if a.device != nil {
			a.device.Destroy()
		}
		if a.instance != nil {
			a.instance.Destroy()
		}
	}
	a.device = nil
	a.queue = nil
	a.instance = nil
}

// alignSize rounds sizeBytes up to the copy alignment, with a one-unit
// floor for empty buffers.
func alignSize(sizeBytes int) uint64 {
	if sizeBytes <= 0 {
		return copyAlignment
	}
	return (uint64(sizeBytes) + copyAlignment - 1) &^ (copyAlignment - 1)
}

// usageFlags maps a binding class to wgpu buffer usage flags. Every target
// carries CopyDst so sub-range updates through the queue stay legal.
func usageFlags(target bufobj.Target) types.BufferUsage {
	switch target {
	case bufobj.TargetArray:
		return types.BufferUsageVertex | types.BufferUsageCopyDst
	case bufobj.TargetElementArray:
		return types.BufferUsageIndex | types.BufferUsageCopyDst
	case bufobj.TargetPixelPack:
		return types.BufferUsageMapRead | types.BufferUsageCopyDst
	case bufobj.TargetPixelUnpack:
		return types.BufferUsageCopySrc | types.BufferUsageCopyDst
	case bufobj.TargetUniform:
		return types.BufferUsageUniform | types.BufferUsageCopyDst
	case bufobj.TargetCopyRead:
		return types.BufferUsageCopySrc | types.BufferUsageCopyDst
	case bufobj.TargetCopyWrite:
		return types.BufferUsageCopyDst | types.BufferUsageCopySrc
	default:
		return types.BufferUsageCopyDst
	}
}

// assert Adapter satisfies the call layer interface.
var _ bufobj.Device = (*Adapter)(nil)
