// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native provides an in-memory software implementation of the
// bufobj device call layer.
//
// The device stores buffer contents in host memory and mirrors the binding
// model of a real graphics context: sub-range writes address the buffer
// currently bound to a target, not a handle. It is used by tests, examples
// and CPU-only environments.
package native

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/bufobj"
)

// Device errors.
var (
	// ErrInvalidSize is returned when a buffer size is negative.
	ErrInvalidSize = errors.New("native: invalid buffer size")

	// ErrUnknownHandle is returned when binding a handle the device never
	// allocated or has already deleted.
	ErrUnknownHandle = errors.New("native: unknown buffer handle")

	// ErrNothingBound is returned when writing to a target with no bound
	// buffer.
	ErrNothingBound = errors.New("native: no buffer bound to target")

	// ErrWriteOutOfRange is returned when a sub-range write does not fit
	// inside the destination buffer.
	ErrWriteOutOfRange = errors.New("native: write exceeds buffer size")
)

// storedBuffer holds one allocation and the metadata it was created with.
type storedBuffer struct {
	data   []byte
	target bufobj.Target
	usage  bufobj.Usage
}

// Device is a software device call layer backed by host memory.
//
// Operations are guarded by a mutex so that mistakes in caller-side
// serialization corrupt nothing, but the intended use is single-threaded,
// matching the context affinity of the real backends.
type Device struct {
	mu      sync.Mutex
	buffers map[bufobj.Handle]*storedBuffer
	bound   map[bufobj.Target]bufobj.Handle
	nextID  atomic.Uint64

	created   uint64
	destroyed uint64
	resident  uint64
}

// NewDevice creates an empty software device.
func NewDevice() *Device {
	d := &Device{
		buffers: make(map[bufobj.Handle]*storedBuffer),
		bound:   make(map[bufobj.Target]bufobj.Handle),
	}
	// Handle 0 is the released sentinel, never allocated.
	d.nextID.Store(1)
	return d
}

// CreateBuffer allocates storage, copies sizeBytes bytes from src into it
// and leaves the new buffer bound to target, the same post-state a real
// context has after an allocate-and-upload.
func (d *Device) CreateBuffer(target bufobj.Target, usage bufobj.Usage, sizeBytes int, src unsafe.Pointer) (bufobj.Handle, error) {
	if sizeBytes < 0 {
		return bufobj.NilHandle, fmt.Errorf("%w: %d", ErrInvalidSize, sizeBytes)
	}

	buf := &storedBuffer{
		data:   make([]byte, sizeBytes),
		target: target,
		usage:  usage,
	}
	if sizeBytes > 0 && src != nil {
		copy(buf.data, unsafe.Slice((*byte)(src), sizeBytes))
	}

	h := bufobj.Handle(d.nextID.Add(1) - 1)

	d.mu.Lock()
	d.buffers[h] = buf
	d.bound[target] = h
	d.created++
	d.resident += uint64(sizeBytes)
	d.mu.Unlock()

	return h, nil
}

// Bind attaches h to target's binding slot. Binding NilHandle clears the
// slot.
func (d *Device) Bind(h bufobj.Handle, target bufobj.Target) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if h == bufobj.NilHandle {
		delete(d.bound, target)
		return nil
	}
	if _, ok := d.buffers[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	d.bound[target] = h
	return nil
}

// WriteSubData copies sizeBytes bytes from src into the buffer bound to
// target, starting at offsetBytes.
func (d *Device) WriteSubData(target bufobj.Target, offsetBytes, sizeBytes int, src unsafe.Pointer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, ok := d.bound[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNothingBound, target)
	}
	buf, ok := d.buffers[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if offsetBytes < 0 || sizeBytes < 0 || offsetBytes+sizeBytes > len(buf.data) {
		return fmt.Errorf("%w: offset %d size %d buffer %d",
			ErrWriteOutOfRange, offsetBytes, sizeBytes, len(buf.data))
	}
	if sizeBytes > 0 && src != nil {
		copy(buf.data[offsetBytes:offsetBytes+sizeBytes], unsafe.Slice((*byte)(src), sizeBytes))
	}
	return nil
}

// DeleteBuffer frees h and clears any binding slots still pointing at it.
// Deleting an unknown handle is a no-op.
func (d *Device) DeleteBuffer(h bufobj.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.buffers[h]
	if !ok {
		return
	}
	delete(d.buffers, h)
	for target, bound := range d.bound {
		if bound == h {
			delete(d.bound, target)
		}
	}
	d.destroyed++
	d.resident -= uint64(len(buf.data))
}

// Bytes returns a copy of the stored contents of h. The second result is
// false when the handle is unknown. Intended for tests and debugging.
func (d *Device) Bytes(h bufobj.Handle) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.buffers[h]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(buf.data))
	copy(out, buf.data)
	return out, true
}

// Bound returns the handle currently bound to target, or NilHandle.
func (d *Device) Bound(target bufobj.Target) bufobj.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bound[target]
}

// Stats contains allocation statistics for a software device.
type Stats struct {
	// Live is the number of currently allocated buffers.
	Live int

	// Created is the total number of buffers ever allocated.
	Created uint64

	// Destroyed is the total number of buffers freed.
	Destroyed uint64

	// ResidentBytes is the byte size of all live buffers.
	ResidentBytes uint64
}

// String returns a human-readable summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("Buffers[%d live, %d created, %d destroyed, %d bytes resident]",
		s.Live, s.Created, s.Destroyed, s.ResidentBytes)
}

// Stats returns a snapshot of the device's allocation statistics.
func (d *Device) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Stats{
		Live:          len(d.buffers),
		Created:       d.created,
		Destroyed:     d.destroyed,
		ResidentBytes: d.resident,
	}
}

// assert Device satisfies the call layer interface.
var _ bufobj.Device = (*Device)(nil)
