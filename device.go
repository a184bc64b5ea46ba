// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bufobj

import "unsafe"

// Device is the call layer between buffer objects and a GPU context.
//
// Implementations translate these four operations to a concrete graphics
// API. The backend/native and backend/wgpu packages provide ready-made
// implementations; host applications with their own GPU plumbing can
// satisfy the interface directly.
//
// Source pointers passed to CreateBuffer and WriteSubData are pinned by the
// caller for the duration of the call only. Implementations must copy the
// bytes before returning and must not retain the pointer.
//
// Like the underlying context APIs, a Device has single-thread affinity:
// callers serialize all operations onto the thread owning the context.
type Device interface {
	// CreateBuffer allocates a buffer resource of sizeBytes bytes bound to
	// target and uploads sizeBytes bytes from src into it. src may be nil
	// when sizeBytes is zero. Returns the handle of the new resource.
	CreateBuffer(target Target, usage Usage, sizeBytes int, src unsafe.Pointer) (Handle, error)

	// Bind attaches the buffer to the given target's binding slot.
	// Binding NilHandle clears the slot.
	Bind(h Handle, target Target) error

	// WriteSubData replaces sizeBytes bytes of the buffer currently bound
	// to target, starting at offsetBytes, with bytes read from src. The
	// resource identity does not change.
	WriteSubData(target Target, offsetBytes, sizeBytes int, src unsafe.Pointer) error

	// DeleteBuffer frees the buffer resource. Deleting a handle that is
	// unknown to the device is a no-op.
	DeleteBuffer(h Handle)
}
