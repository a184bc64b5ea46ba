// Package bufobj provides typed GPU buffer objects for the GoGPU ecosystem.
//
// # Overview
//
// A Buffer wraps exactly one device buffer resource. It uploads a host-side
// slice at construction, derives the vertex attribute layout (component
// count and scalar kind) from the element type, supports in-place sub-range
// updates, and releases the device resource exactly once, either through an
// explicit Release call or through a best-effort cleanup when the owner
// forgot.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bufobj"
//	    "github.com/gogpu/bufobj/backend/native"
//	)
//
//	dev := native.NewDevice()
//
//	verts := []bufobj.Vec3{{0, 1, 0}, {-1, -1, 0}, {1, -1, 0}}
//	buf, err := bufobj.New(dev, verts, bufobj.UsageStaticDraw, bufobj.TargetArray)
//	if err != nil {
//	    // device allocation failed
//	}
//	defer buf.Release()
//
//	buf.Components() // 3
//	buf.ScalarKind() // ScalarFloat
//	buf.Len()        // 3
//
// # Device backends
//
// The package talks to the GPU through the Device interface. Two
// implementations ship with the module:
//   - backend/native: an in-memory software device for tests and CPU-only
//     environments.
//   - backend/wgpu: a hardware device built on gogpu/wgpu's HAL, usable
//     standalone or with a device shared by a host application.
//
// # Threading
//
// Like the GPU context APIs it wraps, a Buffer has single-thread affinity:
// all operations against one device context belong on the thread that owns
// that context. The package performs no internal synchronization.
//
// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause
package bufobj
