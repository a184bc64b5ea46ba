// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bufobj

import "fmt"

// Handle identifies a buffer resource on the device.
//
// The zero value means "no device resource": a Buffer whose handle is
// NilHandle has been released (or was never successfully created) and must
// not issue further device operations.
type Handle uint64

// NilHandle is the released-state sentinel.
const NilHandle Handle = 0

// Target is the binding class a buffer resource occupies on the device.
// It is fixed at construction and never changes for the lifetime of a
// Buffer.
type Target int

const (
	// TargetArray holds vertex attribute data.
	TargetArray Target = iota

	// TargetElementArray holds index data.
	TargetElementArray

	// TargetPixelPack receives pixel data read back from the device.
	TargetPixelPack

	// TargetPixelUnpack supplies pixel data to texture uploads.
	TargetPixelUnpack

	// TargetUniform holds uniform block data.
	TargetUniform

	// TargetCopyRead is the source slot for buffer-to-buffer copies.
	TargetCopyRead

	// TargetCopyWrite is the destination slot for buffer-to-buffer copies.
	TargetCopyWrite
)

// String returns the string representation of the target.
func (t Target) String() string {
	switch t {
	case TargetArray:
		return "Array"
	case TargetElementArray:
		return "ElementArray"
	case TargetPixelPack:
		return "PixelPack"
	case TargetPixelUnpack:
		return "PixelUnpack"
	case TargetUniform:
		return "Uniform"
	case TargetCopyRead:
		return "CopyRead"
	case TargetCopyWrite:
		return "CopyWrite"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// SupportsSubData reports whether sub-range updates may be issued against
// buffers bound to this target. Only the array, element-array and pixel
// transfer targets accept partial replacement.
func (t Target) SupportsSubData() bool {
	switch t {
	case TargetArray, TargetElementArray, TargetPixelPack, TargetPixelUnpack:
		return true
	default:
		return false
	}
}

// Usage hints how often the buffer's contents will be updated and read.
// It affects device-internal placement, not correctness.
type Usage int

const (
	// UsageStaticDraw is for contents written once and drawn many times.
	UsageStaticDraw Usage = iota

	// UsageDynamicDraw is for contents updated repeatedly and drawn many times.
	UsageDynamicDraw

	// UsageStreamDraw is for contents updated once per use.
	UsageStreamDraw

	// UsageStaticRead is for contents read back once.
	UsageStaticRead

	// UsageDynamicRead is for contents read back repeatedly.
	UsageDynamicRead

	// UsageStreamRead is for contents read back once per update.
	UsageStreamRead
)

// String returns the string representation of the usage hint.
func (u Usage) String() string {
	switch u {
	case UsageStaticDraw:
		return "StaticDraw"
	case UsageDynamicDraw:
		return "DynamicDraw"
	case UsageStreamDraw:
		return "StreamDraw"
	case UsageStaticRead:
		return "StaticRead"
	case UsageDynamicRead:
		return "DynamicRead"
	case UsageStreamRead:
		return "StreamRead"
	default:
		return fmt.Sprintf("Unknown(%d)", int(u))
	}
}
