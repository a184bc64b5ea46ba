// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/bufobj"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceProvider is the host-application interface for sharing an existing
// GPU device with this package. It is an alias for gpucontext.DeviceProvider,
// keeping full compatibility with the gpucontext ecosystem. Providers that
// additionally expose HAL types (HalDevice/HalQueue) can be passed to
// FromProvider.
type DeviceProvider = gpucontext.DeviceProvider

// Open creates a standalone adapter with its own Vulkan device. This is the
// path for applications that use bufobj without a host GPU framework; when
// a host already owns a device, use FromProvider instead.
//
// The returned adapter owns the device and instance; Close destroys them.
func Open() (*Adapter, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: no GPU adapters found")
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	a := NewAdapter(openDev.Device, openDev.Queue)
	a.instance = instance
	a.owned = true

	bufobj.Logger().Info("wgpu: device opened", "adapter", selected.Info.Name)
	return a, nil
}

// FromProvider creates an adapter on a device shared by a host application.
// The provider must expose HAL types through HalDevice() any and
// HalQueue() any methods returning hal.Device and hal.Queue, the convention
// gogpu's context follows. The adapter does not own the shared device;
// Close leaves it alive.
func FromProvider(provider any) (*Adapter, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	bufobj.Logger().Info("wgpu: using shared device from provider")
	return NewAdapter(device, queue), nil
}
