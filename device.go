package interpose

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/vulkan"
	"golang.org/x/exp/slog"
)

// DeviceContext is the layer's private state for one logical device. It is only created
// by its InstanceContext, and is registered under the device handle and every queue
// handle retrieved at creation.
type DeviceContext struct {
	logger *slog.Logger

	instance       *InstanceContext
	physicalDevice chain.PhysicalDevice
	device         chain.Device
	driver         chain.DeviceDriver
	table          *vulkan.Table
	extensionData  *vulkan.ExtensionData

	queueFamilies *swiss.Map[chain.Queue, int]
	queueList     []chain.Queue
	queue         *QueueResource
}

func (d *DeviceContext) Device() chain.Device {
	return d.device
}

func (d *DeviceContext) PhysicalDevice() chain.PhysicalDevice {
	return d.physicalDevice
}

// Instance is the context of the instance the device was created from
func (d *DeviceContext) Instance() *InstanceContext {
	return d.instance
}

// Driver is the next link's surface for this device
func (d *DeviceContext) Driver() chain.DeviceDriver {
	return d.driver
}

// ProcAddr returns the next link's address for the named device-level entry point
func (d *DeviceContext) ProcAddr(name string) chain.ProcAddr {
	return d.table.Lookup(name)
}

func (d *DeviceContext) IsDeviceExtensionActive(name string) bool {
	return d.extensionData.IsDeviceExtensionActive(name)
}

// EnabledExtensions lists the device extensions the device was created with, including
// any the layer injected
func (d *DeviceContext) EnabledExtensions() []string {
	return d.extensionData.EnabledExtensions()
}

// SupportsMutableSwapchainFormats reports whether swapchains on the device can be created
// with a format list, which is needed to view the application's images in another format
func (d *DeviceContext) SupportsMutableSwapchainFormats() bool {
	return d.extensionData.SwapchainMutableFormat
}

// Queues lists every queue retrieved when the device was created, the reserved queue
// included
func (d *DeviceContext) Queues() []chain.Queue {
	queues := make([]chain.Queue, len(d.queueList))
	copy(queues, d.queueList)
	return queues
}

// QueueFamily returns the family index of a queue retrieved when the device was created
func (d *DeviceContext) QueueFamily(queue chain.Queue) (int, bool) {
	return d.queueFamilies.Get(queue)
}

// Queue is the queue the layer reserved for its own work
func (d *DeviceContext) Queue() *QueueResource {
	return d.queue
}

// BeginScopedCommandBuffer begins a one-time-submit command buffer on the reserved queue's
// pool
func (d *DeviceContext) BeginScopedCommandBuffer() (*ScopedCommandBuffer, common.VkResult, error) {
	return d.queue.BeginScopedCommandBuffer()
}

// ApplyEffect records effect into a fresh scoped command buffer, which is released when
// the effect returns
func (d *DeviceContext) ApplyEffect(effect Effect) (common.VkResult, error) {
	if effect == nil {
		return core1_0.VKErrorUnknown, errors.New("ApplyEffect called with a nil effect")
	}

	buffer, res, err := d.BeginScopedCommandBuffer()
	if err != nil {
		return res, err
	}
	defer buffer.Release()

	err = effect.Apply(d, buffer)
	if err != nil {
		return core1_0.VKErrorUnknown, errors.Wrap(err, "effect failed to record")
	}

	return res, nil
}

// SubstituteSwapchainImages asks substitute for count images to present in place of the
// application's swapchain images
func (d *DeviceContext) SubstituteSwapchainImages(substitute SwapchainSubstitute, count int) ([]chain.Image, error) {
	if substitute == nil {
		return nil, errors.New("SubstituteSwapchainImages called with a nil substitute")
	}
	if count <= 0 {
		return nil, errors.Newf("swapchain image count must be positive, received %d", count)
	}

	images, err := substitute.CreateImages(d, count)
	if err != nil {
		return nil, err
	}
	if len(images) != count {
		return nil, errors.Newf("swapchain substitute produced %d images, expected %d", len(images), count)
	}

	return images, nil
}

func (d *DeviceContext) destroy() {
	d.logger.Debug("DeviceContext::destroy", slog.String("Device", d.device.String()))

	d.queue.destroy()
	d.driver.DestroyDevice()
}
