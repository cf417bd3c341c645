// Package chain describes the surface of the next link in the layer chain: the opaque
// handles it hands out and the calls this layer makes through it. The C ABI bridge
// implements these interfaces over the function pointers the loader provides; tests
// implement them with the mocks in chain/mocks.
package chain

//go:generate mockgen -source chain.go -destination ./mocks/chain.go -package mocks

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// GlobalDriver is the next link's pre-instance surface, obtained from the
// instance link info found in an instance creation request.
type GlobalDriver interface {
	// GetInstanceProcAddr is the next link's vkGetInstanceProcAddr
	GetInstanceProcAddr(instance Instance, name string) ProcAddr
	// CreateInstance forwards instance creation down the chain. next is the remainder
	// of the chain after the link being called.
	CreateInstance(info core1_0.InstanceCreateInfo, next *InstanceLink) (InstanceDriver, common.VkResult, error)
}

// InstanceDriver is the next link's instance-level surface for one created instance
type InstanceDriver interface {
	Instance() Instance

	EnumeratePhysicalDevices() ([]PhysicalDevice, common.VkResult, error)
	EnumerateDeviceExtensionProperties(physicalDevice PhysicalDevice, layerName string) (map[string]*core1_0.ExtensionProperties, common.VkResult, error)
	GetPhysicalDeviceQueueFamilyProperties(physicalDevice PhysicalDevice) []*core1_0.QueueFamilyProperties

	// CreateDevice forwards device creation down the chain. next is the remainder of
	// the chain after the link being called.
	CreateDevice(physicalDevice PhysicalDevice, info core1_0.DeviceCreateInfo, next *DeviceLink) (DeviceDriver, common.VkResult, error)
	DestroyInstance()
}

// DeviceResolver is the next link's vkGetDeviceProcAddr, obtained from the device
// link info found in a device creation request
type DeviceResolver interface {
	GetDeviceProcAddr(device Device, name string) ProcAddr
}

// DeviceDriver is the next link's device-level surface for one created device. Only
// the calls this layer issues itself are present: everything else is reached through
// the forwarding table.
type DeviceDriver interface {
	Device() Device

	GetDeviceQueue(queueFamilyIndex int, queueIndex int) Queue

	CreateCommandPool(info core1_0.CommandPoolCreateInfo) (CommandPool, common.VkResult, error)
	DestroyCommandPool(pool CommandPool)

	AllocateCommandBuffers(pool CommandPool, level core1_0.CommandBufferLevel, count int) ([]CommandBuffer, common.VkResult, error)
	BeginCommandBuffer(buffer CommandBuffer, info core1_0.CommandBufferBeginInfo) (common.VkResult, error)
	FreeCommandBuffers(pool CommandPool, buffers ...CommandBuffer)

	DestroyDevice()
}

// InstanceLink is one element of the instance link chain carried by an instance
// creation request
type InstanceLink struct {
	Driver GlobalDriver
	Next   *InstanceLink
}

// DeviceLink is one element of the device link chain carried by a device creation
// request
type DeviceLink struct {
	Resolver DeviceResolver
	Next     *DeviceLink
}
