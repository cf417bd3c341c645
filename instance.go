package interpose

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/augment"
	"github.com/vkngwrapper/interpose/internal/vulkan"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// InstanceContext is the layer's private state for one instance. It is registered under the
// instance handle and every physical device handle enumerated from it.
type InstanceContext struct {
	logger *slog.Logger

	instance   chain.Instance
	driver     chain.InstanceDriver
	table      *vulkan.Table
	apiVersion common.APIVersion

	physicalDevices []chain.PhysicalDevice
	devices         *swiss.Map[chain.Device, *DeviceContext]
}

func newInstanceContext(logger *slog.Logger, driver chain.InstanceDriver, global chain.GlobalDriver, apiVersion common.APIVersion) *InstanceContext {
	instance := driver.Instance()

	return &InstanceContext{
		logger:     logger,
		instance:   instance,
		driver:     driver,
		apiVersion: apiVersion,
		table: vulkan.NewInstanceTable(func(name string) chain.ProcAddr {
			return global.GetInstanceProcAddr(instance, name)
		}),
		devices: swiss.NewMap[chain.Device, *DeviceContext](4),
	}
}

func (i *InstanceContext) Instance() chain.Instance {
	return i.instance
}

// Driver is the next link's surface for this instance
func (i *InstanceContext) Driver() chain.InstanceDriver {
	return i.driver
}

// APIVersion is the API version the instance was created with, after the layer raised it
func (i *InstanceContext) APIVersion() common.APIVersion {
	return i.apiVersion
}

// ProcAddr returns the next link's address for the named instance-level entry point
func (i *InstanceContext) ProcAddr(name string) chain.ProcAddr {
	return i.table.Lookup(name)
}

// PhysicalDevices lists the physical devices enumerated from the instance so far
func (i *InstanceContext) PhysicalDevices() []chain.PhysicalDevice {
	return slices.Clone(i.physicalDevices)
}

// DeviceCount is the number of live devices created from the instance
func (i *InstanceContext) DeviceCount() int {
	return i.devices.Count()
}

func (i *InstanceContext) notePhysicalDevice(physicalDevice chain.PhysicalDevice) {
	if !slices.Contains(i.physicalDevices, physicalDevice) {
		i.physicalDevices = append(i.physicalDevices, physicalDevice)
	}
}

// createDevice builds the context for a device the next link just created. info is the
// augmented request the device was created with. If the layer's queue resources cannot be
// set up, the device is destroyed again and the error is returned.
func (i *InstanceContext) createDevice(physicalDevice chain.PhysicalDevice, driver chain.DeviceDriver, resolver chain.DeviceResolver, info core1_0.DeviceCreateInfo, reservation augment.Reservation) (*DeviceContext, common.VkResult, error) {
	device := driver.Device()

	queue, res, err := newQueueResource(i.logger, driver, reservation)
	if err != nil {
		i.logger.Error("InstanceContext::createDevice could not create the reserved queue resources, destroying device",
			slog.String("Device", device.String()),
			slog.Any("error", err),
		)
		driver.DestroyDevice()
		return nil, res, err
	}

	deviceContext := &DeviceContext{
		logger:         i.logger,
		instance:       i,
		physicalDevice: physicalDevice,
		device:         device,
		driver:         driver,
		table: vulkan.NewDeviceTable(func(name string) chain.ProcAddr {
			return resolver.GetDeviceProcAddr(device, name)
		}),
		extensionData: vulkan.NewExtensionData(i.apiVersion, info.EnabledExtensionNames),
		queueFamilies: swiss.NewMap[chain.Queue, int](uint32(len(info.QueueCreateInfos) + 1)),
		queue:         queue,
	}

	for _, queueInfo := range info.QueueCreateInfos {
		for queueIndex := range queueInfo.QueuePriorities {
			handle := driver.GetDeviceQueue(queueInfo.QueueFamilyIndex, queueIndex)
			if handle == chain.NullQueue || deviceContext.queueFamilies.Has(handle) {
				continue
			}
			deviceContext.queueFamilies.Put(handle, queueInfo.QueueFamilyIndex)
			deviceContext.queueList = append(deviceContext.queueList, handle)
		}
	}

	if !deviceContext.queueFamilies.Has(queue.Queue()) {
		deviceContext.queueFamilies.Put(queue.Queue(), queue.FamilyIndex())
		deviceContext.queueList = append(deviceContext.queueList, queue.Queue())
	}

	i.devices.Put(device, deviceContext)
	return deviceContext, res, nil
}

func (i *InstanceContext) forgetDevice(device chain.Device) {
	i.devices.Delete(device)
}
