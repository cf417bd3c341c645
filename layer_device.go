package interpose

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/augment"
	"github.com/vkngwrapper/interpose/internal/scratch"
	"golang.org/x/exp/slog"
)

// CreateDevice is the layer's vkCreateDevice. link is the chain link addressed to this
// layer. The request is augmented, forwarded to link.Next, and the new device's context is
// registered along with every queue retrieved from it. info is never modified.
//
// A physical device without a queue family supporting graphics and compute cannot host the
// layer, and CreateDevice panics with an error wrapping augment.ErrNoGeneralQueueFamily.
func (l *Layer) CreateDevice(physicalDevice chain.PhysicalDevice, info core1_0.DeviceCreateInfo, link *chain.DeviceLink) (chain.Device, common.VkResult, error) {
	l.logger.Debug("Layer::CreateDevice", slog.String("PhysicalDevice", physicalDevice.String()))

	l.mutex.Lock()
	defer l.mutex.Unlock()

	instanceContext, err := l.physicalDevices.Resolve(physicalDevice)
	l.must(err)

	if link == nil || link.Resolver == nil {
		return chain.NullDevice, core1_0.VKErrorInitializationFailed, ErrMissingLayerLink
	}

	arena := scratch.New()
	defer arena.Release()

	augmented, err := augment.Device(l.logger, arena, instanceContext.driver, physicalDevice, info, augment.Options{
		RequiredExtensions: l.requiredExtensions,
		SkipExtensions:     l.createFlags&LayerCreateSkipExtensionInjection != 0,
		QueuePriority:      l.queuePriority,
	})
	if errors.Is(err, augment.ErrNoGeneralQueueFamily) {
		l.fatal("the physical device has no general-purpose queue family, the layer cannot run on it", err)
	} else if err != nil {
		return chain.NullDevice, core1_0.VKErrorInitializationFailed, err
	}

	driver, res, err := instanceContext.driver.CreateDevice(physicalDevice, augmented.Info, link.Next)
	if err != nil {
		return chain.NullDevice, res, err
	}

	deviceContext, res, err := instanceContext.createDevice(physicalDevice, driver, link.Resolver, augmented.Info, augmented.Reservation)
	if err != nil {
		return chain.NullDevice, res, err
	}

	l.must(l.devices.Register(deviceContext.Device(), deviceContext))
	for _, queue := range deviceContext.queueList {
		l.must(l.queues.Alias(queue, deviceContext))
	}

	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "    Registered device",
		slog.String("Device", deviceContext.Device().String()),
		slog.Int("QueueCount", len(deviceContext.queueList)),
		slog.Int("ForwardedCommands", deviceContext.table.Supported()),
	)

	return deviceContext.Device(), res, nil
}

// DestroyDevice is the layer's vkDestroyDevice. The device and its queues are unregistered
// and the layer's command pool destroyed before the next link destroys the device.
func (l *Layer) DestroyDevice(device chain.Device) {
	l.logger.Debug("Layer::DestroyDevice", slog.String("Device", device.String()))

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if device == chain.NullDevice {
		return
	}

	deviceContext, err := l.devices.Resolve(device)
	l.must(err)

	l.queues.UnregisterOwnedBy(func(owner *DeviceContext) bool {
		return owner == deviceContext
	})
	l.must(l.devices.Unregister(device))
	deviceContext.instance.forgetDevice(device)

	deviceContext.destroy()
}
