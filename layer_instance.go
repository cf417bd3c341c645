package interpose

import (
	"context"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"golang.org/x/exp/slog"
)

// CreateInstance is the layer's vkCreateInstance. link is the chain link addressed to this
// layer. The request is forwarded to link.Next with the API version raised to the layer's
// minimum, then the new instance's context is registered.
func (l *Layer) CreateInstance(info core1_0.InstanceCreateInfo, link *chain.InstanceLink) (chain.Instance, common.VkResult, error) {
	l.logger.Debug("Layer::CreateInstance")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if link == nil || link.Driver == nil {
		return chain.NullInstance, core1_0.VKErrorInitializationFailed, ErrMissingLayerLink
	}

	forwarded := info
	if l.createFlags&LayerCreateKeepAPIVersion == 0 && !forwarded.APIVersion.IsAtLeast(l.minimumAPIVersion) {
		forwarded.APIVersion = l.minimumAPIVersion
	}

	driver, res, err := link.Driver.CreateInstance(forwarded, link.Next)
	if err != nil {
		return chain.NullInstance, res, err
	}

	apiVersion := forwarded.APIVersion
	if apiVersion == 0 {
		// An instance created without application info gets 1.0
		apiVersion = common.Vulkan1_0
	}

	instanceContext := newInstanceContext(l.logger, driver, link.Driver, apiVersion)
	l.must(l.instances.Register(instanceContext.Instance(), instanceContext))

	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "    Registered instance",
		slog.String("Instance", instanceContext.Instance().String()),
		slog.String("APIVersion", apiVersion.String()),
		slog.Int("ForwardedCommands", instanceContext.table.Supported()),
	)

	return instanceContext.Instance(), res, nil
}

// DestroyInstance is the layer's vkDestroyInstance. The instance and its physical devices
// are unregistered before the next link destroys the instance.
func (l *Layer) DestroyInstance(instance chain.Instance) {
	l.logger.Debug("Layer::DestroyInstance", slog.String("Instance", instance.String()))

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if instance == chain.NullInstance {
		return
	}

	instanceContext, err := l.instances.Resolve(instance)
	l.must(err)

	if instanceContext.DeviceCount() > 0 {
		l.logger.Error("[UNDESTROYED DEVICE] instance destroyed before its devices",
			slog.String("Instance", instance.String()),
			slog.Int("DeviceCount", instanceContext.DeviceCount()),
		)
	}

	l.physicalDevices.UnregisterOwnedBy(func(owner *InstanceContext) bool {
		return owner == instanceContext
	})
	l.must(l.instances.Unregister(instance))

	instanceContext.driver.DestroyInstance()
}

// EnumeratePhysicalDevices is the layer's vkEnumeratePhysicalDevices. Every physical device
// returned is associated with the instance, so later calls made on it can find the
// instance context.
func (l *Layer) EnumeratePhysicalDevices(instance chain.Instance) ([]chain.PhysicalDevice, common.VkResult, error) {
	l.logger.Debug("Layer::EnumeratePhysicalDevices", slog.String("Instance", instance.String()))

	l.mutex.Lock()
	defer l.mutex.Unlock()

	instanceContext, err := l.instances.Resolve(instance)
	l.must(err)

	physicalDevices, res, err := instanceContext.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, res, err
	}

	for _, physicalDevice := range physicalDevices {
		l.must(l.physicalDevices.Alias(physicalDevice, instanceContext))
		instanceContext.notePhysicalDevice(physicalDevice)
	}

	return physicalDevices, res, nil
}
