package interpose

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"golang.org/x/exp/slog"
)

const layerImplementationVersion = 1

// LayerProperties describes the layer to the loader
type LayerProperties struct {
	LayerName             string
	SpecVersion           common.APIVersion
	ImplementationVersion uint32
	Description           string
}

// EnumerateInstanceLayerProperties is the layer's vkEnumerateInstanceLayerProperties. The
// layer reports only itself.
func (l *Layer) EnumerateInstanceLayerProperties() ([]LayerProperties, common.VkResult, error) {
	return []LayerProperties{
		{
			LayerName:             l.layerName,
			SpecVersion:           common.Vulkan1_2,
			ImplementationVersion: layerImplementationVersion,
			Description:           l.description,
		},
	}, core1_0.VKSuccess, nil
}

// EnumerateDeviceLayerProperties is the layer's vkEnumerateDeviceLayerProperties, which
// reports the same as EnumerateInstanceLayerProperties
func (l *Layer) EnumerateDeviceLayerProperties(physicalDevice chain.PhysicalDevice) ([]LayerProperties, common.VkResult, error) {
	return l.EnumerateInstanceLayerProperties()
}

// EnumerateInstanceExtensionProperties is the layer's vkEnumerateInstanceExtensionProperties.
// The layer exposes no instance extensions. Queries not addressed to this layer by name fail
// with VKErrorLayerNotPresent.
func (l *Layer) EnumerateInstanceExtensionProperties(layerName string) (map[string]*core1_0.ExtensionProperties, common.VkResult, error) {
	if layerName != l.layerName {
		return nil, core1_0.VKErrorLayerNotPresent, core1_0.VKErrorLayerNotPresent.ToError()
	}

	return map[string]*core1_0.ExtensionProperties{}, core1_0.VKSuccess, nil
}

// EnumerateDeviceExtensionProperties is the layer's vkEnumerateDeviceExtensionProperties.
// The layer exposes no device extensions; queries for other layers, or for the driver when
// layerName is empty, are passed to the next link through the owning instance.
func (l *Layer) EnumerateDeviceExtensionProperties(physicalDevice chain.PhysicalDevice, layerName string) (map[string]*core1_0.ExtensionProperties, common.VkResult, error) {
	if layerName == l.layerName {
		return map[string]*core1_0.ExtensionProperties{}, core1_0.VKSuccess, nil
	}

	if physicalDevice == chain.NullPhysicalDevice {
		return map[string]*core1_0.ExtensionProperties{}, core1_0.VKSuccess, nil
	}

	l.logger.Debug("Layer::EnumerateDeviceExtensionProperties",
		slog.String("PhysicalDevice", physicalDevice.String()),
		slog.String("LayerName", layerName),
	)

	l.mutex.Lock()
	defer l.mutex.Unlock()

	instanceContext, err := l.physicalDevices.Resolve(physicalDevice)
	l.must(err)

	return instanceContext.driver.EnumerateDeviceExtensionProperties(physicalDevice, layerName)
}
