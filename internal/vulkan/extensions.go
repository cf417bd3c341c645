package vulkan

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/extensions/v2/khr_image_format_list"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"golang.org/x/exp/slices"
)

// SwapchainMutableFormatExtensionName has no binding in the extensions module, so the name
// is carried here
const SwapchainMutableFormatExtensionName = "VK_KHR_swapchain_mutable_format"

// ExtensionData records which device capabilities are available to the layer's own code,
// from the device's extension list and the effective API version
type ExtensionData struct {
	Swapchain              bool
	ImageFormatList        bool
	SwapchainMutableFormat bool

	enabled *swiss.Map[string, struct{}]
	names   []string
}

func NewExtensionData(apiVersion common.APIVersion, enabledExtensions []string) *ExtensionData {
	data := &ExtensionData{
		enabled: swiss.NewMap[string, struct{}](uint32(len(enabledExtensions))),
	}

	for _, name := range enabledExtensions {
		if data.enabled.Has(name) {
			continue
		}
		data.enabled.Put(name, struct{}{})
		data.names = append(data.names, name)
	}
	slices.Sort(data.names)

	// Core 1.2 active - khr_image_format_list was promoted
	if apiVersion.IsAtLeast(common.Vulkan1_2) {
		data.ImageFormatList = true
	}

	// khr_image_format_list if core 1.2 is not active
	if !data.ImageFormatList && data.IsDeviceExtensionActive(khr_image_format_list.ExtensionName) {
		data.ImageFormatList = true
	}

	// khr_swapchain
	if data.IsDeviceExtensionActive(khr_swapchain.ExtensionName) {
		data.Swapchain = true
	}

	// khr_swapchain_mutable_format requires khr_swapchain and image format lists
	if data.Swapchain && data.ImageFormatList && data.IsDeviceExtensionActive(SwapchainMutableFormatExtensionName) {
		data.SwapchainMutableFormat = true
	}

	return data
}

func (d *ExtensionData) IsDeviceExtensionActive(name string) bool {
	return d.enabled.Has(name)
}

// EnabledExtensions returns the enabled extension names, sorted and deduplicated
func (d *ExtensionData) EnabledExtensions() []string {
	return slices.Clone(d.names)
}
