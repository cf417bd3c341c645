package interpose

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/extensions/v2/khr_image_format_list"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/vulkan"
)

// CreateFlags indicate specific layer behaviors to activate or deactivate
type CreateFlags int32

var layerCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	layerCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return layerCreateFlagsMapping.FlagsToString(f)
}

const (
	// LayerCreateExternallySynchronized ensures that the layer will not synchronize its entry
	// points internally. The host must guarantee that intercepted calls are made from only
	// one thread at a time, or are synchronized by some other mechanism.
	LayerCreateExternallySynchronized CreateFlags = 1 << iota
	// LayerCreateSkipExtensionInjection forwards the application's device extension list
	// without adding the layer's required extensions
	LayerCreateSkipExtensionInjection
	// LayerCreateKeepAPIVersion forwards the application's requested API version unchanged
	// instead of raising it to CreateOptions.MinimumAPIVersion
	LayerCreateKeepAPIVersion
)

func init() {
	LayerCreateExternallySynchronized.Register("LayerCreateExternallySynchronized")
	LayerCreateSkipExtensionInjection.Register("LayerCreateSkipExtensionInjection")
	LayerCreateKeepAPIVersion.Register("LayerCreateKeepAPIVersion")
}

const (
	// DefaultLayerName is the layer name reported when none is provided via CreateOptions
	DefaultLayerName = "VK_LAYER_interpose"
	// DefaultDescription is the layer description reported when none is provided via
	// CreateOptions
	DefaultDescription = "Post-processing interposition layer"

	defaultQueuePriority float32 = 1.0
)

// DefaultRequiredDeviceExtensions are the device extensions injected when
// CreateOptions.RequiredDeviceExtensions is nil
var DefaultRequiredDeviceExtensions = []string{
	khr_image_format_list.ExtensionName,
	vulkan.SwapchainMutableFormatExtensionName,
}

// CreateOptions contains optional settings when creating a layer
type CreateOptions struct {
	// Flags indicates specific layer behaviors to activate or deactivate
	Flags CreateFlags

	// LayerName is the name reported from layer enumeration and matched against the layer
	// name passed to extension enumeration. DefaultLayerName is used when empty.
	LayerName string
	// Description is reported from layer enumeration. DefaultDescription is used when empty.
	Description string

	// RequiredDeviceExtensions are added to every device creation request when the physical
	// device supports them. A nil slice uses DefaultRequiredDeviceExtensions, an empty
	// non-nil slice injects nothing.
	RequiredDeviceExtensions []string

	// MinimumAPIVersion is the lowest API version forwarded on instance creation. Vulkan 1.1
	// is used when zero.
	MinimumAPIVersion common.APIVersion

	// DefaultQueuePriority is the priority of the queue the layer adds to a device creation
	// request. It must be within [0, 1]; 1 is used when zero.
	DefaultQueuePriority float32

	// Entrypoints maps each intercepted command name to the address the host exposes for it.
	// Every name in InterceptedCommands must be present, and no other.
	Entrypoints map[string]chain.ProcAddr
}
