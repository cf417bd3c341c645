// Package interpose is the core of a layer that sits in a Vulkan-style dispatch chain
// between an application and the driver.
//
// The layer intercepts instance and device creation and destruction, keeps a private
// context for every instance and device it sees, and forwards every other entry point to
// the next link through tables resolved once per context. Device creation requests are
// augmented so the layer gets the extensions it depends on and a queue of its own, which it
// uses to record one-shot command buffers for effects.
//
// A host bridge exposes the layer's entry points over the C ABI and translates between the
// loader's structures and the chain package's interfaces.
package interpose

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/registry"
	"github.com/vkngwrapper/interpose/internal/utils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// ErrMissingLayerLink is returned from instance or device creation when the request does not
// carry the link to the next layer in the chain
var ErrMissingLayerLink = errors.New("creation request carries no layer link")

// Layer holds every context the layer knows about. All intercepted entry points and
// accessors are serialized by one lock, unless LayerCreateExternallySynchronized was used.
type Layer struct {
	logger *slog.Logger
	mutex  *utils.OptionalMutex

	createFlags        CreateFlags
	layerName          string
	description        string
	requiredExtensions []string
	minimumAPIVersion  common.APIVersion
	queuePriority      float32
	entrypoints        *swiss.Map[string, chain.ProcAddr]

	instances       *registry.Registry[chain.Instance, *InstanceContext]
	physicalDevices *registry.Registry[chain.PhysicalDevice, *InstanceContext]
	devices         *registry.Registry[chain.Device, *DeviceContext]
	queues          *registry.Registry[chain.Queue, *DeviceContext]
}

// New creates a new Layer
//
// logger - Receives the layer's diagnostics. A nil logger discards them.
//
// options - Optional parameters, except for Entrypoints which must name every intercepted
// command
func New(logger *slog.Logger, options CreateOptions) (*Layer, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	layer := &Layer{
		logger:      logger,
		mutex:       utils.NewOptionalMutex(options.Flags&LayerCreateExternallySynchronized == 0),
		createFlags: options.Flags,
		layerName:   options.LayerName,
		description: options.Description,

		minimumAPIVersion: options.MinimumAPIVersion,
		queuePriority:     options.DefaultQueuePriority,

		instances:       registry.New[chain.Instance, *InstanceContext]("instance"),
		physicalDevices: registry.New[chain.PhysicalDevice, *InstanceContext]("physical device"),
		devices:         registry.New[chain.Device, *DeviceContext]("device"),
		queues:          registry.New[chain.Queue, *DeviceContext]("queue"),
	}

	if layer.layerName == "" {
		layer.layerName = DefaultLayerName
	}
	if layer.description == "" {
		layer.description = DefaultDescription
	}
	if layer.minimumAPIVersion == 0 {
		layer.minimumAPIVersion = common.Vulkan1_1
	}

	if options.RequiredDeviceExtensions == nil {
		layer.requiredExtensions = slices.Clone(DefaultRequiredDeviceExtensions)
	} else {
		layer.requiredExtensions = slices.Clone(options.RequiredDeviceExtensions)
	}

	if layer.queuePriority == 0 {
		layer.queuePriority = defaultQueuePriority
	} else if layer.queuePriority < 0 || layer.queuePriority > 1 {
		return nil, errors.Newf("interpose.CreateOptions.DefaultQueuePriority must be within [0, 1], but %f was provided", options.DefaultQueuePriority)
	}

	entrypoints, err := buildEntrypoints(options.Entrypoints)
	if err != nil {
		return nil, err
	}
	layer.entrypoints = entrypoints

	logger.Debug("Layer::New",
		slog.String("LayerName", layer.layerName),
		slog.String("Flags", layer.createFlags.String()),
		slog.String("MinimumAPIVersion", layer.minimumAPIVersion.String()),
	)

	return layer, nil
}

func buildEntrypoints(provided map[string]chain.ProcAddr) (*swiss.Map[string, chain.ProcAddr], error) {
	entrypoints := swiss.NewMap[string, chain.ProcAddr](uint32(len(InterceptedCommands)))

	for _, name := range InterceptedCommands {
		address, ok := provided[name]
		if !ok || address == chain.NullProcAddr {
			return nil, errors.Newf("interpose.CreateOptions.Entrypoints has no address for intercepted command %s", name)
		}
		entrypoints.Put(name, address)
	}

	for name := range provided {
		if !entrypoints.Has(name) {
			return nil, errors.Newf("interpose.CreateOptions.Entrypoints names %s, which is not an intercepted command", name)
		}
	}

	return entrypoints, nil
}

// Destroy reports any instances or devices the host never destroyed. The layer keeps no
// resources of its own outside those contexts.
func (l *Layer) Destroy() error {
	l.logger.Debug("Layer::Destroy")

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.devices.Len() == 0 && l.instances.Len() == 0 {
		return nil
	}

	l.devices.Each(func(device chain.Device, deviceContext *DeviceContext) bool {
		l.logger.Error("[UNDESTROYED DEVICE] device still registered at layer destruction",
			slog.String("Device", device.String()),
		)
		return true
	})
	l.instances.Each(func(instance chain.Instance, instanceContext *InstanceContext) bool {
		l.logger.Error("[UNDESTROYED INSTANCE] instance still registered at layer destruction",
			slog.String("Instance", instance.String()),
			slog.Int("DeviceCount", instanceContext.DeviceCount()),
		)
		return true
	})

	return errors.Errorf("the layer still has %d instances and %d devices that were not destroyed", l.instances.Len(), l.devices.Len())
}

// LayerName is the name the layer reports from layer enumeration
func (l *Layer) LayerName() string {
	return l.layerName
}

// Instance returns the context registered for instance
func (l *Layer) Instance(instance chain.Instance) (*InstanceContext, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.instances.Lookup(instance)
}

// Device returns the context registered for device
func (l *Layer) Device(device chain.Device) (*DeviceContext, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.devices.Lookup(device)
}

// DeviceForQueue returns the context of the device queue was retrieved from
func (l *Layer) DeviceForQueue(queue chain.Queue) (*DeviceContext, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.queues.Lookup(queue)
}

// InstanceForPhysicalDevice returns the context of the instance physicalDevice was
// enumerated from
func (l *Layer) InstanceForPhysicalDevice(physicalDevice chain.PhysicalDevice) (*InstanceContext, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.physicalDevices.Lookup(physicalDevice)
}

// fatal reports a condition the layer cannot recover from and panics with err. Callers
// hold the lock through a deferred Unlock, so it is released while the panic unwinds.
func (l *Layer) fatal(message string, err error) {
	l.logger.Error(message, slog.Any("error", err))
	panic(err)
}

// must panics when a registry operation breaks the registry's contract
func (l *Layer) must(err error) {
	if err != nil {
		l.fatal("registry contract violated", err)
	}
}
