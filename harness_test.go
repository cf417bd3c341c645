package interpose

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/chain/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func testEntrypoints() map[string]chain.ProcAddr {
	entrypoints := make(map[string]chain.ProcAddr, len(InterceptedCommands))
	for _, name := range InterceptedCommands {
		entrypoints[name] = mocks.NewFakeProcAddr()
	}
	return entrypoints
}

func readyLayer(t *testing.T, options CreateOptions) *Layer {
	if options.Entrypoints == nil {
		options.Entrypoints = testEntrypoints()
	}

	layer, err := New(testLogger(), options)
	require.NoError(t, err)
	return layer
}

// fakeResolver hands out a stable fake address per name, except for names in unsupported
type fakeResolver struct {
	addresses   map[string]chain.ProcAddr
	unsupported map[string]bool
	calls       map[string]int
}

func newFakeResolver(unsupported ...string) *fakeResolver {
	resolver := &fakeResolver{
		addresses:   map[string]chain.ProcAddr{},
		unsupported: map[string]bool{},
		calls:       map[string]int{},
	}
	for _, name := range unsupported {
		resolver.unsupported[name] = true
	}
	return resolver
}

func (r *fakeResolver) resolve(name string) chain.ProcAddr {
	r.calls[name]++
	if r.unsupported[name] {
		return chain.NullProcAddr
	}

	address, ok := r.addresses[name]
	if !ok {
		address = mocks.NewFakeProcAddr()
		r.addresses[name] = address
	}
	return address
}

type InstanceSetup struct {
	APIVersion    common.APIVersion
	Families      []*core1_0.QueueFamilyProperties
	Extensions    []string
	Unsupported   []string
	PhysicalCount int
}

type instanceRig struct {
	global          *mocks.MockGlobalDriver
	driver          *mocks.MockInstanceDriver
	resolver        *fakeResolver
	instance        chain.Instance
	physicalDevices []chain.PhysicalDevice
	link            *chain.InstanceLink
}

func defaultFamilies() []*core1_0.QueueFamilyProperties {
	return []*core1_0.QueueFamilyProperties{
		{QueueFlags: core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer | core1_0.QueueSparseBinding, QueueCount: 4},
		{QueueFlags: core1_0.QueueTransfer, QueueCount: 2},
	}
}

func extensionProperties(names []string) map[string]*core1_0.ExtensionProperties {
	properties := make(map[string]*core1_0.ExtensionProperties, len(names))
	for _, name := range names {
		properties[name] = &core1_0.ExtensionProperties{ExtensionName: name, SpecVersion: 1}
	}
	return properties
}

// readyInstance creates an instance through the layer and enumerates its physical devices
func readyInstance(t *testing.T, ctrl *gomock.Controller, layer *Layer, setup InstanceSetup) *instanceRig {
	if setup.Families == nil {
		setup.Families = defaultFamilies()
	}
	if setup.PhysicalCount == 0 {
		setup.PhysicalCount = 1
	}
	if setup.APIVersion == 0 {
		setup.APIVersion = common.Vulkan1_1
	}

	rig := &instanceRig{
		global:   mocks.NewMockGlobalDriver(ctrl),
		driver:   mocks.NewMockInstanceDriver(ctrl),
		resolver: newFakeResolver(setup.Unsupported...),
		instance: mocks.NewFakeInstance(),
	}
	for i := 0; i < setup.PhysicalCount; i++ {
		rig.physicalDevices = append(rig.physicalDevices, mocks.NewFakePhysicalDevice())
	}

	next := &chain.InstanceLink{Driver: mocks.NewMockGlobalDriver(ctrl)}
	rig.link = &chain.InstanceLink{Driver: rig.global, Next: next}

	rig.driver.EXPECT().Instance().Return(rig.instance).AnyTimes()
	rig.global.EXPECT().GetInstanceProcAddr(rig.instance, gomock.Any()).DoAndReturn(
		func(instance chain.Instance, name string) chain.ProcAddr {
			return rig.resolver.resolve(name)
		}).AnyTimes()
	rig.global.EXPECT().CreateInstance(gomock.Any(), next).Return(rig.driver, core1_0.VKSuccess, nil)
	rig.driver.EXPECT().EnumeratePhysicalDevices().Return(rig.physicalDevices, core1_0.VKSuccess, nil)

	for _, physicalDevice := range rig.physicalDevices {
		rig.driver.EXPECT().GetPhysicalDeviceQueueFamilyProperties(physicalDevice).Return(setup.Families).AnyTimes()
		rig.driver.EXPECT().EnumerateDeviceExtensionProperties(physicalDevice, "").Return(extensionProperties(setup.Extensions), core1_0.VKSuccess, nil).AnyTimes()
	}

	instance, _, err := layer.CreateInstance(core1_0.InstanceCreateInfo{APIVersion: setup.APIVersion}, rig.link)
	require.NoError(t, err)
	require.Equal(t, rig.instance, instance)

	physicalDevices, _, err := layer.EnumeratePhysicalDevices(instance)
	require.NoError(t, err)
	require.Equal(t, rig.physicalDevices, physicalDevices)

	return rig
}

type queueKey struct {
	family int
	index  int
}

type deviceRig struct {
	driver      *mocks.MockDeviceDriver
	resolver    *mocks.MockDeviceResolver
	procs       *fakeResolver
	device      chain.Device
	commandPool chain.CommandPool
	queues      map[queueKey]chain.Queue
	link        *chain.DeviceLink
	next        *chain.DeviceLink

	// forwarded is the request the next link received
	forwarded core1_0.DeviceCreateInfo
}

func newDeviceRig(ctrl *gomock.Controller) *deviceRig {
	rig := &deviceRig{
		driver:      mocks.NewMockDeviceDriver(ctrl),
		resolver:    mocks.NewMockDeviceResolver(ctrl),
		procs:       newFakeResolver(),
		device:      mocks.NewFakeDevice(),
		commandPool: mocks.NewFakeCommandPool(),
		queues:      map[queueKey]chain.Queue{},
	}
	rig.next = &chain.DeviceLink{Resolver: mocks.NewMockDeviceResolver(ctrl)}
	rig.link = &chain.DeviceLink{Resolver: rig.resolver, Next: rig.next}

	rig.driver.EXPECT().Device().Return(rig.device).AnyTimes()
	rig.driver.EXPECT().GetDeviceQueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(family int, index int) chain.Queue {
			return rig.queue(family, index)
		}).AnyTimes()
	rig.resolver.EXPECT().GetDeviceProcAddr(rig.device, gomock.Any()).DoAndReturn(
		func(device chain.Device, name string) chain.ProcAddr {
			return rig.procs.resolve(name)
		}).AnyTimes()

	return rig
}

func (r *deviceRig) queue(family int, index int) chain.Queue {
	key := queueKey{family: family, index: index}
	queue, ok := r.queues[key]
	if !ok {
		queue = mocks.NewFakeQueue()
		r.queues[key] = queue
	}
	return queue
}

// expectCreate makes the instance driver create this rig's device, recording the forwarded
// request
func (r *deviceRig) expectCreate(instance *instanceRig, physicalDevice chain.PhysicalDevice) {
	instance.driver.EXPECT().CreateDevice(physicalDevice, gomock.Any(), r.next).DoAndReturn(
		func(physicalDevice chain.PhysicalDevice, info core1_0.DeviceCreateInfo, next *chain.DeviceLink) (chain.DeviceDriver, common.VkResult, error) {
			r.forwarded = info
			return r.driver, core1_0.VKSuccess, nil
		})
}

func (r *deviceRig) expectCommandPool(family int) {
	r.driver.EXPECT().CreateCommandPool(core1_0.CommandPoolCreateInfo{QueueFamilyIndex: family}).Return(r.commandPool, core1_0.VKSuccess, nil)
}

// readyDevice creates a device through the layer on the instance's first physical device
func readyDevice(t *testing.T, ctrl *gomock.Controller, layer *Layer, instance *instanceRig, info core1_0.DeviceCreateInfo, family int) *deviceRig {
	rig := newDeviceRig(ctrl)
	rig.expectCreate(instance, instance.physicalDevices[0])
	rig.expectCommandPool(family)

	device, _, err := layer.CreateDevice(instance.physicalDevices[0], info, rig.link)
	require.NoError(t, err)
	require.Equal(t, rig.device, device)

	return rig
}

func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, ok := recovered.(error)
		require.True(t, ok, "expected the panic value to be an error, got %v", recovered)
		require.True(t, errors.Is(err, target), "unexpected panic: %v", err)
	}()

	f()
}
