package interpose

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/chain/mocks"
	"github.com/vkngwrapper/interpose/internal/registry"
	"go.uber.org/mock/gomock"
)

func TestGetInstanceProcAddr_Intercepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entrypoints := testEntrypoints()
	layer := readyLayer(t, CreateOptions{Entrypoints: entrypoints})
	instance := readyInstance(t, ctrl, layer, InstanceSetup{})

	for _, name := range InterceptedCommands {
		require.True(t, layer.IsIntercepted(name))
		require.Equal(t, entrypoints[name], layer.GetInstanceProcAddr(chain.NullInstance, name), name)
		require.Equal(t, entrypoints[name], layer.GetInstanceProcAddr(instance.instance, name), name)
	}

	// Intercepted names are not resolved again past the table build
	require.Equal(t, 1, instance.resolver.calls["vkCreateDevice"])
	require.Zero(t, instance.resolver.calls["vkEnumerateInstanceLayerProperties"])
}

func TestGetInstanceProcAddr_NullInstance(t *testing.T) {
	layer := readyLayer(t, CreateOptions{})

	require.False(t, layer.IsIntercepted("vkGetPhysicalDeviceSurfaceFormatsKHR"))
	require.Equal(t, chain.NullProcAddr, layer.GetInstanceProcAddr(chain.NullInstance, "vkGetPhysicalDeviceSurfaceFormatsKHR"))
}

func TestGetInstanceProcAddr_Forwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layer := readyLayer(t, CreateOptions{})
	instance := readyInstance(t, ctrl, layer, InstanceSetup{
		Unsupported: []string{"vkGetPhysicalDeviceSurfaceFormatsKHR"},
	})
	name := "vkGetPhysicalDeviceQueueFamilyProperties"
	require.Equal(t, 1, instance.resolver.calls[name])

	address := layer.GetInstanceProcAddr(instance.instance, name)
	require.NotEqual(t, chain.NullProcAddr, address)
	require.Equal(t, instance.resolver.addresses[name], address)

	instanceContext, _ := layer.Instance(instance.instance)
	require.Equal(t, address, instanceContext.ProcAddr(name))

	// Table entries are resolved once, when the instance is created
	require.Equal(t, 1, instance.resolver.calls[name])

	// Intercepted names still have the next link's address in the table
	require.Equal(t, instance.resolver.addresses["vkEnumeratePhysicalDevices"], instanceContext.ProcAddr("vkEnumeratePhysicalDevices"))
	require.NotEqual(t, instanceContext.ProcAddr("vkEnumeratePhysicalDevices"), layer.GetInstanceProcAddr(instance.instance, "vkEnumeratePhysicalDevices"))

	require.Equal(t, chain.NullProcAddr, layer.GetInstanceProcAddr(instance.instance, "vkGetPhysicalDeviceSurfaceFormatsKHR"))
	require.Equal(t, 1, instance.resolver.calls["vkGetPhysicalDeviceSurfaceFormatsKHR"])
}

func TestGetInstanceProcAddr_MissFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layer := readyLayer(t, CreateOptions{})
	instance := readyInstance(t, ctrl, layer, InstanceSetup{})

	first := layer.GetInstanceProcAddr(instance.instance, "vkSomeVendorCommandNVX")
	second := layer.GetInstanceProcAddr(instance.instance, "vkSomeVendorCommandNVX")
	require.NotEqual(t, chain.NullProcAddr, first)
	require.Equal(t, first, second)
	require.Equal(t, 2, instance.resolver.calls["vkSomeVendorCommandNVX"])
}

func TestGetInstanceProcAddr_Unknown(t *testing.T) {
	layer := readyLayer(t, CreateOptions{})

	requirePanicsWith(t, registry.ErrNotRegistered, func() {
		layer.GetInstanceProcAddr(mocks.NewFakeInstance(), "vkGetPhysicalDeviceSurfaceFormatsKHR")
	})
}

func TestGetDeviceProcAddr_Intercepted(t *testing.T) {
	entrypoints := testEntrypoints()
	layer := readyLayer(t, CreateOptions{Entrypoints: entrypoints})

	require.Equal(t, entrypoints["vkDestroyDevice"], layer.GetDeviceProcAddr(chain.NullDevice, "vkDestroyDevice"))
	require.Equal(t, entrypoints["vkGetDeviceProcAddr"], layer.GetDeviceProcAddr(chain.NullDevice, "vkGetDeviceProcAddr"))
	require.Equal(t, chain.NullProcAddr, layer.GetDeviceProcAddr(chain.NullDevice, "vkQueuePresentKHR"))
}

func TestGetDeviceProcAddr_Forwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layer := readyLayer(t, CreateOptions{})
	instance := readyInstance(t, ctrl, layer, InstanceSetup{})

	rig := newDeviceRig(ctrl)
	rig.procs = newFakeResolver("vkCmdPipelineBarrier")
	rig.expectCreate(instance, instance.physicalDevices[0])
	rig.expectCommandPool(0)

	_, _, err := layer.CreateDevice(instance.physicalDevices[0], core1_0.DeviceCreateInfo{}, rig.link)
	require.NoError(t, err)

	require.Equal(t, rig.procs.addresses["vkQueuePresentKHR"], layer.GetDeviceProcAddr(rig.device, "vkQueuePresentKHR"))
	require.NotEqual(t, chain.NullProcAddr, layer.GetDeviceProcAddr(rig.device, "vkQueuePresentKHR"))
	require.Equal(t, 1, rig.procs.calls["vkQueuePresentKHR"])

	require.Equal(t, chain.NullProcAddr, layer.GetDeviceProcAddr(rig.device, "vkCmdPipelineBarrier"))

	layer.GetDeviceProcAddr(rig.device, "vkCmdVendorThingAMDX")
	layer.GetDeviceProcAddr(rig.device, "vkCmdVendorThingAMDX")
	require.Equal(t, 2, rig.procs.calls["vkCmdVendorThingAMDX"])

	deviceContext, _ := layer.Device(rig.device)
	require.Equal(t, rig.procs.addresses["vkQueuePresentKHR"], deviceContext.ProcAddr("vkQueuePresentKHR"))
}

func TestGetDeviceProcAddr_Unknown(t *testing.T) {
	layer := readyLayer(t, CreateOptions{})

	requirePanicsWith(t, registry.ErrNotRegistered, func() {
		layer.GetDeviceProcAddr(mocks.NewFakeDevice(), "vkQueuePresentKHR")
	})
}
