package interpose

import (
	"github.com/vkngwrapper/interpose/chain"
)

// InterceptedCommands are the entry points the layer implements itself. Resolving any of
// these names returns the host's address for it from CreateOptions.Entrypoints.
var InterceptedCommands = []string{
	"vkGetInstanceProcAddr",
	"vkEnumerateInstanceLayerProperties",
	"vkEnumerateInstanceExtensionProperties",
	"vkCreateInstance",
	"vkDestroyInstance",
	"vkEnumeratePhysicalDevices",

	"vkGetDeviceProcAddr",
	"vkEnumerateDeviceLayerProperties",
	"vkEnumerateDeviceExtensionProperties",
	"vkCreateDevice",
	"vkDestroyDevice",
}

// GetInstanceProcAddr is the layer's vkGetInstanceProcAddr. Intercepted names resolve to the
// layer's own entry points for any instance, including the null instance. Other names are
// looked up in the instance's forwarding table, and resolve to null for the null instance.
func (l *Layer) GetInstanceProcAddr(instance chain.Instance, name string) chain.ProcAddr {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	address, intercepted := l.entrypoints.Get(name)
	if intercepted {
		return address
	}

	if instance == chain.NullInstance {
		return chain.NullProcAddr
	}

	instanceContext, err := l.instances.Resolve(instance)
	l.must(err)

	return instanceContext.table.Lookup(name)
}

// GetDeviceProcAddr is the layer's vkGetDeviceProcAddr. Intercepted names resolve to the
// layer's own entry points; other names are looked up in the device's forwarding table.
func (l *Layer) GetDeviceProcAddr(device chain.Device, name string) chain.ProcAddr {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	address, intercepted := l.entrypoints.Get(name)
	if intercepted {
		return address
	}

	if device == chain.NullDevice {
		return chain.NullProcAddr
	}

	deviceContext, err := l.devices.Resolve(device)
	l.must(err)

	return deviceContext.table.Lookup(name)
}

// IsIntercepted reports whether name is one of InterceptedCommands
func (l *Layer) IsIntercepted(name string) bool {
	return l.entrypoints.Has(name)
}
