package interpose

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/interpose/chain"
	"golang.org/x/exp/slices"
)

// BuildStatsString returns a JSON snapshot of every registered instance and device, with
// each device's enabled extensions, queues, and reserved queue state
func (l *Layer) BuildStatsString() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	writer := jwriter.NewWriter()
	root := writer.Object()

	root.Name("LayerName").String(l.layerName)
	root.Name("Flags").String(l.createFlags.String())
	root.Name("InstanceCount").Int(l.instances.Len())
	root.Name("DeviceCount").Int(l.devices.Len())

	var instances []chain.Instance
	l.instances.Each(func(instance chain.Instance, _ *InstanceContext) bool {
		instances = append(instances, instance)
		return true
	})
	slices.Sort(instances)

	instanceArray := root.Name("Instances").Array()
	for _, instance := range instances {
		instanceContext, _ := l.instances.Lookup(instance)

		obj := instanceArray.Object()
		instanceContext.printParameters(&obj)
		obj.End()
	}
	instanceArray.End()

	root.End()
	return string(writer.Bytes())
}

func (i *InstanceContext) printParameters(json *jwriter.ObjectState) {
	json.Name("Instance").String(i.instance.String())
	json.Name("APIVersion").String(i.apiVersion.String())
	json.Name("ForwardedCommands").Int(i.table.Supported())

	physicalDevices := json.Name("PhysicalDevices").Array()
	for _, physicalDevice := range i.physicalDevices {
		physicalDevices.String(physicalDevice.String())
	}
	physicalDevices.End()

	var handles []chain.Device
	i.devices.Iter(func(device chain.Device, _ *DeviceContext) bool {
		handles = append(handles, device)
		return false
	})
	slices.Sort(handles)

	devices := json.Name("Devices").Array()
	for _, handle := range handles {
		deviceContext, _ := i.devices.Get(handle)

		obj := devices.Object()
		deviceContext.printParameters(&obj)
		obj.End()
	}
	devices.End()
}

func (d *DeviceContext) printParameters(json *jwriter.ObjectState) {
	json.Name("Device").String(d.device.String())
	json.Name("PhysicalDevice").String(d.physicalDevice.String())
	json.Name("ForwardedCommands").Int(d.table.Supported())

	extensions := json.Name("EnabledExtensions").Array()
	for _, name := range d.extensionData.EnabledExtensions() {
		extensions.String(name)
	}
	extensions.End()

	queues := json.Name("Queues").Array()
	for _, queue := range d.queueList {
		family, _ := d.queueFamilies.Get(queue)

		obj := queues.Object()
		obj.Name("Queue").String(queue.String())
		obj.Name("QueueFamilyIndex").Int(family)
		obj.End()
	}
	queues.End()

	reserved := json.Name("ReservedQueue").Object()
	reserved.Name("Queue").String(d.queue.Queue().String())
	reserved.Name("QueueFamilyIndex").Int(d.queue.FamilyIndex())
	reserved.Name("QueueIndex").Int(d.queue.QueueIndex())
	reserved.Name("Shared").Bool(d.queue.Shared())
	reserved.Name("OutstandingCommandBuffers").Int(d.queue.Outstanding())
	reserved.End()
}
