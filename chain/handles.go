package chain

import "fmt"

// Instance is the opaque handle of a driver instance
type Instance uintptr

// PhysicalDevice is the opaque handle of a physical device enumerated from an Instance
type PhysicalDevice uintptr

// Device is the opaque handle of a logical device
type Device uintptr

// Queue is the opaque handle of a queue retrieved from a Device
type Queue uintptr

// CommandPool is the opaque handle of a command pool created from a Device
type CommandPool uintptr

// CommandBuffer is the opaque handle of a command buffer allocated from a CommandPool
type CommandBuffer uintptr

// Image is the opaque handle of an image created from a Device
type Image uintptr

// ProcAddr is the address of an entry point, either one of the layer's own or one
// resolved from the next link in the chain. The zero value is the null address.
type ProcAddr uintptr

const (
	NullInstance       Instance       = 0
	NullPhysicalDevice PhysicalDevice = 0
	NullDevice         Device         = 0
	NullQueue          Queue          = 0
	NullCommandPool    CommandPool    = 0
	NullCommandBuffer  CommandBuffer  = 0
	NullProcAddr       ProcAddr       = 0
)

func (h Instance) String() string       { return fmt.Sprintf("VkInstance(0x%x)", uintptr(h)) }
func (h PhysicalDevice) String() string { return fmt.Sprintf("VkPhysicalDevice(0x%x)", uintptr(h)) }
func (h Device) String() string         { return fmt.Sprintf("VkDevice(0x%x)", uintptr(h)) }
func (h Queue) String() string          { return fmt.Sprintf("VkQueue(0x%x)", uintptr(h)) }
func (h CommandPool) String() string    { return fmt.Sprintf("VkCommandPool(0x%x)", uintptr(h)) }
func (h CommandBuffer) String() string  { return fmt.Sprintf("VkCommandBuffer(0x%x)", uintptr(h)) }
func (h Image) String() string          { return fmt.Sprintf("VkImage(0x%x)", uintptr(h)) }
