package mocks

import (
	"sync/atomic"

	"github.com/vkngwrapper/interpose/chain"
)

var handleCounter uint64 = 0x1000

func nextHandle() uintptr {
	return uintptr(atomic.AddUint64(&handleCounter, 0x10))
}

// Fake handle constructors return distinct non-null handles, unique across all kinds

func NewFakeInstance() chain.Instance             { return chain.Instance(nextHandle()) }
func NewFakePhysicalDevice() chain.PhysicalDevice { return chain.PhysicalDevice(nextHandle()) }
func NewFakeDevice() chain.Device                 { return chain.Device(nextHandle()) }
func NewFakeQueue() chain.Queue                   { return chain.Queue(nextHandle()) }
func NewFakeCommandPool() chain.CommandPool       { return chain.CommandPool(nextHandle()) }
func NewFakeCommandBuffer() chain.CommandBuffer   { return chain.CommandBuffer(nextHandle()) }
func NewFakeImage() chain.Image                   { return chain.Image(nextHandle()) }
func NewFakeProcAddr() chain.ProcAddr             { return chain.ProcAddr(nextHandle()) }
