package interpose

import "github.com/vkngwrapper/interpose/chain"

// Effect records post-processing work for a device. Apply receives a command buffer that
// is already recording; it must not release the buffer or keep it past the call.
type Effect interface {
	Apply(device *DeviceContext, buffer *ScopedCommandBuffer) error
}

// SwapchainSubstitute creates the images presented in place of an application's swapchain
// images
type SwapchainSubstitute interface {
	CreateImages(device *DeviceContext, count int) ([]chain.Image, error)
}

// EffectFunc adapts an ordinary function to the Effect interface
type EffectFunc func(device *DeviceContext, buffer *ScopedCommandBuffer) error

func (f EffectFunc) Apply(device *DeviceContext, buffer *ScopedCommandBuffer) error {
	return f(device, buffer)
}
