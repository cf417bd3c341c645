package vulkan

// InstanceCommands are the instance-level entry points resolved from the next link when
// an instance context is created
var InstanceCommands = []string{
	"vkDestroyInstance",
	"vkEnumeratePhysicalDevices",
	"vkEnumerateDeviceExtensionProperties",
	"vkEnumerateDeviceLayerProperties",
	"vkGetPhysicalDeviceFeatures",
	"vkGetPhysicalDeviceFormatProperties",
	"vkGetPhysicalDeviceImageFormatProperties",
	"vkGetPhysicalDeviceProperties",
	"vkGetPhysicalDeviceQueueFamilyProperties",
	"vkGetPhysicalDeviceMemoryProperties",
	"vkGetPhysicalDeviceSparseImageFormatProperties",
	"vkCreateDevice",
	"vkGetDeviceProcAddr",

	// 1.1
	"vkEnumeratePhysicalDeviceGroups",
	"vkGetPhysicalDeviceFeatures2",
	"vkGetPhysicalDeviceProperties2",
	"vkGetPhysicalDeviceFormatProperties2",
	"vkGetPhysicalDeviceQueueFamilyProperties2",
	"vkGetPhysicalDeviceMemoryProperties2",

	// VK_KHR_surface
	"vkDestroySurfaceKHR",
	"vkGetPhysicalDeviceSurfaceSupportKHR",
	"vkGetPhysicalDeviceSurfaceCapabilitiesKHR",
	"vkGetPhysicalDeviceSurfaceFormatsKHR",
	"vkGetPhysicalDeviceSurfacePresentModesKHR",
}

// DeviceCommands are the device-level entry points resolved from the next link when a
// device context is created
var DeviceCommands = []string{
	"vkDestroyDevice",
	"vkGetDeviceQueue",
	"vkQueueSubmit",
	"vkQueueWaitIdle",
	"vkDeviceWaitIdle",

	"vkAllocateMemory",
	"vkFreeMemory",
	"vkMapMemory",
	"vkUnmapMemory",
	"vkBindBufferMemory",
	"vkBindImageMemory",
	"vkGetBufferMemoryRequirements",
	"vkGetImageMemoryRequirements",

	"vkCreateFence",
	"vkDestroyFence",
	"vkResetFences",
	"vkWaitForFences",
	"vkCreateSemaphore",
	"vkDestroySemaphore",

	"vkCreateBuffer",
	"vkDestroyBuffer",
	"vkCreateImage",
	"vkDestroyImage",
	"vkGetImageSubresourceLayout",
	"vkCreateImageView",
	"vkDestroyImageView",
	"vkCreateSampler",
	"vkDestroySampler",

	"vkCreateShaderModule",
	"vkDestroyShaderModule",
	"vkCreatePipelineLayout",
	"vkDestroyPipelineLayout",
	"vkCreateGraphicsPipelines",
	"vkDestroyPipeline",
	"vkCreateDescriptorSetLayout",
	"vkDestroyDescriptorSetLayout",
	"vkCreateDescriptorPool",
	"vkDestroyDescriptorPool",
	"vkAllocateDescriptorSets",
	"vkFreeDescriptorSets",
	"vkUpdateDescriptorSets",

	"vkCreateFramebuffer",
	"vkDestroyFramebuffer",
	"vkCreateRenderPass",
	"vkDestroyRenderPass",

	"vkCreateCommandPool",
	"vkDestroyCommandPool",
	"vkResetCommandPool",
	"vkAllocateCommandBuffers",
	"vkFreeCommandBuffers",
	"vkBeginCommandBuffer",
	"vkEndCommandBuffer",
	"vkResetCommandBuffer",
	"vkCmdBindPipeline",
	"vkCmdBindDescriptorSets",
	"vkCmdBindVertexBuffers",
	"vkCmdDraw",
	"vkCmdCopyImage",
	"vkCmdBlitImage",
	"vkCmdPipelineBarrier",
	"vkCmdBeginRenderPass",
	"vkCmdNextSubpass",
	"vkCmdEndRenderPass",

	// 1.1
	"vkBindBufferMemory2",
	"vkBindImageMemory2",
	"vkGetDeviceQueue2",

	// VK_KHR_swapchain
	"vkCreateSwapchainKHR",
	"vkDestroySwapchainKHR",
	"vkGetSwapchainImagesKHR",
	"vkAcquireNextImageKHR",
	"vkQueuePresentKHR",
}
