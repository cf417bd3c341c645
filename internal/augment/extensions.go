package augment

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/internal/scratch"
	"golang.org/x/exp/slices"
)

// InjectExtensions returns the extension list to forward: requested, followed by every
// entry in required that the physical device advertises in available and that requested
// does not already name, in required order. The names actually added are returned as
// well. When nothing is added, requested is returned as-is; otherwise the new list is
// allocated from arena.
func InjectExtensions(arena *scratch.Arena, requested []string, required []string, available map[string]*core1_0.ExtensionProperties) (extensions []string, injected []string) {
	for _, name := range required {
		if _, supported := available[name]; !supported {
			continue
		}
		if slices.Contains(requested, name) || slices.Contains(injected, name) {
			continue
		}
		injected = append(injected, name)
	}

	if len(injected) == 0 {
		return requested, nil
	}

	extensions = scratch.Clone(arena, requested, len(injected))
	copy(extensions[len(requested):], injected)
	return extensions, injected
}

// UnsupportedExtensions lists the entries of required that available does not advertise
func UnsupportedExtensions(required []string, available map[string]*core1_0.ExtensionProperties) []string {
	var missing []string
	for _, name := range required {
		if _, supported := available[name]; !supported {
			missing = append(missing, name)
		}
	}
	return missing
}
