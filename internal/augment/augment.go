// Package augment rewrites a device creation request so the layer gets what it needs from
// the device: the extensions it depends on, when the physical device supports them, and
// one queue from a general-purpose family that the application does not submit to.
package augment

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/scratch"
	"golang.org/x/exp/slog"
)

// Options controls how a request is augmented
type Options struct {
	// RequiredExtensions are injected when the physical device advertises them
	RequiredExtensions []string
	// SkipExtensions forwards the caller's extension list untouched
	SkipExtensions bool
	// QueuePriority is the priority of any queue the layer adds to the request
	QueuePriority float32
}

// Result is an augmented device creation request
type Result struct {
	Info        core1_0.DeviceCreateInfo
	Reservation Reservation
	// Family describes the family the reserved queue belongs to
	Family *core1_0.QueueFamilyProperties
	// Injected lists the extensions added to the caller's request
	Injected []string
}

// Device builds the augmented request for creating a device from physicalDevice. Every
// array that differs from the caller's request is allocated from arena, which must outlive
// the forwarded creation call. info itself is never written.
//
// A failed extension query skips extension injection. Having no general-purpose queue
// family fails with ErrNoGeneralQueueFamily.
func Device(logger *slog.Logger, arena *scratch.Arena, driver chain.InstanceDriver, physicalDevice chain.PhysicalDevice, info core1_0.DeviceCreateInfo, options Options) (Result, error) {
	result := Result{Info: info}

	if !options.SkipExtensions && len(options.RequiredExtensions) > 0 {
		available, _, err := driver.EnumerateDeviceExtensionProperties(physicalDevice, "")
		if err != nil {
			logger.Warn("augment::Device could not query device extensions, forwarding requested extensions only",
				slog.String("PhysicalDevice", physicalDevice.String()),
				slog.Any("error", err),
			)
		} else {
			result.Info.EnabledExtensionNames, result.Injected = InjectExtensions(arena, info.EnabledExtensionNames, options.RequiredExtensions, available)

			for _, name := range UnsupportedExtensions(options.RequiredExtensions, available) {
				logger.Warn("augment::Device required extension not supported by physical device",
					slog.String("PhysicalDevice", physicalDevice.String()),
					slog.String("Extension", name),
				)
			}
		}
	}

	families := driver.GetPhysicalDeviceQueueFamilyProperties(physicalDevice)
	familyIndex, err := SelectGeneralQueueFamily(families)
	if err != nil {
		return Result{}, errors.Wrapf(err, "physical device %s exposes %d queue families", physicalDevice, len(families))
	}
	result.Family = families[familyIndex]

	result.Info.QueueCreateInfos, result.Reservation = ReserveQueue(arena, info.QueueCreateInfos, familyIndex, result.Family.QueueCount, options.QueuePriority)
	if result.Reservation.Shared() {
		logger.Warn("augment::Device queue family exhausted, sharing the last requested queue",
			slog.Int("QueueFamilyIndex", result.Reservation.FamilyIndex),
			slog.Int("QueueIndex", result.Reservation.QueueIndex),
		)
	}

	logger.Debug("augment::Device",
		slog.String("PhysicalDevice", physicalDevice.String()),
		slog.Int("QueueFamilyIndex", result.Reservation.FamilyIndex),
		slog.Int("QueueIndex", result.Reservation.QueueIndex),
		slog.Bool("Grown", result.Reservation.Grown),
		slog.Bool("Appended", result.Reservation.Appended),
		slog.Int("InjectedExtensions", len(result.Injected)),
	)

	return result, nil
}
