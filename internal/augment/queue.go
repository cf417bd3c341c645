package augment

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/internal/scratch"
)

// ErrNoGeneralQueueFamily is returned when no queue family on the physical device supports
// both graphics and compute work
var ErrNoGeneralQueueFamily = errors.New("no queue family supports both graphics and compute")

// GeneralQueueFlags are the capabilities the layer's reserved queue must have
const GeneralQueueFlags = core1_0.QueueGraphics | core1_0.QueueCompute

// SelectGeneralQueueFamily picks the family used for the layer's reserved queue. Among the
// families exposing at least one queue with graphics and compute capability, the one with
// the fewest additional capability bits wins; the earliest family wins a tie.
func SelectGeneralQueueFamily(families []*core1_0.QueueFamilyProperties) (int, error) {
	selected := -1
	selectedExtra := 0

	for index, family := range families {
		if family == nil || family.QueueCount <= 0 {
			continue
		}
		if family.QueueFlags&GeneralQueueFlags != GeneralQueueFlags {
			continue
		}

		extra := bits.OnesCount32(uint32(family.QueueFlags &^ GeneralQueueFlags))
		if selected < 0 || extra < selectedExtra {
			selected = index
			selectedExtra = extra
		}
	}

	if selected < 0 {
		return -1, errors.WithStack(ErrNoGeneralQueueFamily)
	}
	return selected, nil
}

// Reservation identifies the queue set aside for the layer in an augmented request
type Reservation struct {
	FamilyIndex int
	QueueIndex  int

	// Grown is set when an existing queue request for the family was extended by one queue
	Grown bool
	// Appended is set when a new queue request for the family was added
	Appended bool
}

// Shared reports whether the reserved queue is also one the application requested
func (r Reservation) Shared() bool {
	return !r.Grown && !r.Appended
}

// ReserveQueue returns the queue requests to forward so that one queue in family is set
// aside for the layer. familyQueueCount is the number of queues the family exposes, and
// priority is used for any queue the layer adds. The caller's requests are never written:
// any changed array is allocated from arena.
func ReserveQueue(arena *scratch.Arena, infos []core1_0.DeviceQueueCreateInfo, family int, familyQueueCount int, priority float32) ([]core1_0.DeviceQueueCreateInfo, Reservation) {
	for index, info := range infos {
		if info.QueueFamilyIndex != family {
			continue
		}

		requested := len(info.QueuePriorities)
		if requested >= familyQueueCount {
			// The family is exhausted, so the layer shares the last queue requested from it
			return infos, Reservation{
				FamilyIndex: family,
				QueueIndex:  requested - 1,
			}
		}

		priorities := scratch.Clone(arena, info.QueuePriorities, 1)
		priorities[requested] = priority

		augmented := scratch.Clone(arena, infos, 0)
		augmented[index].QueuePriorities = priorities
		return augmented, Reservation{
			FamilyIndex: family,
			QueueIndex:  requested,
			Grown:       true,
		}
	}

	priorities := scratch.Alloc[float32](arena, 1)
	priorities[0] = priority

	augmented := scratch.Clone(arena, infos, 1)
	augmented[len(infos)] = core1_0.DeviceQueueCreateInfo{
		QueueFamilyIndex: family,
		QueuePriorities:  priorities,
	}
	return augmented, Reservation{
		FamilyIndex: family,
		QueueIndex:  0,
		Appended:    true,
	}
}
