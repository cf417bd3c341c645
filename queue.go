package interpose

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/interpose/chain"
	"github.com/vkngwrapper/interpose/internal/augment"
	"golang.org/x/exp/slog"
)

// QueueResource is the queue the layer reserved for its own work on a device, along with
// the command pool its command buffers are allocated from. The driver still owns the queue
// handle itself; the pool belongs to the layer.
type QueueResource struct {
	logger *slog.Logger
	driver chain.DeviceDriver

	queue       chain.Queue
	familyIndex int
	queueIndex  int
	shared      bool

	commandPool chain.CommandPool
	outstanding int
}

func newQueueResource(logger *slog.Logger, driver chain.DeviceDriver, reservation augment.Reservation) (*QueueResource, common.VkResult, error) {
	queue := driver.GetDeviceQueue(reservation.FamilyIndex, reservation.QueueIndex)
	if queue == chain.NullQueue {
		return nil, core1_0.VKErrorInitializationFailed, errors.Newf("the reserved queue %d in family %d could not be retrieved", reservation.QueueIndex, reservation.FamilyIndex)
	}

	commandPool, res, err := driver.CreateCommandPool(core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: reservation.FamilyIndex,
	})
	if err != nil {
		return nil, res, err
	}

	logger.Debug("QueueResource::new",
		slog.String("Queue", queue.String()),
		slog.Int("QueueFamilyIndex", reservation.FamilyIndex),
		slog.Int("QueueIndex", reservation.QueueIndex),
	)

	return &QueueResource{
		logger:      logger,
		driver:      driver,
		queue:       queue,
		familyIndex: reservation.FamilyIndex,
		queueIndex:  reservation.QueueIndex,
		shared:      reservation.Shared(),
		commandPool: commandPool,
	}, res, nil
}

func (q *QueueResource) Queue() chain.Queue {
	return q.queue
}

func (q *QueueResource) FamilyIndex() int {
	return q.familyIndex
}

func (q *QueueResource) QueueIndex() int {
	return q.queueIndex
}

// Shared reports whether the application also requested this queue. This happens when
// the chosen family had no spare queue.
func (q *QueueResource) Shared() bool {
	return q.shared
}

func (q *QueueResource) CommandPool() chain.CommandPool {
	return q.commandPool
}

// Outstanding is the number of scoped command buffers that have not been released
func (q *QueueResource) Outstanding() int {
	return q.outstanding
}

// BeginScopedCommandBuffer allocates one primary command buffer from the pool and begins
// recording it for a single submission. The buffer must be released once recording and
// submission are done.
func (q *QueueResource) BeginScopedCommandBuffer() (*ScopedCommandBuffer, common.VkResult, error) {
	if q.commandPool == chain.NullCommandPool {
		return nil, core1_0.VKErrorUnknown, errors.AssertionFailedf("command buffer requested from a destroyed queue resource")
	}

	buffers, res, err := q.driver.AllocateCommandBuffers(q.commandPool, core1_0.CommandBufferLevelPrimary, 1)
	if err != nil {
		return nil, res, err
	}
	if len(buffers) != 1 {
		return nil, core1_0.VKErrorUnknown, errors.AssertionFailedf("allocated %d command buffers, expected 1", len(buffers))
	}
	buffer := buffers[0]

	res, err = q.driver.BeginCommandBuffer(buffer, core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
	if err != nil {
		q.driver.FreeCommandBuffers(q.commandPool, buffer)
		return nil, res, err
	}

	q.outstanding++
	return &ScopedCommandBuffer{
		queue:  q,
		buffer: buffer,
	}, res, nil
}

func (q *QueueResource) destroy() {
	if q.commandPool == chain.NullCommandPool {
		return
	}

	if q.outstanding > 0 {
		q.logger.Error("QueueResource::destroy command buffers outstanding at pool destruction",
			slog.Int("Count", q.outstanding),
		)
	}

	q.driver.DestroyCommandPool(q.commandPool)
	q.commandPool = chain.NullCommandPool
}

// ScopedCommandBuffer is a primary command buffer in the recording state, owned by the
// code that began it. It is never shared.
type ScopedCommandBuffer struct {
	queue    *QueueResource
	buffer   chain.CommandBuffer
	released bool
}

func (b *ScopedCommandBuffer) Handle() chain.CommandBuffer {
	return b.buffer
}

func (b *ScopedCommandBuffer) Queue() *QueueResource {
	return b.queue
}

func (b *ScopedCommandBuffer) Released() bool {
	return b.released
}

// Release frees the command buffer back to its pool. Later calls do nothing, so it is
// safe to defer Release straight after a successful begin.
func (b *ScopedCommandBuffer) Release() {
	if b.released {
		return
	}
	b.released = true

	if b.queue.commandPool == chain.NullCommandPool {
		// The pool was destroyed with the buffer still outstanding, which freed it
		return
	}

	b.queue.driver.FreeCommandBuffers(b.queue.commandPool, b.buffer)
	b.queue.outstanding--
}
