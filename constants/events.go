package constants

// Event queue sizing. Size must remain a power of two for the ring mask
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
