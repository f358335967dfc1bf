package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrValueRange indicates a requested value doesn't fit in a byte.
	ErrValueRange = errors.New("value out of range")
	// ErrSendQueueFull indicates the bridge is not keeping up with requests.
	ErrSendQueueFull = errors.New("send queue full")
)

// PublishError is returned when a publisher fails.
type PublishError struct {
	Topic string
	Err   error
}

// Error implements error.
func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %q: %v", e.Topic, e.Err)
}
