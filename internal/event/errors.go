package event

import "errors"

// Bus errors.
var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrInvalidTopic is returned when subscribing with an empty topic.
	ErrInvalidTopic = errors.New("event: invalid topic")

	// ErrInvalidSubscription is returned when unsubscribing nil.
	ErrInvalidSubscription = errors.New("event: invalid subscription")

	// ErrSubscriptionNotFound is returned when unsubscribing an
	// unknown subscription.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
