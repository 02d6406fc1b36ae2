// Package event provides a synchronous publish/subscribe bus for the
// UI core. Handlers run on the publishing goroutine, in registration
// order; the grid model is single-threaded and relies on that ordering
// for its notification guarantees.
package event

import (
	"strings"

	"github.com/google/uuid"
)

// Topic identifies an event stream. Topics are dot-separated paths;
// a subscription pattern ending in ".*" matches any suffix.
type Topic string

// Topics published by the UI core.
const (
	// TopicResized fires when the visible cell dimensions change.
	TopicResized Topic = "ui.resized"

	// TopicInput carries abstract input events tagged with a grid id.
	TopicInput Topic = "ui.input"

	// TopicWinExternal fires when a grid is promoted to or closed as
	// an external top-level surface.
	TopicWinExternal Topic = "ui.win.external"

	// TopicConfigChanged fires when the config file is reloaded.
	TopicConfigChanged Topic = "config.changed"

	// TopicThemeChanged fires when default colors or font metrics change.
	TopicThemeChanged Topic = "theme.changed"
)

// Matches returns true if the pattern matches a concrete topic.
func (t Topic) Matches(topic Topic) bool {
	p := string(t)
	if strings.HasSuffix(p, ".*") {
		return strings.HasPrefix(string(topic), p[:len(p)-1])
	}
	return t == topic
}

// Event is a published event.
type Event struct {
	Topic   Topic
	Payload any
}

// HandlerFunc handles a published event.
type HandlerFunc func(Event)

// Subscription is a registered handler for a topic pattern.
type Subscription struct {
	id     uuid.UUID
	topic  Topic
	fn     HandlerFunc
	active bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Topic returns the subscribed topic pattern.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Stats holds bus counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	ActiveSubscribers int
}

// Bus delivers events synchronously to subscribers in registration
// order. It is not safe for concurrent use; all publishing happens on
// the single UI processing thread.
type Bus struct {
	subs  []*Subscription
	stats Stats
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for events matching the topic pattern.
func (b *Bus) Subscribe(topic Topic, fn HandlerFunc) (*Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	if topic == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:     uuid.New(),
		topic:  topic,
		fn:     fn,
		active: true,
	}
	b.subs = append(b.subs, sub)
	return sub, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}
	for i, s := range b.subs {
		if s.id == sub.id {
			s.active = false
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers the event to all matching subscribers, in the
// order they subscribed, before returning. Handlers may subscribe or
// unsubscribe during delivery: delivery iterates a snapshot of the
// subscriber list, so removals cannot skip or double-deliver, and
// subscriptions added mid-delivery first receive the next publish.
func (b *Bus) Publish(topic Topic, payload any) {
	b.stats.EventsPublished++
	ev := Event{Topic: topic, Payload: payload}

	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)

	for _, s := range subs {
		if !s.active || !s.topic.Matches(topic) {
			continue
		}
		s.fn(ev)
		b.stats.EventsDelivered++
	}
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	st := b.stats
	st.ActiveSubscribers = len(b.subs)
	return st
}
