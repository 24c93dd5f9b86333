package events

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/weblarek/weblarek/pkg/logging"
)

// Event is a single emission delivered to handlers. Payload is the named
// schema struct for the topic; handlers type-assert to the schema they
// subscribed for.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler consumes events delivered by the bus.
type Handler func(Event)

// Subscription is the registration handle returned by Subscribe and
// SubscribeAll, used for teardown.
type Subscription struct {
	id       uint64
	selector Selector
	handler  Handler
	all      bool
}

// Selector returns the selector this subscription was registered with.
// Catch-all subscriptions return nil.
func (s *Subscription) Selector() Selector { return s.selector }

// Stats holds bus delivery counters for diagnostics.
type Stats struct {
	EventsEmitted    uint64
	HandlersExecuted uint64
	HandlerPanics    uint64
}

// Bus is a synchronous publish/subscribe event bus.
type Bus struct {
	mu   sync.Mutex
	subs []*Subscription // registration order, selectors and catch-alls combined
	next uint64

	logger *zerolog.Logger

	emitted  atomic.Uint64
	executed atomic.Uint64
	panics   atomic.Uint64
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used for handler panic reports.
func WithLogger(logger *zerolog.Logger) BusOption {
	return func(b *Bus) { b.logger = logger }
}

// NewBus creates a new, empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{logger: logging.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for every emission whose topic the selector
// matches. Handlers run synchronously in registration order.
func (b *Bus) Subscribe(sel Selector, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	sub := &Subscription{id: b.next, selector: sel, handler: h}
	b.subs = append(b.subs, sub)
	return sub
}

// On is shorthand for Subscribe with an exact topic selector.
func (b *Bus) On(t Topic, h Handler) *Subscription {
	return b.Subscribe(Exact(t), h)
}

// SubscribeAll registers a catch-all handler receiving every emission.
// Catch-all handlers are for diagnostics and logging only and must not
// mutate state; they run after the matching handlers of each emission.
func (b *Bus) SubscribeAll(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	sub := &Subscription{id: b.next, handler: h, all: true}
	b.subs = append(b.subs, sub)
	return sub
}

// Unsubscribe removes a subscription. Removing an already-removed or nil
// subscription is a no-op.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Clear removes every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
}

// Emit delivers an event to every matching handler, then to every catch-all
// handler, and returns once all of them have run. Emitting with no matching
// handlers is a no-op. A handler panic is recovered and logged; remaining
// handlers still run.
func (b *Bus) Emit(t Topic, payload any) {
	b.emitted.Add(1)

	// Snapshot under lock so handlers may subscribe or emit reentrantly.
	b.mu.Lock()
	var matched, catchAll []*Subscription
	for _, sub := range b.subs {
		switch {
		case sub.all:
			catchAll = append(catchAll, sub)
		case sub.selector.Matches(t):
			matched = append(matched, sub)
		}
	}
	b.mu.Unlock()

	evt := Event{Topic: t, Payload: payload}
	for _, sub := range matched {
		b.dispatch(sub, evt)
	}
	for _, sub := range catchAll {
		b.dispatch(sub, evt)
	}
}

// Stats returns a snapshot of the bus delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsEmitted:    b.emitted.Load(),
		HandlersExecuted: b.executed.Load(),
		HandlerPanics:    b.panics.Load(),
	}
}

func (b *Bus) dispatch(sub *Subscription, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			b.logger.Error().
				Str("topic", evt.Topic.String()).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	b.executed.Add(1)
	sub.handler(evt)
}
