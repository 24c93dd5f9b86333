package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblarek/weblarek/pkg/logging"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	return NewBus(WithLogger(logging.NewNopLogger()))
}

func TestEmitDeliversPayload(t *testing.T) {
	bus := newTestBus(t)

	var got Event
	bus.On("basket.changed", func(evt Event) { got = evt })

	bus.Emit("basket.changed", 42)

	assert.Equal(t, Topic("basket.changed"), got.Topic)
	assert.Equal(t, 42, got.Payload)
}

func TestEmitNoMatchIsNoOp(t *testing.T) {
	bus := newTestBus(t)

	bus.On("basket.changed", func(Event) { t.Fatal("should not run") })

	assert.NotPanics(t, func() {
		bus.Emit("preview.changed", nil)
	})
}

// Registration order holds across exact and pattern subscriptions combined.
func TestEmitRegistrationOrder(t *testing.T) {
	bus := newTestBus(t)

	var order []string
	bus.On("form.delivery.address.changed", func(Event) { order = append(order, "exact-1") })
	bus.Subscribe(Pattern("form.*.*.changed"), func(Event) { order = append(order, "pattern") })
	bus.On("form.delivery.address.changed", func(Event) { order = append(order, "exact-2") })

	bus.Emit("form.delivery.address.changed", nil)

	assert.Equal(t, []string{"exact-1", "pattern", "exact-2"}, order)
}

// A handler may itself emit; the nested emission runs depth-first.
func TestEmitNestedDepthFirst(t *testing.T) {
	bus := newTestBus(t)

	var order []string
	bus.On("outer", func(Event) {
		order = append(order, "outer-start")
		bus.Emit("inner", nil)
		order = append(order, "outer-end")
	})
	bus.On("inner", func(Event) { order = append(order, "inner") })

	bus.Emit("outer", nil)

	assert.Equal(t, []string{"outer-start", "inner", "outer-end"}, order)
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := newTestBus(t)

	var seen []Topic
	bus.SubscribeAll(func(evt Event) { seen = append(seen, evt.Topic) })

	bus.Emit("basket.changed", nil)
	bus.Emit("preview.changed", nil)
	bus.Emit("unsubscribed.topic", nil)

	assert.Equal(t, []Topic{"basket.changed", "preview.changed", "unsubscribed.topic"}, seen)
}

func TestSubscribeAllRunsAfterMatching(t *testing.T) {
	bus := newTestBus(t)

	var order []string
	bus.SubscribeAll(func(Event) { order = append(order, "all") })
	bus.On("basket.changed", func(Event) { order = append(order, "matched") })

	bus.Emit("basket.changed", nil)

	assert.Equal(t, []string{"matched", "all"}, order)
}

func TestPanicIsolation(t *testing.T) {
	bus := newTestBus(t)

	var ran bool
	bus.On("basket.changed", func(Event) { panic("boom") })
	bus.On("basket.changed", func(Event) { ran = true })

	require.NotPanics(t, func() {
		bus.Emit("basket.changed", nil)
	})
	assert.True(t, ran, "handler after the panicking one must still run")
	assert.Equal(t, uint64(1), bus.Stats().HandlerPanics)
}

func TestUnsubscribe(t *testing.T) {
	bus := newTestBus(t)

	var count int
	sub := bus.On("basket.changed", func(Event) { count++ })

	bus.Emit("basket.changed", nil)
	bus.Unsubscribe(sub)
	bus.Emit("basket.changed", nil)

	assert.Equal(t, 1, count)

	// Double unsubscribe and nil are no-ops.
	bus.Unsubscribe(sub)
	bus.Unsubscribe(nil)
}

func TestClear(t *testing.T) {
	bus := newTestBus(t)

	var count int
	bus.On("basket.changed", func(Event) { count++ })
	bus.SubscribeAll(func(Event) { count++ })

	bus.Clear()
	bus.Emit("basket.changed", nil)

	assert.Zero(t, count)
}

func TestStats(t *testing.T) {
	bus := newTestBus(t)

	bus.On("a", func(Event) {})
	bus.Subscribe(Pattern("*"), func(Event) {})

	bus.Emit("a", nil)
	bus.Emit("b", nil)

	stats := bus.Stats()
	assert.Equal(t, uint64(2), stats.EventsEmitted)
	assert.Equal(t, uint64(3), stats.HandlersExecuted)
	assert.Zero(t, stats.HandlerPanics)
}

// A handler may subscribe during delivery; the new subscription takes effect
// from the next emission, not the current one.
func TestSubscribeDuringEmit(t *testing.T) {
	bus := newTestBus(t)

	var lateRuns int
	bus.On("a", func(Event) {
		bus.On("a", func(Event) { lateRuns++ })
	})

	bus.Emit("a", nil)
	assert.Zero(t, lateRuns)

	bus.Emit("a", nil)
	assert.Equal(t, 1, lateRuns)
}
