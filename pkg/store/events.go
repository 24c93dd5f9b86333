package store

import (
	"github.com/weblarek/weblarek/pkg/events"
	"github.com/weblarek/weblarek/pkg/shop"
)

// Topics emitted by the store. Every topic carries the named payload struct
// documented next to it; handlers type-assert the event payload to that
// schema and nothing else.
const (
	// TopicCatalogChanged carries CatalogChanged after a wholesale catalog
	// replacement.
	TopicCatalogChanged events.Topic = "catalog.changed"

	// TopicPreviewChanged carries PreviewChanged. The payload is
	// intentionally empty: subscribers re-read Store.Preview.
	TopicPreviewChanged events.Topic = "preview.changed"

	// TopicBasketChanged carries BasketChanged after any basket mutation.
	TopicBasketChanged events.Topic = "basket.changed"

	// TopicCounterChanged carries CounterChanged alongside every
	// TopicBasketChanged emission.
	TopicCounterChanged events.Topic = "basket.counter.changed"

	// TopicOrderOpened carries OrderOpened when a checkout attempt starts
	// and the basket is frozen into the draft.
	TopicOrderOpened events.Topic = "order.opened"

	// TopicOrderSubmitted carries OrderSubmitted after the API accepted the
	// order.
	TopicOrderSubmitted events.Topic = "order.submitted"
)

// Topics emitted by views back into the core. The store binds to these in
// Bind; view widgets only ever emit, never call store operations directly.
const (
	// TopicCardSelected carries CardSelected when a catalog card is clicked.
	TopicCardSelected events.Topic = "card.selected"

	// TopicBasketToggle carries BasketToggle when a card button or a basket
	// line delete button is clicked.
	TopicBasketToggle events.Topic = "basket.toggle"

	// PatternFieldInput matches the per-field form input topics
	// "form.<step>.<field>.changed", which carry FieldInput. One wildcard
	// subscription replaces eight per-field ones.
	PatternFieldInput events.Topic = "form.*.*.changed"
)

// FieldInputTopic builds the concrete topic a form view emits for one field.
func FieldInputTopic(step shop.Step, field shop.Field) events.Topic {
	return events.Topic("form").Child(string(step)).Child(string(field)).Child("changed")
}

// ErrorsTopic is the per-step validation-errors topic,
// "order.<step>.errors.changed", carrying FormErrorsChanged.
func ErrorsTopic(step shop.Step) events.Topic {
	return events.Topic("order").Child(string(step)).Child("errors").Child("changed")
}

// ReadyTopic is the per-step readiness topic, "order.<step>.ready", carrying
// StepReady. It fires if and only if the step's error set is empty
// immediately after the triggering field mutation.
func ReadyTopic(step shop.Step) events.Topic {
	return events.Topic("order").Child(string(step)).Child("ready")
}

// CatalogChanged is the payload of TopicCatalogChanged.
type CatalogChanged struct {
	Catalog []shop.Product
}

// PreviewChanged is the payload of TopicPreviewChanged.
type PreviewChanged struct{}

// BasketSnapshot is the read-only basket view handed to subscribers.
type BasketSnapshot struct {
	// Items holds member product IDs in insertion order.
	Items []string

	// Products holds the member products in insertion order.
	Products []shop.Product

	// Total is the sum of member prices, in synapses.
	Total int
}

// Count returns the number of basket members.
func (s BasketSnapshot) Count() int {
	return len(s.Items)
}

// BasketChanged is the payload of TopicBasketChanged.
type BasketChanged struct {
	Basket BasketSnapshot
}

// CounterChanged is the payload of TopicCounterChanged.
type CounterChanged struct {
	Basket BasketSnapshot
}

// FormErrorsChanged is the payload of ErrorsTopic(step). Errors always holds
// the step's full recomputed mapping, never a delta.
type FormErrorsChanged struct {
	Step   shop.Step
	Errors shop.FormErrors
}

// StepReady is the payload of ReadyTopic(step), carrying the draft so far.
type StepReady struct {
	Step  shop.Step
	Order shop.Order
}

// OrderOpened is the payload of TopicOrderOpened.
type OrderOpened struct {
	Order shop.Order
}

// OrderSubmitted is the payload of TopicOrderSubmitted.
type OrderSubmitted struct {
	Result shop.OrderResult
}

// CardSelected is the payload of TopicCardSelected.
type CardSelected struct {
	ProductID string
}

// BasketToggle is the payload of TopicBasketToggle.
type BasketToggle struct {
	ProductID string
}

// FieldInput is the payload of the form.<step>.<field>.changed topics.
type FieldInput struct {
	Step  shop.Step
	Field shop.Field
	Value string
}
