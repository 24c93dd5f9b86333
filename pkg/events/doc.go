// Package events provides the typed publish/subscribe bus that connects the
// state store to its view consumers.
//
// Events are identified by hierarchical dot-separated topics such as
// "basket.changed" or "form.delivery.address.changed". Subscriptions are made
// through a Selector, which is either an exact topic, a wildcard pattern
// ("form.*.*.changed"), or an arbitrary predicate over the topic name.
// Selector evaluation is a pure function of the emitted topic.
//
// Emission is fully synchronous: Emit runs every matching handler to
// completion, in registration order across exact and pattern subscriptions
// combined, before returning. A handler may itself emit, which nests
// depth-first. A panicking handler is recovered and logged without stopping
// delivery to the remaining handlers.
//
// Buses are constructed explicitly with NewBus and passed by handle; the
// package keeps no global bus.
package events
