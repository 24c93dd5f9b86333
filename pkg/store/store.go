// Package store owns the mutable application state of the storefront: the
// product catalog, the basket, the order draft, the order-form error sets,
// and the preview selection. All mutation goes through named operations;
// each operation deterministically updates state, reruns validation where
// relevant, and emits typed change events on the bus. Views never read store
// fields outside event payloads and never mutate state directly.
//
// The store is confined to the single synchronous event-handling goroutine:
// Emit runs every handler to completion before returning, so two mutations
// can never interleave and the store carries no locks.
package store

import (
	"github.com/rs/zerolog"

	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/events"
	"github.com/weblarek/weblarek/pkg/logging"
	"github.com/weblarek/weblarek/pkg/shop"
)

// Store is the authoritative state holder. Construct one per application
// (or per test) with New and pass it by handle; there is no package-level
// instance.
type Store struct {
	bus    *events.Bus
	logger *zerolog.Logger

	catalog []shop.Product
	basket  []shop.Product
	total   int // cached basket total, kept in sync on every mutation

	order   shop.Order
	errs    map[shop.Step]shop.FormErrors
	preview string
	phase   Phase
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for rejected mutations.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates an empty store publishing on the given bus.
func New(bus *events.Bus, opts ...Option) *Store {
	s := &Store{
		bus:    bus,
		logger: logging.Default(),
		errs:   make(map[shop.Step]shop.FormErrors),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCatalog replaces the catalog wholesale. The new list is copied in full
// before subscribers run, so no subscriber ever observes a partial catalog.
// Basket entries referencing products absent from the new catalog are kept:
// stale members stay removable and keep counting toward the total until the
// user takes them out.
func (s *Store) SetCatalog(products []shop.Product) {
	next := make([]shop.Product, len(products))
	copy(next, products)
	s.catalog = next
	s.bus.Emit(TopicCatalogChanged, CatalogChanged{Catalog: s.Catalog()})
}

// Catalog returns a copy of the catalog in display order.
func (s *Store) Catalog() []shop.Product {
	out := make([]shop.Product, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ProductByID finds a product by identity, searching the catalog first and
// the basket second so stale basket members stay addressable after a catalog
// replacement.
func (s *Store) ProductByID(id string) (shop.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range s.basket {
		if p.ID == id {
			return p, true
		}
	}
	return shop.Product{}, false
}

// SetPreview marks the product as currently previewed and announces the
// change. Subscribers re-read Preview rather than the event payload.
func (s *Store) SetPreview(id string) error {
	if _, ok := s.ProductByID(id); !ok {
		return errors.NewNotFoundError("product", id)
	}
	s.preview = id
	s.bus.Emit(TopicPreviewChanged, PreviewChanged{})
	return nil
}

// ClearPreview drops the preview selection (no modal open).
func (s *Store) ClearPreview() {
	s.preview = ""
	s.bus.Emit(TopicPreviewChanged, PreviewChanged{})
}

// Preview returns the previewed product ID, or "" when no modal is open.
func (s *Store) Preview() string {
	return s.preview
}

// ToggleBasketItem adds the product to the basket if absent and removes it
// if present. Membership is identity-based: the product ID decides, not the
// struct value, so a stale reference captured before a catalog refresh still
// toggles its member out. Adding a priceless product is rejected.
func (s *Store) ToggleBasketItem(p shop.Product) error {
	for i, member := range s.basket {
		if member.ID == p.ID {
			s.basket = append(s.basket[:i], s.basket[i+1:]...)
			s.refreshBasket()
			return nil
		}
	}
	if !p.Priced() {
		return errors.ErrPriceless
	}
	s.basket = append(s.basket, p)
	s.refreshBasket()
	return nil
}

// ToggleBasketItemID toggles by product identity.
func (s *Store) ToggleBasketItemID(id string) error {
	p, ok := s.ProductByID(id)
	if !ok {
		return errors.NewNotFoundError("product", id)
	}
	return s.ToggleBasketItem(p)
}

// InBasket reports basket membership by product identity.
func (s *Store) InBasket(id string) bool {
	for _, member := range s.basket {
		if member.ID == id {
			return true
		}
	}
	return false
}

// ClearBasket empties the basket.
func (s *Store) ClearBasket() {
	s.basket = nil
	s.refreshBasket()
}

// Basket returns the current basket snapshot.
func (s *Store) Basket() BasketSnapshot {
	snap := BasketSnapshot{
		Items:    make([]string, 0, len(s.basket)),
		Products: make([]shop.Product, len(s.basket)),
		Total:    s.total,
	}
	copy(snap.Products, s.basket)
	for _, p := range s.basket {
		snap.Items = append(snap.Items, p.ID)
	}
	return snap
}

// refreshBasket recomputes the cached total and emits the basket-changed
// and counter-changed events with the same snapshot.
func (s *Store) refreshBasket() {
	total := 0
	for _, p := range s.basket {
		if p.Price != nil {
			total += *p.Price
		}
	}
	s.total = total

	snap := s.Basket()
	s.bus.Emit(TopicBasketChanged, BasketChanged{Basket: snap})
	s.bus.Emit(TopicCounterChanged, CounterChanged{Basket: snap})
}

// OpenOrder starts a checkout attempt: the current basket item IDs and total
// are captured into the draft and stay frozen there, so later basket edits
// do not change the in-flight order unless OpenOrder is called again.
func (s *Store) OpenOrder() error {
	if len(s.basket) == 0 {
		return errors.ErrEmptyBasket
	}
	snap := s.Basket()
	s.order.Items = snap.Items
	s.order.Total = snap.Total
	s.phase = PhaseDeliveryInProgress
	s.bus.Emit(TopicOrderOpened, OrderOpened{Order: s.Order()})
	return nil
}

// SetOrderField sets one order-form field, recomputes the owning step's full
// error set, and emits the step's errors-changed event. When the recomputed
// set is empty it additionally emits the step's ready event carrying the
// draft so far; a ready event is never emitted while errors remain.
func (s *Store) SetOrderField(step shop.Step, field shop.Field, value string) error {
	if StepForField(field) != step {
		return errors.NewValidationError(string(field),
			"field does not belong to step "+string(step))
	}

	switch field {
	case shop.FieldPayment:
		s.order.Payment = shop.PaymentMethod(value)
	case shop.FieldAddress:
		s.order.Address = value
	case shop.FieldEmail:
		s.order.Email = value
	case shop.FieldPhone:
		s.order.Phone = value
	}

	errs := ValidateStep(step, s.order)
	s.errs[step] = errs
	s.advancePhase(step, errs)

	s.bus.Emit(ErrorsTopic(step), FormErrorsChanged{Step: step, Errors: errs.Clone()})
	if errs.Empty() {
		s.bus.Emit(ReadyTopic(step), StepReady{Step: step, Order: s.Order()})
	}
	return nil
}

// FormErrors returns a copy of the step's current error set.
func (s *Store) FormErrors(step shop.Step) shop.FormErrors {
	return s.errs[step].Clone()
}

// Order returns a copy of the current draft.
func (s *Store) Order() shop.Order {
	order := s.order
	order.Items = make([]string, len(s.order.Items))
	copy(order.Items, s.order.Items)
	return order
}

// Phase returns the progress of the current checkout attempt.
func (s *Store) Phase() Phase {
	return s.phase
}

// ReadyToSubmit recomputes both steps' error sets from the current draft and
// reports whether the order can go to the API. The phase alone is not enough
// of a gate: it tracks the last-touched step, and a valid contact form must
// not mask a delivery form that was left broken.
func (s *Store) ReadyToSubmit() error {
	if len(s.order.Items) == 0 {
		return errors.ErrEmptyBasket
	}
	for _, step := range []shop.Step{shop.StepDelivery, shop.StepContact} {
		if errs := ValidateStep(step, s.order); !errs.Empty() {
			return errors.ErrOrderIncomplete
		}
	}
	return nil
}

// MarkSubmitted records the API's acceptance of the order: it emits the
// order-submitted event with the charged result, then resets the draft and
// empties the basket. The next draft starts from scratch.
func (s *Store) MarkSubmitted(result shop.OrderResult) {
	s.phase = PhaseSubmitted
	s.bus.Emit(TopicOrderSubmitted, OrderSubmitted{Result: result})
	s.ClearOrder()
	s.ClearBasket()
}

// ClearOrder resets the draft to empty defaults and drops both steps' error
// sets. Used after successful submission and on explicit cancellation.
func (s *Store) ClearOrder() {
	s.order = shop.Order{}
	s.errs = make(map[shop.Step]shop.FormErrors)
	s.phase = PhaseEmpty
}

// advancePhase moves the checkout state machine after a field edit.
func (s *Store) advancePhase(step shop.Step, errs shop.FormErrors) {
	switch step {
	case shop.StepDelivery:
		if errs.Empty() {
			s.phase = PhaseDeliveryValid
		} else {
			s.phase = PhaseDeliveryInProgress
		}
	case shop.StepContact:
		if errs.Empty() {
			s.phase = PhaseContactValid
		} else {
			s.phase = PhaseContactInProgress
		}
	}
}

// Bind subscribes the store's mutation handlers to the view-emitted topics:
// card selection, basket toggles, and, through one wildcard pattern, every
// per-field form input event. Rejected mutations are logged, not propagated;
// a click on a priceless product's buy button must not take the bus down.
func (s *Store) Bind() {
	s.bus.On(TopicCardSelected, func(evt events.Event) {
		sel, ok := evt.Payload.(CardSelected)
		if !ok {
			return
		}
		if err := s.SetPreview(sel.ProductID); err != nil {
			s.logger.Warn().Err(err).Str("product_id", sel.ProductID).Msg("Preview rejected")
		}
	})

	s.bus.On(TopicBasketToggle, func(evt events.Event) {
		toggle, ok := evt.Payload.(BasketToggle)
		if !ok {
			return
		}
		if err := s.ToggleBasketItemID(toggle.ProductID); err != nil {
			s.logger.Warn().Err(err).Str("product_id", toggle.ProductID).Msg("Basket toggle rejected")
		}
	})

	s.bus.Subscribe(events.Pattern(PatternFieldInput), func(evt events.Event) {
		input, ok := evt.Payload.(FieldInput)
		if !ok {
			return
		}
		if err := s.SetOrderField(input.Step, input.Field, input.Value); err != nil {
			s.logger.Warn().Err(err).
				Str("step", string(input.Step)).
				Str("field", string(input.Field)).
				Msg("Order field rejected")
		}
	})
}
