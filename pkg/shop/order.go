package shop

// PaymentMethod is the payment selection for the delivery step.
type PaymentMethod string

// Supported payment methods. The zero value means "not selected yet".
const (
	PaymentCash    PaymentMethod = "нал"
	PaymentNonCash PaymentMethod = "безнал"
)

// Valid reports whether the method is one of the supported values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentNonCash
}

// Order is the in-progress checkout draft. It accumulates across the
// delivery form (payment, address) and the contact form (email, phone).
// Items and Total are captured from the basket when the order is opened and
// stay frozen for the lifetime of the draft.
type Order struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`

	// Items holds the basket product IDs at order-open time.
	Items []string `json:"items"`

	// Total is the basket total at order-open time, in synapses.
	Total int `json:"total"`
}

// OrderResult is the API response to a successful order submission. Both
// fields are used verbatim by the success view.
type OrderResult struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

// Step identifies one of the two sequential checkout forms.
type Step string

// Checkout steps, in order.
const (
	StepDelivery Step = "delivery"
	StepContact  Step = "contact"
)

// Field names an order-form input. The set is closed: two fields per step.
type Field string

// Order-form fields.
const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// FormErrors maps an order field to a human-readable message. An empty map
// means the form (or step) is currently valid.
type FormErrors map[Field]string

// Empty reports whether no field is in error.
func (e FormErrors) Empty() bool {
	return len(e) == 0
}

// Clone returns an independent copy of the error set. Cloning a nil set
// yields an empty, non-nil one.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}
