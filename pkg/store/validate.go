package store

import "github.com/weblarek/weblarek/pkg/shop"

// Validation messages, field-specific and fixed.
const (
	msgPaymentRequired = "Выберите способ оплаты"
	msgAddressRequired = "Необходимо указать адрес доставки"
	msgEmailRequired   = "Необходимо указать email"
	msgPhoneRequired   = "Необходимо указать телефон"
)

// ValidateStep recomputes the full error set for one checkout step from the
// current draft. It is a pure function: no store state, no side effects.
//
// The delivery step blocks on a missing payment method as well as a missing
// address. The source this storefront descends from had both policies in
// circulation; here the store owns the whole delivery error set so that
// views stay presentation-only.
func ValidateStep(step shop.Step, order shop.Order) shop.FormErrors {
	switch step {
	case shop.StepDelivery:
		return validateDelivery(order)
	case shop.StepContact:
		return validateContact(order)
	default:
		return shop.FormErrors{}
	}
}

func validateDelivery(order shop.Order) shop.FormErrors {
	errs := shop.FormErrors{}
	if !order.Payment.Valid() {
		errs[shop.FieldPayment] = msgPaymentRequired
	}
	if order.Address == "" {
		errs[shop.FieldAddress] = msgAddressRequired
	}
	return errs
}

func validateContact(order shop.Order) shop.FormErrors {
	errs := shop.FormErrors{}
	if order.Email == "" {
		errs[shop.FieldEmail] = msgEmailRequired
	}
	if order.Phone == "" {
		errs[shop.FieldPhone] = msgPhoneRequired
	}
	return errs
}

// StepForField maps a form field to the checkout step that owns it.
func StepForField(field shop.Field) shop.Step {
	switch field {
	case shop.FieldPayment, shop.FieldAddress:
		return shop.StepDelivery
	default:
		return shop.StepContact
	}
}
