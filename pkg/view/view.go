// Package view defines the data contract between the core and the rendering
// widgets. Widgets themselves (template cloning, element lookup, CSS) live
// outside this module; the core's only agreement with them is the snapshot
// shape handed out on each event and the topics they emit back:
//
//	widget        subscribes to                      emits
//	------        -------------                      -----
//	card grid     catalog.changed                    card.selected
//	card modal    preview.changed                    basket.toggle
//	basket list   basket.changed                     basket.toggle
//	counter       basket.counter.changed             —
//	order form    order.delivery.errors.changed,     form.delivery.<field>.changed
//	              order.delivery.ready
//	contact form  order.contact.errors.changed,      form.contact.<field>.changed
//	              order.contact.ready
//	success       order.submitted                    —
//
// Snapshot builders here are pure: a widget holds no state beyond its
// element tree and re-renders wholesale from the snapshot it receives.
package view

import (
	"strconv"

	"github.com/weblarek/weblarek/pkg/shop"
	"github.com/weblarek/weblarek/pkg/store"
)

// Card button labels, reflecting basket membership and purchasability.
const (
	ButtonAdd         = "В корзину"
	ButtonRemove      = "Убрать из корзины"
	ButtonUnavailable = "Недоступно"
)

// CardData is the display snapshot for a catalog card or the preview modal.
type CardData struct {
	Title         string
	Description   string
	Image         string
	CategoryLabel string
	CategoryClass string
	PriceLabel    string
	ButtonLabel   string
}

// BuildCard renders a product into its card snapshot.
func BuildCard(p shop.Product, inBasket bool) CardData {
	return CardData{
		Title:         p.Title,
		Description:   p.Description,
		Image:         p.Image,
		CategoryLabel: string(p.Category),
		CategoryClass: p.Category.CSSClass(),
		PriceLabel:    p.PriceLabel(),
		ButtonLabel:   buttonLabel(p, inBasket),
	}
}

func buttonLabel(p shop.Product, inBasket bool) string {
	switch {
	case inBasket:
		return ButtonRemove
	case !p.Priced():
		return ButtonUnavailable
	default:
		return ButtonAdd
	}
}

// BasketLineData is the display snapshot for one basket line.
type BasketLineData struct {
	// Index is the 1-based position in insertion order.
	Index      int
	ProductID  string
	Title      string
	PriceLabel string
}

// BuildBasketLines renders a basket snapshot into its line list.
func BuildBasketLines(snap store.BasketSnapshot) []BasketLineData {
	lines := make([]BasketLineData, len(snap.Products))
	for i, p := range snap.Products {
		lines[i] = BasketLineData{
			Index:      i + 1,
			ProductID:  p.ID,
			Title:      p.Title,
			PriceLabel: p.PriceLabel(),
		}
	}
	return lines
}

// SuccessData is the display snapshot for the order-success dialog. The
// description uses the charged total from the API response verbatim.
type SuccessData struct {
	Description string
}

// BuildSuccess renders an order result into the success snapshot.
func BuildSuccess(result shop.OrderResult) SuccessData {
	return SuccessData{
		Description: "Списано " + strconv.Itoa(result.Total) + " " + shop.CurrencySuffix,
	}
}
