// Package shop defines the storefront domain entities: products, the order
// draft, and the order-form error set. Entities are plain data holders owned
// by the state store; views receive copies through event payloads and never
// hold them independently.
package shop

import "strconv"

// Product is a single catalog item. Products are immutable after catalog
// load; the store owns the catalog list and hands out copies.
type Product struct {
	// ID is the unique, stable product identity.
	ID string `json:"id" yaml:"id"`

	// Title is the display name.
	Title string `json:"title" yaml:"title"`

	// Description is the long-form detail text.
	Description string `json:"description" yaml:"description"`

	// Image is the image reference, relative to the CDN root until the API
	// client absolutizes it.
	Image string `json:"image" yaml:"image"`

	// Category is one of the closed category enumeration.
	Category Category `json:"category" yaml:"category"`

	// Price is the price in synapses. A nil price marks a priceless item,
	// which can be previewed but never enters the basket.
	Price *int `json:"price" yaml:"price"`
}

// Priced reports whether the product has a price and may enter the basket.
func (p Product) Priced() bool {
	return p.Price != nil
}

// PriceLabel renders the product price for display.
func (p Product) PriceLabel() string {
	return FormatPrice(p.Price)
}

// CurrencySuffix is the fixed display unit for all prices.
const CurrencySuffix = "синапсов"

// PricelessLabel is rendered for items without a price.
const PricelessLabel = "Бесценно"

// FormatPrice renders a price as "<integer> синапсов", or the priceless
// label when the price is nil. The exact suffix is part of the display
// contract and must not be localized.
func FormatPrice(price *int) string {
	if price == nil {
		return PricelessLabel
	}
	return strconv.Itoa(*price) + " " + CurrencySuffix
}

// Category is the closed product category enumeration.
type Category string

// Known categories. Unknown values fall back to the "other" display class.
const (
	CategorySoftSkill  Category = "софт-скил"
	CategoryHardSkill  Category = "хард-скил"
	CategoryButton     Category = "кнопка"
	CategoryAdditional Category = "дополнительное"
	CategoryOther      Category = "другое"
)

// categoryClasses maps categories to card display classes.
var categoryClasses = map[Category]string{
	CategorySoftSkill:  "card__category_soft",
	CategoryHardSkill:  "card__category_hard",
	CategoryButton:     "card__category_button",
	CategoryAdditional: "card__category_additional",
	CategoryOther:      "card__category_other",
}

// CSSClass returns the display class for the category, falling back to the
// "other" class for unmapped values.
func (c Category) CSSClass() string {
	if class, ok := categoryClasses[c]; ok {
		return class
	}
	return categoryClasses[CategoryOther]
}
