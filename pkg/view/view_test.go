package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weblarek/weblarek/pkg/shop"
	"github.com/weblarek/weblarek/pkg/store"
)

func intPtr(v int) *int { return &v }

func TestBuildCard(t *testing.T) {
	p := shop.Product{
		ID:          "1",
		Title:       "+1 час в сутках",
		Description: "Если планируете решать задачи в тренажёре, берите два.",
		Image:       "https://cdn/5_Dots.svg",
		Category:    shop.CategorySoftSkill,
		Price:       intPtr(750),
	}

	card := BuildCard(p, false)
	assert.Equal(t, "+1 час в сутках", card.Title)
	assert.Equal(t, "софт-скил", card.CategoryLabel)
	assert.Equal(t, "card__category_soft", card.CategoryClass)
	assert.Equal(t, "750 синапсов", card.PriceLabel)
	assert.Equal(t, ButtonAdd, card.ButtonLabel)

	// Membership flips the button.
	assert.Equal(t, ButtonRemove, BuildCard(p, true).ButtonLabel)
}

func TestBuildCardPriceless(t *testing.T) {
	p := shop.Product{ID: "3", Title: "Мамка-таймер", Category: shop.CategorySoftSkill}

	card := BuildCard(p, false)
	assert.Equal(t, "Бесценно", card.PriceLabel)
	assert.Equal(t, ButtonUnavailable, card.ButtonLabel)
}

func TestBuildBasketLines(t *testing.T) {
	snap := store.BasketSnapshot{
		Items: []string{"1", "2"},
		Products: []shop.Product{
			{ID: "1", Title: "+1 час в сутках", Price: intPtr(750)},
			{ID: "2", Title: "HEX-леденец", Price: intPtr(1450)},
		},
		Total: 2200,
	}

	lines := BuildBasketLines(snap)
	assert.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Index)
	assert.Equal(t, "+1 час в сутках", lines[0].Title)
	assert.Equal(t, "750 синапсов", lines[0].PriceLabel)
	assert.Equal(t, 2, lines[1].Index)
	assert.Equal(t, "2", lines[1].ProductID)
}

func TestBuildBasketLinesEmpty(t *testing.T) {
	assert.Empty(t, BuildBasketLines(store.BasketSnapshot{}))
}

func TestBuildSuccess(t *testing.T) {
	data := BuildSuccess(shop.OrderResult{ID: "o-1", Total: 2200})
	assert.Equal(t, "Списано 2200 синапсов", data.Description)
}
