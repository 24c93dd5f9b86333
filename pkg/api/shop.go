package api

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/shop"
)

// API paths relative to the base URL.
const (
	productsPath = "/product/"
	orderPath    = "/order"
)

// Products fetches the full catalog. The response is a list envelope
// {"total": n, "items": [...]}; a missing or malformed envelope is a parse
// error. Item order is preserved: it is the display order.
func (c *Client) Products(ctx context.Context) ([]shop.Product, error) {
	body, err := c.get(ctx, productsPath)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.WrapParse("json", productsPath, errors.New("invalid payload"))
	}

	items := gjson.GetBytes(body, "items")
	if !items.IsArray() {
		return nil, errors.WrapParse("json", productsPath, errors.New("missing items list"))
	}

	products := make([]shop.Product, 0, len(items.Array()))
	for _, item := range items.Array() {
		products = append(products, c.parseProduct(item))
	}
	return products, nil
}

// CatalogOrEmpty fetches the catalog and fails open: any transport, status,
// or payload problem is logged and yields an empty catalog instead of an
// error. This is the behavior the storefront boots with: a dead shop API
// renders an empty gallery, not a crash.
func (c *Client) CatalogOrEmpty(ctx context.Context) []shop.Product {
	products, err := c.Products(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Catalog fetch failed, using empty catalog")
		return []shop.Product{}
	}
	return products
}

// SubmitOrder posts the full order draft and returns the order identifier
// and charged total from the API, used verbatim by the success view. A
// non-2xx response is a typed API error; nothing is committed client-side.
func (c *Client) SubmitOrder(ctx context.Context, order shop.Order) (shop.OrderResult, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return shop.OrderResult{}, errors.WrapResource("encode", "order", "", err)
	}

	body, err := c.post(ctx, orderPath, payload)
	if err != nil {
		return shop.OrderResult{}, err
	}

	id := gjson.GetBytes(body, "id")
	total := gjson.GetBytes(body, "total")
	if !id.Exists() {
		return shop.OrderResult{}, errors.WrapParse("json", orderPath, errors.New("missing order id"))
	}
	return shop.OrderResult{ID: id.String(), Total: int(total.Int())}, nil
}

// parseProduct decodes one catalog item, tolerating absent fields. A JSON
// null price stays nil: the product is priceless.
func (c *Client) parseProduct(item gjson.Result) shop.Product {
	p := shop.Product{
		ID:          item.Get("id").String(),
		Title:       item.Get("title").String(),
		Description: item.Get("description").String(),
		Image:       c.absolutize(item.Get("image").String()),
		Category:    shop.Category(item.Get("category").String()),
	}
	if price := item.Get("price"); price.Exists() && price.Type != gjson.Null {
		v := int(price.Int())
		p.Price = &v
	}
	return p
}

// apiMessage extracts a server-provided error message from a failure body,
// falling back to the raw body for non-JSON responses.
func apiMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return msg.String()
	}
	const limit = 200
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}
