package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/weblarek/weblarek/pkg/shop"
)

// handleListProducts handles GET /api/product/.
// The response is the list envelope the web client expects:
// {"total": n, "items": [...]}.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total": len(s.catalog),
		"items": s.catalog,
	})
}

// handleSubmitOrder handles POST /api/order. The order is validated with the
// same rules the client-side store enforces; accepted orders get a generated
// identifier and echo the submitted total.
func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var order shop.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "malformed order payload")
		return
	}

	if msg, ok := rejectOrder(order); !ok {
		s.logger.Warn().Str("reason", msg).Msg("Order rejected")
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := shop.OrderResult{
		ID:    uuid.NewString(),
		Total: order.Total,
	}
	s.logger.Info().
		Str("order_id", result.ID).
		Int("total", result.Total).
		Int("items", len(order.Items)).
		Msg("Order accepted")
	writeJSON(w, http.StatusOK, result)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rejectOrder applies the server-side order checks. It mirrors the client
// store's validation so a well-behaved client never sees a 400 here.
func rejectOrder(order shop.Order) (string, bool) {
	switch {
	case !order.Payment.Valid():
		return "payment method required", false
	case order.Address == "":
		return "address required", false
	case order.Email == "":
		return "email required", false
	case order.Phone == "":
		return "phone required", false
	case len(order.Items) == 0:
		return "order has no items", false
	case order.Total < 0:
		return "negative total", false
	}
	return "", true
}
