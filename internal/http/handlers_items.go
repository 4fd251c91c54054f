package httpx

import (
	"fmt"
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// ItemHandlers provides HTTP handlers for wishlist items, including the
// reserve/purchase transitions and the scrape proxy.
type ItemHandlers struct {
	Svc      *service.ItemService
	Confirms *service.ConfirmService
}

// List handles GET /api/wishlists/{id}/items.
func (h *ItemHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	wishlistID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.Svc.List(r.Context(), sess, wishlistID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create handles POST /api/wishlists/{id}/items.
func (h *ItemHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	wishlistID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in model.ItemInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	item, err := h.Svc.Create(r.Context(), sess, wishlistID, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in model.ItemInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	item, err := h.Svc.Update(r.Context(), sess, itemID, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Confirm-gated like wishlist
// deletion: the backend call waits for an accepted prompt.
func (h *ItemHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	confirm, err := h.Confirms.Request(r.Context(), sess.ID,
		"Delete item",
		"This removes the item from the wishlist. This cannot be undone.",
		fmt.Sprintf("%s:%d", actionDeleteItem, itemID))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"confirm": confirm})
}

// Reserve handles POST /api/items/{id}/reserve. A 409 from the backend
// means someone else reserved first and passes through unchanged.
func (h *ItemHandlers) Reserve(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.Svc.Reserve(r.Context(), sess, itemID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Unreserve handles DELETE /api/items/{id}/reserve.
func (h *ItemHandlers) Unreserve(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.Svc.Unreserve(r.Context(), sess, itemID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Purchase handles POST /api/items/{id}/purchase.
func (h *ItemHandlers) Purchase(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.Svc.Purchase(r.Context(), sess, itemID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

type scrapeRequest struct {
	URL string `json:"url"`
}

// Scrape handles POST /api/scrape, forwarding the URL to the backend's
// product extractor to prefill the item form.
func (h *ItemHandlers) Scrape(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var req scrapeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.Scrape(r.Context(), sess, req.URL)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, product)
}
