package handler

import (
	"net/http"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
// name 1-100, email valid and at most 255, message 10-1000 characters.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	c, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		if writeValidation(w, err) {
			return
		}
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}
