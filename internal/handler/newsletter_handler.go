package handler

import (
	"errors"
	"net/http"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/repository"
	"github.com/portfolio-site/backend/internal/service"
)

// NewsletterHandler handles newsletter sign-ups.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe handles POST /api/newsletter. A new subscription answers 201;
// an existing one, whether already active or just reactivated, answers 200.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.newsletterService.Subscribe(r.Context(), req)
	switch {
	case err == nil:
	case writeValidation(w, err):
		return
	case errors.Is(err, repository.ErrConflict):
		writeError(w, http.StatusConflict, "already_exists")
		return
	default:
		writeError(w, http.StatusInternalServerError, "subscribe_failed")
		return
	}

	status := http.StatusOK
	if res.Outcome == model.SubscribeCreated {
		status = http.StatusCreated
	}
	writeJSON(w, status, res.Subscription)
}
