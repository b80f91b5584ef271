package handler

import (
	"net/http"

	"github.com/gcn-portal/internal/application/notification"
	"github.com/gcn-portal/internal/domain"
	"github.com/go-chi/chi/v5"
)

// EmailNotificationHandler handles email-notification endpoints.
type EmailNotificationHandler struct {
	svc notification.Service
}

func NewEmailNotificationHandler(svc notification.Service) *EmailNotificationHandler {
	return &EmailNotificationHandler{svc: svc}
}

// SendTestRequest names the address a test message goes to.
type SendTestRequest struct {
	Recipient string `json:"recipient"`
}

// RecipientsResponse lists who receives a topic.
type RecipientsResponse struct {
	Topic      string   `json:"topic"`
	Recipients []string `json:"recipients"`
}

func (h *EmailNotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	list, err := h.svc.List(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *EmailNotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var in domain.EmailNotificationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	n, err := h.svc.Create(r.Context(), id, in)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *EmailNotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	n, err := h.svc.Get(r.Context(), id, chi.URLParam(r, "uuid"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// Update replaces the editable fields of the record named in the path and
// returns the updated record.
func (h *EmailNotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var in domain.EmailNotificationInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.UUID = chi.URLParam(r, "uuid")
	if err := h.svc.Update(r.Context(), id, in); err != nil {
		httpError(w, err)
		return
	}
	n, err := h.svc.Get(r.Context(), id, in.UUID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *EmailNotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id, chi.URLParam(r, "uuid")); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EmailNotificationHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var req SendTestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.SendTest(r.Context(), id, req.Recipient); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "test message sent"})
}

func (h *EmailNotificationHandler) Recipients(w http.ResponseWriter, r *http.Request) {
	t := chi.URLParam(r, "topic")
	recipients, err := h.svc.Recipients(r.Context(), t)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RecipientsResponse{Topic: t, Recipients: recipients})
}
