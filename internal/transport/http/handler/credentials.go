package handler

import (
	"net/http"

	"github.com/gcn-portal/internal/application/credential"
	"github.com/gcn-portal/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CredentialHandler handles client-credential endpoints.
type CredentialHandler struct {
	svc credential.Service
}

func NewCredentialHandler(svc credential.Service) *CredentialHandler {
	return &CredentialHandler{svc: svc}
}

func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	creds, err := h.svc.List(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creds)
}

// Issue returns the new secret. It is not stored and cannot be read again.
func (h *CredentialHandler) Issue(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	var in domain.ClientCredentialInput
	if !decodeJSON(w, r, &in) {
		return
	}
	issued, err := h.svc.Issue(r.Context(), id, in)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, issued)
}

func (h *CredentialHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.Revoke(r.Context(), id, chi.URLParam(r, "client_id")); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CredentialHandler) Groups(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}
	groups, err := h.svc.Groups(r.Context(), id)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
