// Package rest exposes the account service over an HTTP JSON API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	apperrors "github.com/postitapplications/account-service/internal/platform/errors"
	"github.com/postitapplications/account-service/internal/services/account/account"
	"github.com/postitapplications/account-service/internal/services/account/storage"
)

// AccountService is the orchestration surface the HTTP adapter depends on.
type AccountService interface {
	Create(ctx context.Context, candidate *account.Account) (account.Account, error)
	GetByID(ctx context.Context, accountID string) (account.Account, error)
	GetByName(ctx context.Context, name string) (account.Account, error)
	Update(ctx context.Context, candidate *account.Account) (storage.UpdateResult, error)
	DeleteByID(ctx context.Context, accountID string) (storage.DeleteResult, error)
}

// Handler maps account operations onto HTTP routes and status codes.
type Handler struct {
	service AccountService
}

// NewHandler creates the HTTP adapter for the account service.
func NewHandler(service AccountService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches all account routes to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /account", h.handleCreate)
	mux.HandleFunc("GET /account/{id}", h.handleGetByID)
	mux.HandleFunc("GET /account/name/{name}", h.handleGetByName)
	mux.HandleFunc("PUT /account", h.handleUpdate)
	mux.HandleFunc("DELETE /account/{id}", h.handleDelete)
	mux.HandleFunc("GET /healthz", handleHealthz)
}

type accountPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func payloadToAccount(p *accountPayload) *account.Account {
	if p == nil {
		return nil
	}
	return &account.Account{ID: p.ID, Name: p.Username, Password: p.Password}
}

func accountToPayload(a account.Account) accountPayload {
	return accountPayload{ID: a.ID, Username: a.Name, Password: a.Password}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	candidate, err := decodeAccount(r.Body)
	if err != nil {
		writeErrorBody(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), candidate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, accountToPayload(created))
}

func (h *Handler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")

	found, err := h.service.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorBody(w, http.StatusNotFound,
				fmt.Sprintf("User with id: %s was not found", accountID))
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accountToPayload(found))
}

func (h *Handler) handleGetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	found, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorBody(w, http.StatusNotFound,
				fmt.Sprintf("User with username: %s was not found", name))
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accountToPayload(found))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	candidate, err := decodeAccount(r.Body)
	if err != nil {
		writeErrorBody(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), candidate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if result.MatchedCount == 0 {
		writeErrorBody(w, http.StatusNotFound,
			fmt.Sprintf("User with id: %s was not found", candidate.ID))
		return
	}
	writeJSON(w, http.StatusOK, accountToPayload(*candidate))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")

	result, err := h.service.DeleteByID(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if result.DeletedCount == 0 {
		writeErrorBody(w, http.StatusNotFound,
			fmt.Sprintf("User with id: %s was not found", accountID))
		return
	}
	writeJSON(w, http.StatusOK, accountID)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// decodeAccount parses a request body into a candidate account. An empty body
// decodes to a nil candidate so the service reports the missing-record error.
func decodeAccount(body io.Reader) (*account.Account, error) {
	var payload accountPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode account payload: %w", err)
	}
	return payloadToAccount(&payload), nil
}

func writeDomainError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := code.HTTPStatus()
	message := err.Error()
	if code == apperrors.CodeUnknown {
		// Storage and transport failures stay opaque to clients.
		log.Printf("account api: %v", err)
		message = "internal server error"
	}
	writeErrorBody(w, status, message)
}

func writeErrorBody(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: status, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("account api: encode response: %v", err)
	}
}
