package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/internal/validators"
	"github.com/usiverse/userd/models"
)

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addUser").Msg("Invalid JSON was passed")
		h.writeBadJSON(w, err)
		return
	}

	if err := validators.CreationRequiredFields(req); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AccountDirectory.Add(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountDirectory.Find(r.Context(), nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	account, err := h.services.AccountDirectory.Get(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		h.writeBadJSON(w, err)
		return
	}

	// the path names the target account, the body never overrides it
	req.Username = chi.URLParam(r, "username")

	if err := validators.UserUpdateFieldsOK(&req); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AccountDirectory.Update(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.services.AccountDirectory.Remove(r.Context(), username); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeBadJSON reports an undecodable request body. Malformed JSON never
// reaches the service layer, so it gets its own wire mapping here.
func (h *Handler) writeBadJSON(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  "error",
		Error:   "CommunicationError",
		Message: "invalid JSON body: " + err.Error(),
	}, http.StatusBadRequest)
}
