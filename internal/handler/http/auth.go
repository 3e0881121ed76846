package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/models"
)

// authenticate verifies the supplied plaintext password against the stored
// hash. A wrong password is a successful response carrying false; only an
// unknown username is an error.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.authenticate").Msg("Invalid JSON was passed")
		h.writeBadJSON(w, err)
		return
	}

	username := chi.URLParam(r, "username")

	ok, err := h.services.AccountDirectory.Authenticate(ctx, username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ok, http.StatusOK)
}
