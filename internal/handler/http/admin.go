package http

import (
	"encoding/json"
	"net/http"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/models"
)

// dumpUsers exports every account on the system, password hashes and access
// tokens included. Administrative backup and fixture capture only.
func (h *Handler) dumpUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountDirectory.Dump(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	utils.WriteJSON(w, accounts, http.StatusOK)
}

// loadUsers bulk-inserts records verbatim, skipping creation validation.
func (h *Handler) loadUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var accounts []models.Account
	if err := json.NewDecoder(r.Body).Decode(&accounts); err != nil {
		log.Err(err).Str("func", "*Handler.loadUsers").Msg("Invalid JSON was passed")
		h.writeBadJSON(w, err)
		return
	}

	if err := h.services.AccountDirectory.Load(ctx, accounts); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
