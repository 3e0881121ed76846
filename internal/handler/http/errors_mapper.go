package http

import (
	"errors"
	"net/http"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/service"
	"github.com/usiverse/userd/internal/store"
	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/internal/validators"
	"github.com/usiverse/userd/models"
)

// wireError pairs the HTTP status with the error kind identifier clients
// dispatch on programmatically.
type wireError struct {
	status int
	kind   string
}

var errorWireMap = map[error]wireError{
	validators.ErrUserNameRequired: {http.StatusBadRequest, "UserNameRequiredError"},
	validators.ErrUserNameTooSmall: {http.StatusBadRequest, "UserNameTooSmallError"},
	validators.ErrPasswordRequired: {http.StatusBadRequest, "PasswordRequiredError"},
	validators.ErrPasswordTooSmall: {http.StatusBadRequest, "PasswordTooSmallError"},
	validators.ErrEmailRequired:    {http.StatusBadRequest, "EmailRequiredError"},

	service.ErrUserPresent:      {http.StatusConflict, "UserPresentError"},
	service.ErrUserNotFound:     {http.StatusNotFound, "UserNotFoundError"},
	service.ErrUserAddFailed:    {http.StatusBadRequest, "UserAddError"},
	service.ErrUserRemoveFailed: {http.StatusNotFound, "UserRemoveError"},

	store.ErrUsernameTaken:   {http.StatusConflict, "UserPresentError"},
	store.ErrAccountNotFound: {http.StatusNotFound, "UserNotFoundError"},

	store.ErrBuildingSQLQuery:     {http.StatusInternalServerError, "CommunicationError"},
	store.ErrExecutingQuery:       {http.StatusInternalServerError, "CommunicationError"},
	store.ErrBeginningTransaction: {http.StatusInternalServerError, "CommunicationError"},
	store.ErrCommitingTransaction: {http.StatusInternalServerError, "CommunicationError"},
	store.ErrScanningRow:          {http.StatusInternalServerError, "CommunicationError"},
}

func wireErrorFrom(err error) wireError {
	for target, wire := range errorWireMap {
		if errors.Is(err, target) {
			return wire
		}
	}
	return wireError{http.StatusInternalServerError, "CommunicationError"}
}

// writeError is the single place domain errors become wire-format error
// bodies.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	wire := wireErrorFrom(err)
	if wire.status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", wire.kind).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", wire.kind).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Status:  "error",
		Error:   wire.kind,
		Message: err.Error(),
	}, wire.status)
}
