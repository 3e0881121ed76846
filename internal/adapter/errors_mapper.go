package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/usiverse/userd/internal/service"
	"github.com/usiverse/userd/internal/validators"
	"github.com/usiverse/userd/models"
)

// kindErrorMap translates wire error kinds back into the typed sentinel
// errors callers match with errors.Is. The set is closed: unknown kinds
// degrade to ErrCommunication.
var kindErrorMap = map[string]error{
	"UserNameRequiredError": validators.ErrUserNameRequired,
	"UserNameTooSmallError": validators.ErrUserNameTooSmall,
	"PasswordRequiredError": validators.ErrPasswordRequired,
	"PasswordTooSmallError": validators.ErrPasswordTooSmall,
	"EmailRequiredError":    validators.ErrEmailRequired,

	"UserPresentError":  service.ErrUserPresent,
	"UserNotFoundError": service.ErrUserNotFound,
	"UserAddError":      service.ErrUserAddFailed,
	"UserRemoveError":   service.ErrUserRemoveFailed,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var wire models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &wire); err != nil || wire.Error == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = resp.Status()
		}
		return fmt.Errorf("%w: http %d: %s", ErrCommunication, resp.StatusCode(), body)
	}

	if target, ok := kindErrorMap[wire.Error]; ok {
		return fmt.Errorf("%w: %s", target, wire.Message)
	}

	return fmt.Errorf("%w: %s: %s", ErrCommunication, wire.Error, wire.Message)
}
