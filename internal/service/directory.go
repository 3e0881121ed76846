package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/usiverse/userd/internal/crypto"
	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/store"
	"github.com/usiverse/userd/internal/utils"
	"github.com/usiverse/userd/models"
)

// accountDirectory is the concrete implementation of [AccountDirectory].
// All state lives in the injected repository; the directory itself is
// stateless and safe for concurrent use. Username uniqueness is ultimately
// enforced by the repository's unique constraint — the Has() fast path only
// produces a friendlier error before the insert is attempted.
type accountDirectory struct {
	accounts store.AccountRepository
	hasher   crypto.PasswordHasher
	logger   *logger.Logger
}

// NewAccountDirectory constructs an [AccountDirectory] over the given
// repository and password hasher.
func NewAccountDirectory(accounts store.AccountRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AccountDirectory {
	return &accountDirectory{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

func (d *accountDirectory) Has(ctx context.Context, username string) (bool, error) {
	_, err := d.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *accountDirectory) Get(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := d.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Str("username", username).Msg("user not found")
			return models.Account{}, fmt.Errorf("%w: <%s>", ErrUserNotFound, username)
		}
		return models.Account{}, err
	}

	return account, nil
}

func (d *accountDirectory) Find(ctx context.Context, criteria map[string]any) ([]models.Account, error) {
	return d.accounts.Find(ctx, criteria)
}

// Add creates a new account. The plaintext password, when given, is hashed
// and discarded before anything touches storage; the returned record is
// re-read from the repository so the caller sees exactly what was stored.
func (d *accountDirectory) Add(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	username := req.Username
	if strings.TrimSpace(username) == "" {
		return models.Account{}, fmt.Errorf("%w: no username given", ErrUserAddFailed)
	}

	log.Debug().Str("username", username).Msg("given user to add")

	exists, err := d.Has(ctx, username)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, fmt.Errorf("%w: the username <%s> is present and cannot be added", ErrUserPresent, username)
	}

	account := req.Account
	if req.Password != nil {
		hash, err := d.hasher.Hash(*req.Password)
		if err != nil {
			return models.Account{}, err
		}
		account.PasswordHash = hash
	} else if account.PasswordHash == "" {
		return models.Account{}, fmt.Errorf("%w: no password or password_hash given when it is required", ErrUserAddFailed)
	}

	if account.ID == "" {
		account.ID = utils.NewAccountID()
	}

	if err = d.accounts.Insert(ctx, account); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.Account{}, fmt.Errorf("%w: the username <%s> is present and cannot be added", ErrUserPresent, username)
		}
		log.Err(err).Str("username", username).Msg("error inserting account")
		return models.Account{}, err
	}

	log.Debug().Str("username", username).Msg("user added")

	return d.Get(ctx, username)
}

// Update merges the supplied fields onto the stored record. The merge is
// additive: fields not mentioned are left untouched and the id never
// changes. new_password is hashed and replaces the stored hash; new_username
// renames the account when the name is free.
func (d *accountDirectory) Update(ctx context.Context, req models.UpdateAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	current, err := d.Get(ctx, req.Username)
	if err != nil {
		return models.Account{}, err
	}

	log.Debug().Str("username", req.Username).Msg("given user to update")

	if req.NewPassword != nil {
		hash, err := d.hasher.Hash(*req.NewPassword)
		if err != nil {
			return models.Account{}, err
		}
		current.PasswordHash = hash
	}

	if req.NewUsername != nil {
		taken, err := d.Has(ctx, *req.NewUsername)
		if err != nil {
			return models.Account{}, err
		}
		if taken {
			return models.Account{}, fmt.Errorf("%w: cannot rename to username <%s> as it is used", ErrUserPresent, *req.NewUsername)
		}
		current.Username = *req.NewUsername
	}

	for key, value := range req.Fields {
		if err = applyField(&current, key, value); err != nil {
			return models.Account{}, err
		}
	}

	if err = d.accounts.Replace(ctx, current.ID, current); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.Account{}, fmt.Errorf("%w: cannot rename to username <%s> as it is used", ErrUserPresent, current.Username)
		}
		log.Err(err).Str("username", req.Username).Msg("error replacing account")
		return models.Account{}, err
	}

	log.Debug().Str("username", current.Username).Msg("user updated")

	return d.Get(ctx, current.Username)
}

func (d *accountDirectory) Remove(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if err := d.accounts.Remove(ctx, username); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: the user <%s> is not present to remove", ErrUserRemoveFailed, username)
		}
		log.Err(err).Str("username", username).Msg("error removing account")
		return err
	}

	log.Debug().Str("username", username).Msg("user removed")
	return nil
}

func (d *accountDirectory) Count(ctx context.Context) (int64, error) {
	return d.accounts.Count(ctx)
}

func (d *accountDirectory) Dump(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)
	log.Warn().Msg("dumping all users of the system")

	return d.accounts.Find(ctx, nil)
}

func (d *accountDirectory) Load(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)
	log.Warn().Int("count", len(accounts)).Msg("loading users")

	if err := d.accounts.InsertMany(ctx, accounts); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return fmt.Errorf("%w: a loaded username is already present", ErrUserPresent)
		}
		return err
	}
	return nil
}

func (d *accountDirectory) Authenticate(ctx context.Context, username, password string) (bool, error) {
	account, err := d.Get(ctx, username)
	if err != nil {
		return false, err
	}

	return d.hasher.Verify(password, account.PasswordHash), nil
}

func (d *accountDirectory) SecretForAccessToken(ctx context.Context, token string) (string, bool, error) {
	log := logger.FromContext(ctx)

	accounts, err := d.accounts.Find(ctx, nil)
	if err != nil {
		return "", false, err
	}

	for _, account := range accounts {
		record, ok := account.Tokens[token]
		if !ok {
			continue
		}
		log.Debug().Str("username", account.Username).Msg("secret found for access token owner")
		return record.AccessSecret, true, nil
	}

	log.Debug().Msg("no access secret found for access token")
	return "", false, nil
}

// applyField merges one supplied field onto the account. Fixed fields land
// in their typed slots, id stays immutable, everything else is extension
// data.
func applyField(account *models.Account, key string, value any) error {
	assignString := func(dst *string) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field <%s> must be a string", key)
		}
		*dst = s
		return nil
	}

	switch key {
	case "id", "username":
		// id is immutable; the username only changes via new_username
		return nil
	case "password_hash":
		return assignString(&account.PasswordHash)
	case "display_name":
		return assignString(&account.DisplayName)
	case "email":
		return assignString(&account.Email)
	case "phone":
		return assignString(&account.Phone)
	case "tokens":
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("field <tokens>: %w", err)
		}
		var tokens map[string]models.TokenRecord
		if err = json.Unmarshal(raw, &tokens); err != nil {
			return fmt.Errorf("field <tokens>: %w", err)
		}
		account.Tokens = tokens
		return nil
	default:
		if account.Extra == nil {
			account.Extra = make(map[string]any)
		}
		account.Extra[key] = value
		return nil
	}
}
