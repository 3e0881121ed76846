package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// The account document is stored as fixed columns plus JSON-encoded extra
// and tokens columns; the unique index on username enforces the uniqueness
// invariant for concurrent writers.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// columns of the accounts table that exact-match criteria can be pushed
// down to. Anything else is matched in-process against the decoded record.
var criteriaColumns = map[string]struct{}{
	"id":            {},
	"username":      {},
	"password_hash": {},
	"display_name":  {},
	"email":         {},
	"phone":         {},
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountByUsername, username)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindByUsername").Msg("error: scanning error")
		return models.Account{}, err
	}

	return account, nil
}

func (r *accountRepository) Find(ctx context.Context, criteria map[string]any) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Select(
		"id", "username", "password_hash", "display_name", "email", "phone", "extra", "tokens",
	).From("accounts").OrderBy("id").PlaceholderFormat(squirrel.Dollar)

	rest := make(map[string]any)
	for key, value := range criteria {
		if _, ok := criteriaColumns[key]; ok {
			builder = builder.Where(squirrel.Eq{key: value})
		} else {
			rest[key] = value
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Find").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Find").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.Find").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if matchesCriteria(account, rest) {
			accounts = append(accounts, account)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return accounts, nil
}

func (r *accountRepository) Insert(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	extra, tokens, err := encodeAccount(account)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertAccount,
		account.ID, account.Username, account.PasswordHash,
		account.DisplayName, account.Email, account.Phone, extra, tokens)
	if err != nil {
		if r.isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("error inserting account")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *accountRepository) InsertMany(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.InsertMany").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, account := range accounts {
		extra, tokens, err := encodeAccount(account)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, insertAccount,
			account.ID, account.Username, account.PasswordHash,
			account.DisplayName, account.Email, account.Phone, extra, tokens); err != nil {
			if r.isUniqueViolation(err) {
				return ErrUsernameTaken
			}
			log.Err(err).Str("func", "*accountRepository.InsertMany").Msg("error inserting account")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.InsertMany").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *accountRepository) Replace(ctx context.Context, id string, account models.Account) error {
	log := logger.FromContext(ctx)

	extra, tokens, err := encodeAccount(account)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, replaceAccount,
		account.Username, account.PasswordHash, account.DisplayName,
		account.Email, account.Phone, extra, tokens, id)
	if err != nil {
		if r.isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		log.Err(err).Str("func", "*accountRepository.Replace").Msg("error replacing account")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Remove(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAccountByUsername, username)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Remove").Msg("error removing account")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countAccounts)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*accountRepository.Count").Msg("error counting accounts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

func (r *accountRepository) isUniqueViolation(err error) bool {
	switch r.db.Dialect() {
	case DialectPostgres:
		return isPostgresUniqueViolation(err)
	case DialectSQLite:
		return isSQLiteUniqueViolation(err)
	}
	return false
}

// encodeAccount serialises the open parts of an account for storage: extra
// always as a JSON object, tokens as NULL when the account has none.
func encodeAccount(account models.Account) (string, sql.NullString, error) {
	extra := account.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("error encoding extra fields: %w", err)
	}

	var tokens sql.NullString
	if account.Tokens != nil {
		tokensJSON, err := json.Marshal(account.Tokens)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("error encoding tokens: %w", err)
		}
		tokens = sql.NullString{String: string(tokensJSON), Valid: true}
	}

	return string(extraJSON), tokens, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	var extraJSON string
	var tokensJSON sql.NullString

	err := row.Scan(&account.ID, &account.Username, &account.PasswordHash,
		&account.DisplayName, &account.Email, &account.Phone, &extraJSON, &tokensJSON)
	if err != nil {
		return models.Account{}, err
	}

	if extraJSON != "" {
		var extra map[string]any
		if err = json.Unmarshal([]byte(extraJSON), &extra); err != nil {
			return models.Account{}, fmt.Errorf("error decoding extra fields: %w", err)
		}
		if len(extra) > 0 {
			account.Extra = extra
		}
	}

	if tokensJSON.Valid {
		var tokens map[string]models.TokenRecord
		if err = json.Unmarshal([]byte(tokensJSON.String), &tokens); err != nil {
			return models.Account{}, fmt.Errorf("error decoding tokens: %w", err)
		}
		account.Tokens = tokens
	}

	return account, nil
}

// matchesCriteria reports whether the account satisfies every criterion that
// could not be pushed down to a SQL column. Values are compared after a JSON
// round-trip so that numeric types coming from different decoders agree.
func matchesCriteria(account models.Account, criteria map[string]any) bool {
	for key, want := range criteria {
		got, ok := account.Field(key)
		if !ok {
			return false
		}
		if !reflect.DeepEqual(normalizeJSON(got), normalizeJSON(want)) {
			return false
		}
	}
	return true
}

func normalizeJSON(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err = json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
