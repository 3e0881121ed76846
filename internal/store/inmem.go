package store

import (
	"context"
	"sort"
	"sync"

	"github.com/usiverse/userd/models"
)

// inMemoryAccountRepository is a map-backed [AccountRepository] used in
// tests and for throwaway local runs. It enforces the same username
// uniqueness contract as the SQL implementation.
type inMemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account // keyed by id
}

// NewInMemoryAccountRepository constructs an empty in-memory repository.
func NewInMemoryAccountRepository() AccountRepository {
	return &inMemoryAccountRepository{accounts: make(map[string]models.Account)}
}

func (r *inMemoryAccountRepository) FindByUsername(_ context.Context, username string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (r *inMemoryAccountRepository) Find(_ context.Context, criteria map[string]any) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]models.Account, 0)
	for _, account := range r.accounts {
		if matchesCriteria(account, criteria) {
			found = append(found, account)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	return found, nil
}

func (r *inMemoryAccountRepository) Insert(_ context.Context, account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(account)
}

func (r *inMemoryAccountRepository) InsertMany(_ context.Context, accounts []models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range accounts {
		if err := r.insert(account); err != nil {
			return err
		}
	}
	return nil
}

func (r *inMemoryAccountRepository) insert(account models.Account) error {
	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return ErrUsernameTaken
		}
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *inMemoryAccountRepository) Replace(_ context.Context, id string, account models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	for existingID, existing := range r.accounts {
		if existingID != id && existing.Username == account.Username {
			return ErrUsernameTaken
		}
	}
	r.accounts[id] = account
	return nil
}

func (r *inMemoryAccountRepository) Remove(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, account := range r.accounts {
		if account.Username == username {
			delete(r.accounts, id)
			return nil
		}
	}
	return ErrAccountNotFound
}

func (r *inMemoryAccountRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.accounts)), nil
}
