package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usiverse/userd/models"
)

func seedAccounts(t *testing.T, repo AccountRepository, accounts ...models.Account) {
	t.Helper()
	for _, account := range accounts {
		require.NoError(t, repo.Insert(context.Background(), account))
	}
}

func TestInMemory_InsertAndFindByUsername(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo, models.Account{ID: "user-aaa", Username: "ann.chovey"})

	account, err := repo.FindByUsername(context.Background(), "ann.chovey")
	require.NoError(t, err)
	assert.Equal(t, "user-aaa", account.ID)

	_, err = repo.FindByUsername(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}

func TestInMemory_Insert_DuplicateUsername(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo, models.Account{ID: "user-aaa", Username: "ann.chovey"})

	err := repo.Insert(context.Background(), models.Account{ID: "user-bbb", Username: "ann.chovey"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}

func TestInMemory_Find_SortedByID(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo,
		models.Account{ID: "user-ccc", Username: "cod.piece"},
		models.Account{ID: "user-aaa", Username: "ann.chovey"},
		models.Account{ID: "user-bbb", Username: "bob.sprocket"},
	)

	accounts, err := repo.Find(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "user-aaa", accounts[0].ID)
	assert.Equal(t, "user-bbb", accounts[1].ID)
	assert.Equal(t, "user-ccc", accounts[2].ID)
}

func TestInMemory_Find_ByFixedAndExtensionFields(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo,
		models.Account{ID: "user-aaa", Username: "ann.chovey", Email: "ann@example.com"},
		models.Account{ID: "user-bbb", Username: "bob.sprocket", Email: "bob@example.com",
			Extra: map[string]any{"teatime": "16:00"}},
	)

	byEmail, err := repo.Find(context.Background(), map[string]any{"email": "bob@example.com"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "bob.sprocket", byEmail[0].Username)

	byExtra, err := repo.Find(context.Background(), map[string]any{"teatime": "16:00"})
	require.NoError(t, err)
	require.Len(t, byExtra, 1)
	assert.Equal(t, "bob.sprocket", byExtra[0].Username)

	none, err := repo.Find(context.Background(), map[string]any{"teatime": "17:00"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInMemory_Replace(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo,
		models.Account{ID: "user-aaa", Username: "ann.chovey"},
		models.Account{ID: "user-bbb", Username: "bob.sprocket"},
	)

	err := repo.Replace(context.Background(), "user-bbb", models.Account{
		ID: "user-bbb", Username: "robert.sprocket",
	})
	require.NoError(t, err)

	account, err := repo.FindByUsername(context.Background(), "robert.sprocket")
	require.NoError(t, err)
	assert.Equal(t, "user-bbb", account.ID)

	// rename onto a taken username
	err = repo.Replace(context.Background(), "user-bbb", models.Account{
		ID: "user-bbb", Username: "ann.chovey",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsernameTaken))

	// unknown id
	err = repo.Replace(context.Background(), "user-zzz", models.Account{Username: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}

func TestInMemory_Replace_SameUsernameSameID_Allowed(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	seedAccounts(t, repo, models.Account{ID: "user-aaa", Username: "ann.chovey"})

	err := repo.Replace(context.Background(), "user-aaa", models.Account{
		ID: "user-aaa", Username: "ann.chovey", DisplayName: "Ann",
	})

	require.NoError(t, err)
}

func TestInMemory_RemoveAndCount(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	ctx := context.Background()
	seedAccounts(t, repo, models.Account{ID: "user-aaa", Username: "ann.chovey"})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Remove(ctx, "ann.chovey"))

	err = repo.Remove(ctx, "ann.chovey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccountNotFound))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInMemory_InsertMany_StopsOnDuplicate(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	err := repo.InsertMany(context.Background(), []models.Account{
		{ID: "user-aaa", Username: "ann.chovey"},
		{ID: "user-bbb", Username: "ann.chovey"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsernameTaken))
}
