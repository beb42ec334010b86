package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/onneile/molemi/internal/domain"
	"github.com/onneile/molemi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMessageRepo(db)
	ctx := context.Background()

	m := testutil.NewMessage("+27123456789", "Dumela")
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "+27123456789", got.Phone)
	assert.Equal(t, domain.DirectionIn, got.Direction)
	assert.Equal(t, "Dumela", got.Text)
	assert.WithinDuration(t, m.CreatedAt, got.CreatedAt, time.Second)
}

func TestMessageRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMessageRepo(db)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageRepo_ListByPhone(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMessageRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewMessage("+27111111111", "one")))
	require.NoError(t, repo.Create(ctx, testutil.NewMessage("+27111111111", "two")))
	require.NoError(t, repo.Create(ctx, testutil.NewMessage("+27222222222", "other")))

	msgs, err := repo.ListByPhone(ctx, "+27111111111", 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.Equal(t, "+27111111111", m.Phone)
	}
}

func TestMessageRepo_ListRecent_RespectsLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMessageRepo(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewMessage("+27123456789", "msg")))
	}

	msgs, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}

func TestMessageRepo_ListByPhone_SameSecondNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMessageRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	first := testutil.NewMessage("+27111111111", "question")
	first.CreatedAt = now
	second := testutil.NewMessage("+27111111111", "answer")
	second.Direction = domain.DirectionOut
	second.CreatedAt = now

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	msgs, err := repo.ListByPhone(ctx, "+27111111111", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, second.ID, msgs[0].ID)
	assert.Equal(t, first.ID, msgs[1].ID)
}
