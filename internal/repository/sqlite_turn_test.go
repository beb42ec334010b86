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

func TestTurnRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	messages := NewSQLiteMessageRepo(db)
	turns := NewSQLiteTurnRepo(db)
	ctx := context.Background()

	in := testutil.NewMessage("+27123456789", "mpa ya kgomo e botlhoko")
	require.NoError(t, messages.Create(ctx, in))

	turn := testutil.NewTurn("+27123456789")
	turn.IncomingID = in.ID
	turn.SafetyFlags = domain.SafetyFlags{MentionsDosage: false, NeedsHumanReview: true}
	require.NoError(t, turns.Create(ctx, turn))

	got, err := turns.GetByID(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, turn.Phone, got.Phone)
	assert.Equal(t, in.ID, got.IncomingID)
	assert.Equal(t, domain.LangSetswana, got.LangDetected)
	assert.Equal(t, turn.QuestionEN, got.QuestionEN)
	assert.Equal(t, turn.AnswerFinal, got.AnswerFinal)
	assert.Equal(t, "livestock_health", got.Intent)
	assert.False(t, got.SafetyFlags.MentionsDosage)
	assert.True(t, got.SafetyFlags.NeedsHumanReview)
}

func TestTurnRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	turns := NewSQLiteTurnRepo(db)

	_, err := turns.GetByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTurnRepo_ListRecent_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	turns := NewSQLiteTurnRepo(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	oldest := testutil.NewTurn("+27123456789", testutil.WithCreatedAt(base))
	middle := testutil.NewTurn("+27123456789", testutil.WithCreatedAt(base.Add(10*time.Minute)))
	newest := testutil.NewTurn("+27123456789", testutil.WithCreatedAt(base.Add(20*time.Minute)))
	for _, tr := range []*domain.Turn{oldest, middle, newest} {
		require.NoError(t, turns.Create(ctx, tr))
	}

	got, err := turns.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)
}

func TestTurnRepo_SanitizesUnknownLanguage(t *testing.T) {
	db := testutil.NewTestDB(t)
	turns := NewSQLiteTurnRepo(db)
	ctx := context.Background()

	turn := testutil.NewTurn("+27123456789", testutil.WithLang(domain.Language("xx")))
	require.NoError(t, turns.Create(ctx, turn))

	got, err := turns.GetByID(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LangOther, got.LangDetected)
}

func TestTurnRepo_ListRecent_SameSecondNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	turns := NewSQLiteTurnRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	first := testutil.NewTurn("+27123456789", testutil.WithCreatedAt(now))
	second := testutil.NewTurn("+27123456789", testutil.WithCreatedAt(now))
	require.NoError(t, turns.Create(ctx, first))
	require.NoError(t, turns.Create(ctx, second))

	got, err := turns.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}
