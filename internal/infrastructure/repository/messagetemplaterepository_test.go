package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/domain/notification"
	vo "github.com/tansyhq/tansy/internal/domain/notification/valueobjects"
)

func newTemplate(t *testing.T, name string) *notification.MessageTemplate {
	t.Helper()
	to, err := vo.NewVariableRecipient(vo.ContactClientPrimary)
	require.NoError(t, err)
	cc, err := vo.NewLiteralRecipient("billing@example.com")
	require.NoError(t, err)
	tmpl, err := notification.NewMessageTemplate(
		name,
		"Your hosting for {{domain}} expires in {{daysRemaining}} days",
		"Hi {{clientName}},\n\nhosting for **{{domain}}** expires on {{expiresAt}}.",
		[]vo.RecipientSpec{to},
		[]vo.RecipientSpec{cc},
	)
	require.NoError(t, err)
	return tmpl
}

func TestMessageTemplateRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageTemplateRepository(db)
	ctx := context.Background()

	t.Run("round-trips a template with its recipient specs", func(t *testing.T) {
		tmpl := newTemplate(t, "expiry-reminder")

		err := repo.Create(ctx, tmpl)
		require.NoError(t, err)
		require.NotZero(t, tmpl.ID())

		found, err := repo.GetByID(ctx, tmpl.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tmpl.Name(), found.Name())
		assert.Equal(t, tmpl.Subject(), found.Subject())
		assert.Equal(t, tmpl.Body(), found.Body())
		require.Len(t, found.ToSpecs(), 1)
		assert.Equal(t, vo.RecipientKindVariable, found.ToSpecs()[0].Kind())
		assert.Equal(t, vo.ContactClientPrimary, found.ToSpecs()[0].Value())
		require.Len(t, found.CcSpecs(), 1)
		assert.Equal(t, "billing@example.com", found.CcSpecs()[0].Value())
		assert.True(t, found.IsEnabled())
	})

	t.Run("returns nil for an unknown id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestMessageTemplateRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageTemplateRepository(db)
	ctx := context.Background()

	tmpl := newTemplate(t, "expiry-reminder")
	require.NoError(t, repo.Create(ctx, tmpl))

	edited, err := notification.ReconstructMessageTemplate(
		tmpl.ID(), tmpl.Name(),
		"Renewal notice for {{domain}}", tmpl.Body(),
		tmpl.ToSpecs(), tmpl.CcSpecs(),
		tmpl.IsEnabled(), tmpl.Version()+1,
		tmpl.CreatedAt(), tmpl.UpdatedAt(),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, edited))

	found, err := repo.GetByID(ctx, tmpl.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Renewal notice for {{domain}}", found.Subject())
	assert.Equal(t, tmpl.Version()+1, found.Version())
}

func TestMessageTemplateRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageTemplateRepository(db)
	ctx := context.Background()

	tmpl := newTemplate(t, "expiry-reminder")
	require.NoError(t, repo.Create(ctx, tmpl))

	require.NoError(t, repo.Delete(ctx, tmpl.ID()))

	found, err := repo.GetByID(ctx, tmpl.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, tmpl.ID())
	assert.Error(t, err)
}

func TestMessageTemplateRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageTemplateRepository(db)
	ctx := context.Background()

	for _, name := range []string{"reminder-30d", "reminder-7d", "reminder-1d"} {
		require.NoError(t, repo.Create(ctx, newTemplate(t, name)))
	}

	templates, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, templates, 2)
	assert.Equal(t, "reminder-30d", templates[0].Name())

	templates, total, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, templates, 1)
	assert.Equal(t, "reminder-1d", templates[0].Name())
}
