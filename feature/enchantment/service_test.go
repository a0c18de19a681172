package enchantment

import (
	"context"
	"testing"

	"enchantment-tracker/core/document"
	"enchantment-tracker/feature/enchantment/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*Service, document.Store) {
	t.Helper()
	docs := document.NewFileStore(t.TempDir())
	require.NoError(t, docs.Write(context.Background(), CatalogKey, []byte(testCatalogJSON)))

	logg := zap.NewNop()
	store := NewStateStore(docs, logg)
	require.NoError(t, store.Bootstrap(context.Background()))
	return NewService(NewFileCatalog(docs, logg), store, logg), docs
}

func TestService_ListMerged_TradeableOnly(t *testing.T) {
	svc, _ := setupService(t)

	views, err := svc.ListMerged(context.Background())
	require.NoError(t, err)

	// Exactly one view per tradeable definition, none for the rest.
	require.Len(t, views, 3)
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
		assert.True(t, v.Tradeable)
	}
	assert.Equal(t, []string{"Sharpness", "Fire Protection", "Mending"}, names)
}

func TestService_ListMerged_DefaultView(t *testing.T) {
	svc, _ := setupService(t)

	views, err := svc.ListMerged(context.Background())
	require.NoError(t, err)

	var mending *models.Enchantment
	for i := range views {
		if views[i].Name == "Mending" {
			mending = &views[i]
		}
	}
	require.NotNil(t, mending)
	assert.Equal(t, 1, mending.MaxLevel)
	assert.False(t, mending.HasLibrarianTrade)
	assert.Nil(t, mending.Level)
	assert.Nil(t, mending.EmeraldCost)
}

func TestService_UpdateState_RoundTrip(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	state := models.State{HasLibrarianTrade: true, Level: intPtr(4), EmeraldCost: intPtr(22)}
	require.NoError(t, svc.UpdateState(ctx, "Fire Protection", state))

	view, err := svc.GetMerged(ctx, "Fire Protection")
	require.NoError(t, err)
	assert.Equal(t, state, view.State)
}

func TestService_UpdateState_ClampsLevel(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	// Sharpness caps at 5; a requested 10 is clamped, never rejected.
	err := svc.UpdateState(ctx, "Sharpness", models.State{
		HasLibrarianTrade: true,
		Level:             intPtr(10),
		EmeraldCost:       intPtr(5),
	})
	require.NoError(t, err)

	view, err := svc.GetMerged(ctx, "Sharpness")
	require.NoError(t, err)
	require.NotNil(t, view.Level)
	assert.Equal(t, 5, *view.Level)
	assert.Equal(t, 5, *view.EmeraldCost)
}

func TestService_UpdateState_CanonicalizesKey(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateState(ctx, "fire_protection", models.State{HasLibrarianTrade: true}))

	states, err := svc.States(ctx)
	require.NoError(t, err)
	assert.Contains(t, states, "Fire Protection")
	assert.NotContains(t, states, "fire_protection")
}

func TestService_UpdateState_UnknownName(t *testing.T) {
	svc, docs := setupService(t)
	ctx := context.Background()

	before, err := docs.Read(ctx, StateKey)
	require.NoError(t, err)

	err = svc.UpdateState(ctx, "Thunderlord", models.State{HasLibrarianTrade: true})
	assert.ErrorIs(t, err, models.ErrNotFound)

	// No persistence write happened.
	after, err := docs.Read(ctx, StateKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_RemoveState_UnknownName(t *testing.T) {
	svc, docs := setupService(t)
	ctx := context.Background()

	before, err := docs.Read(ctx, StateKey)
	require.NoError(t, err)

	err = svc.RemoveState(ctx, "Thunderlord")
	assert.ErrorIs(t, err, models.ErrNotFound)

	after, err := docs.Read(ctx, StateKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_RemoveState_Idempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateState(ctx, "Mending", models.State{HasLibrarianTrade: true}))
	require.NoError(t, svc.RemoveState(ctx, "Mending"))
	// Second removal succeeds and leaves the default view in place.
	require.NoError(t, svc.RemoveState(ctx, "Mending"))

	view, err := svc.GetMerged(ctx, "Mending")
	require.NoError(t, err)
	assert.False(t, view.HasLibrarianTrade)
	assert.Nil(t, view.Level)
}

func TestService_GetMerged_NotRestrictedToTradeable(t *testing.T) {
	svc, _ := setupService(t)

	// Soul Speed never shows up in ListMerged but is still addressable.
	view, err := svc.GetMerged(context.Background(), "Soul Speed")
	require.NoError(t, err)
	assert.False(t, view.Tradeable)
	assert.Equal(t, 3, view.MaxLevel)
}

func TestService_GetMerged_UnknownName(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetMerged(context.Background(), "Thunderlord")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
