package enchantment

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"enchantment-tracker/core/document"
	"enchantment-tracker/feature/enchantment/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testGameDataJSON = `[
  {"id": 12, "name": "sharpness", "displayName": "Sharpness", "maxLevel": 5, "weight": 10, "treasureOnly": false, "curse": false, "exclude": ["smite", "bane_of_arthropods"], "category": "weapon", "tradeable": true, "discoverable": true},
  {"id": 1, "name": "fire_protection", "displayName": "Fire Protection", "maxLevel": 4, "weight": 5, "treasureOnly": false, "curse": false, "exclude": ["protection"], "category": "armor", "tradeable": true, "discoverable": true},
  {"id": 33, "name": "soul_speed", "displayName": "Soul Speed", "maxLevel": 3, "weight": 1, "treasureOnly": true, "curse": false, "exclude": [], "category": "armor_feet", "tradeable": false, "discoverable": false}
]`

func setupTestApp(t *testing.T) (*fiber.App, document.Store) {
	t.Helper()
	docs := document.NewFileStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, docs.Write(ctx, CatalogKey, []byte(testCatalogJSON)))
	require.NoError(t, docs.Write(ctx, "mcdata/1.20.2/enchantments.json", []byte(testGameDataJSON)))

	app := fiber.New()
	feature := NewFeature(docs, "1.20.2", zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, docs
}

func TestHandleListEnchantments(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/enchantments", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var views []models.Enchantment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 3)
	assert.Equal(t, "Sharpness", views[0].Name)
	assert.False(t, views[0].HasLibrarianTrade)
}

func TestHandleGetState_EmptyBootstrap(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/enchantments/state", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var states map[string]models.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&states))
	assert.Empty(t, states)
}

func TestHandleUpdateState(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enchantments/state/Sharpness",
		strings.NewReader(`{"hasLibrarianTrade": true, "level": 10, "emeraldCost": 5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)

	// The stored level is clamped to the catalog maximum.
	resp, err = app.Test(httptest.NewRequest("GET", "/enchantments/state", nil))
	require.NoError(t, err)
	var states map[string]models.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&states))
	require.Contains(t, states, "Sharpness")
	require.NotNil(t, states["Sharpness"].Level)
	assert.Equal(t, 5, *states["Sharpness"].Level)
}

func TestHandleUpdateState_EncodedName(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enchantments/state/Fire%20Protection",
		strings.NewReader(`{"hasLibrarianTrade": true, "level": 2, "emeraldCost": 12}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleUpdateState_UnknownName(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enchantments/state/Thunderlord",
		strings.NewReader(`{"hasLibrarianTrade": true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Enchantment 'Thunderlord' not found", string(body))
}

func TestHandleUpdateState_InvalidBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enchantments/state/Sharpness",
		strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleRemoveState(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enchantments/state/Mending",
		strings.NewReader(`{"hasLibrarianTrade": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/enchantments/state/Mending", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Removing again is still a success.
	resp, err = app.Test(httptest.NewRequest("DELETE", "/enchantments/state/Mending", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleRemoveState_UnknownName(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/enchantments/state/Thunderlord", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleListEnhanced(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/enhanced/enchantments", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var views []models.Enchantment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	// soul_speed is not tradeable and stays out of the list.
	require.Len(t, views, 2)
	assert.Equal(t, "Sharpness", views[0].Name)
	assert.Equal(t, "Sharpness (Max Level: 5)", views[0].Description)
	assert.Equal(t, []string{"Sword"}, views[0].ApplicableItems)
}

func TestHandleGetEnhanced(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("ByDisplayName", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/enhanced/enchantments/Fire%20Protection", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var view models.Enchantment
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
		assert.Equal(t, "Fire Protection", view.Name)
		assert.Equal(t, 4, view.MaxLevel)
	})

	t.Run("ByInternalName", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/enhanced/enchantments/fire_protection", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("NotTradeableStillFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/enhanced/enchantments/soul_speed", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/enhanced/enchantments/Thunderlord", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleEnhancedState_SharedStore(t *testing.T) {
	app, _ := setupTestApp(t)

	// A write through the enhanced surface is visible on the basic one.
	req := httptest.NewRequest("PUT", "/enhanced/enchantments/state/sharpness",
		strings.NewReader(`{"hasLibrarianTrade": true, "level": 3, "emeraldCost": 25}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/enchantments/state", nil))
	require.NoError(t, err)
	var states map[string]models.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&states))
	require.Contains(t, states, "Sharpness")
	assert.Equal(t, 3, *states["Sharpness"].Level)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/enhanced/enchantments/state/Sharpness", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleEnhancedState_UnknownName(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/enhanced/enchantments/state/Thunderlord",
		strings.NewReader(`{"hasLibrarianTrade": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/enhanced/enchantments/state/Thunderlord", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleListGameData(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/mcdata/enchantments", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 3)
}

func TestHandleListTradeableGameData(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/tradeable", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)
}

func TestHandleGetGameDataByID(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/id/12", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/id/999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/id/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleGetGameDataByName(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/name/sharpness", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/mcdata/enchantments/name/Thunderlord", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
