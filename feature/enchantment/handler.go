package enchantment

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"enchantment-tracker/core/logger"
	"enchantment-tracker/feature/enchantment/mcdata"
	"enchantment-tracker/feature/enchantment/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for enchantments.
type Handler struct {
	service  *Service
	enhanced *Service
	gameData *mcdata.Catalog
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service, enhanced *Service, gameData *mcdata.Catalog, logg *zap.Logger) *Handler {
	return &Handler{service: service, enhanced: enhanced, gameData: gameData, logger: logg}
}

// RegisterRoutes registers the enchantment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	ench := app.Group("/enchantments")
	ench.Get("/", h.HandleListEnchantments)
	ench.Get("/state", h.HandleGetState)
	ench.Put("/state/:name", h.HandleUpdateState)
	ench.Delete("/state/:name", h.HandleRemoveState)

	enhanced := app.Group("/enhanced/enchantments")
	enhanced.Get("/", h.HandleListEnhanced)
	enhanced.Put("/state/:name", h.HandleUpdateEnhancedState)
	enhanced.Delete("/state/:name", h.HandleRemoveEnhancedState)
	enhanced.Get("/:name", h.HandleGetEnhanced)

	mc := app.Group("/mcdata/enchantments")
	mc.Get("/", h.HandleListGameData)
	mc.Get("/tradeable", h.HandleListTradeableGameData)
	mc.Get("/id/:id", h.HandleGetGameDataByID)
	mc.Get("/name/:name", h.HandleGetGameDataByName)
}

// paramName returns the :name path parameter with percent-encoding resolved,
// since enchantment names contain spaces.
func paramName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// HandleListEnchantments returns the merged tradeable enchantment views.
// @Summary List Enchantments
// @Description Returns every librarian-tradeable enchantment from the curated catalog, merged with the user's saved trade state.
// @Tags enchantments
// @Produce json
// @Success 200 {array} models.Enchantment "Merged views"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enchantments [get]
func (h *Handler) HandleListEnchantments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	views, err := h.service.ListMerged(c.Context())
	if err != nil {
		l.Error("Failed to list enchantments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving enchantments")
	}
	return c.JSON(views)
}

// HandleGetState returns the raw persisted state mapping.
// @Summary Get Enchantment States
// @Description Returns the sparse mapping from enchantment name to the user's saved trade state.
// @Tags enchantments
// @Produce json
// @Success 200 {object} map[string]models.State "State mapping"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enchantments/state [get]
func (h *Handler) HandleGetState(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	states, err := h.service.States(c.Context())
	if err != nil {
		l.Error("Failed to load enchantment states", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving enchantment states")
	}
	return c.JSON(states)
}

// HandleUpdateState replaces the saved state for one enchantment.
// @Summary Update Enchantment State
// @Description Stores the full replacement trade state for the named enchantment. A level above the catalog maximum is clamped.
// @Tags enchantments
// @Accept json
// @Produce plain
// @Param name path string true "Enchantment name"
// @Param state body models.State true "Replacement state"
// @Success 200 {string} string ""
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enchantments/state/{name} [put]
func (h *Handler) HandleUpdateState(c *fiber.Ctx) error {
	return h.updateState(c, h.service)
}

// HandleRemoveState deletes the saved state for one enchantment.
// @Summary Remove Enchantment State
// @Description Deletes the saved trade state for the named enchantment, returning it to the default. Idempotent.
// @Tags enchantments
// @Produce plain
// @Param name path string true "Enchantment name"
// @Success 200 {string} string ""
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enchantments/state/{name} [delete]
func (h *Handler) HandleRemoveState(c *fiber.Ctx) error {
	return h.removeState(c, h.service)
}

// HandleListEnhanced returns merged views sourced from the game-data catalog.
// @Summary List Enhanced Enchantments
// @Description Returns every librarian-tradeable enchantment from the versioned game-data catalog, merged with the user's saved trade state.
// @Tags enhanced
// @Produce json
// @Success 200 {array} models.Enchantment "Merged views"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enhanced/enchantments [get]
func (h *Handler) HandleListEnhanced(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	views, err := h.enhanced.ListMerged(c.Context())
	if err != nil {
		l.Error("Failed to list enhanced enchantments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving enchantments")
	}
	return c.JSON(views)
}

// HandleGetEnhanced returns a single merged view from the game-data catalog.
// @Summary Get Enhanced Enchantment
// @Description Returns the merged view for one enchantment, looked up by display or internal name. Not restricted to tradeable enchantments.
// @Tags enhanced
// @Produce json
// @Param name path string true "Enchantment name"
// @Success 200 {object} models.Enchantment "Merged view"
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enhanced/enchantments/{name} [get]
func (h *Handler) HandleGetEnhanced(c *fiber.Ctx) error {
	name := paramName(c)
	l := logger.WithRayID(h.logger, c)

	view, err := h.enhanced.GetMerged(c.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Enchantment '%s' not found", name))
		}
		l.Error("Failed to get enchantment", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("An error occurred while retrieving enchantment '%s'", name))
	}
	return c.JSON(view)
}

// HandleUpdateEnhancedState replaces saved state, validated against the
// game-data catalog.
// @Summary Update Enhanced Enchantment State
// @Description Same as the non-enhanced variant, but the name is validated against the game-data catalog.
// @Tags enhanced
// @Accept json
// @Produce plain
// @Param name path string true "Enchantment name"
// @Param state body models.State true "Replacement state"
// @Success 200 {string} string ""
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enhanced/enchantments/state/{name} [put]
func (h *Handler) HandleUpdateEnhancedState(c *fiber.Ctx) error {
	return h.updateState(c, h.enhanced)
}

// HandleRemoveEnhancedState deletes saved state, validated against the
// game-data catalog.
// @Summary Remove Enhanced Enchantment State
// @Description Same as the non-enhanced variant, but the name is validated against the game-data catalog.
// @Tags enhanced
// @Produce plain
// @Param name path string true "Enchantment name"
// @Success 200 {string} string ""
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /enhanced/enchantments/state/{name} [delete]
func (h *Handler) HandleRemoveEnhancedState(c *fiber.Ctx) error {
	return h.removeState(c, h.enhanced)
}

// HandleListGameData returns the raw game-data records.
// @Summary List Game-Data Enchantments
// @Description Returns every enchantment record from the versioned game-data document, unmerged.
// @Tags mcdata
// @Produce json
// @Success 200 {array} mcdata.Enchantment "Game-data records"
// @Failure 500 {string} string "Internal Server Error"
// @Router /mcdata/enchantments [get]
func (h *Handler) HandleListGameData(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.gameData.Records(c.Context())
	if err != nil {
		l.Error("Failed to list game-data enchantments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving enchantments")
	}
	return c.JSON(records)
}

// HandleListTradeableGameData returns the raw tradeable game-data records.
// @Summary List Tradeable Game-Data Enchantments
// @Description Returns only the game-data records a librarian can offer.
// @Tags mcdata
// @Produce json
// @Success 200 {array} mcdata.Enchantment "Game-data records"
// @Failure 500 {string} string "Internal Server Error"
// @Router /mcdata/enchantments/tradeable [get]
func (h *Handler) HandleListTradeableGameData(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	records, err := h.gameData.Tradeable(c.Context())
	if err != nil {
		l.Error("Failed to list tradeable game-data enchantments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving tradeable enchantments")
	}
	return c.JSON(records)
}

// HandleGetGameDataByID returns one raw record by numeric id.
// @Summary Get Game-Data Enchantment By ID
// @Description Returns the game-data record with the given numeric id.
// @Tags mcdata
// @Produce json
// @Param id path int true "Enchantment id"
// @Success 200 {object} mcdata.Enchantment "Game-data record"
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /mcdata/enchantments/id/{id} [get]
func (h *Handler) HandleGetGameDataByID(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Enchantment id must be an integer")
	}

	record, err := h.gameData.ByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Enchantment with ID %d not found", id))
		}
		l.Error("Failed to get game-data enchantment", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving the enchantment")
	}
	return c.JSON(record)
}

// HandleGetGameDataByName returns one raw record by display or internal name.
// @Summary Get Game-Data Enchantment By Name
// @Description Returns the game-data record matching the display name, or the internal name as a fallback.
// @Tags mcdata
// @Produce json
// @Param name path string true "Enchantment name"
// @Success 200 {object} mcdata.Enchantment "Game-data record"
// @Failure 404 {string} string "Enchantment not found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /mcdata/enchantments/name/{name} [get]
func (h *Handler) HandleGetGameDataByName(c *fiber.Ctx) error {
	name := paramName(c)
	l := logger.WithRayID(h.logger, c)

	record, err := h.gameData.ByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Enchantment with name '%s' not found", name))
		}
		l.Error("Failed to get game-data enchantment", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("An error occurred while retrieving the enchantment")
	}
	return c.JSON(record)
}

func (h *Handler) updateState(c *fiber.Ctx, svc *Service) error {
	name := paramName(c)
	l := logger.WithRayID(h.logger, c)

	var state models.State
	if err := c.BodyParser(&state); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid enchantment state body")
	}

	if err := svc.UpdateState(c.Context(), name, state); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Expected client condition, not worth an error-level log.
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Enchantment '%s' not found", name))
		}
		l.Error("Failed to update enchantment state", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("An error occurred while updating state for enchantment '%s'", name))
	}

	c.Status(fiber.StatusOK)
	return nil
}

func (h *Handler) removeState(c *fiber.Ctx, svc *Service) error {
	name := paramName(c)
	l := logger.WithRayID(h.logger, c)

	if err := svc.RemoveState(c.Context(), name); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Enchantment '%s' not found", name))
		}
		l.Error("Failed to remove enchantment state", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("An error occurred while resetting state for enchantment '%s'", name))
	}

	c.Status(fiber.StatusOK)
	return nil
}
