package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "pricing-admin-api/internal/handler/dto/request"
	resdto "pricing-admin-api/internal/handler/dto/response"
	"pricing-admin-api/internal/handler/httperr"
	"pricing-admin-api/internal/usecase/commands"
	"pricing-admin-api/internal/usecase/queries"
)

type PriceHandler struct {
	cmds commands.PriceCommands
	q    queries.PriceQueries
}

func NewPriceHandler(cmds commands.PriceCommands, q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{cmds: cmds, q: q}
}

// @Summary Lookup price intervals
// @Description List intervals for a SKU, optionally narrowed to those active at an instant
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param skuId query string true "SKU ID"
// @Param at query string false "Point in time (RFC 3339)"
// @Success 200 {array} resdto.PriceIntervalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /prices/lookup [get]
func (h *PriceHandler) Lookup(c *gin.Context) {
	skuID := strings.TrimSpace(c.Query("skuId"))
	if skuID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing skuId"), "skuId is required", nil)
		return
	}

	var at *time.Time
	if raw := strings.TrimSpace(c.Query("at")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "at must be an RFC 3339 timestamp", nil)
			return
		}
		at = &parsed
	}

	views, err := h.q.FindBySKU(c.Request.Context(), skuID, at)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load price intervals", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceIntervalViews(views))
}

// @Summary Search intervals by price range
// @Description List intervals whose effective price falls within [min, max] cents
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param min query integer true "Minimum price in cents"
// @Param max query integer true "Maximum price in cents"
// @Success 200 {array} resdto.PriceIntervalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /prices/range [get]
func (h *PriceHandler) Range(c *gin.Context) {
	minCent, err := strconv.ParseInt(c.Query("min"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "min must be an integer", nil)
		return
	}
	maxCent, err := strconv.ParseInt(c.Query("max"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "max must be an integer", nil)
		return
	}

	views, err := h.q.FindByPriceRange(c.Request.Context(), minCent, maxCent)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPriceRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "min must not exceed max", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load price intervals", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceIntervalViews(views))
}

// @Summary Create price intervals
// @Description Create a batch of intervals; the whole batch commits or none of it does
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []reqdto.PriceIntervalRequest true "Intervals to create"
// @Success 201 {object} resdto.CreateIntervalsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /prices [post]
func (h *PriceHandler) Create(c *gin.Context) {
	var reqs []reqdto.PriceIntervalRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ids, err := h.cmds.Create(c.Request.Context(), reqs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyBatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "At least one interval is required", nil)
		case errors.Is(err, commands.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval", nil)
		case errors.Is(err, commands.ErrDuplicateInterval):
			httperr.AbortWithError(c, http.StatusConflict, err, "Interval already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create intervals", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateIntervalsResponse{IntervalIDs: ids})
}

// @Summary Update price interval
// @Description Replace an interval identified by its ID; an omitted startAtUtc keeps the stored window start
// @Tags prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param intervalId path string true "Interval ID"
// @Param request body reqdto.PriceIntervalUpdateRequest true "Replacement interval"
// @Success 200 {object} resdto.PriceIntervalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /prices/{intervalId} [put]
func (h *PriceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("intervalId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval id", nil)
		return
	}

	var req reqdto.PriceIntervalUpdateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err = h.cmds.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrIntervalIDMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Interval id in body does not match path", nil)
		case errors.Is(err, commands.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval", nil)
		case errors.Is(err, commands.ErrIntervalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Interval not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update interval", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load interval", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceIntervalView(view))
}

// @Summary Delete price intervals by SKU
// @Description Delete every interval under a SKU; deleting a SKU with no intervals succeeds
// @Tags prices
// @Produce json
// @Security BearerAuth
// @Param skuId query string true "SKU ID"
// @Success 200 {object} resdto.DeleteIntervalsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /prices/delete [delete]
func (h *PriceHandler) Delete(c *gin.Context) {
	deleted, err := h.cmds.DeleteBySKU(c.Request.Context(), c.Query("skuId"))
	if err != nil {
		if errors.Is(err, commands.ErrMissingSKU) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "skuId is required", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete intervals", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteIntervalsResponse{Deleted: deleted})
}
