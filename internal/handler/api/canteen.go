package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CanteenHandler struct {
	commands     commands.CanteenCommands
	queries      queries.CanteenQueries
	availability queries.AvailabilityQueries
}

func NewCanteenHandler(
	cmds commands.CanteenCommands,
	qrs queries.CanteenQueries,
	availability queries.AvailabilityQueries,
) *CanteenHandler {
	return &CanteenHandler{
		commands:     cmds,
		queries:      qrs,
		availability: availability,
	}
}

// @Summary Create canteen
// @Description Register a canteen with working hours (admin only)
// @Tags canteens
// @Accept json
// @Produce json
// @Param X-Student-ID header string true "Requesting student ID"
// @Param request body reqdto.CreateCanteenRequest true "Canteen"
// @Success 201 {object} resdto.CanteenResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /canteens [post]
func (h *CanteenHandler) CreateCanteen(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateCanteenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams(studentID))
	if err != nil {
		h.writeCanteenError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCanteenView(view))
}

// @Summary List canteens
// @Tags canteens
// @Produce json
// @Success 200 {array} resdto.CanteenResponse
// @Router /canteens [get]
func (h *CanteenHandler) ListCanteens(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanteenViews(views))
}

// @Summary Get canteen
// @Tags canteens
// @Produce json
// @Param id path string true "Canteen ID"
// @Success 200 {object} resdto.CanteenResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /canteens/{id} [get]
func (h *CanteenHandler) GetCanteen(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid canteen ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeCanteenError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanteenView(view))
}

// @Summary Update canteen
// @Description Partially update name, location, capacity or working hours (owning admin only)
// @Tags canteens
// @Accept json
// @Produce json
// @Param X-Student-ID header string true "Requesting student ID"
// @Param id path string true "Canteen ID"
// @Param request body reqdto.UpdateCanteenRequest true "Fields to update"
// @Success 200 {object} resdto.CanteenResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /canteens/{id} [put]
func (h *CanteenHandler) UpdateCanteen(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid canteen ID format",
		})
		return
	}

	var req reqdto.UpdateCanteenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), req.ToParams(studentID, id))
	if err != nil {
		h.writeCanteenError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanteenView(view))
}

// @Summary Delete canteen
// @Tags canteens
// @Param X-Student-ID header string true "Requesting student ID"
// @Param id path string true "Canteen ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /canteens/{id} [delete]
func (h *CanteenHandler) DeleteCanteen(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid canteen ID format",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), studentID, id); err != nil {
		h.writeCanteenError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Canteen availability
// @Description Open slots with remaining capacity for one canteen
// @Tags availability
// @Produce json
// @Param id path string true "Canteen ID"
// @Param startDate query string true "Window start date (YYYY-MM-DD)"
// @Param startTime query string true "Window start time (HH:mm)"
// @Param endDate query string true "Window end date (YYYY-MM-DD)"
// @Param endTime query string true "Window end time (HH:mm)"
// @Param duration query int true "Slot duration in minutes (30 or 60)"
// @Success 200 {object} resdto.CanteenAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /canteens/{id}/availability [get]
func (h *CanteenHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid canteen ID format",
		})
		return
	}

	params, err := bindAvailabilityParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability window",
		})
		return
	}

	view, err := h.availability.CanteenStatus(c.Request.Context(), id, params)
	if err != nil {
		h.writeCanteenError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanteenStatusView(view))
}

// @Summary Availability across canteens
// @Description Open slots with remaining capacity for every canteen
// @Tags availability
// @Produce json
// @Param startDate query string true "Window start date (YYYY-MM-DD)"
// @Param startTime query string true "Window start time (HH:mm)"
// @Param endDate query string true "Window end date (YYYY-MM-DD)"
// @Param endTime query string true "Window end time (HH:mm)"
// @Param duration query int true "Slot duration in minutes (30 or 60)"
// @Success 200 {array} resdto.CanteenAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *CanteenHandler) GetAllAvailability(c *gin.Context) {
	params, err := bindAvailabilityParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid availability window",
		})
		return
	}

	views, err := h.availability.AllCanteens(c.Request.Context(), params)
	if err != nil {
		h.writeCanteenError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanteenStatusViews(views))
}

func (h *CanteenHandler) writeCanteenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid canteen parameters",
		})
	case errors.Is(err, errs.ErrCanteenNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Canteen not found",
		})
	case errors.Is(err, errs.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Student not found",
		})
	case errors.Is(err, errs.ErrAdminRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Admin privileges required",
		})
	case errors.Is(err, errs.ErrCanteenHasReservations):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Canteen has reservations and cannot be deleted",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func bindAvailabilityParams(c *gin.Context) (queries.AvailabilityParams, error) {
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		return queries.AvailabilityParams{}, err
	}
	return queries.AvailabilityParams{
		StartDate:   c.Query("startDate"),
		StartTime:   c.Query("startTime"),
		EndDate:     c.Query("endDate"),
		EndTime:     c.Query("endTime"),
		DurationMin: duration,
	}, nil
}
