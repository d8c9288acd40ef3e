package api

import (
	"errors"
	"net/http"

	reqdto "canteen-reservation/internal/handler/dto/request"
	resdto "canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create reservation
// @Description Book a 30 or 60 minute slot at a canteen
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Student-ID header string true "Requesting student ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams(studentID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation parameters",
			})
		case errors.Is(err, errs.ErrPastDateTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Reservation date and time cannot be in the past",
			})
		case errors.Is(err, errs.ErrCanteenNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Canteen not found",
			})
		case errors.Is(err, errs.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Student not found",
			})
		case errors.Is(err, errs.ErrOutsideWorkingHours):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Requested time is outside the canteen's working hours",
			})
		case errors.Is(err, errs.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Student already holds a reservation overlapping this time slot",
			})
		case errors.Is(err, errs.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is fully booked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the calling student's reservations in a date range, cancelled included
// @Tags reservations
// @Produce json
// @Param X-Student-ID header string true "Requesting student ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListByStudent(c.Request.Context(), studentID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation and release its capacity
// @Tags reservations
// @Produce json
// @Param X-Student-ID header string true "Requesting student ID"
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
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
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.commands.Cancel(c.Request.Context(), id, studentID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound), errors.Is(err, errs.ErrAlreadyCancelled):
			// A repeated cancel is indistinguishable from a missing record.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrNotReservationOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another student",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
