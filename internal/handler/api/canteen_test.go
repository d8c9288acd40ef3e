//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"canteen-reservation/internal/handler/api"
	"canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/tests/common/builder"
	testhttp "canteen-reservation/tests/common/httptest"
	commandsmock "canteen-reservation/tests/mock/commands"
	queriesmock "canteen-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CanteenHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	commands     *commandsmock.MockCanteenCommands
	queries      *queriesmock.MockCanteenQueries
	availability *queriesmock.MockAvailabilityQueries
	router       *gin.Engine

	adminID uuid.UUID
}

func TestCanteenHandlerSuite(t *testing.T) {
	suite.Run(t, new(CanteenHandlerSuite))
}

func (s *CanteenHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.commands = commandsmock.NewMockCanteenCommands(s.ctrl)
	s.queries = queriesmock.NewMockCanteenQueries(s.ctrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.ctrl)
	s.adminID = uuid.New()

	handler := api.NewCanteenHandler(s.commands, s.queries, s.availability)
	s.router = gin.New()
	group := s.router.Group("/api/canteens")
	group.GET("", handler.ListCanteens)
	group.GET("/:id", handler.GetCanteen)
	group.GET("/:id/availability", handler.GetAvailability)
	group.POST("", middleware.RequireStudent(), handler.CreateCanteen)
	group.PUT("/:id", middleware.RequireStudent(), handler.UpdateCanteen)
	group.DELETE("/:id", middleware.RequireStudent(), handler.DeleteCanteen)
	s.router.GET("/api/availability", handler.GetAllAvailability)
}

func (s *CanteenHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func canteenView(id uuid.UUID) *queries.CanteenView {
	return &queries.CanteenView{
		ID:       id,
		Name:     "Main Hall",
		Location: "Building A",
		Capacity: 50,
		WorkingHours: []queries.PeriodView{
			{Meal: "breakfast", From: "07:00", To: "09:00"},
			{Meal: "lunch", From: "11:30", To: "14:00"},
		},
	}
}

func (s *CanteenHandlerSuite) TestCreateCanteen() {
	s.Run("admin creates a canteen", func() {
		req := builder.NewCanteenBuilder().BuildCreateRequestDTO()
		id := uuid.New()

		s.commands.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(commands.CreateCanteenParams{})).
			DoAndReturn(func(_ any, p commands.CreateCanteenParams) (*queries.CanteenView, error) {
				s.Equal(s.adminID, p.RequesterID)
				s.Equal(req.Name, p.Name)
				s.Len(p.WorkingHours, len(req.WorkingHours))
				return canteenView(id), nil
			})

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/canteens", req, s.adminID.String())

		var resp response.CanteenResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(id, resp.ID)
		s.Len(resp.WorkingHours, 2)
	})

	s.Run("non-admin is rejected", func() {
		req := builder.NewCanteenBuilder().BuildCreateRequestDTO()
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAdminRequired)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/canteens", req, s.adminID.String())
		testhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Admin privileges required")
	})

	s.Run("anonymous request is rejected", func() {
		req := builder.NewCanteenBuilder().BuildCreateRequestDTO()
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/canteens", req, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "X-Student-ID header required")
	})

	s.Run("invalid working hours", func() {
		req := builder.NewCanteenBuilder().BuildCreateRequestDTO()
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/canteens", req, s.adminID.String())
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid canteen parameters")
	})
}

func (s *CanteenHandlerSuite) TestGetCanteen() {
	s.Run("found", func() {
		id := uuid.New()
		s.queries.EXPECT().GetByID(gomock.Any(), id).Return(canteenView(id), nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canteens/"+id.String(), nil, "")

		var resp response.CanteenResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Main Hall", resp.Name)
	})

	s.Run("missing", func() {
		id := uuid.New()
		s.queries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrCanteenNotFound)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canteens/"+id.String(), nil, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Canteen not found")
	})

	s.Run("malformed id", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canteens/not-a-uuid", nil, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid canteen ID format")
	})
}

func (s *CanteenHandlerSuite) TestListCanteens() {
	views := []*queries.CanteenView{canteenView(uuid.New()), canteenView(uuid.New())}
	s.queries.EXPECT().List(gomock.Any()).Return(views, nil)

	w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canteens", nil, "")

	var resp []response.CanteenResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 2)
}

func (s *CanteenHandlerSuite) TestUpdateCanteen() {
	s.Run("partial update", func() {
		id := uuid.New()
		body := map[string]any{"capacity": 80}

		s.commands.EXPECT().
			Update(gomock.Any(), gomock.AssignableToTypeOf(commands.UpdateCanteenParams{})).
			DoAndReturn(func(_ any, p commands.UpdateCanteenParams) (*queries.CanteenView, error) {
				s.Equal(id, p.CanteenID)
				s.Equal(s.adminID, p.RequesterID)
				s.Nil(p.Name)
				s.Require().NotNil(p.Capacity)
				s.Equal(80, *p.Capacity)
				return canteenView(id), nil
			})

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPut, "/api/canteens/"+id.String(), body, s.adminID.String())

		var resp response.CanteenResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
	})

	s.Run("missing canteen", func() {
		id := uuid.New()
		s.commands.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCanteenNotFound)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPut, "/api/canteens/"+id.String(),
			map[string]any{"capacity": 80}, s.adminID.String())
		testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Canteen not found")
	})
}

func (s *CanteenHandlerSuite) TestDeleteCanteen() {
	s.Run("deleted", func() {
		id := uuid.New()
		s.commands.EXPECT().Delete(gomock.Any(), id, s.adminID).Return(nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/canteens/"+id.String(), nil, s.adminID.String())
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("foreign owner", func() {
		id := uuid.New()
		s.commands.EXPECT().Delete(gomock.Any(), id, s.adminID).Return(errs.ErrAdminRequired)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/canteens/"+id.String(), nil, s.adminID.String())
		testhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Admin privileges required")
	})

	s.Run("canteen with reservations", func() {
		id := uuid.New()
		s.commands.EXPECT().Delete(gomock.Any(), id, s.adminID).Return(errs.ErrCanteenHasReservations)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/canteens/"+id.String(), nil, s.adminID.String())
		testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Canteen has reservations and cannot be deleted")
	})
}

func (s *CanteenHandlerSuite) TestGetAvailability() {
	const window = "startDate=2030-06-10&startTime=07:00&endDate=2030-06-10&endTime=09:00&duration=30"

	s.Run("per canteen", func() {
		id := uuid.New()
		view := &queries.CanteenStatusView{
			CanteenID: id,
			Name:      "Main Hall",
			Slots: []queries.SlotAvailability{
				{Date: "2030-06-10", Meal: "breakfast", StartTime: "07:00", RemainingCapacity: 3},
			},
		}

		s.availability.EXPECT().
			CanteenStatus(gomock.Any(), id, queries.AvailabilityParams{
				StartDate:   "2030-06-10",
				StartTime:   "07:00",
				EndDate:     "2030-06-10",
				EndTime:     "09:00",
				DurationMin: 30,
			}).
			Return(view, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/canteens/"+id.String()+"/availability?"+window, nil, "")

		var resp response.CanteenAvailabilityResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.CanteenID)
		s.Require().Len(resp.Slots, 1)
		s.Equal(3, resp.Slots[0].RemainingCapacity)
	})

	s.Run("missing duration parameter", func() {
		id := uuid.New()
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/canteens/"+id.String()+"/availability?startDate=2030-06-10", nil, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid availability window")
	})

	s.Run("empty slot list marshals as an array", func() {
		id := uuid.New()
		s.availability.EXPECT().
			CanteenStatus(gomock.Any(), id, gomock.Any()).
			Return(&queries.CanteenStatusView{CanteenID: id, Name: "Main Hall"}, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/canteens/"+id.String()+"/availability?"+window, nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"slots":[]`)
	})

	s.Run("all canteens", func() {
		views := []*queries.CanteenStatusView{
			{CanteenID: uuid.New(), Name: "Main Hall", Slots: []queries.SlotAvailability{}},
			{CanteenID: uuid.New(), Name: "North Hall", Slots: []queries.SlotAvailability{}},
		}
		s.availability.EXPECT().AllCanteens(gomock.Any(), gomock.Any()).Return(views, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?"+window, nil, "")

		var resp []response.CanteenAvailabilityResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}
