//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"canteen-reservation/internal/handler/api"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/commands"
	"canteen-reservation/internal/usecase/queries"
	testhttp "canteen-reservation/tests/common/httptest"
	commandsmock "canteen-reservation/tests/mock/commands"
	queriesmock "canteen-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StudentHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	commands *commandsmock.MockStudentCommands
	queries  *queriesmock.MockStudentQueries
	router   *gin.Engine
}

func TestStudentHandlerSuite(t *testing.T) {
	suite.Run(t, new(StudentHandlerSuite))
}

func (s *StudentHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.commands = commandsmock.NewMockStudentCommands(s.ctrl)
	s.queries = queriesmock.NewMockStudentQueries(s.ctrl)

	handler := api.NewStudentHandler(s.commands, s.queries)
	s.router = gin.New()
	s.router.POST("/api/students", handler.CreateStudent)
	s.router.GET("/api/students/:id", handler.GetStudent)
}

func (s *StudentHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StudentHandlerSuite) TestCreateStudent() {
	s.Run("registers a student", func() {
		req := reqdto.CreateStudentRequest{Name: "Alice", Email: "alice@example.com"}
		id := uuid.New()

		s.commands.EXPECT().
			Register(gomock.Any(), commands.RegisterStudentParams{Name: "Alice", Email: "alice@example.com"}).
			Return(&queries.StudentView{ID: id, Name: "Alice", Email: "alice@example.com"}, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/students", req, "")

		var resp response.StudentResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(id, resp.ID)
		s.False(resp.IsAdmin)
	})

	s.Run("duplicate email returns 409", func() {
		req := reqdto.CreateStudentRequest{Name: "Alice", Email: "alice@example.com"}
		s.commands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmailTaken)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/students", req, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already in use")
	})

	s.Run("invalid email returns 400", func() {
		req := reqdto.CreateStudentRequest{Name: "Alice", Email: "not-an-email"}
		s.commands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/students", req, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid student parameters")
	})

	s.Run("missing fields return 400", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/students",
			map[string]any{"name": "Alice"}, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *StudentHandlerSuite) TestGetStudent() {
	s.Run("found", func() {
		id := uuid.New()
		s.queries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(&queries.StudentView{ID: id, Name: "Alice", Email: "alice@example.com", IsAdmin: true}, nil)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/"+id.String(), nil, "")

		var resp response.StudentResponse
		testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
		s.True(resp.IsAdmin)
	})

	s.Run("missing", func() {
		id := uuid.New()
		s.queries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.ErrStudentNotFound)

		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/"+id.String(), nil, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Student not found")
	})

	s.Run("malformed id", func() {
		w := testhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/not-a-uuid", nil, "")
		testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid student ID format")
	})
}
