package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"canteen-reservation/internal/handler/api"
	"canteen-reservation/internal/handler/middleware"
	"canteen-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	studentHandler *api.StudentHandler,
	canteenHandler *api.CanteenHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, studentHandler, canteenHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	studentHandler *api.StudentHandler,
	canteenHandler *api.CanteenHandler,
	reservationHandler *api.ReservationHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		students := apiGroup.Group("/students")
		{
			addRoutes(students, []route{
				{Method: http.MethodPost, Path: "", Handler: studentHandler.CreateStudent},
				{Method: http.MethodGet, Path: "/:id", Handler: studentHandler.GetStudent},
			})
		}

		canteens := apiGroup.Group("/canteens")
		{
			addRoutes(canteens, []route{
				{Method: http.MethodGet, Path: "", Handler: canteenHandler.ListCanteens},
				{Method: http.MethodGet, Path: "/:id", Handler: canteenHandler.GetCanteen},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: canteenHandler.GetAvailability},
			})

			adminRequired := canteens.Group("")
			adminRequired.Use(middleware.RequireStudent())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: canteenHandler.CreateCanteen},
				{Method: http.MethodPut, Path: "/:id", Handler: canteenHandler.UpdateCanteen},
				{Method: http.MethodDelete, Path: "/:id", Handler: canteenHandler.DeleteCanteen},
			})
		}

		apiGroup.GET("/availability", canteenHandler.GetAllAvailability)

		reservations := apiGroup.Group("/reservations")
		reservations.Use(middleware.RequireStudent())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
