package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadUmar248/clinic-backend/internal/container"
	handlers "github.com/MuhammadUmar248/clinic-backend/internal/interface/http"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
)

// DoctorModule wires the doctor HTTP handlers into routes.
// Public: register, login, list, get-by-id
// Protected (self only): update, delete
type DoctorModule struct {
	Handler *handlers.DoctorHandler
	JWT     *helpers.JWTManager
}

func NewDoctorModule(h *handlers.DoctorHandler, jwt *helpers.JWTManager) *DoctorModule {
	return &DoctorModule{Handler: h, JWT: jwt}
}

func (m *DoctorModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil) // 5 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)   // 10 req/min per IP

	rg.POST("/doctor/register", registerLimiter, m.Handler.Register)
	rg.POST("/doctor/login", loginLimiter, m.Handler.Login)
	rg.GET("/doctor/all", m.Handler.GetAll)
	rg.GET("/doctor/:id", m.Handler.GetByID)

	// Protected self-service
	auth := rg.Group("/doctor")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByDoctorID(), nil))
	{
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
