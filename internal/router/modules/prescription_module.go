package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadUmar248/clinic-backend/internal/container"
	handlers "github.com/MuhammadUmar248/clinic-backend/internal/interface/http"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
)

// PrescriptionModule wires the prescription routes, all doctor-scoped.
type PrescriptionModule struct {
	Handler *handlers.PrescriptionHandler
	JWT     *helpers.JWTManager
}

func NewPrescriptionModule(h *handlers.PrescriptionHandler, jwt *helpers.JWTManager) *PrescriptionModule {
	return &PrescriptionModule{Handler: h, JWT: jwt}
}

func (m *PrescriptionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/prescription")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByDoctorID(), nil))
	{
		auth.POST("/create", m.Handler.Create)
		auth.GET("/all", m.Handler.GetAll)
		auth.GET("/:id", m.Handler.GetByID)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
