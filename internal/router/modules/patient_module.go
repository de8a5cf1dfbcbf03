package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadUmar248/clinic-backend/internal/container"
	handlers "github.com/MuhammadUmar248/clinic-backend/internal/interface/http"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
)

// PatientModule wires the patient routes. Every route requires a verified
// doctor identity; records are scoped to that doctor.
type PatientModule struct {
	Handler *handlers.PatientHandler
	JWT     *helpers.JWTManager
}

func NewPatientModule(h *handlers.PatientHandler, jwt *helpers.JWTManager) *PatientModule {
	return &PatientModule{Handler: h, JWT: jwt}
}

func (m *PatientModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/patient")
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
