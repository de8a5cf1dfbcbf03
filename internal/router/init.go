package router

import (
	"github.com/MuhammadUmar248/clinic-backend/internal/application"
	"github.com/MuhammadUmar248/clinic-backend/internal/container"
	"github.com/MuhammadUmar248/clinic-backend/internal/infrastructure/mongodb"
	handlers "github.com/MuhammadUmar248/clinic-backend/internal/interface/http"
	"github.com/MuhammadUmar248/clinic-backend/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	db := container.GetMongo()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	doctorRepo := mongodb.NewDoctorRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	prescriptionRepo := mongodb.NewPrescriptionRepository(db)

	doctorSvc := application.NewDoctorService(doctorRepo, jwt, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	patientSvc := application.NewPatientService(patientRepo, logger)
	prescriptionSvc := application.NewPrescriptionService(prescriptionRepo, patientRepo, logger)

	r.Add(modules.NewDoctorModule(handlers.NewDoctorHandler(doctorSvc, logger), jwt))
	r.Add(modules.NewPatientModule(handlers.NewPatientHandler(patientSvc, logger), jwt))
	r.Add(modules.NewPrescriptionModule(handlers.NewPrescriptionHandler(prescriptionSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
