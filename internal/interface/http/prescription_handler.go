package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MuhammadUmar248/clinic-backend/internal/application"
	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/response"
	"github.com/MuhammadUmar248/clinic-backend/pkg/validation"
)

type PrescriptionHandler struct {
	Svc    *application.PrescriptionService
	Logger *logrus.Logger
}

func NewPrescriptionHandler(svc *application.PrescriptionService, logger *logrus.Logger) *PrescriptionHandler {
	return &PrescriptionHandler{Svc: svc, Logger: logger}
}

type medicineRequest struct {
	Name      string `json:"name" binding:"required,notblank,max=100"`
	Dosage    string `json:"dosage" binding:"required,min=1,max=50"`
	Frequency string `json:"frequency" binding:"required,min=1,max=50"`
	Duration  string `json:"duration" binding:"required,min=1,max=50"`
}

type createPrescriptionRequest struct {
	PatientID    string            `json:"patient_id" binding:"required,min=5,max=50"`
	Symptoms     string            `json:"symptoms" binding:"required,notblank,min=5,max=500"`
	Medicines    []medicineRequest `json:"medicines" binding:"required,min=1,dive"`
	Notes        *string           `json:"notes" binding:"omitempty,max=1000"`
	FollowUpDays *int              `json:"follow_up_days" binding:"omitempty,gte=1,lte=365"`
}

type updatePrescriptionRequest struct {
	Symptoms     *string           `json:"symptoms" binding:"omitempty,notblank,min=5,max=500"`
	Medicines    []medicineRequest `json:"medicines" binding:"omitempty,min=1,dive"`
	Notes        *string           `json:"notes" binding:"omitempty,max=1000"`
	FollowUpDays *int              `json:"follow_up_days" binding:"omitempty,gte=1,lte=365"`
}

func toMedicines(in []medicineRequest) []entity.Medicine {
	if in == nil {
		return nil
	}
	out := make([]entity.Medicine, 0, len(in))
	for _, m := range in {
		out = append(out, entity.Medicine{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		})
	}
	return out
}

// Create POST /prescription/create — the target patient must belong to the caller
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req createPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	id, err := h.Svc.Create(c.Request.Context(), doctorID, application.CreatePrescriptionInput{
		PatientID:    req.PatientID,
		Symptoms:     req.Symptoms,
		Medicines:    toMedicines(req.Medicines),
		Notes:        req.Notes,
		FollowUpDays: req.FollowUpDays,
	})
	if err != nil {
		if err == application.ErrForbidden {
			response.Error(c, http.StatusForbidden, "Unauthorized: Patient does not belong to you", nil)
			return
		}
		h.Logger.WithError(err).Error("create prescription failed")
		response.Error(c, http.StatusInternalServerError, "failed to create prescription", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":         "Prescription created successfully",
		"prescription_id": id,
		"status":          "success",
	})
}

// GetAll GET /prescription/all — list scoped to the caller
func (h *PrescriptionHandler) GetAll(c *gin.Context) {
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	prescriptions, err := h.Svc.GetAll(c.Request.Context(), doctorID)
	if err != nil {
		h.Logger.WithError(err).Error("list prescriptions failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch prescriptions", nil)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// GetByID GET /prescription/:id
func (h *PrescriptionHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	p, err := h.Svc.GetByID(c.Request.Context(), doctorID, id)
	if err != nil {
		if err == application.ErrNotFound {
			response.Error(c, http.StatusNotFound, "Prescription not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get prescription failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch prescription", nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update PUT /prescription/:id
func (h *PrescriptionHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}
	var req updatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Update(c.Request.Context(), doctorID, id, application.UpdatePrescriptionInput{
		Symptoms:     req.Symptoms,
		Medicines:    toMedicines(req.Medicines),
		Notes:        req.Notes,
		FollowUpDays: req.FollowUpDays,
	})
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Prescription updated successfully")
	case application.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Prescription not found or no changes made", nil)
	default:
		h.Logger.WithError(err).Error("update prescription failed")
		response.Error(c, http.StatusInternalServerError, "failed to update prescription", nil)
	}
}

// Delete DELETE /prescription/:id
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Delete(c.Request.Context(), doctorID, id)
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Prescription deleted successfully")
	case application.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Prescription not found", nil)
	default:
		h.Logger.WithError(err).Error("delete prescription failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete prescription", nil)
	}
}
