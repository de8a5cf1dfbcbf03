package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MuhammadUmar248/clinic-backend/internal/application"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/response"
	"github.com/MuhammadUmar248/clinic-backend/pkg/validation"
)

type PatientHandler struct {
	Svc    *application.PatientService
	Logger *logrus.Logger
}

func NewPatientHandler(svc *application.PatientService, logger *logrus.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

type createPatientRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=30"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"PhoneNumber" binding:"required,phone_pk"`
	Age         int    `json:"age" binding:"required,gte=1,lte=999"`
	Gender      string `json:"gender" binding:"required,notblank,max=10"`
	Weight      int    `json:"weight" binding:"required,gte=1,lte=999"`
}

type updatePatientRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"PhoneNumber" binding:"omitempty,phone_pk"`
	Age         *int    `json:"age" binding:"omitempty,gte=1,lte=999"`
	Gender      *string `json:"gender" binding:"omitempty,notblank,max=10"`
	Weight      *int    `json:"weight" binding:"omitempty,gte=1,lte=999"`
}

// Create POST /patient/create
func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	id, err := h.Svc.Create(c.Request.Context(), doctorID, application.CreatePatientInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Age:         req.Age,
		Gender:      req.Gender,
		Weight:      req.Weight,
	})
	if err != nil {
		if err == application.ErrDuplicate {
			response.Error(c, http.StatusBadRequest, "Patient with this email or username already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("create patient failed")
		response.Error(c, http.StatusInternalServerError, "Registration failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Patient registered successfully",
		"patient_id": id,
		"status":     "success",
	})
}

// GetAll GET /patient/all — list scoped to the caller
func (h *PatientHandler) GetAll(c *gin.Context) {
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	patients, err := h.Svc.GetAll(c.Request.Context(), doctorID)
	if err != nil {
		h.Logger.WithError(err).Error("list patients failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch patients", nil)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetByID GET /patient/:id
func (h *PatientHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	p, err := h.Svc.GetByID(c.Request.Context(), doctorID, id)
	if err != nil {
		if err == application.ErrNotFound {
			response.Error(c, http.StatusNotFound, "Patient not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get patient failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch patient", nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update PUT /patient/:id
func (h *PatientHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	var req updatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Update(c.Request.Context(), doctorID, id, application.UpdatePatientInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Age:         req.Age,
		Gender:      req.Gender,
		Weight:      req.Weight,
	})
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Patient updated successfully")
	case application.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Patient not found or no changes made", nil)
	default:
		h.Logger.WithError(err).Error("update patient failed")
		response.Error(c, http.StatusInternalServerError, "failed to update patient", nil)
	}
}

// Delete DELETE /patient/:id
func (h *PatientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	doctorID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Delete(c.Request.Context(), doctorID, id)
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Patient deleted successfully")
	case application.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Patient not found", nil)
	default:
		h.Logger.WithError(err).Error("delete patient failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete patient", nil)
	}
}
