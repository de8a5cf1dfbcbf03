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

type DoctorHandler struct {
	Svc    *application.DoctorService
	Logger *logrus.Logger
}

func NewDoctorHandler(svc *application.DoctorService, logger *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateDoctorRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// Register POST /doctor/register
func (h *DoctorHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if err == application.ErrDuplicate {
			response.Error(c, http.StatusBadRequest, "User with this email or username already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("doctor registration failed")
		response.Error(c, http.StatusInternalServerError, "Registration failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": id,
		"status":  "success",
	})
}

// Login POST /doctor/login
func (h *DoctorHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, email, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == application.ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		h.Logger.WithError(err).Error("doctor login failed")
		response.Error(c, http.StatusInternalServerError, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{"access_token": token, "token_type": "bearer"},
		"email": email,
	})
}

// GetAll GET /doctor/all
func (h *DoctorHandler) GetAll(c *gin.Context) {
	doctors, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list doctors failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch doctors", nil)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetByID GET /doctor/:id
func (h *DoctorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	d, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == application.ErrNotFound {
			response.Error(c, http.StatusNotFound, "Doctor not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get doctor failed")
		response.Error(c, http.StatusInternalServerError, "failed to fetch doctor", nil)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Update PUT /doctor/:id (self only)
func (h *DoctorHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	var req updateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Update(c.Request.Context(), callerID, id, application.UpdateDoctorInput{
		Username: req.Username,
		Email:    req.Email,
	})
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Doctor updated successfully")
	case application.ErrForbidden:
		response.Error(c, http.StatusForbidden, "Unauthorized", nil)
	case application.ErrNoChanges:
		response.Error(c, http.StatusBadRequest, "No changes made", nil)
	case application.ErrDuplicate:
		response.Error(c, http.StatusBadRequest, "User with this email or username already exists", nil)
	default:
		h.Logger.WithError(err).Error("update doctor failed")
		response.Error(c, http.StatusInternalServerError, "failed to update doctor", nil)
	}
}

// Delete DELETE /doctor/:id (self only)
func (h *DoctorHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !primitive.IsValidObjectID(id) {
		response.Error(c, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	callerID := c.GetString(middleware.CtxDoctorIDKey)
	err := h.Svc.Delete(c.Request.Context(), callerID, id)
	switch err {
	case nil:
		response.Message(c, http.StatusOK, "Doctor deleted successfully")
	case application.ErrForbidden:
		response.Error(c, http.StatusForbidden, "Unauthorized", nil)
	case application.ErrNotFound:
		response.Error(c, http.StatusNotFound, "Doctor not found", nil)
	default:
		h.Logger.WithError(err).Error("delete doctor failed")
		response.Error(c, http.StatusInternalServerError, "failed to delete doctor", nil)
	}
}
