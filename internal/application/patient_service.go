package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	repo "github.com/MuhammadUmar248/clinic-backend/internal/domain/repository"
)

// PatientService owns patient CRUD. Every operation is scoped to the
// authenticated doctor; the scope is part of the store filter so records of
// other doctors are indistinguishable from absent ones.
type PatientService struct {
	Repo   repo.PatientRepository
	Logger *logrus.Logger
}

func NewPatientService(r repo.PatientRepository, logger *logrus.Logger) *PatientService {
	return &PatientService{Repo: r, Logger: logger}
}

type CreatePatientInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Age         int
	Gender      string
	Weight      int
}

func (s *PatientService) Create(ctx context.Context, doctorID string, in CreatePatientInput) (string, error) {
	username := strings.ToLower(in.Username)
	email := strings.ToLower(in.Email)

	existing, err := s.Repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicate
	}

	now := time.Now().Unix()
	p := &entity.Patient{
		DoctorID:    doctorID,
		Username:    username,
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		Age:         in.Age,
		Gender:      in.Gender,
		Weight:      in.Weight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.Repo.Insert(ctx, p)
}

func (s *PatientService) GetAll(ctx context.Context, doctorID string) ([]entity.Patient, error) {
	return s.Repo.FindAll(ctx, doctorID)
}

func (s *PatientService) GetByID(ctx context.Context, doctorID, id string) (*entity.Patient, error) {
	p, err := s.Repo.FindByID(ctx, id, doctorID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

type UpdatePatientInput struct {
	Username    *string
	Email       *string
	PhoneNumber *string
	Age         *int
	Gender      *string
	Weight      *int
}

// Update applies only the provided fields. The owning doctor_id is never
// part of the update set, so ownership cannot be rewritten.
func (s *PatientService) Update(ctx context.Context, doctorID, id string, in UpdatePatientInput) error {
	fields := map[string]any{"updated_at": time.Now().Unix()}
	if in.Username != nil {
		fields["username"] = strings.ToLower(*in.Username)
	}
	if in.Email != nil {
		fields["email"] = strings.ToLower(*in.Email)
	}
	if in.PhoneNumber != nil {
		fields["PhoneNumber"] = *in.PhoneNumber
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Gender != nil {
		fields["gender"] = *in.Gender
	}
	if in.Weight != nil {
		fields["weight"] = *in.Weight
	}
	modified, err := s.Repo.Update(ctx, id, doctorID, fields)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PatientService) Delete(ctx context.Context, doctorID, id string) error {
	deleted, err := s.Repo.Delete(ctx, id, doctorID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
