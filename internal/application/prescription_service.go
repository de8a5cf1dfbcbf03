package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	repo "github.com/MuhammadUmar248/clinic-backend/internal/domain/repository"
)

// PrescriptionService owns prescription CRUD. Creation requires the target
// patient to belong to the requesting doctor.
type PrescriptionService struct {
	Repo     repo.PrescriptionRepository
	Patients repo.PatientRepository
	Logger   *logrus.Logger
}

func NewPrescriptionService(r repo.PrescriptionRepository, patients repo.PatientRepository, logger *logrus.Logger) *PrescriptionService {
	return &PrescriptionService{Repo: r, Patients: patients, Logger: logger}
}

type CreatePrescriptionInput struct {
	PatientID    string
	Symptoms     string
	Medicines    []entity.Medicine
	Notes        *string
	FollowUpDays *int
}

// Create writes a prescription after the ownership probe. A patient that is
// absent or owned by another doctor rejects with ErrForbidden and nothing
// is written.
func (s *PrescriptionService) Create(ctx context.Context, doctorID string, in CreatePrescriptionInput) (string, error) {
	patient, err := s.Patients.FindByID(ctx, in.PatientID, doctorID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", ErrForbidden
	}

	now := time.Now().Unix()
	p := &entity.Prescription{
		DoctorID:     doctorID,
		PatientID:    in.PatientID,
		Symptoms:     in.Symptoms,
		Medicines:    in.Medicines,
		Notes:        in.Notes,
		FollowUpDays: in.FollowUpDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.Repo.Insert(ctx, p)
}

func (s *PrescriptionService) GetAll(ctx context.Context, doctorID string) ([]entity.Prescription, error) {
	return s.Repo.FindAll(ctx, doctorID)
}

func (s *PrescriptionService) GetByID(ctx context.Context, doctorID, id string) (*entity.Prescription, error) {
	p, err := s.Repo.FindByID(ctx, id, doctorID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

type UpdatePrescriptionInput struct {
	Symptoms     *string
	Medicines    []entity.Medicine
	Notes        *string
	FollowUpDays *int
}

// Update applies only the provided fields. Neither doctor_id nor patient_id
// are updatable; a prescription stays pinned to the patient it was written
// for.
func (s *PrescriptionService) Update(ctx context.Context, doctorID, id string, in UpdatePrescriptionInput) error {
	fields := map[string]any{"updated_at": time.Now().Unix()}
	if in.Symptoms != nil {
		fields["symptoms"] = *in.Symptoms
	}
	if in.Medicines != nil {
		fields["medicines"] = in.Medicines
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.FollowUpDays != nil {
		fields["follow_up_days"] = *in.FollowUpDays
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

func (s *PrescriptionService) Delete(ctx context.Context, doctorID, id string) error {
	deleted, err := s.Repo.Delete(ctx, id, doctorID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
