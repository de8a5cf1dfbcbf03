package repository

import (
	"context"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
)

// PrescriptionRepository defines the store contract for prescriptions,
// doctor-scoped like PatientRepository.
type PrescriptionRepository interface {
	Insert(ctx context.Context, p *entity.Prescription) (string, error)
	FindByID(ctx context.Context, id, doctorID string) (*entity.Prescription, error)
	FindAll(ctx context.Context, doctorID string) ([]entity.Prescription, error)
	Update(ctx context.Context, id, doctorID string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id, doctorID string) (int64, error)
}
