package repository

import (
	"context"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
)

// PatientRepository defines the store contract for patients. Every read and
// mutation except the duplicate probe is scoped by the owning doctor id, so
// a match outside the caller's scope behaves exactly like an absent
// document.
type PatientRepository interface {
	Insert(ctx context.Context, p *entity.Patient) (string, error)
	FindByID(ctx context.Context, id, doctorID string) (*entity.Patient, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Patient, error)
	FindAll(ctx context.Context, doctorID string) ([]entity.Patient, error)
	Update(ctx context.Context, id, doctorID string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id, doctorID string) (int64, error)
}
