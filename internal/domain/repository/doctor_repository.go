package repository

import (
	"context"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
)

// DoctorRepository defines the store contract for doctors. Find methods
// return (nil, nil) when no document matches; list fetches are capped at
// FetchCap.
type DoctorRepository interface {
	Insert(ctx context.Context, d *entity.Doctor) (string, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// FetchCap bounds every FindAll result set.
const FetchCap = 100
