package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
)

// In-memory repository fakes mirroring the store contract: scoped misses
// return (nil, nil) and mutations report modified/deleted counts.

type fakeDoctorRepo struct {
	doctors    map[string]*entity.Doctor
	lastUpdate map[string]any
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]*entity.Doctor)}
}

func (f *fakeDoctorRepo) Insert(_ context.Context, d *entity.Doctor) (string, error) {
	d.ID = primitive.NewObjectID()
	f.doctors[d.ID.Hex()] = d
	return d.ID.Hex(), nil
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id string) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByEmail(_ context.Context, email string) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email || d.Username == username {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(_ context.Context, id string, fields map[string]any) (int64, error) {
	f.lastUpdate = fields
	d, ok := f.doctors[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["username"].(string); ok {
		d.Username = v
	}
	if v, ok := fields["email"].(string); ok {
		d.Email = v
	}
	return 1, nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.doctors[id]; !ok {
		return 0, nil
	}
	delete(f.doctors, id)
	return 1, nil
}

type fakePatientRepo struct {
	patients   map[string]*entity.Patient
	lastUpdate map[string]any
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]*entity.Patient)}
}

func (f *fakePatientRepo) Insert(_ context.Context, p *entity.Patient) (string, error) {
	p.ID = primitive.NewObjectID()
	f.patients[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, id, doctorID string) (*entity.Patient, error) {
	p, ok := f.patients[id]
	if !ok || p.DoctorID != doctorID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePatientRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.Email == email || p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindAll(_ context.Context, doctorID string) ([]entity.Patient, error) {
	out := []entity.Patient{}
	for _, p := range f.patients {
		if p.DoctorID == doctorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) Update(_ context.Context, id, doctorID string, fields map[string]any) (int64, error) {
	f.lastUpdate = fields
	p, ok := f.patients[id]
	if !ok || p.DoctorID != doctorID {
		return 0, nil
	}
	if v, ok := fields["username"].(string); ok {
		p.Username = v
	}
	if v, ok := fields["email"].(string); ok {
		p.Email = v
	}
	if v, ok := fields["PhoneNumber"].(string); ok {
		p.PhoneNumber = v
	}
	if v, ok := fields["age"].(int); ok {
		p.Age = v
	}
	if v, ok := fields["gender"].(string); ok {
		p.Gender = v
	}
	if v, ok := fields["weight"].(int); ok {
		p.Weight = v
	}
	return 1, nil
}

func (f *fakePatientRepo) Delete(_ context.Context, id, doctorID string) (int64, error) {
	p, ok := f.patients[id]
	if !ok || p.DoctorID != doctorID {
		return 0, nil
	}
	delete(f.patients, id)
	return 1, nil
}

type fakePrescriptionRepo struct {
	prescriptions map[string]*entity.Prescription
	lastUpdate    map[string]any
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[string]*entity.Prescription)}
}

func (f *fakePrescriptionRepo) Insert(_ context.Context, p *entity.Prescription) (string, error) {
	p.ID = primitive.NewObjectID()
	f.prescriptions[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (f *fakePrescriptionRepo) FindByID(_ context.Context, id, doctorID string) (*entity.Prescription, error) {
	p, ok := f.prescriptions[id]
	if !ok || p.DoctorID != doctorID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePrescriptionRepo) FindAll(_ context.Context, doctorID string) ([]entity.Prescription, error) {
	out := []entity.Prescription{}
	for _, p := range f.prescriptions {
		if p.DoctorID == doctorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrescriptionRepo) Update(_ context.Context, id, doctorID string, fields map[string]any) (int64, error) {
	f.lastUpdate = fields
	p, ok := f.prescriptions[id]
	if !ok || p.DoctorID != doctorID {
		return 0, nil
	}
	if v, ok := fields["symptoms"].(string); ok {
		p.Symptoms = v
	}
	if v, ok := fields["medicines"].([]entity.Medicine); ok {
		p.Medicines = v
	}
	if v, ok := fields["notes"].(string); ok {
		p.Notes = &v
	}
	if v, ok := fields["follow_up_days"].(int); ok {
		p.FollowUpDays = &v
	}
	return 1, nil
}

func (f *fakePrescriptionRepo) Delete(_ context.Context, id, doctorID string) (int64, error) {
	p, ok := f.prescriptions[id]
	if !ok || p.DoctorID != doctorID {
		return 0, nil
	}
	delete(f.prescriptions, id)
	return 1, nil
}
