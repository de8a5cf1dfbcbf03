package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	"github.com/MuhammadUmar248/clinic-backend/internal/domain/repository"
)

type PatientRepository struct {
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{col: db.Collection(PatientCollection)}
}

func (r *PatientRepository) Insert(ctx context.Context, p *entity.Patient) (string, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	p.ID = oid
	return oid.Hex(), nil
}

// FindByID looks up a patient within the doctor's scope. An existing patient
// owned by another doctor decodes to no document, same as an absent one.
func (r *PatientRepository) FindByID(ctx context.Context, id, doctorID string) (*entity.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	p := &entity.Patient{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "doctor_id": doctorID}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// FindByEmailOrUsername probes for duplicates across all doctors.
func (r *PatientRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Patient, error) {
	p := &entity.Patient{}
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}
	if err := r.col.FindOne(ctx, filter).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PatientRepository) FindAll(ctx context.Context, doctorID string) ([]entity.Patient, error) {
	cur, err := r.col.Find(ctx, bson.M{"doctor_id": doctorID}, options.Find().SetLimit(repository.FetchCap))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	out := make([]entity.Patient, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PatientRepository) Update(ctx context.Context, id, doctorID string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "doctor_id": doctorID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *PatientRepository) Delete(ctx context.Context, id, doctorID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "doctor_id": doctorID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ repository.PatientRepository = (*PatientRepository)(nil)
