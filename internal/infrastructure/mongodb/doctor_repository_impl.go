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

type DoctorRepository struct {
	col *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{col: db.Collection(DoctorCollection)}
}

func (r *DoctorRepository) Insert(ctx context.Context, d *entity.Doctor) (string, error) {
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicateKey
		}
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	d.ID = oid
	return oid.Hex(), nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DoctorRepository) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *DoctorRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Doctor, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}})
}

func (r *DoctorRepository) findOne(ctx context.Context, filter bson.M) (*entity.Doctor, error) {
	d := &entity.Doctor{}
	if err := r.col.FindOne(ctx, filter).Decode(d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(repository.FetchCap))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	out := make([]entity.Doctor, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, repository.ErrDuplicateKey
		}
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ repository.DoctorRepository = (*DoctorRepository)(nil)
