package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"apexcare/database"
	"apexcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	return &MongoDoctorRepo{coll: database.Collection("doctors")}
}

// GetAll returns the full roster in insertion order. Directory filtering
// happens in the service so matching semantics stay in one place.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)
	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) GetByID(id int) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var doctor models.Doctor
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %d: %w", id, err)
	}
	return &doctor, nil
}

func (r *MongoDoctorRepo) Upsert(doctor *models.Doctor) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": doctor.ID}
	update := bson.M{"$set": doctor}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert doctor %d: %w", doctor.ID, err)
	}
	return nil
}
