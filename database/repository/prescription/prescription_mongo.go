package prescriptionRepo

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

// MongoPrescriptionRepo implements PrescriptionRepository using MongoDB.
type MongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo creates a new instance of PrescriptionRepository using MongoDB.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	return &MongoPrescriptionRepo{coll: database.Collection("prescriptions")}
}

func (r *MongoPrescriptionRepo) Create(prescription *models.Prescription) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, prescription); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *MongoPrescriptionRepo) GetByPatient(patientID string) ([]models.Prescription, error) {
	return r.find(bson.M{"patientId": patientID})
}

func (r *MongoPrescriptionRepo) GetByDoctor(doctorID int) ([]models.Prescription, error) {
	return r.find(bson.M{"doctorId": doctorID})
}

func (r *MongoPrescriptionRepo) find(filter bson.M) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "issuedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve prescriptions: %w", err)
	}
	defer cursor.Close(ctx)
	var prescriptions []models.Prescription
	for cursor.Next(ctx) {
		var p models.Prescription
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode prescription: %w", err)
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, nil
}
