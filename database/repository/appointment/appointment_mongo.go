package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{coll: database.Collection("appointments")}
}

func (r *MongoAppointmentRepo) Create(appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var appointment models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *MongoAppointmentRepo) GetByPatient(patientID string) ([]models.Appointment, error) {
	return r.find(bson.M{"patientId": patientID})
}

func (r *MongoAppointmentRepo) GetByDoctor(doctorID int) ([]models.Appointment, error) {
	return r.find(bson.M{"doctorId": doctorID})
}

func (r *MongoAppointmentRepo) GetConfirmedByDoctorDate(doctorID int, date string) ([]models.Appointment, error) {
	return r.find(bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   models.AppointmentConfirmed,
	})
}

func (r *MongoAppointmentRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)
	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
