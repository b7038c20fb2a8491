package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apexcare/database"
	"apexcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{coll: database.Collection("users")}
}

func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByEmail returns nil, nil when no account exists for the email so
// callers can distinguish "not found" from a lookup failure.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoUserRepo) UpdateFCMToken(id, token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"fcmToken": token}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to update fcm token for user %s: %w", id, err)
	}
	return nil
}

func (r *MongoUserRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
