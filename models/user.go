package models

import "time"

// User roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is an account holder: a patient, or a doctor with a linked roster entry.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	DoctorID     int       `bson:"doctorId,omitempty" json:"doctorId,omitempty"` // set when Role is "doctor"
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// UserRegistrationData is the payload accepted by the signup endpoint.
type UserRegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
	DoctorID int    `json:"doctorId"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
