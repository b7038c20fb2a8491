// Package notification delivers push notifications to account holders
// over Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	userRepo "apexcare/database/repository/user"
	"apexcare/models"
	"apexcare/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService sends push notifications.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendBookingConfirmation(ctx context.Context, userID string, appointment *models.Appointment) error
}

// DefaultNotificationService implements NotificationService over FCM.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("push notifications are not configured")
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil || user.FCMToken == "" {
		return fmt.Errorf("user %s has no registered device token", userID)
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, userID string, appointment *models.Appointment) error {
	title := "Appointment confirmed"
	body := fmt.Sprintf("Your %s appointment with %s is booked for %s at %s.",
		appointment.Type, appointment.DoctorName, appointment.Date, appointment.Time)
	data := map[string]string{
		"appointmentId": appointment.ID,
		"date":          appointment.Date,
		"time":          appointment.Time,
	}
	return s.SendPush(ctx, userID, title, body, data)
}
