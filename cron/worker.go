package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"apexcare/config"
	"apexcare/models"
	"apexcare/services/notification"
	"apexcare/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] triggering reminder for appointment %s -> %s", p.AppointmentID, p.Title)

		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
		}
		if err := notifSvc.SendPush(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}
