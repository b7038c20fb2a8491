// utils/firebase.go
package utils

import (
	"context"
	"log"

	"apexcare/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client.
// Push notifications are optional: when no credentials file is configured
// the client stays nil and senders must treat that as "disabled".
func FirebaseInit() {
	if config.AppConfig.FirebaseCredentialsFile == "" {
		log.Println("firebase: no credentials file configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
