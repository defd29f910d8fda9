// utils/firebase.go
package utils

import (
	"context"
	"log"

	"menagio/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client.
// Push delivery is optional: a missing credentials file logs a warning and leaves
// FCMClient nil, notification sends become no-ops.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Printf("firebase: messaging disabled, error initializing app: %v", err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("firebase: messaging disabled, error getting Messaging client: %v", err)
		return
	}

	FCMClient = client
}
