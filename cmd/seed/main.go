// Command seed loads the service category catalogue. Existing categories are
// updated in place by name, so it is safe to run repeatedly.
package main

import (
	"context"
	"time"

	"local-services-marketplace/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	categories := Categories()
	if err := app.CategoryUsecase.Seed(ctx, categories); err != nil {
		app.Log.Errorf("Error seeding categories: %v", err)
		return
	}

	app.Log.WithField("count", len(categories)).Info("Categories seeded successfully")
}
