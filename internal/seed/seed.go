// internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/realty-portal/applications-service/internal/repository"
	"github.com/realty-portal/applications-service/internal/types"
	"github.com/shopspring/decimal"
)

// SeedData fills an empty applications table with demo rows for local
// development. It returns the number of rows inserted.
func SeedData(ctx context.Context, repos *repository.Repositories) (int, error) {
	existing, err := repos.ApplicationRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	if existing > 0 {
		slog.Info("seed: applications already present, skipping", "count", existing)
		return 0, nil
	}

	now := time.Now().UTC()
	demo := []*repository.Application{
		demoApplication("Анна Смирнова", "anna@example.com", "sale", "apartment", "62.4", "Москва, ул. Тверская", "12500000", types.StatusNew, now.Add(-2*time.Hour)),
		demoApplication("Анна Смирнова", "anna@example.com", "valuation", "land", "1200", "Московская обл., Истра", "3400000", types.StatusInProgress, now.Add(-72*time.Hour)),
		demoApplication("Павел Орлов", "pavel@example.com", "rent", "house", "180", "Казань", "95000", types.StatusCompleted, now.Add(-240*time.Hour)),
		demoApplication("Павел Орлов", "pavel@example.com", "purchase", "commercial", "340.5", "Казань, центр", "41000000", types.StatusCancelled, now.Add(-480*time.Hour)),
	}

	for _, app := range demo {
		if err := repos.ApplicationRepo.Create(ctx, app); err != nil {
			return 0, fmt.Errorf("seed application for %s: %w", *app.Email, err)
		}
	}

	slog.Info("seed: demo applications created", "count", len(demo))
	return len(demo), nil
}

func demoApplication(name, email, operation, property, area, location, value string, status types.ApplicationStatus, createdAt time.Time) *repository.Application {
	s := string(status)
	description := fmt.Sprintf("Демо-заявка: %s, %s", operation, property)
	return &repository.Application{
		Name:           &name,
		Email:          &email,
		Phone:          ptr("+7 900 000-00-00"),
		OperationType:  &operation,
		PropertyType:   &property,
		Area:           decimal.NewNullDecimal(decimal.RequireFromString(area)),
		Location:       &location,
		Description:    &description,
		EstimatedValue: decimal.NewNullDecimal(decimal.RequireFromString(value)),
		Status:         &s,
		CreatedAt:      &createdAt,
	}
}

func ptr(s string) *string { return &s }
