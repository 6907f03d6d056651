package usecase

import (
	"context"
	"time"

	"sprout/internal/domain/entity"
)

// PlantUsecase defines the interface for plant-record CRUD over the list
// embedded in a user document. Every mutation returns the full updated list.
type PlantUsecase interface {
	// AddPlant assigns a fresh id, appends the plant and persists the list.
	AddPlant(ctx context.Context, email string, input *PlantInput) ([]entity.Plant, error)

	// ListPlants returns the user's current plant list unmodified.
	ListPlants(ctx context.Context, email string) ([]entity.Plant, error)

	// EditPlant overwrites every field of the matched plant with the input.
	// This is a full replace, not a merge: omitted fields are cleared.
	EditPlant(ctx context.Context, email, plantID string, input *PlantInput) ([]entity.Plant, error)

	// DeletePlant filters out the plant with the given id. A missing id is a
	// successful no-op.
	DeletePlant(ctx context.Context, email, plantID string) ([]entity.Plant, error)
}

// PlantInput carries client-supplied plant fields. Dates are already parsed
// at the API boundary.
type PlantInput struct {
	Name           string
	Type           string
	SowingDate     time.Time
	HarvestDate    *time.Time
	WaterFrequency string
	Sunlight       string
	Diseases       string
	CareTips       string
}
