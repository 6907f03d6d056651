package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when a plant is created without them.
const (
	DefaultWaterFrequency = "Normal"
	DefaultSunlight       = "Full Sun"
	DefaultDiseases       = "None"
)

// Plant is a record embedded in its owning User. It has no life of its own:
// it is created, replaced and removed only through the owner's plant list.
type Plant struct {
	ID             uuid.UUID  // Stable identifier, generated once at creation; used for edit/delete addressing.
	Name           string     // e.g. "Tomato".
	Type           string     // Category, e.g. "Vegetable", "Fruit".
	SowingDate     time.Time  // When the plant was sown.
	HarvestDate    *time.Time // Expected or actual harvest date. Nil when unknown.
	WaterFrequency string     // e.g. "Daily", "Weekly".
	Sunlight       string     // e.g. "Shade", "Partial", "Full Sun".
	Diseases       string     // Known diseases, e.g. "Leaf Spot", "Rust".
	CareTips       string     // Free-form user notes.
}
