// Package model contains the persistence representations of the domain
// entities and the mapping between the two.
package model

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sprout/internal/domain/entity"
)

// UserModel mirrors a document in the 'users' collection. Plants are
// embedded sub-documents, so the whole aggregate is stored and replaced as
// one document. The email carries a unique index.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FullName  string             `bson:"fullName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"` // bcrypt hash, never the plaintext
	Plants    []PlantModel       `bson:"plants"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// CollectionName is the Mongo collection holding user documents.
func (UserModel) CollectionName() string {
	return "users"
}

// PlantModel mirrors a plant sub-document embedded in its owning user.
type PlantModel struct {
	ID             string     `bson:"_id"`
	Name           string     `bson:"name"`
	Type           string     `bson:"type"`
	SowingDate     time.Time  `bson:"sowingDate"`
	HarvestDate    *time.Time `bson:"harvestDate,omitempty"`
	WaterFrequency string     `bson:"waterFrequency"`
	Sunlight       string     `bson:"sunlight"`
	Diseases       string     `bson:"diseases"`
	CareTips       string     `bson:"careTips,omitempty"`
}

// FromUserDomain maps a pure domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		FullName:  user.FullName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Plants:    FromPlantsDomain(user.Plants),
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.Password,
		Plants:       toPlantsDomain(m.Plants),
		CreatedAt:    m.CreatedAt,
	}
}

// FromPlantsDomain maps a plant list to its persistence form, preserving order.
func FromPlantsDomain(plants []entity.Plant) []PlantModel {
	models := make([]PlantModel, 0, len(plants))
	for _, p := range plants {
		models = append(models, PlantModel{
			ID:             p.ID.String(),
			Name:           p.Name,
			Type:           p.Type,
			SowingDate:     p.SowingDate,
			HarvestDate:    p.HarvestDate,
			WaterFrequency: p.WaterFrequency,
			Sunlight:       p.Sunlight,
			Diseases:       p.Diseases,
			CareTips:       p.CareTips,
		})
	}

	return models
}

func toPlantsDomain(models []PlantModel) []entity.Plant {
	plants := make([]entity.Plant, 0, len(models))
	for _, m := range models {
		// A sub-document id that fails to parse maps to uuid.Nil rather than
		// failing the whole aggregate read.
		id, err := uuid.Parse(m.ID)
		if err != nil {
			id = uuid.Nil
		}

		plants = append(plants, entity.Plant{
			ID:             id,
			Name:           m.Name,
			Type:           m.Type,
			SowingDate:     m.SowingDate,
			HarvestDate:    m.HarvestDate,
			WaterFrequency: m.WaterFrequency,
			Sunlight:       m.Sunlight,
			Diseases:       m.Diseases,
			CareTips:       m.CareTips,
		})
	}

	return plants
}
