package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/usecase"
)

// plantService implements the PlantUsecase interface.
//
// Every mutation follows the same shape: load the owning user by email,
// apply a pure transformation to the plant list, persist the whole list as
// one document write. Two concurrent mutations on the same user race with
// last-write-wins semantics, which the system accepts.
type plantService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewPlantService is the constructor for plantService.
func NewPlantService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.PlantUsecase {
	return &plantService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// AddPlant assigns a fresh unique id, appends the plant and persists the list.
func (srv *plantService) AddPlant(ctx context.Context, email string, input *usecase.PlantInput) ([]entity.Plant, error) {
	srv.logger.Info("Adding plant", "email", email, "name", input.Name)

	user, err := srv.findUser(ctx, email, "add plant failed")
	if err != nil {
		return nil, err
	}

	plant := plantFromInput(uuid.New(), input)
	applyDefaults(&plant)

	updated, err := srv.userRepo.ReplacePlants(ctx, email, append(user.Plants, plant))
	if err != nil {
		return nil, srv.wrapReplaceError(err, "failed to persist added plant")
	}
	srv.logger.Debug("Plant added", "email", email, "plantID", plant.ID)

	return updated.Plants, nil
}

// ListPlants returns the user's current plant list unmodified.
func (srv *plantService) ListPlants(ctx context.Context, email string) ([]entity.Plant, error) {
	user, err := srv.findUser(ctx, email, "list plants failed")
	if err != nil {
		return nil, err
	}

	return user.Plants, nil
}

// EditPlant overwrites every field of the matched plant with the input.
// Only the id survives; omitted fields become zero values by contract.
func (srv *plantService) EditPlant(ctx context.Context, email, plantID string, input *usecase.PlantInput) ([]entity.Plant, error) {
	srv.logger.Info("Editing plant", "email", email, "plantID", plantID)

	user, err := srv.findUser(ctx, email, "edit plant failed")
	if err != nil {
		return nil, err
	}

	idx := user.FindPlant(plantID)
	if idx < 0 {
		return nil, domainerrors.ErrPlantNotFound.WrapMessage("edit plant failed")
	}

	plants := make([]entity.Plant, len(user.Plants))
	copy(plants, user.Plants)
	plants[idx] = plantFromInput(plants[idx].ID, input)

	updated, err := srv.userRepo.ReplacePlants(ctx, email, plants)
	if err != nil {
		return nil, srv.wrapReplaceError(err, "failed to persist edited plant")
	}

	return updated.Plants, nil
}

// DeletePlant filters out the plant with the given id and persists the
// remaining list. A missing id leaves the list unchanged and still succeeds.
func (srv *plantService) DeletePlant(ctx context.Context, email, plantID string) ([]entity.Plant, error) {
	srv.logger.Info("Deleting plant", "email", email, "plantID", plantID)

	user, err := srv.findUser(ctx, email, "delete plant failed")
	if err != nil {
		return nil, err
	}

	plants := make([]entity.Plant, 0, len(user.Plants))
	for _, p := range user.Plants {
		if p.ID.String() == plantID {
			continue
		}
		plants = append(plants, p)
	}

	updated, err := srv.userRepo.ReplacePlants(ctx, email, plants)
	if err != nil {
		return nil, srv.wrapReplaceError(err, "failed to persist plant deletion")
	}

	return updated.Plants, nil
}

func (srv *plantService) findUser(ctx context.Context, email, failMsg string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(failMsg)
		}

		return nil, errors.Wrap(err, failMsg)
	}

	return user, nil
}

func (srv *plantService) wrapReplaceError(err error, msg string) error {
	// The user existed moments ago; a vanishing document between the read and
	// the write still surfaces as not-found rather than a server error.
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}

func plantFromInput(id uuid.UUID, input *usecase.PlantInput) entity.Plant {
	return entity.Plant{
		ID:             id,
		Name:           input.Name,
		Type:           input.Type,
		SowingDate:     input.SowingDate,
		HarvestDate:    input.HarvestDate,
		WaterFrequency: input.WaterFrequency,
		Sunlight:       input.Sunlight,
		Diseases:       input.Diseases,
		CareTips:       input.CareTips,
	}
}

// applyDefaults fills the defaulted fields on creation only. Edits are full
// overwrites and deliberately skip this.
func applyDefaults(p *entity.Plant) {
	if p.WaterFrequency == "" {
		p.WaterFrequency = entity.DefaultWaterFrequency
	}
	if p.Sunlight == "" {
		p.Sunlight = entity.DefaultSunlight
	}
	if p.Diseases == "" {
		p.Diseases = entity.DefaultDiseases
	}
}
