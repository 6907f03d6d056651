package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/errors"
	"sprout/internal/usecase"
)

func tomatoInput() *usecase.PlantInput {
	return &usecase.PlantInput{
		Name:       "Tomato",
		Type:       "Vegetable",
		SowingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CareTips:   "Stake early",
	}
}

func setupUserWithPlants(t *testing.T, svc testServices) string {
	t.Helper()
	require.NoError(t, svc.auth.Register(context.Background(), registerInput()))

	return "ada@example.com"
}

func TestPlantService_AddPlant(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	plants, err := svc.plants.AddPlant(ctx, email, tomatoInput())

	require.NoError(t, err)
	require.Len(t, plants, 1)
	p := plants[0]
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Tomato", p.Name)
	assert.Equal(t, "Vegetable", p.Type)
	assert.Equal(t, "Stake early", p.CareTips)
	// Defaults applied on creation.
	assert.Equal(t, entity.DefaultWaterFrequency, p.WaterFrequency)
	assert.Equal(t, entity.DefaultSunlight, p.Sunlight)
	assert.Equal(t, entity.DefaultDiseases, p.Diseases)
}

func TestPlantService_AddPlant_UnknownUser(t *testing.T) {
	svc := newTestServices()

	_, err := svc.plants.AddPlant(context.Background(), "ghost@example.com", tomatoInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPlantService_AddPlant_GeneratesUniqueIDsAndPreservesOrder(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	names := []string{"Tomato", "Basil", "Pepper"}
	var plants []entity.Plant
	for _, name := range names {
		input := tomatoInput()
		input.Name = name
		var err error
		plants, err = svc.plants.AddPlant(ctx, email, input)
		require.NoError(t, err)
	}

	require.Len(t, plants, 3)
	seen := make(map[uuid.UUID]bool)
	for i, p := range plants {
		assert.Equal(t, names[i], p.Name, "insertion order preserved")
		assert.False(t, seen[p.ID], "plant ids unique within the list")
		seen[p.ID] = true
	}
}

func TestPlantService_ListPlants(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	plants, err := svc.plants.ListPlants(ctx, email)
	require.NoError(t, err)
	assert.Empty(t, plants)

	_, err = svc.plants.AddPlant(ctx, email, tomatoInput())
	require.NoError(t, err)

	plants, err = svc.plants.ListPlants(ctx, email)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Tomato", plants[0].Name)
}

func TestPlantService_ListPlants_UnknownUser(t *testing.T) {
	svc := newTestServices()

	_, err := svc.plants.ListPlants(context.Background(), "ghost@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPlantService_EditPlant_FullReplace(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	added, err := svc.plants.AddPlant(ctx, email, tomatoInput())
	require.NoError(t, err)
	id := added[0].ID

	// The update omits careTips, waterFrequency, sunlight and diseases; a
	// full replace clears them rather than keeping the old values.
	updated, err := svc.plants.EditPlant(ctx, email, id.String(), &usecase.PlantInput{
		Name:       "Cherry Tomato",
		Type:       "Vegetable",
		SowingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, updated, 1)
	p := updated[0]
	assert.Equal(t, id, p.ID, "id is stable across edits")
	assert.Equal(t, "Cherry Tomato", p.Name)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.SowingDate)
	assert.Empty(t, p.CareTips)
	assert.Empty(t, p.WaterFrequency)
	assert.Empty(t, p.Sunlight)
	assert.Empty(t, p.Diseases)
	assert.Nil(t, p.HarvestDate)
}

func TestPlantService_EditPlant_NotFound(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	_, err := svc.plants.EditPlant(ctx, email, uuid.NewString(), tomatoInput())
	assert.True(t, errors.Is(err, domainerrors.ErrPlantNotFound))

	_, err = svc.plants.EditPlant(ctx, "ghost@example.com", uuid.NewString(), tomatoInput())
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPlantService_DeletePlant(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	added, err := svc.plants.AddPlant(ctx, email, tomatoInput())
	require.NoError(t, err)

	plants, err := svc.plants.DeletePlant(ctx, email, added[0].ID.String())

	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestPlantService_DeletePlant_MissingIDIsNoOp(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()
	email := setupUserWithPlants(t, svc)

	_, err := svc.plants.AddPlant(ctx, email, tomatoInput())
	require.NoError(t, err)

	plants, err := svc.plants.DeletePlant(ctx, email, uuid.NewString())

	require.NoError(t, err)
	require.Len(t, plants, 1, "list unchanged when id does not match")
}

func TestPlantService_DeletePlant_UnknownUser(t *testing.T) {
	svc := newTestServices()

	_, err := svc.plants.DeletePlant(context.Background(), "ghost@example.com", uuid.NewString())

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
