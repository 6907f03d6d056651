package handler

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"sprout/internal/delivery/http/response"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/usecase"
	"sprout/internal/util"
)

// PlantHandler holds dependencies for plant-record handlers.
type PlantHandler struct {
	uc     usecase.PlantUsecase
	logger *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{
		uc:     uc,
		logger: logger,
	}
}

// plantRequest is the validated boundary type for client-supplied plant
// data. Dates arrive as strings and are parsed here.
type plantRequest struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type" validate:"required"`
	SowingDate     string `json:"sowingDate" validate:"required"`
	HarvestDate    string `json:"harvestDate"`
	WaterFrequency string `json:"waterFrequency"`
	Sunlight       string `json:"sunlight"`
	Diseases       string `json:"diseases"`
	CareTips       string `json:"careTips"`
}

type addPlantRequest struct {
	Email string       `json:"email" validate:"required"`
	Plant plantRequest `json:"plant"`
}

type getPlantsRequest struct {
	Email string `json:"email" validate:"required"`
}

type editPlantRequest struct {
	Email   string `json:"email" validate:"required"`
	PlantID string `json:"plantId" validate:"required"`
	// Edits are full overwrites: required-field validation is skipped so
	// omitted fields clear the stored values.
	UpdatedData plantRequest `json:"updatedData" validate:"-"`
}

type deletePlantRequest struct {
	Email   string `json:"email" validate:"required"`
	PlantID string `json:"plantId" validate:"required"`
}

// plantView is the JSON shape of a plant record in responses.
type plantView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	SowingDate     string `json:"sowingDate"`
	HarvestDate    string `json:"harvestDate,omitempty"`
	WaterFrequency string `json:"waterFrequency"`
	Sunlight       string `json:"sunlight"`
	Diseases       string `json:"diseases"`
	CareTips       string `json:"careTips,omitempty"`
}

// AddPlant handles the add-plant request.
func (h *PlantHandler) AddPlant(c echo.Context) error {
	var req addPlantRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, domainerrors.ErrValidationFailed.Message())
	}

	input, err := req.Plant.toInput(true)
	if err != nil {
		return response.Fail(c, "Invalid sowing date")
	}

	plants, err := h.uc.AddPlant(c.Request().Context(), req.Email, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithPlants(c, "Plant added!", toPlantViews(plants))
}

// GetPlants handles the get-plants request.
func (h *PlantHandler) GetPlants(c echo.Context) error {
	var req getPlantsRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, domainerrors.ErrValidationFailed.Message())
	}

	plants, err := h.uc.ListPlants(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithPlants(c, "", toPlantViews(plants))
}

// EditPlant handles the edit-plant request. The update is a full field
// overwrite by contract, so the payload is deliberately not validated for
// required fields: omitted fields clear the stored values.
func (h *PlantHandler) EditPlant(c echo.Context) error {
	var req editPlantRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, domainerrors.ErrValidationFailed.Message())
	}

	input, _ := req.UpdatedData.toInput(false)

	plants, err := h.uc.EditPlant(c.Request().Context(), req.Email, req.PlantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithPlants(c, "Plant updated!", toPlantViews(plants))
}

// DeletePlant handles the delete-plant request.
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	var req deletePlantRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, domainerrors.ErrInvalidInput.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, domainerrors.ErrValidationFailed.Message())
	}

	plants, err := h.uc.DeletePlant(c.Request().Context(), req.Email, req.PlantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OKWithPlants(c, "Plant deleted", toPlantViews(plants))
}

// toInput converts the boundary type to the usecase input. In strict mode an
// unparsable sowing date is an error; otherwise it maps to the zero time,
// matching full-overwrite edit semantics.
func (r *plantRequest) toInput(strict bool) (*usecase.PlantInput, error) {
	input := &usecase.PlantInput{
		Name:           r.Name,
		Type:           r.Type,
		WaterFrequency: r.WaterFrequency,
		Sunlight:       r.Sunlight,
		Diseases:       r.Diseases,
		CareTips:       r.CareTips,
	}

	if r.SowingDate != "" {
		sowing, err := util.ParseDate(r.SowingDate)
		if err != nil {
			if strict {
				return nil, errors.Wrap(err, "invalid sowing date")
			}
		} else {
			input.SowingDate = sowing
		}
	} else if strict {
		return nil, errors.New("sowing date is required")
	}

	if r.HarvestDate != "" {
		if harvest, err := util.ParseDate(r.HarvestDate); err == nil {
			input.HarvestDate = &harvest
		} else if strict {
			return nil, errors.Wrap(err, "invalid harvest date")
		}
	}

	return input, nil
}

func toPlantViews(plants []entity.Plant) []plantView {
	views := make([]plantView, 0, len(plants))
	for _, p := range plants {
		views = append(views, plantView{
			ID:             p.ID.String(),
			Name:           p.Name,
			Type:           p.Type,
			SowingDate:     util.FormatDate(p.SowingDate),
			HarvestDate:    formatOptionalDate(p.HarvestDate),
			WaterFrequency: p.WaterFrequency,
			Sunlight:       p.Sunlight,
			Diseases:       p.Diseases,
			CareTips:       p.CareTips,
		})
	}

	return views
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return util.FormatDate(*t)
}
