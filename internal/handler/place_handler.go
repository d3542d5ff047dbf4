package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "staybook/internal/errors"
	"staybook/internal/service"
)

// PlaceHandler handles listing endpoints.
type PlaceHandler struct {
	placeService service.PlaceService
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// PlaceRequest carries the full set of listing fields. No field is validated
// beyond presence; the storage layer stores absent fields as zero values.
type PlaceRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     string   `json:"checkIn"`
	CheckOut    string   `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       float64  `json:"price"`
}

func (r *PlaceRequest) fields() service.PlaceFields {
	return service.PlaceFields{
		Title:       r.Title,
		Address:     r.Address,
		Photos:      r.AddedPhotos,
		Description: r.Description,
		Perks:       r.Perks,
		ExtraInfo:   r.ExtraInfo,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		MaxGuests:   r.MaxGuests,
		Price:       r.Price,
	}
}

// Create godoc
// @Summary Create a place owned by the caller
// @Tags places
// @Accept json
// @Produce json
// @Param request body PlaceRequest true "Listing fields"
// @Success 200 {object} model.Place
// @Failure 501 {string} string "Error"
// @Router /places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	owner, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusNotImplemented, "Error")
	}

	var req PlaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}

	place, err := h.placeService.Create(c.Request().Context(), owner, req.fields())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, place)
}

// Update godoc
// @Summary Replace a place's fields, owner only
// @Tags places
// @Accept json
// @Produce json
// @Param request body PlaceRequest true "Place id plus listing fields"
// @Success 200 {string} string "ok"
// @Router /places [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	caller, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusOK, "null")
	}

	var req PlaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}

	if _, err := h.placeService.Update(c.Request().Context(), id, caller, req.fields()); err != nil {
		// A non-owner's update is a silent no-op: same body as the anonymous
		// path, stored fields untouched. Kept from the public contract even
		// though a 403 would be the obvious fix.
		if errors.Is(err, apperrors.ErrNotOwner) {
			return c.JSON(http.StatusOK, "null")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, "ok")
}

// Get godoc
// @Summary Fetch one place
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} model.Place
// @Failure 500 {object} map[string]string
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	place, err := h.placeService.Get(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, place)
}

// ListAll godoc
// @Summary List every place
// @Tags places
// @Produce json
// @Success 200 {array} model.Place
// @Router /places [get]
func (h *PlaceHandler) ListAll(c echo.Context) error {
	places, err := h.placeService.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, places)
}

// ListMine godoc
// @Summary List the caller's places
// @Tags places
// @Produce json
// @Success 200 {array} model.Place
// @Router /userplaces [get]
func (h *PlaceHandler) ListMine(c echo.Context) error {
	owner, ok := currentUserID(c)
	if !ok {
		return c.JSON(http.StatusOK, "null")
	}
	places, err := h.placeService.ListByOwner(c.Request().Context(), owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, places)
}
