package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type LocationHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocationHandler(db *gorm.DB) *LocationHandler {
	return &LocationHandler{db: db, log: logger.New("LocationHandler")}
}

type CreateLocationRequest struct {
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
}

type UpdateLocationRequest struct {
	LocationID uint   `json:"location_id" validate:"required"`
	Country    string `json:"country" validate:"required"`
	City       string `json:"city" validate:"required"`
}

type LocationIDRequest struct {
	LocationID uint `json:"location_id" validate:"required"`
}

func (h *LocationHandler) GetAllLocations(c echo.Context) error {
	var locations []models.Location
	if err := h.db.Find(&locations).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Locations", locations)
}

func (h *LocationHandler) GetLocationByID(c echo.Context) error {
	locationID, ok := queryID(c, "location_id")
	if !ok {
		return requiredField(c, "location_id")
	}

	location := &models.Location{}
	if err := h.db.First(location, locationID).Error; err != nil {
		return invalidField(c, "location_id", "The selected location_id is invalid.")
	}
	return response.OK(c, "Location details", location)
}

func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	location := models.Location{Country: req.Country, City: req.City}
	if err := h.db.Create(&location).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Location created successfully", nil)
}

func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var location models.Location
	if err := h.db.First(&location, req.LocationID).Error; err != nil {
		return invalidField(c, "location_id", "The selected location_id is invalid.")
	}

	if err := h.db.Model(&location).Updates(map[string]interface{}{
		"country": req.Country,
		"city":    req.City,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Location updated successfully", nil)
}

func (h *LocationHandler) SoftDeleteLocation(c echo.Context) error {
	var req LocationIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var location models.Location
	if err := h.db.First(&location, req.LocationID).Error; err != nil {
		return response.BadRequest(c, "Location already deleted")
	}
	if err := h.db.Delete(&location).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Location deleted successfully", nil)
}

func (h *LocationHandler) RestoreLocation(c echo.Context) error {
	var req LocationIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var location models.Location
	if err := models.WithTrashed(h.db).First(&location, req.LocationID).Error; err != nil {
		return invalidField(c, "location_id", "The selected location_id is invalid.")
	}
	if !location.IsTrashed() {
		return response.OK(c, "Location already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&location).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Location restored successfully", nil)
}
