// controllers/reservation.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListReservationsInput defines the pagination query parameters
type ListReservationsInput struct {
	Offset int `form:"offset,default=0" binding:"min=0"`
	Limit  int `form:"limit,default=100" binding:"min=1,max=100"`
}

// CreateReservationInput defines the expected JSON structure for creating a reservation
type CreateReservationInput struct {
	CustomerName         string    `json:"customer_name" binding:"required"`
	InCharge             *string   `json:"in_charge"`
	ReservationStartDate time.Time `json:"reservation_start_date" binding:"required"`
	ReservationEndDate   time.Time `json:"reservation_end_date" binding:"required"`
	TimePerReservation   int       `json:"time_per_reservation" binding:"required,min=1"` // in minutes
	Status               string    `json:"status" binding:"required"`
	Service              string    `json:"service" binding:"required"`
}

// UpdateReservationInput defines the expected JSON structure for updating a reservation
type UpdateReservationInput struct {
	CustomerName         *string    `json:"customer_name"`
	InCharge             *string    `json:"in_charge"`
	ReservationStartDate *time.Time `json:"reservation_start_date"`
	ReservationEndDate   *time.Time `json:"reservation_end_date"`
	TimePerReservation   *int       `json:"time_per_reservation" binding:"omitempty,min=1"`
	Status               *string    `json:"status"`
	Service              *string    `json:"service"`
}

// ReservationController handles the appointment reservation resource
type ReservationController struct {
	repo *repository.ReservationRepository
}

func NewReservationController(repo *repository.ReservationRepository) *ReservationController {
	return &ReservationController{repo: repo}
}

// GetReservations retrieves a page of the business's reservations
func (ctl *ReservationController) GetReservations(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	var input ListReservationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pagination: "+err.Error())
		return
	}

	reservations, err := ctl.repo.ListPage(businessID, input.Offset, input.Limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No reservations found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		}
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a specific reservation by ID
func (ctl *ReservationController) GetReservation(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	reservation, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CreateReservation creates a new reservation for the business
func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation := models.Reservation{
		CustomerName:         input.CustomerName,
		InCharge:             input.InCharge,
		ReservationStartDate: input.ReservationStartDate,
		ReservationEndDate:   input.ReservationEndDate,
		TimePerReservation:   input.TimePerReservation,
		Status:               input.Status,
		Service:              input.Service,
	}

	if err := ctl.repo.Create(businessID, &reservation); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation applies the provided fields to an existing reservation
func (ctl *ReservationController) UpdateReservation(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var input UpdateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerName != nil {
		reservation.CustomerName = *input.CustomerName
	}
	if input.InCharge != nil {
		reservation.InCharge = input.InCharge
	}
	if input.ReservationStartDate != nil {
		reservation.ReservationStartDate = *input.ReservationStartDate
	}
	if input.ReservationEndDate != nil {
		reservation.ReservationEndDate = *input.ReservationEndDate
	}
	if input.TimePerReservation != nil {
		reservation.TimePerReservation = *input.TimePerReservation
	}
	if input.Status != nil {
		reservation.Status = *input.Status
	}
	if input.Service != nil {
		reservation.Service = *input.Service
	}

	if err := ctl.repo.Save(reservation); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation permanently removes a reservation
func (ctl *ReservationController) DeleteReservation(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := ctl.repo.Delete(businessID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reservation")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
