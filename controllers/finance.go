// controllers/finance.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateFinanceInput defines the expected JSON structure for creating a finance record
type CreateFinanceInput struct {
	Concept       string   `json:"concept" binding:"required"`
	Amount        *float64 `json:"amount" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Creator       string   `json:"creator" binding:"required"`
	ReservationID *uint    `json:"reservation_id"`
}

// UpdateFinanceInput defines the expected JSON structure for updating a finance record
type UpdateFinanceInput struct {
	Concept       *string  `json:"concept"`
	Amount        *float64 `json:"amount"`
	Type          *string  `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Creator       *string  `json:"creator"`
	ReservationID *uint    `json:"reservation_id"`
}

// FinanceController handles the cash-flow ledger resource. It also holds the
// reservation repository to validate the weak reservation reference.
type FinanceController struct {
	repo         *repository.FinanceRepository
	reservations *repository.ReservationRepository
}

func NewFinanceController(repo *repository.FinanceRepository, reservations *repository.ReservationRepository) *FinanceController {
	return &FinanceController{repo: repo, reservations: reservations}
}

// checkReservation verifies that a referenced reservation belongs to the
// caller's tenant. A cross-tenant id is reported as not found.
func (ctl *FinanceController) checkReservation(c *gin.Context, businessID string, reservationID uint) bool {
	if _, err := ctl.reservations.GetByID(businessID, reservationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return false
	}
	return true
}

// GetFinances retrieves all finance records of the business
func (ctl *FinanceController) GetFinances(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	finances, err := ctl.repo.List(businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No finances found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve finances")
		}
		return
	}

	c.JSON(http.StatusOK, finances)
}

// GetFinance retrieves a specific finance record by ID
func (ctl *FinanceController) GetFinance(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	finance, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Finances not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, finance)
}

// GetAnnualFinances returns the 12 monthly income/expense balances of a year.
// Months without records report a zero balance; the endpoint never 404s.
func (ctl *FinanceController) GetAnnualFinances(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year format")
		return
	}

	balances, err := ctl.repo.MonthlyBalances(businessID, year)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute annual finances")
		return
	}

	c.JSON(http.StatusOK, balances)
}

// CreateFinance creates a new finance record for the business
func (ctl *FinanceController) CreateFinance(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	var input CreateFinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ReservationID != nil && !ctl.checkReservation(c, businessID, *input.ReservationID) {
		return
	}

	finance := models.FinanceRecord{
		Concept:       input.Concept,
		Amount:        *input.Amount,
		Type:          input.Type,
		Creator:       input.Creator,
		ReservationID: input.ReservationID,
	}

	if err := ctl.repo.Create(businessID, &finance); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create finance record")
		return
	}

	c.JSON(http.StatusCreated, finance)
}

// UpdateFinance applies the provided fields to an existing finance record
func (ctl *FinanceController) UpdateFinance(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var input UpdateFinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	finance, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Finances not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ReservationID != nil && !ctl.checkReservation(c, businessID, *input.ReservationID) {
		return
	}

	if input.Concept != nil {
		finance.Concept = *input.Concept
	}
	if input.Amount != nil {
		finance.Amount = *input.Amount
	}
	if input.Type != nil {
		finance.Type = *input.Type
	}
	if input.Creator != nil {
		finance.Creator = *input.Creator
	}
	if input.ReservationID != nil {
		finance.ReservationID = input.ReservationID
	}

	if err := ctl.repo.Save(finance); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update finance record")
		return
	}

	c.JSON(http.StatusOK, finance)
}

// DeleteFinance permanently removes a finance record
func (ctl *FinanceController) DeleteFinance(c *gin.Context) {
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
			utils.RespondWithError(c, http.StatusNotFound, "Finances not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete finance record")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
