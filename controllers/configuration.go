package controllers

import (
	"errors"
	"net/http"

	"backoffice-backend/models"
	"backoffice-backend/repository"
	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateConfigurationInput defines the expected JSON structure for creating a configuration
type CreateConfigurationInput struct {
	BusinessName string `json:"business_name" binding:"required"`
	Staff        string `json:"staff"`
}

// UpdateConfigurationInput defines the expected JSON structure for updating a configuration
type UpdateConfigurationInput struct {
	BusinessName *string `json:"business_name"`
	Staff        *string `json:"staff"`
}

// ConfigurationController handles the business configuration resource
type ConfigurationController struct {
	repo *repository.Repository[models.BusinessConfiguration]
}

func NewConfigurationController(repo *repository.Repository[models.BusinessConfiguration]) *ConfigurationController {
	return &ConfigurationController{repo: repo}
}

// GetConfigurations retrieves all configurations of the business
func (ctl *ConfigurationController) GetConfigurations(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	configurations, err := ctl.repo.List(businessID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Configuration not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve configuration")
		}
		return
	}

	c.JSON(http.StatusOK, configurations)
}

// GetConfiguration retrieves a specific configuration by ID
func (ctl *ConfigurationController) GetConfiguration(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	configuration, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Configuration not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, configuration)
}

// CreateConfiguration creates a new configuration for the business
func (ctl *ConfigurationController) CreateConfiguration(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}

	var input CreateConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	configuration := models.BusinessConfiguration{
		BusinessName: input.BusinessName,
		Staff:        input.Staff,
	}

	if err := ctl.repo.Create(businessID, &configuration); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create configuration")
		return
	}

	c.JSON(http.StatusCreated, configuration)
}

// UpdateConfiguration applies the provided fields to an existing configuration
func (ctl *ConfigurationController) UpdateConfiguration(c *gin.Context) {
	businessID, ok := currentBusinessID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var input UpdateConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	configuration, err := ctl.repo.GetByID(businessID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Configuration not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BusinessName != nil {
		configuration.BusinessName = *input.BusinessName
	}
	if input.Staff != nil {
		configuration.Staff = *input.Staff
	}

	if err := ctl.repo.Save(configuration); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update configuration")
		return
	}

	c.JSON(http.StatusOK, configuration)
}

// DeleteConfiguration permanently removes a configuration
func (ctl *ConfigurationController) DeleteConfiguration(c *gin.Context) {
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
			utils.RespondWithError(c, http.StatusNotFound, "Configuration not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete configuration")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
