// Package controllers translates HTTP requests into repository calls. Every
// handler resolves the caller's tenant first and never trusts a business id
// from the payload.
package controllers

import (
	"net/http"
	"strconv"

	"backoffice-backend/utils"

	"github.com/gin-gonic/gin"
)

// currentBusinessID reads the tenant id the auth middleware stored in the
// context. A missing value means the middleware did not run.
func currentBusinessID(c *gin.Context) (string, bool) {
	businessID, exists := c.Get(utils.BusinessIDKey)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Business ID not found in context")
		return "", false
	}
	return businessID.(string), true
}

func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return 0, false
	}
	return uint(id), true
}
