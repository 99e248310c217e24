package controllers

import (
	"net/http"

	"planousoapi/pkg/apperr"
	"planousoapi/services"
	"planousoapi/utils"

	"github.com/gin-gonic/gin"
)

var communityTypeSrv = services.NewCommunityTypeService()

// SetCommunityTypeService initializes the community-type service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCommunityTypeService(s services.CommunityTypeService) {
	communityTypeSrv = s
}

// listCommunityTypes returns the active community types
// @Summary List community types
// @Description Returns active community types in curated order
// @Tags CommunityTypes
// @Produce json
// @Success 200 {object} map[string]interface{} "Community type list"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/community-types [get]
func listCommunityTypes(c *gin.Context) {
	types, err := communityTypeSrv.GetAllCommunityTypes()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    types,
	})
}

// getCommunityTypeByID returns one community type by numeric id
// @Summary Get a community type by id
// @Tags CommunityTypes
// @Produce json
// @Param id path int true "Community type ID"
// @Success 200 {object} map[string]interface{} "Community type"
// @Failure 404 {object} map[string]interface{} "Community type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/community-types/{id} [get]
func getCommunityTypeByID(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		// Malformed and unknown ids look the same to the caller.
		utils.ErrorResponse(c, apperr.NotFound("Tipo de comunidade"))
		return
	}

	communityType, err := communityTypeSrv.GetCommunityTypeByID(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    communityType,
	})
}

// getCommunityTypeByValue returns one community type by value
// @Summary Get a community type by value
// @Tags CommunityTypes
// @Produce json
// @Param value path string true "Community type value"
// @Success 200 {object} map[string]interface{} "Community type"
// @Failure 404 {object} map[string]interface{} "Community type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/community-types/value/{value} [get]
func getCommunityTypeByValue(c *gin.Context) {
	communityType, err := communityTypeSrv.GetCommunityTypeByValue(c.Param("value"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    communityType,
	})
}

// RegisterCommunityTypeRoutes registers the community-type lookup routes.
func RegisterCommunityTypeRoutes(rg *gin.RouterGroup) {
	communityTypes := rg.Group("/community-types")
	{
		communityTypes.GET("", listCommunityTypes)
		communityTypes.GET("/value/:value", getCommunityTypeByValue)
		communityTypes.GET("/:id", getCommunityTypeByID)
	}
}
