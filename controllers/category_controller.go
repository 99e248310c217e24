package controllers

import (
	"net/http"

	"planousoapi/services"
	"planousoapi/utils"

	"github.com/gin-gonic/gin"
)

var categorySrv = services.NewCategoryService()

// SetCategoryService initializes the category service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetCategoryService(s services.CategoryService) {
	categorySrv = s
}

// listCategories returns the active category catalog
// @Summary List categories
// @Description Returns active equipment categories with their active items, in curated order
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Category list"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func listCategories(c *gin.Context) {
	categories, err := categorySrv.GetAllCategories()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// getCategoriesForForm returns the catalog shaped for the form frontend
// @Summary Get the form catalog
// @Description Returns category options plus a per-category item map
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Form catalog"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/form-data [get]
func getCategoriesForForm(c *gin.Context) {
	catalog, err := categorySrv.GetCategoriesForForm()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    catalog,
	})
}

// getItemsByCategory returns one category's active items
// @Summary List items of a category
// @Description Returns the active items of the category identified by value
// @Tags Categories
// @Produce json
// @Param value path string true "Category value"
// @Success 200 {object} map[string]interface{} "Item list"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories/{value}/items [get]
func getItemsByCategory(c *gin.Context) {
	items, err := categorySrv.GetItemsByCategory(c.Param("value"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// RegisterCategoryRoutes registers the category catalog routes.
func RegisterCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", listCategories)
		categories.GET("/form-data", getCategoriesForForm)
		categories.GET("/:value/items", getItemsByCategory)
	}
}
