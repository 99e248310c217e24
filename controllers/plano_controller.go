package controllers

import (
	"net/http"
	"time"

	"planousoapi/pkg/logger"
	"planousoapi/services"
	"planousoapi/services/dto"
	"planousoapi/utils"

	"github.com/gin-gonic/gin"
)

var planoSrv = services.NewPlanoService()

// SetPlanoService initializes the plan service instance.
// Used for dependency injection in tests to provide mock implementations.
func SetPlanoService(s services.PlanoService) {
	planoSrv = s
}

// parsePlanoFilters reads the list/stats query predicates. Malformed
// values degrade to their defaults instead of failing the request.
func parsePlanoFilters(c *gin.Context) dto.PlanoFilters {
	filters := dto.PlanoFilters{
		Municipio:   c.Query("municipio"),
		CategoriaID: utils.QueryUintPtr(c, "categoriaId"),
		FormType:    c.Query("formType"),
		Status:      c.Query("status"),
		Cnpj:        c.Query("cnpj"),
		Page:        utils.QueryInt(c, "page", 1),
		Limit:       utils.QueryInt(c, "limit", 50),
	}
	if raw := c.Query("dataInicio"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filters.DataInicio = &t
		}
	}
	if raw := c.Query("dataFim"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filters.DataFim = &t
		}
	}
	return filters
}

// createPlano receives a new plan submission
// @Summary Submit a usage plan
// @Description Validates, extracts and persists a new equipment usage plan
// @Tags Planos
// @Accept json
// @Produce json
// @Param submission body object true "Submission with payloadFormatado and optional payloadOriginal"
// @Success 201 {object} map[string]interface{} "Plan created"
// @Failure 400 {object} map[string]interface{} "Invalid submission"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos [post]
func createPlano(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	plano, err := planoSrv.CreatePlano(c.Request.Context(), body)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	logger.Infof("Plano %s recebido de %s", plano.ID, plano.Municipio)
	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":             plano.ID,
			"nomeProponente": plano.NomeProponente,
			"cnpj":           plano.Cnpj,
			"municipio":      plano.Municipio,
			"formType":       plano.FormType,
			"status":         plano.Status,
			"createdAt":      plano.CreatedAt,
		},
		"message": "Plano de Uso recebido com sucesso",
	})
}

// updatePlano edits an existing plan
// @Summary Update a usage plan
// @Description Re-validates and rewrites a plan still under review; terminal plans are rejected
// @Tags Planos
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param submission body object true "Submission in the current or legacy shape"
// @Success 200 {object} map[string]interface{} "Plan updated"
// @Failure 400 {object} map[string]interface{} "Invalid submission"
// @Failure 403 {object} map[string]interface{} "Plan status blocks editing"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos/{id} [put]
func updatePlano(c *gin.Context) {
	id := c.Param("id")
	body, err := c.GetRawData()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	plano, err := planoSrv.UpdatePlano(c.Request.Context(), id, body)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":             plano.ID,
			"nomeProponente": plano.NomeProponente,
			"cnpj":           plano.Cnpj,
			"municipio":      plano.Municipio,
			"formType":       plano.FormType,
			"status":         plano.Status,
			"updatedAt":      plano.UpdatedAt,
		},
		"message": "Plano de Uso atualizado com sucesso",
	})
}

// getPlanoByID returns one plan with all relations
// @Summary Get a plan by id
// @Description Returns the full plan record including catalog relations and child collections
// @Tags Planos
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]interface{} "Plan found"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos/{id} [get]
func getPlanoByID(c *gin.Context) {
	plano, err := planoSrv.GetPlanoByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    plano,
	})
}

// listPlanos returns a filtered page of full plan records
// @Summary List plans
// @Description Returns plans filtered by municipio, categoriaId, formType, status, cnpj and creation date range
// @Tags Planos
// @Produce json
// @Param municipio query string false "Case-insensitive municipality substring"
// @Param categoriaId query int false "Category id"
// @Param formType query string false "Form type key"
// @Param status query string false "Plan status"
// @Param cnpj query string false "Exact CNPJ (digits only)"
// @Param dataInicio query string false "Creation date lower bound (YYYY-MM-DD)"
// @Param dataFim query string false "Creation date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} map[string]interface{} "Plan page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos [get]
func listPlanos(c *gin.Context) {
	result, err := planoSrv.GetPlanos(c.Request.Context(), parsePlanoFilters(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      result.Items,
			"pagination": result.Pagination,
		},
	})
}

// listPlanosLight returns a filtered page of plan summaries
// @Summary List plan summaries
// @Description Returns the light projection used by listing screens
// @Tags Planos
// @Produce json
// @Param municipio query string false "Case-insensitive municipality substring"
// @Param categoriaId query int false "Category id"
// @Param formType query string false "Form type key"
// @Param status query string false "Plan status"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} map[string]interface{} "Plan summary page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos/list [get]
func listPlanosLight(c *gin.Context) {
	result, err := planoSrv.GetPlanosLight(c.Request.Context(), parsePlanoFilters(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      result.Items,
			"pagination": result.Pagination,
		},
	})
}

// getPlanoStats returns aggregate plan statistics
// @Summary Get plan statistics
// @Description Returns totals and per-municipality, per-category and per-status groupings
// @Tags Planos
// @Produce json
// @Param municipio query string false "Case-insensitive municipality substring"
// @Param formType query string false "Form type key"
// @Param status query string false "Plan status"
// @Success 200 {object} map[string]interface{} "Statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/planos/stats [get]
func getPlanoStats(c *gin.Context) {
	stats, err := planoSrv.GetStats(c.Request.Context(), parsePlanoFilters(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// RegisterPlanoRoutes registers the plan intake and query routes.
// Fixed segments come before the id wildcard so /list and /stats are not
// swallowed by /:id.
func RegisterPlanoRoutes(rg *gin.RouterGroup) {
	planos := rg.Group("/planos")
	{
		planos.GET("/list", listPlanosLight)
		planos.GET("/stats", getPlanoStats)
		planos.GET("", listPlanos)
		planos.GET("/:id", getPlanoByID)
		planos.POST("", createPlano)
		planos.PUT("/:id", updatePlano)
	}
}
