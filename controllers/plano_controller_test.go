package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planousoapi/models"
	"planousoapi/repository"
	"planousoapi/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.CommunityType{},
		&models.FormPlano{},
		&models.Profissional{},
		&models.CadeiaValor{},
		&models.Equipamento{},
	))

	category := models.Category{Value: "leite", Label: "Equipamentos Leite", FormType: "default", Order: 1, Active: true}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Item{CategoryID: category.ID, Value: "ordenhadeira", Label: "Ordenhadeira mecânica", Order: 1, Active: true}).Error)
	require.NoError(t, db.Create(&models.CommunityType{Value: "assentamentos", Label: "Assentamentos", Order: 4, Active: true}).Error)

	SetPlanoService(services.NewPlanoServiceWithDeps(repository.NewPlanoRepositoryWithDB(db)))
	SetCategoryService(services.NewCategoryServiceWithDeps(
		repository.NewCategoryRepositoryWithDB(db),
		repository.NewItemRepositoryWithDB(db),
	))
	SetCommunityTypeService(services.NewCommunityTypeServiceWithDeps(
		repository.NewCommunityTypeRepositoryWithDB(db),
	))

	router := gin.New()
	api := router.Group("/api")
	RegisterPlanoRoutes(api)
	RegisterCategoryRoutes(api)
	RegisterCommunityTypeRoutes(api)
	return router, db
}

const submissionBody = `{
	"payloadFormatado": {
		"tipo_formulario": "Padrão",
		"informacoes_contato": {
			"nome_proponente": "Cooperativa Norte",
			"cnpj": "12.345.678/0001-95",
			"municipio": "Sinop"
		},
		"solicitacao": {"categoria": "leite", "item": "ordenhadeira"},
		"agricultores_familiares": {"possui": "Sim", "quantidade_familias": "42"},
		"publico_agricultura_familiar": "Sim",
		"declaracao_veracidade": true,
		"profissionais": {"detalhes": [{"tipo": "veterinario", "instituicao": "UFMT"}]},
		"local_data_proposta": {"local": "Sinop", "data": "2025-03-10"},
		"responsaveis": {"responsavel_tecnico": "Eng. Silva", "gestor": "Maria Souza"}
	},
	"payloadOriginal": {"step": 3}
}`

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestCreateAndFetchPlano(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Plano de Uso recebido com sucesso", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "12345678000195", data["cnpj"], "response carries the normalized CNPJ")
	assert.Equal(t, "EM_ANALISE", data["status"])
	assert.Equal(t, "default", data["formType"])
	id := data["id"].(string)
	require.NotEmpty(t, id)

	recorder = doRequest(router, http.MethodGet, "/api/planos/"+id, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body = decodeBody(t, recorder)
	plano := body["data"].(map[string]interface{})
	assert.Equal(t, "Sinop", plano["municipio"])
	assert.NotNil(t, plano["categoria"], "full reads embed the catalog relations")
	require.Len(t, plano["profissionais"], 1)
}

func TestCreatePlanoRejectsInvalidBody(t *testing.T) {
	router, db := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", `{"formVersion":"1.0","answers":{}}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["details"])

	var count int64
	require.NoError(t, db.Model(&models.FormPlano{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetPlanoNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/planos/nao-existe", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
}

func TestUpdateTerminalPlanoReturnsForbidden(t *testing.T) {
	router, db := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code)
	id := decodeBody(t, recorder)["data"].(map[string]interface{})["id"].(string)

	require.NoError(t, db.Model(&models.FormPlano{}).Where("id = ?", id).Update("status", models.StatusNegado).Error)

	recorder = doRequest(router, http.MethodPut, "/api/planos/"+id, submissionBody)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "NEGADO")
}

func TestStatsAndListRoutesAreNotShadowedByID(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/planos/stats", "")
	require.Equal(t, http.StatusOK, recorder.Code, "stats must resolve as a fixed route, not as an id")
	stats := decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["totalPlanos"])
	assert.Equal(t, float64(42), stats["totalFamilias"])

	recorder = doRequest(router, http.MethodGet, "/api/planos/list", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]interface{})
	require.Len(t, data["items"], 1)
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(50), pagination["limit"])
}

func TestListPlanosEnvelopeCarriesItemsAndPagination(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	for _, path := range []string{"/api/planos", "/api/planos/list"} {
		recorder = doRequest(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, recorder.Code, path)

		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"], path)
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok, "%s: data must be the {items, pagination} object", path)
		require.Contains(t, data, "items", path)
		require.Contains(t, data, "pagination", path)
		require.Len(t, data["items"], 1, path)

		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["total"], path)
		assert.Equal(t, float64(1), pagination["page"], path)
		assert.Equal(t, float64(1), pagination["pages"], path)
	}
}

func TestListPlanosWithFilters(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/planos?municipio=sino&limit=10", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]interface{})
	require.Len(t, data["items"], 1)

	recorder = doRequest(router, http.MethodGet, "/api/planos?municipio=inexistente", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	data = decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
}

func TestUpdatePlanoResponseCarriesUpdatedAt(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/planos", submissionBody)
	require.Equal(t, http.StatusCreated, recorder.Code)
	id := decodeBody(t, recorder)["data"].(map[string]interface{})["id"].(string)

	recorder = doRequest(router, http.MethodPut, "/api/planos/"+id, submissionBody)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	body := decodeBody(t, recorder)
	assert.Equal(t, "Plano de Uso atualizado com sucesso", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data, "updatedAt")
	assert.NotContains(t, data, "createdAt")
	assert.NotEmpty(t, data["updatedAt"])
}

func TestCategoryRoutes(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody(t, recorder)["data"], 1)

	recorder = doRequest(router, http.MethodGet, "/api/categories/form-data", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	catalog := decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.Contains(t, catalog, "categoryOptions")
	itemsMap := catalog["itemsMap"].(map[string]interface{})
	require.Len(t, itemsMap["leite"], 1)

	recorder = doRequest(router, http.MethodGet, "/api/categories/leite/items", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody(t, recorder)["data"], 1)

	recorder = doRequest(router, http.MethodGet, "/api/categories/inexistente/items", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCommunityTypeRoutes(t *testing.T) {
	router, db := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/community-types", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody(t, recorder)["data"], 1)

	recorder = doRequest(router, http.MethodGet, "/api/community-types/value/assentamentos", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.Equal(t, "Assentamentos", data["label"])

	var seeded models.CommunityType
	require.NoError(t, db.Where("value = ?", "assentamentos").First(&seeded).Error)
	recorder = doRequest(router, http.MethodGet, fmt.Sprintf("/api/community-types/%d", seeded.ID), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/community-types/99999", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/community-types/nao-numerico", "")
	require.Equal(t, http.StatusNotFound, recorder.Code, "malformed ids collapse into not found")
}
