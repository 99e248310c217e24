package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func newTestPlanoService(t *testing.T) (PlanoService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)

	category := models.Category{Value: "leite", Label: "Equipamentos Leite", FormType: "default", Order: 1, Active: true}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Item{CategoryID: category.ID, Value: "ordenhadeira", Label: "Ordenhadeira mecânica", Order: 1, Active: true}).Error)

	return NewPlanoServiceWithDeps(repository.NewPlanoRepositoryWithDB(db)), db
}

func currentBody(t *testing.T) []byte {
	t.Helper()
	formatted, err := json.Marshal(fullPayload())
	require.NoError(t, err)
	return []byte(fmt.Sprintf(`{"payloadFormatado":%s,"payloadOriginal":{"step":3}}`, formatted))
}

func TestCreatePlanoPersistsSubmission(t *testing.T) {
	svc, _ := newTestPlanoService(t)

	plano, err := svc.CreatePlano(context.Background(), currentBody(t))
	require.NoError(t, err)

	assert.Equal(t, models.StatusEmAnalise, plano.Status)
	assert.Equal(t, "12345678000195", plano.Cnpj)
	assert.Equal(t, "2.0", plano.FormVersion)
	assert.NotNil(t, plano.CategoriaID)
	assert.NotNil(t, plano.ItemID)
	assert.JSONEq(t, `{"step":3}`, string(plano.PayloadOriginal))

	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(plano.PayloadFormatado, &stored))
	assert.Equal(t, "Padrão", stored["tipo_formulario"], "formatted payload is stored verbatim")
}

func TestCreatePlanoRejectsLegacyShape(t *testing.T) {
	svc, db := newTestPlanoService(t)

	_, err := svc.CreatePlano(context.Background(), []byte(`{"formVersion":"1.0","answers":{"q1":"sim"}}`))
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr, "create accepts only the current shape")

	var count int64
	require.NoError(t, db.Model(&models.FormPlano{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePlanoRejectsMalformedJSON(t *testing.T) {
	svc, _ := newTestPlanoService(t)

	_, err := svc.CreatePlano(context.Background(), []byte(`{"payloadFormatado":`))
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreatePlanoRejectsMissingSections(t *testing.T) {
	svc, _ := newTestPlanoService(t)

	payload := fullPayload()
	payload.Responsaveis = nil
	formatted, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = svc.CreatePlano(context.Background(), []byte(fmt.Sprintf(`{"payloadFormatado":%s}`, formatted)))
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Details, 1)
	assert.Equal(t, "payloadFormatado.responsaveis", validationErr.Details[0].Field)
}

func TestUpdatePlanoStatusGateBlocksTerminal(t *testing.T) {
	svc, db := newTestPlanoService(t)
	ctx := context.Background()

	created, err := svc.CreatePlano(ctx, currentBody(t))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.FormPlano{}).Where("id = ?", created.ID).Update("status", models.StatusAprovado).Error)

	_, err = svc.UpdatePlano(ctx, created.ID, currentBody(t))
	var forbidden *apperr.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Contains(t, forbidden.Message, models.StatusAprovado, "error names the blocking status")

	// The gate fires before any payload validation.
	_, err = svc.UpdatePlano(ctx, created.ID, []byte(`corpo invalido`))
	require.ErrorAs(t, err, &forbidden)

	reloaded, err := svc.GetPlanoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Municipio, reloaded.Municipio, "blocked updates leave the record untouched")
}

func TestUpdatePlanoNegadoAlsoBlocked(t *testing.T) {
	svc, db := newTestPlanoService(t)
	ctx := context.Background()

	created, err := svc.CreatePlano(ctx, currentBody(t))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.FormPlano{}).Where("id = ?", created.ID).Update("status", models.StatusNegado).Error)

	_, err = svc.UpdatePlano(ctx, created.ID, currentBody(t))
	var forbidden *apperr.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Contains(t, forbidden.Message, models.StatusNegado)
}

func TestUpdatePlanoCurrentShape(t *testing.T) {
	svc, _ := newTestPlanoService(t)
	ctx := context.Background()

	created, err := svc.CreatePlano(ctx, currentBody(t))
	require.NoError(t, err)

	payload := fullPayload()
	payload.InformacoesContato.Municipio = "Sorriso"
	formatted, err := json.Marshal(payload)
	require.NoError(t, err)

	updated, err := svc.UpdatePlano(ctx, created.ID, []byte(fmt.Sprintf(`{"payloadFormatado":%s}`, formatted)))
	require.NoError(t, err)
	assert.Equal(t, "Sorriso", updated.Municipio)
	assert.JSONEq(t, `{"step":3}`, string(updated.PayloadOriginal), "payloadOriginal survives updates that omit it")
}

func TestUpdatePlanoLegacyFallback(t *testing.T) {
	svc, _ := newTestPlanoService(t)
	ctx := context.Background()

	created, err := svc.CreatePlano(ctx, currentBody(t))
	require.NoError(t, err)
	require.NotEmpty(t, created.Profissionais)

	legacy := []byte(`{"formVersion":"1.0","answers":{"pergunta_1":"Sim","pergunta_2":"Cooperativa"}}`)
	updated, err := svc.UpdatePlano(ctx, created.ID, legacy)
	require.NoError(t, err)

	assert.Equal(t, "1.0", updated.FormVersion)
	assert.Equal(t, "default", updated.FormType)
	assert.Equal(t, "Não especificado", updated.NomeProponente)
	assert.Equal(t, "00000000000000", updated.Cnpj)
	assert.JSONEq(t, `{"pergunta_1":"Sim","pergunta_2":"Cooperativa"}`, string(updated.PayloadFormatado), "legacy answers are stored verbatim")
	assert.Empty(t, updated.Profissionais, "legacy updates reset the child collections")
	assert.Empty(t, updated.CadeiasValor)
	assert.Empty(t, updated.Equipamentos)
	assert.Nil(t, updated.CategoriaID)
}

func TestUpdatePlanoSurfacesLegacyErrorWhenBothShapesFail(t *testing.T) {
	svc, _ := newTestPlanoService(t)
	ctx := context.Background()

	created, err := svc.CreatePlano(ctx, currentBody(t))
	require.NoError(t, err)

	_, err = svc.UpdatePlano(ctx, created.ID, []byte(`{"qualquer":"coisa"}`))
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Details)
	assert.Contains(t, validationErr.Details[0].Field, "formVersion", "the legacy shape error is the one reported")
}

func TestUpdatePlanoUnknownID(t *testing.T) {
	svc, _ := newTestPlanoService(t)

	_, err := svc.UpdatePlano(context.Background(), "nao-existe", currentBody(t))
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
