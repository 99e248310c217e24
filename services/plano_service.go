package services

import (
	"context"
	"encoding/json"
	"fmt"

	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/pkg/logger"
	"planousoapi/repository"
	"planousoapi/services/dto"
	"planousoapi/utils"

	"gorm.io/datatypes"
)

// PlanoService implements the plan intake pipeline: body validation,
// data extraction and persistence. Create only accepts the current
// submission shape; Update additionally falls back to the legacy
// {formVersion, answers} shape so older clients can still edit.
type PlanoService interface {
	CreatePlano(ctx context.Context, body []byte) (*models.FormPlano, error)
	UpdatePlano(ctx context.Context, id string, body []byte) (*models.FormPlano, error)
	GetPlanoByID(ctx context.Context, id string) (*models.FormPlano, error)
	GetPlanos(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[models.FormPlano], error)
	GetPlanosLight(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[dto.PlanoResumo], error)
	GetStats(ctx context.Context, filters dto.PlanoFilters) (*dto.PlanoStats, error)
}

type planoService struct {
	planoRepo repository.PlanoRepository
}

// NewPlanoService creates a plan service with the default repository.
func NewPlanoService() PlanoService {
	return &planoService{planoRepo: repository.NewPlanoRepository()}
}

// NewPlanoServiceWithDeps creates a plan service with an injected
// repository, used by tests.
func NewPlanoServiceWithDeps(planoRepo repository.PlanoRepository) PlanoService {
	return &planoService{planoRepo: planoRepo}
}

// planoSubmission is the current submission envelope. payloadFormatado is
// kept as raw JSON so the stored snapshot is byte-for-byte what the
// client sent.
type planoSubmission struct {
	PayloadFormatado json.RawMessage `json:"payloadFormatado" validate:"required"`
	PayloadOriginal  json.RawMessage `json:"payloadOriginal,omitempty"`
}

// legacySubmission is the pre-hybrid envelope: a free-form answer map
// tagged with the client form version.
type legacySubmission struct {
	FormVersion string          `json:"formVersion" validate:"required"`
	Answers     json.RawMessage `json:"answers" validate:"required"`
}

// parseCurrent validates the current submission shape and extracts the
// normalized plan data from it.
func parseCurrent(body []byte) (*dto.ExtractedPlanoData, datatypes.JSON, datatypes.JSON, error) {
	var submission planoSubmission
	if err := json.Unmarshal(body, &submission); err != nil {
		return nil, nil, nil, apperr.NewValidation("body", "JSON inválido")
	}
	if err := utils.ValidateStruct(&submission); err != nil {
		return nil, nil, nil, &apperr.ValidationError{Details: utils.ValidationDetails(err)}
	}

	var payload dto.PayloadFormatado
	if err := json.Unmarshal(submission.PayloadFormatado, &payload); err != nil {
		return nil, nil, nil, apperr.NewValidation("payloadFormatado", "estrutura inválida")
	}

	extracted, err := ExtractPlanoData(&payload)
	if err != nil {
		return nil, nil, nil, err
	}
	return extracted, datatypes.JSON(submission.PayloadFormatado), datatypes.JSON(submission.PayloadOriginal), nil
}

// parseLegacy validates the legacy submission shape. The answers document
// is stored verbatim as the formatted payload; the normalized columns get
// fixed placeholder values.
func parseLegacy(body []byte) (*dto.ExtractedPlanoData, datatypes.JSON, error) {
	var submission legacySubmission
	if err := json.Unmarshal(body, &submission); err != nil {
		return nil, nil, apperr.NewValidation("body", "JSON inválido")
	}
	if err := utils.ValidateStruct(&submission); err != nil {
		return nil, nil, &apperr.ValidationError{Details: utils.ValidationDetails(err)}
	}
	return legacyExtractedData(submission.FormVersion), datatypes.JSON(submission.Answers), nil
}

func (s *planoService) CreatePlano(ctx context.Context, body []byte) (*models.FormPlano, error) {
	extracted, payloadFormatado, payloadOriginal, err := parseCurrent(body)
	if err != nil {
		return nil, err
	}

	plano, err := s.planoRepo.Create(ctx, extracted, payloadFormatado, payloadOriginal)
	if err != nil {
		return nil, err
	}
	logger.Infof("Plano %s criado: %s / %s", plano.ID, plano.NomeProponente, plano.Municipio)
	return plano, nil
}

func (s *planoService) UpdatePlano(ctx context.Context, id string, body []byte) (*models.FormPlano, error) {
	existing, err := s.planoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Status gate comes before any payload validation: a terminal plan
	// rejects the edit even when the body is malformed.
	if existing.Status != models.StatusEmAnalise {
		return nil, apperr.Forbidden(fmt.Sprintf("Plano com status %s não pode ser editado", existing.Status))
	}

	extracted, payloadFormatado, payloadOriginal, currentErr := parseCurrent(body)
	if currentErr != nil {
		// Older clients still send {formVersion, answers}. When that
		// shape fails too, its error is the one reported.
		legacyExtracted, answers, legacyErr := parseLegacy(body)
		if legacyErr != nil {
			return nil, legacyErr
		}
		logger.Warnf("Plano %s atualizado no formato legado (%s)", id, legacyExtracted.FormVersion)
		extracted, payloadFormatado, payloadOriginal = legacyExtracted, answers, nil
	}

	plano, err := s.planoRepo.Update(ctx, id, extracted, payloadFormatado, payloadOriginal)
	if err != nil {
		return nil, err
	}
	logger.Infof("Plano %s atualizado", plano.ID)
	return plano, nil
}

func (s *planoService) GetPlanoByID(ctx context.Context, id string) (*models.FormPlano, error) {
	return s.planoRepo.FindByID(ctx, id)
}

func (s *planoService) GetPlanos(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[models.FormPlano], error) {
	return s.planoRepo.FindMany(ctx, filters)
}

func (s *planoService) GetPlanosLight(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[dto.PlanoResumo], error) {
	return s.planoRepo.FindManyLight(ctx, filters)
}

func (s *planoService) GetStats(ctx context.Context, filters dto.PlanoFilters) (*dto.PlanoStats, error) {
	return s.planoRepo.GetStats(ctx, filters)
}
