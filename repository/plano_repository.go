package repository

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"planousoapi/config"
	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/pkg/logger"
	"planousoapi/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanoRepository persists equipment-usage plans. Create and Update run
// inside a single transaction: the parent row and its three child
// collections either all land or none do.
type PlanoRepository interface {
	Create(ctx context.Context, data *dto.ExtractedPlanoData, payloadFormatado, payloadOriginal datatypes.JSON) (*models.FormPlano, error)
	// Update rewrites the normalized columns and replaces the child
	// collections wholesale. PayloadOriginal is only overwritten when the
	// caller provides one. Returns apperr.NotFoundError when id is unknown.
	Update(ctx context.Context, id string, data *dto.ExtractedPlanoData, payloadFormatado, payloadOriginal datatypes.JSON) (*models.FormPlano, error)
	// FindByID loads a plan with all relations. Returns
	// apperr.NotFoundError when absent.
	FindByID(ctx context.Context, id string) (*models.FormPlano, error)
	FindMany(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[models.FormPlano], error)
	FindManyLight(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[dto.PlanoResumo], error)
	GetStats(ctx context.Context, filters dto.PlanoFilters) (*dto.PlanoStats, error)
}

type planoRepository struct {
	db *gorm.DB
}

// NewPlanoRepository creates a plan repository bound to the global connection.
func NewPlanoRepository() PlanoRepository {
	return &planoRepository{db: config.DB}
}

// NewPlanoRepositoryWithDB creates a plan repository on an explicit
// connection, used by tests.
func NewPlanoRepositoryWithDB(db *gorm.DB) PlanoRepository {
	return &planoRepository{db: db}
}

// planoPreloads eagerly loads every relation of a plan.
func planoPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Categoria").
		Preload("Item").
		Preload("Profissionais").
		Preload("CadeiasValor").
		Preload("Equipamentos")
}

// resolveCatalogRefs maps the submitted category and item values onto
// foreign keys. Items are looked up inside the resolved category only;
// an item value from another category never matches. A value that does
// not exist yields a nil key — a plan with a stale catalog reference is
// still a valid plan — but any other storage failure aborts the
// enclosing transaction instead of committing silently nulled keys.
func resolveCatalogRefs(tx *gorm.DB, data *dto.ExtractedPlanoData) (categoriaID, itemID *uint, err error) {
	if data.CategoriaValue == "" {
		return nil, nil, nil
	}
	var category models.Category
	if err := tx.Where("value = ?", data.CategoriaValue).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		logger.Errorf("resolução de categoria %q falhou: %v", data.CategoriaValue, err)
		return nil, nil, err
	}
	categoriaID = &category.ID
	if data.ItemValue == "" {
		return categoriaID, nil, nil
	}
	var item models.Item
	if err := tx.Where("category_id = ? AND value = ?", category.ID, data.ItemValue).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return categoriaID, nil, nil
		}
		logger.Errorf("resolução de item %q falhou: %v", data.ItemValue, err)
		return categoriaID, nil, err
	}
	return categoriaID, &item.ID, nil
}

// buildChildren converts the extracted child entries into model rows
// bound to the plan id.
func buildChildren(planoID string, data *dto.ExtractedPlanoData) ([]models.Profissional, []models.CadeiaValor, []models.Equipamento) {
	profissionais := make([]models.Profissional, 0, len(data.Profissionais))
	for _, p := range data.Profissionais {
		profissionais = append(profissionais, models.Profissional{
			PlanoID:     planoID,
			Tipo:        p.Tipo,
			Instituicao: p.Instituicao,
		})
	}
	cadeias := make([]models.CadeiaValor, 0, len(data.CadeiasValor))
	for _, cv := range data.CadeiasValor {
		mercados, _ := json.Marshal(cv.Mercados)
		cadeias = append(cadeias, models.CadeiaValor{
			PlanoID:  planoID,
			Tipo:     cv.Tipo,
			Produto:  cv.Produto,
			Mercados: datatypes.JSON(mercados),
		})
	}
	equipamentos := make([]models.Equipamento, 0, len(data.Equipamentos))
	for _, eq := range data.Equipamentos {
		equipamentos = append(equipamentos, models.Equipamento{
			PlanoID:    planoID,
			Tipo:       eq.Tipo,
			Nome:       eq.Nome,
			Quantidade: eq.Quantidade,
		})
	}
	return profissionais, cadeias, equipamentos
}

// assignNormalized copies every normalized column from the extraction onto
// the row, including nil pointers. Catalog references that no longer
// resolve go back to null instead of keeping the stale key.
func assignNormalized(plano *models.FormPlano, data *dto.ExtractedPlanoData, categoriaID, itemID *uint) {
	plano.FormType = data.FormType
	plano.FormVersion = data.FormVersion
	plano.NomeProponente = data.NomeProponente
	plano.Cnpj = data.Cnpj
	plano.Municipio = data.Municipio
	plano.Telefone1 = data.Telefone1
	plano.Telefone2 = data.Telefone2
	plano.Email = data.Email
	plano.CategoriaID = categoriaID
	plano.ItemID = itemID
	plano.PossuiAgricultores = data.PossuiAgricultores
	plano.QuantidadeFamilias = data.QuantidadeFamilias
	plano.PublicoAgricultura = data.PublicoAgricultura
	plano.DeclaracaoVeracidade = data.DeclaracaoVeracidade
	plano.DataPropostaSubmissao = data.DataPropostaSubmissao
	plano.LocalProposta = data.LocalProposta
	plano.ResponsavelTecnico = data.ResponsavelTecnico
	plano.GestorNome = data.GestorNome
}

func (r *planoRepository) Create(ctx context.Context, data *dto.ExtractedPlanoData, payloadFormatado, payloadOriginal datatypes.JSON) (*models.FormPlano, error) {
	plano := &models.FormPlano{
		Status:           data.Status,
		PayloadFormatado: payloadFormatado,
		PayloadOriginal:  payloadOriginal,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoriaID, itemID, err := resolveCatalogRefs(tx, data)
		if err != nil {
			return err
		}
		assignNormalized(plano, data, categoriaID, itemID)
		if err := tx.Omit("Categoria", "Item").Create(plano).Error; err != nil {
			return err
		}
		return createChildren(tx, plano.ID, data)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, plano.ID)
}

func (r *planoRepository) Update(ctx context.Context, id string, data *dto.ExtractedPlanoData, payloadFormatado, payloadOriginal datatypes.JSON) (*models.FormPlano, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plano models.FormPlano
		if err := tx.Where("id = ?", id).First(&plano).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Plano")
			}
			return err
		}

		categoriaID, itemID, err := resolveCatalogRefs(tx, data)
		if err != nil {
			return err
		}
		assignNormalized(&plano, data, categoriaID, itemID)
		plano.PayloadFormatado = payloadFormatado
		if payloadOriginal != nil {
			plano.PayloadOriginal = payloadOriginal
		}

		if err := tx.Omit("Categoria", "Item", "Profissionais", "CadeiasValor", "Equipamentos").
			Save(&plano).Error; err != nil {
			return err
		}

		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return createChildren(tx, id, data)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func deleteChildren(tx *gorm.DB, planoID string) error {
	for _, model := range []interface{}{
		&models.Profissional{},
		&models.CadeiaValor{},
		&models.Equipamento{},
	} {
		if err := tx.Where("plano_id = ?", planoID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createChildren(tx *gorm.DB, planoID string, data *dto.ExtractedPlanoData) error {
	profissionais, cadeias, equipamentos := buildChildren(planoID, data)
	if len(profissionais) > 0 {
		if err := tx.Create(&profissionais).Error; err != nil {
			return err
		}
	}
	if len(cadeias) > 0 {
		if err := tx.Create(&cadeias).Error; err != nil {
			return err
		}
	}
	if len(equipamentos) > 0 {
		if err := tx.Create(&equipamentos).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *planoRepository) FindByID(ctx context.Context, id string) (*models.FormPlano, error) {
	var plano models.FormPlano
	if err := planoPreloads(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&plano).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Plano")
		}
		return nil, err
	}
	return &plano, nil
}

// applyPlanoFilters narrows a plan query. Municipio matches as a
// case-insensitive substring; the rest are exact or range matches.
func applyPlanoFilters(db *gorm.DB, filters dto.PlanoFilters) *gorm.DB {
	if filters.Municipio != "" {
		db = db.Where("LOWER(municipio) LIKE ?", "%"+strings.ToLower(filters.Municipio)+"%")
	}
	if filters.CategoriaID != nil {
		db = db.Where("categoria_id = ?", *filters.CategoriaID)
	}
	if filters.FormType != "" {
		db = db.Where("form_type = ?", filters.FormType)
	}
	if filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}
	if filters.Cnpj != "" {
		db = db.Where("cnpj = ?", filters.Cnpj)
	}
	if filters.DataInicio != nil {
		db = db.Where("created_at >= ?", *filters.DataInicio)
	}
	if filters.DataFim != nil {
		db = db.Where("created_at <= ?", *filters.DataFim)
	}
	return db
}

// normalizePagination applies the listing defaults.
func normalizePagination(filters *dto.PlanoFilters) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 50
	}
}

func buildPagination(total int64, filters dto.PlanoFilters) dto.Pagination {
	return dto.Pagination{
		Total: total,
		Page:  filters.Page,
		Limit: filters.Limit,
		Pages: int(math.Ceil(float64(total) / float64(filters.Limit))),
	}
}

func (r *planoRepository) FindMany(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[models.FormPlano], error) {
	normalizePagination(&filters)

	base := func() *gorm.DB {
		return applyPlanoFilters(r.db.WithContext(ctx).Model(&models.FormPlano{}), filters)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	planos := []models.FormPlano{}
	if err := planoPreloads(base()).
		Order("created_at DESC").
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		Find(&planos).Error; err != nil {
		return nil, err
	}

	return &dto.PaginatedPlanos[models.FormPlano]{
		Items:      planos,
		Pagination: buildPagination(total, filters),
	}, nil
}

func (r *planoRepository) FindManyLight(ctx context.Context, filters dto.PlanoFilters) (*dto.PaginatedPlanos[dto.PlanoResumo], error) {
	normalizePagination(&filters)

	base := func() *gorm.DB {
		return applyPlanoFilters(r.db.WithContext(ctx).Model(&models.FormPlano{}), filters)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	var planos []models.FormPlano
	if err := base().
		Select("id", "nome_proponente", "cnpj", "municipio", "status", "created_at", "categoria_id", "item_id").
		Preload("Categoria").
		Preload("Item").
		Order("created_at DESC").
		Offset((filters.Page - 1) * filters.Limit).
		Limit(filters.Limit).
		Find(&planos).Error; err != nil {
		return nil, err
	}

	resumos := make([]dto.PlanoResumo, 0, len(planos))
	for _, p := range planos {
		resumo := dto.PlanoResumo{
			ID:             p.ID,
			NomeProponente: p.NomeProponente,
			Cnpj:           p.Cnpj,
			Municipio:      p.Municipio,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt,
		}
		if p.Categoria != nil {
			resumo.Categoria = &dto.CatalogRef{Value: p.Categoria.Value, Label: p.Categoria.Label}
		}
		if p.Item != nil {
			resumo.Item = &dto.CatalogRef{Value: p.Item.Value, Label: p.Item.Label}
		}
		resumos = append(resumos, resumo)
	}

	return &dto.PaginatedPlanos[dto.PlanoResumo]{
		Items:      resumos,
		Pagination: buildPagination(total, filters),
	}, nil
}

// statsFilters keeps only the predicates the statistics view accepts.
func statsFilters(filters dto.PlanoFilters) dto.PlanoFilters {
	return dto.PlanoFilters{
		Municipio: filters.Municipio,
		FormType:  filters.FormType,
		Status:    filters.Status,
	}
}

func (r *planoRepository) GetStats(ctx context.Context, filters dto.PlanoFilters) (*dto.PlanoStats, error) {
	scoped := statsFilters(filters)
	base := func() *gorm.DB {
		return applyPlanoFilters(r.db.WithContext(ctx).Model(&models.FormPlano{}), scoped)
	}

	stats := &dto.PlanoStats{
		PorMunicipio: []dto.MunicipioStat{},
		PorCategoria: []dto.CategoriaStat{},
		PorStatus:    []dto.StatusStat{},
	}

	if err := base().Count(&stats.TotalPlanos).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("COALESCE(SUM(quantidade_familias), 0)").
		Scan(&stats.TotalFamilias).Error; err != nil {
		return nil, err
	}

	if err := base().
		Select("municipio, COUNT(*) AS count, COALESCE(SUM(quantidade_familias), 0) AS familias").
		Group("municipio").
		Order("count DESC").
		Scan(&stats.PorMunicipio).Error; err != nil {
		return nil, err
	}

	var porCategoria []dto.CategoriaStat
	if err := base().
		Select("categoria_id, COUNT(*) AS count").
		Where("categoria_id IS NOT NULL").
		Group("categoria_id").
		Order("count DESC").
		Scan(&porCategoria).Error; err != nil {
		return nil, err
	}
	if len(porCategoria) > 0 {
		ids := make([]uint, 0, len(porCategoria))
		for _, row := range porCategoria {
			ids = append(ids, row.CategoriaID)
		}
		var categories []models.Category
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
			return nil, err
		}
		labels := make(map[uint]string, len(categories))
		for _, c := range categories {
			labels[c.ID] = c.Label
		}
		for i := range porCategoria {
			if label, ok := labels[porCategoria[i].CategoriaID]; ok {
				porCategoria[i].Categoria = label
			} else {
				porCategoria[i].Categoria = "Não especificada"
			}
		}
		stats.PorCategoria = porCategoria
	}

	if err := base().
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&stats.PorStatus).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
