package repository

import (
	"planousoapi/config"
	"planousoapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository provides read access to the category catalog.
// Categories referenced by plans are only ever soft-deactivated, so the
// write surface is limited to upserts used by seeding.
type CategoryRepository interface {
	// FindAllActive returns active categories with their active items,
	// both in curated order.
	FindAllActive(tx *gorm.DB) ([]models.Category, error)
	// GetByValue finds a category by its unique value, loading active
	// items in curated order. Returns gorm.ErrRecordNotFound when absent.
	GetByValue(tx *gorm.DB, value string) (*models.Category, error)
	// Upsert inserts the category or refreshes label/formType/order by value.
	Upsert(tx *gorm.DB, category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository bound to the global
// connection.
func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{db: config.DB}
}

// NewCategoryRepositoryWithDB creates a category repository on an explicit
// connection, used by tests.
func NewCategoryRepositoryWithDB(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func activeItemsOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
}

func (r *categoryRepository) FindAllActive(tx *gorm.DB) ([]models.Category, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var categories []models.Category
	if err := db.Where("active = ?", true).
		Preload("Items", activeItemsOrdered).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByValue(tx *gorm.DB, value string) (*models.Category, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var category models.Category
	if err := db.Preload("Items", activeItemsOrdered).
		Where("value = ?", value).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Upsert(tx *gorm.DB, category *models.Category) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("value = ?", category.Value).
		Assign(map[string]interface{}{
			"label":     category.Label,
			"form_type": category.FormType,
			"order":     category.Order,
			"active":    true,
		}).
		FirstOrCreate(category).Error
}
