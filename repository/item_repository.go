package repository

import (
	"planousoapi/config"
	"planousoapi/models"

	"gorm.io/gorm"
)

// ItemRepository provides read access to catalog items. Item lookup is
// always scoped by category: values are only unique per category.
type ItemRepository interface {
	// FindByCategoryID returns a category's active items in curated order.
	FindByCategoryID(tx *gorm.DB, categoryID uint) ([]models.Item, error)
	// GetByCategoryAndValue resolves an item value inside one category.
	// Returns gorm.ErrRecordNotFound when absent.
	GetByCategoryAndValue(tx *gorm.DB, categoryID uint, value string) (*models.Item, error)
	// Upsert inserts the item or refreshes label/order by (category, value).
	Upsert(tx *gorm.DB, item *models.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates an item repository bound to the global connection.
func NewItemRepository() ItemRepository {
	return &itemRepository{db: config.DB}
}

// NewItemRepositoryWithDB creates an item repository on an explicit
// connection, used by tests.
func NewItemRepositoryWithDB(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) FindByCategoryID(tx *gorm.DB, categoryID uint) ([]models.Item, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var items []models.Item
	if err := activeItemsOrdered(db.Where("category_id = ?", categoryID)).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetByCategoryAndValue(tx *gorm.DB, categoryID uint, value string) (*models.Item, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var item models.Item
	if err := db.Where("category_id = ? AND value = ?", categoryID, value).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Upsert(tx *gorm.DB, item *models.Item) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("category_id = ? AND value = ?", item.CategoryID, item.Value).
		Assign(map[string]interface{}{
			"label":  item.Label,
			"order":  item.Order,
			"active": true,
		}).
		FirstOrCreate(item).Error
}
