package repository

import (
	"planousoapi/config"
	"planousoapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommunityTypeRepository provides read access to the community-type
// lookup list.
type CommunityTypeRepository interface {
	FindAllActive(tx *gorm.DB) ([]models.CommunityType, error)
	// GetByID returns gorm.ErrRecordNotFound when absent.
	GetByID(tx *gorm.DB, id uint) (*models.CommunityType, error)
	// GetByValue returns gorm.ErrRecordNotFound when absent.
	GetByValue(tx *gorm.DB, value string) (*models.CommunityType, error)
	// Upsert inserts the community type or refreshes label/order by value.
	Upsert(tx *gorm.DB, communityType *models.CommunityType) error
}

type communityTypeRepository struct {
	db *gorm.DB
}

// NewCommunityTypeRepository creates a community-type repository bound to
// the global connection.
func NewCommunityTypeRepository() CommunityTypeRepository {
	return &communityTypeRepository{db: config.DB}
}

// NewCommunityTypeRepositoryWithDB creates a community-type repository on
// an explicit connection, used by tests.
func NewCommunityTypeRepositoryWithDB(db *gorm.DB) CommunityTypeRepository {
	return &communityTypeRepository{db: db}
}

func (r *communityTypeRepository) FindAllActive(tx *gorm.DB) ([]models.CommunityType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var types []models.CommunityType
	if err := db.Where("active = ?", true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *communityTypeRepository) GetByID(tx *gorm.DB, id uint) (*models.CommunityType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var communityType models.CommunityType
	if err := db.Where("id = ?", id).First(&communityType).Error; err != nil {
		return nil, err
	}
	return &communityType, nil
}

func (r *communityTypeRepository) GetByValue(tx *gorm.DB, value string) (*models.CommunityType, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var communityType models.CommunityType
	if err := db.Where("value = ?", value).First(&communityType).Error; err != nil {
		return nil, err
	}
	return &communityType, nil
}

func (r *communityTypeRepository) Upsert(tx *gorm.DB, communityType *models.CommunityType) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("value = ?", communityType.Value).
		Assign(map[string]interface{}{
			"label":  communityType.Label,
			"order":  communityType.Order,
			"active": true,
		}).
		FirstOrCreate(communityType).Error
}
