package services

import (
	"errors"

	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/repository"
	"planousoapi/services/dto"

	"gorm.io/gorm"
)

// CategoryService serves the equipment category catalog.
type CategoryService interface {
	GetAllCategories() ([]models.Category, error)
	// GetCategoriesForForm returns the catalog in the shape the form
	// frontend consumes: option list plus a per-category item map.
	GetCategoriesForForm() (*dto.FormCatalog, error)
	// GetItemsByCategory lists the active items of one category value.
	GetItemsByCategory(value string) ([]models.Item, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
}

// NewCategoryService creates a category service with the default repositories.
func NewCategoryService() CategoryService {
	return &categoryService{
		categoryRepo: repository.NewCategoryRepository(),
		itemRepo:     repository.NewItemRepository(),
	}
}

// NewCategoryServiceWithDeps creates a category service with injected
// repositories, used by tests.
func NewCategoryServiceWithDeps(categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, itemRepo: itemRepo}
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAllActive(nil)
}

func (s *categoryService) GetCategoriesForForm() (*dto.FormCatalog, error) {
	categories, err := s.categoryRepo.FindAllActive(nil)
	if err != nil {
		return nil, err
	}

	catalog := &dto.FormCatalog{
		CategoryOptions: make([]dto.CatalogRef, 0, len(categories)),
		ItemsMap:        make(map[string][]dto.CatalogRef, len(categories)),
	}
	for _, category := range categories {
		catalog.CategoryOptions = append(catalog.CategoryOptions, dto.CatalogRef{
			Value: category.Value,
			Label: category.Label,
		})
		items := make([]dto.CatalogRef, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, dto.CatalogRef{Value: item.Value, Label: item.Label})
		}
		catalog.ItemsMap[category.Value] = items
	}
	return catalog, nil
}

func (s *categoryService) GetItemsByCategory(value string) ([]models.Item, error) {
	category, err := s.categoryRepo.GetByValue(nil, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Categoria")
		}
		return nil, err
	}
	return s.itemRepo.FindByCategoryID(nil, category.ID)
}
