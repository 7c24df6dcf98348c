package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
)

// categoryService implements category operations.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure implementation matches interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category for a company.
func (s *categoryService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now().UTC()

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a category by its ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves all categories of a company.
func (s *categoryService) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories of company %s: %w", companyID, err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
