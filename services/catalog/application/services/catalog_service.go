package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ezzystore/partsledger/pkg/cache"
	catalogdomain "github.com/ezzystore/partsledger/services/catalog/domain"
	"github.com/ezzystore/partsledger/services/catalog/domain/models"
	"github.com/ezzystore/partsledger/services/catalog/domain/repositories"
	domainsvcs "github.com/ezzystore/partsledger/services/catalog/domain/services"
)

// PartInput carries the mutable fields of a Part across the application boundary.
type PartInput struct {
	PartNumber    string
	PartName      string
	Category      string
	Manufacturer  string
	Description   string
	SellingPrice  decimal.Decimal
	CostPrice     decimal.Decimal
	StockQuantity int
	MinStock      int
	Unit          string
	Location      string
}

// CatalogService orchestrates creation and retrieval of spare parts.
// Event publishing is handled by the repository layer (outbox pattern).
// Single-part reads are served from Redis cache when available.
type CatalogService struct {
	repo  repositories.PartRepository
	cache *pkgcache.PartCache
}

// NewCatalogService returns a CatalogService wired with the given repository and cache.
func NewCatalogService(repo repositories.PartRepository, partCache *pkgcache.PartCache) *CatalogService {
	return &CatalogService{repo: repo, cache: partCache}
}

// Create validates and persists a Part. The repository publishes PartCreatedEvent.
func (s *CatalogService) Create(ctx context.Context, in PartInput) (*models.Part, error) {
	number, err := models.NewPartNumber(in.PartNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPartNumber, err)
	}

	part, err := models.NewPart(
		number,
		in.PartName, in.Category, in.Manufacturer, in.Description,
		in.SellingPrice, in.CostPrice,
		in.StockQuantity, in.MinStock,
		in.Unit, in.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPart, err)
	}

	if err := s.repo.Save(ctx, part); err != nil {
		return nil, fmt.Errorf("save part: %w", err)
	}

	return part, nil
}

// GetByID retrieves a Part using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	if s.cache != nil {
		// A miss and a cache failure both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToPart(cached), nil
		}
	}

	part, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get part: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), partToCached(part))
		}()
	}

	return part, nil
}

// List returns every part, optionally filtered by a case-insensitive substring
// match against part number, name, and category (all matches, table-filter
// variant of the search helper).
func (s *CatalogService) List(ctx context.Context, query string) ([]*models.Part, error) {
	parts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return domainsvcs.FilterParts(parts, query), nil
}

// Search is the incremental-search variant used by selection dropdowns:
// part number and name only, capped at the first DropdownLimit matches.
func (s *CatalogService) Search(ctx context.Context, query string) ([]*models.Part, error) {
	parts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	return domainsvcs.SearchParts(parts, query), nil
}

// LowStock returns the parts whose stock has fallen below their minimum.
func (s *CatalogService) LowStock(ctx context.Context) ([]*models.Part, error) {
	parts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return domainsvcs.LowStockParts(parts), nil
}

// Update replaces the mutable fields of an existing Part.
// Last write wins; concurrent editors are not coordinated.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, in PartInput) (*models.Part, error) {
	number, err := models.NewPartNumber(in.PartNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPartNumber, err)
	}

	part, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get part: %w", err)
	}

	if in.PartName == "" {
		return nil, fmt.Errorf("%w: part name must not be blank", catalogdomain.ErrInvalidPart)
	}
	if in.SellingPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", catalogdomain.ErrInvalidPart)
	}
	if in.StockQuantity < 0 || in.MinStock < 0 {
		return nil, fmt.Errorf("%w: stock levels must not be negative", catalogdomain.ErrInvalidPart)
	}

	part.PartNumber = number
	part.PartName = in.PartName
	part.Category = in.Category
	part.Manufacturer = in.Manufacturer
	part.Description = in.Description
	part.SellingPrice = in.SellingPrice
	part.CostPrice = in.CostPrice
	part.StockQuantity = in.StockQuantity
	part.MinStock = in.MinStock
	part.Unit = in.Unit
	part.Location = in.Location
	if part.Unit == "" {
		part.Unit = "piece"
	}

	if err := s.repo.Update(ctx, part); err != nil {
		return nil, fmt.Errorf("update part: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return part, nil
}

// Delete removes a part by ID and drops its cache entry.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

func cachedToPart(c *pkgcache.CachedPart) *models.Part {
	return &models.Part{
		ID:            c.ID,
		PartNumber:    models.PartNumber(c.PartNumber),
		PartName:      c.PartName,
		Category:      c.Category,
		Manufacturer:  c.Manufacturer,
		Description:   c.Description,
		SellingPrice:  c.SellingPrice,
		CostPrice:     c.CostPrice,
		StockQuantity: c.StockQuantity,
		MinStock:      c.MinStock,
		Unit:          c.Unit,
		Location:      c.Location,
		CreatedAt:     c.CreatedAt,
	}
}

func partToCached(p *models.Part) *pkgcache.CachedPart {
	return &pkgcache.CachedPart{
		ID:            p.ID,
		PartNumber:    p.PartNumber.String(),
		PartName:      p.PartName,
		Category:      p.Category,
		Manufacturer:  p.Manufacturer,
		Description:   p.Description,
		SellingPrice:  p.SellingPrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		Unit:          p.Unit,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt,
	}
}
