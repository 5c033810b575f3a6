package catalog

import (
	"errors"
	"sync"

	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
)

type CatalogIntegrator interface {
	GetProductInfo(productID int) (*domain.ProductInfo, error)
}

// Service consulta o catálogo externo com um cache em memória por execução,
// evitando chamadas repetidas para o mesmo produto. O cache é protegido por
// mutex porque o enriquecimento pode rodar com múltiplos workers.
type Service struct {
	cfg    *config.Config
	Client catalogclient.Client

	mu    sync.Mutex
	cache map[int]*cacheEntry
}

type cacheEntry struct {
	product *domain.ProductInfo
	err     error
}

func New(cfg *config.Config, client catalogclient.Client) CatalogIntegrator {
	return &Service{
		cfg:    cfg,
		Client: client,
		cache:  make(map[int]*cacheEntry),
	}
}

// GetProductInfo busca os metadados de um produto, consultando o catálogo
// externo apenas na primeira vez que o ID aparece na execução
func (s *Service) GetProductInfo(productID int) (*domain.ProductInfo, error) {
	s.mu.Lock()
	if entry, found := s.cache[productID]; found {
		s.mu.Unlock()
		return entry.product, entry.err
	}
	s.mu.Unlock()

	product, err := s.Client.GetProductByID(productID)

	entry := &cacheEntry{}
	switch {
	case err == nil:
		entry.product = &domain.ProductInfo{
			ID:       product.ID,
			Title:    product.Title,
			Category: product.Category,
			Brand:    product.Brand,
			Price:    product.Price,
			Rating:   product.Rating,
		}
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		entry.err = runerrors.FromError(err, runerrors.ErrProductNotFound)
	default:
		entry.err = runerrors.FromError(err, runerrors.ErrCatalogFailure)
	}

	s.mu.Lock()
	s.cache[productID] = entry
	s.mu.Unlock()

	return entry.product, entry.err
}
