package catalogclient

import (
	"net/http"
	"time"

	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
	"github.com/vfg2006/sales-analytics/internal/config"
)

type Client interface {
	GetProductByID(productID int) (*catalogdomain.Product, error)
}

type CatalogClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do catálogo de produtos
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
