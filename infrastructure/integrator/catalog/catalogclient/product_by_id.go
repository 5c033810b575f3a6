package catalogclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	catalogdomain "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetProductByID consulta o catálogo externo por um produto específico
func (c *CatalogClient) GetProductByID(productID int) (*catalogdomain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Catalog.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base do catálogo: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "products", strconv.Itoa(productID))

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode == http.StatusNotFound {
		return nil, catalogdomain.ErrProductNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao catálogo falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	product := &catalogdomain.Product{}
	if err := json.NewDecoder(resp.Body).Decode(product); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta do catálogo: %w", err)
	}

	return product, nil
}
