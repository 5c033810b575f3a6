// Package enriching cruza as transações de venda com os metadados do
// catálogo externo de produtos.
package enriching

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

type Enricher interface {
	Enrich(transactions []*domain.Transaction) []*domain.EnrichedTransaction
}

type Service struct {
	cfg            *config.Config
	catalogService catalog.CatalogIntegrator
}

func NewService(cfg *config.Config, catalogService catalog.CatalogIntegrator) Enricher {
	return &Service{
		cfg:            cfg,
		catalogService: catalogService,
	}
}

// Enrich busca os metadados de cada produto único e aplica o resultado em
// todas as transações. Produtos sem correspondência no catálogo recebem o
// placeholder "Unknown" em vez de abortar a execução.
func (s *Service) Enrich(transactions []*domain.Transaction) []*domain.EnrichedTransaction {
	productInfoByID := s.fetchUniqueProducts(transactions)

	enriched := make([]*domain.EnrichedTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		row := &domain.EnrichedTransaction{Transaction: *transaction}

		numericID, err := ExtractNumericProductID(transaction.ProductID)
		if err == nil {
			if info, found := productInfoByID[numericID]; found && info != nil {
				row.APICategory = info.Category
				row.APIBrand = info.Brand
				row.APIRating = info.Rating
				row.APIMatch = true

				// O layout compacto não traz o nome do produto; usar o
				// título do catálogo
				if row.ProductName == "" {
					row.ProductName = info.Title
				}
			}
		}

		if !row.APIMatch {
			row.APICategory = domain.UnknownValue
			row.APIBrand = domain.UnknownValue
		}

		enriched = append(enriched, row)
	}

	return enriched
}

// fetchUniqueProducts consulta o catálogo uma única vez por produto. Por
// padrão as requisições são sequenciais; o número de workers é controlado
// por ENRICHMENT_MAX_CONCURRENT_REQUESTS.
func (s *Service) fetchUniqueProducts(transactions []*domain.Transaction) map[int]*domain.ProductInfo {
	uniqueIDs := make([]int, 0)
	seen := make(map[int]bool)

	for _, transaction := range transactions {
		numericID, err := ExtractNumericProductID(transaction.ProductID)
		if err != nil {
			logrus.WithField("product_id", transaction.ProductID).
				Warn("ID de produto sem parte numérica, enriquecimento ignorado")
			continue
		}

		if !seen[numericID] {
			seen[numericID] = true
			uniqueIDs = append(uniqueIDs, numericID)
		}
	}

	maxWorkers := s.cfg.Enrichment.MaxConcurrentRequests
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	requestDelay := time.Duration(s.cfg.Enrichment.RequestDelayMillis) * time.Millisecond

	var mu sync.Mutex
	productInfoByID := make(map[int]*domain.ProductInfo, len(uniqueIDs))

	wg := sync.WaitGroup{}
	ids := make(chan int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		ids <- id
	}
	close(ids)

	for worker := 0; worker < maxWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := range ids {
				info, err := s.catalogService.GetProductInfo(id)
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"product_id": id,
					}).Warn("Falha ao enriquecer produto, usando placeholder: ", err)
				}

				mu.Lock()
				productInfoByID[id] = info
				mu.Unlock()

				if requestDelay > 0 {
					time.Sleep(requestDelay)
				}
			}
		}()
	}

	wg.Wait()

	return productInfoByID
}

// ExtractNumericProductID extrai a parte numérica de um ID de produto do
// arquivo de vendas (P101 -> 101)
func ExtractNumericProductID(productID string) (int, error) {
	s := strings.TrimSpace(productID)
	if s == "" {
		return 0, fmt.Errorf("ID de produto vazio")
	}

	// Remover o prefixo P usado pelo sistema de vendas
	if s[0] == 'P' || s[0] == 'p' {
		s = s[1:]
	}

	digits := strings.Builder{}
	for _, ch := range s {
		if unicode.IsDigit(ch) {
			digits.WriteRune(ch)
		}
	}

	if digits.Len() == 0 {
		return 0, fmt.Errorf("ID de produto %q não contém parte numérica", productID)
	}

	numericID, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("ID de produto %q inválido: %w", productID, err)
	}

	return numericID, nil
}
