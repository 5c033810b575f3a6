// Package filtering aplica os filtros opcionais de região e de faixa de
// valor sobre as transações já validadas, antes do enriquecimento.
package filtering

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

type Filter interface {
	Apply(transactions []domain.Transaction) []domain.Transaction
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Filter {
	return &Service{cfg: cfg}
}

// Apply mantém apenas as transações que atendem aos critérios
// configurados. Região vazia e limites zerados desligam o critério
// correspondente; sem nenhum critério ativo o conjunto passa intacto.
func (s *Service) Apply(transactions []domain.Transaction) []domain.Transaction {
	criteria := s.cfg.Filter
	if criteria.Region == "" && criteria.MinAmount <= 0 && criteria.MaxAmount <= 0 {
		return transactions
	}

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if criteria.Region != "" && !strings.EqualFold(transaction.Region, criteria.Region) {
			continue
		}

		amount := transaction.Amount()
		if criteria.MinAmount > 0 && amount < criteria.MinAmount {
			continue
		}
		if criteria.MaxAmount > 0 && amount > criteria.MaxAmount {
			continue
		}

		filtered = append(filtered, transaction)
	}

	logrus.Infof("Filtro aplicado: mantidas %d de %d transações", len(filtered), len(transactions))

	return filtered
}
