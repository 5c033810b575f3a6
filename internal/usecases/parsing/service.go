// Package parsing converte as linhas cruas do arquivo de vendas em
// transações tipadas, descartando as linhas malformadas sem abortar a
// execução.
package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

// Layout completo do export:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
const fullFieldCount = 8

// Layout compacto usado pelos exports antigos:
// TransactionID|ProductID|Quantity|UnitPrice|Date
const compactFieldCount = 5

type Parser interface {
	ParseLines(lines []string) ([]*domain.Transaction, []domain.RowWarning)
}

type Service struct {
	delimiter string
}

func NewService(cfg *config.Config) Parser {
	delimiter := cfg.Input.Delimiter
	if delimiter == "" {
		delimiter = "|"
	}

	return &Service{delimiter: delimiter}
}

// ParseLines valida e converte as linhas do arquivo. Linhas inválidas geram
// um aviso e são descartadas; o restante do arquivo continua sendo
// processado.
func (s *Service) ParseLines(lines []string) ([]*domain.Transaction, []domain.RowWarning) {
	transactions := make([]*domain.Transaction, 0, len(lines))
	warnings := make([]domain.RowWarning, 0)

	for i, line := range lines {
		lineNumber := i + 1

		// Alguns exports trazem a linha de cabeçalho, outros não
		if lineNumber == 1 && isHeader(line) {
			continue
		}

		transaction, err := s.parseLine(line)
		if err != nil {
			pErr, ok := err.(*runerrors.PipelineError)
			code := runerrors.ErrRowBadValue
			if ok {
				code = pErr.Code
			}

			warning := domain.RowWarning{
				LineNumber: lineNumber,
				Code:       code,
				Message:    err.Error(),
				RawLine:    line,
			}
			warnings = append(warnings, warning)

			logrus.WithFields(logrus.Fields{
				"line_number": lineNumber,
				"code":        code,
			}).Warn("Linha de venda descartada: ", err)
			continue
		}

		transactions = append(transactions, transaction)
	}

	return transactions, warnings
}

func (s *Service) parseLine(line string) (*domain.Transaction, error) {
	fields := strings.Split(line, s.delimiter)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	// O export completo tem 8 campos; os exports antigos usam o layout
	// compacto de 5 campos, sem nome de produto, cliente e região
	switch len(fields) {
	case fullFieldCount:
		return s.buildTransaction(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6], fields[7])
	case compactFieldCount:
		return s.buildTransaction(fields[0], fields[4], fields[1], "", fields[2], fields[3], "", "")
	default:
		return nil, runerrors.New(
			runerrors.ErrRowFieldCount,
			fmt.Sprintf("esperados %d ou %d campos, encontrados %d", fullFieldCount, compactFieldCount, len(fields)),
		)
	}
}

func (s *Service) buildTransaction(transactionID, rawDate, productID, productName, rawQuantity, rawUnitPrice, customerID, region string) (*domain.Transaction, error) {
	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return nil, runerrors.New(
			runerrors.ErrRowBadValue,
			fmt.Sprintf("data inválida %q", rawDate),
		)
	}

	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		return nil, runerrors.New(
			runerrors.ErrRowBadValue,
			fmt.Sprintf("quantidade inválida %q", rawQuantity),
		)
	}

	unitPrice, err := strconv.ParseFloat(rawUnitPrice, 64)
	if err != nil {
		return nil, runerrors.New(
			runerrors.ErrRowBadValue,
			fmt.Sprintf("preço unitário inválido %q", rawUnitPrice),
		)
	}

	if quantity < 0 || unitPrice < 0 {
		return nil, runerrors.New(
			runerrors.ErrRowBadValue,
			"quantidade e preço unitário não podem ser negativos",
		)
	}

	// Campos ausentes do layout compacto entram como Unknown, como nos
	// relatórios antigos
	if customerID == "" {
		customerID = domain.UnknownValue
	}
	if region == "" {
		region = domain.UnknownValue
	}

	return &domain.Transaction{
		TransactionID: transactionID,
		Date:          *date,
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    customerID,
		Region:        region,
	}, nil
}

// isHeader identifica a linha de cabeçalho opcional do export
func isHeader(line string) bool {
	return strings.HasPrefix(strings.ToLower(line), "transactionid")
}
