package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
)

func newTestParser() Parser {
	cfg := &config.Config{}
	cfg.Input.Delimiter = "|"
	return NewService(cfg)
}

func TestService_ParseLines(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name          string
		lines         []string
		expectedValid int
		expectedSkips int
		expectedCode  string
	}{
		{
			name:          "Linha válida é convertida em transação",
			lines:         []string{"T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul"},
			expectedValid: 1,
			expectedSkips: 0,
		},
		{
			name: "Linha de cabeçalho é ignorada sem gerar aviso",
			lines: []string{
				"TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region",
				"T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul",
			},
			expectedValid: 1,
			expectedSkips: 0,
		},
		{
			name:          "Layout compacto de 5 campos é aceito",
			lines:         []string{"T1|P100|3|9.99|2024-01-01"},
			expectedValid: 1,
			expectedSkips: 0,
		},
		{
			name:          "Quantidade não numérica descarta a linha mas não aborta",
			lines:         []string{"T1|2024-01-01|P100|Laptop|tres|9.99|C1|Sul"},
			expectedValid: 0,
			expectedSkips: 1,
			expectedCode:  runerrors.ErrRowBadValue,
		},
		{
			name:          "Quantidade de campos errada descarta a linha",
			lines:         []string{"T1|2024-01-01|P100|Laptop|3|9.99|C1"},
			expectedValid: 0,
			expectedSkips: 1,
			expectedCode:  runerrors.ErrRowFieldCount,
		},
		{
			name:          "Quantidade negativa descarta a linha",
			lines:         []string{"T1|2024-01-01|P100|Laptop|-3|9.99|C1|Sul"},
			expectedValid: 0,
			expectedSkips: 1,
			expectedCode:  runerrors.ErrRowBadValue,
		},
		{
			name:          "Data vazia descarta a linha",
			lines:         []string{"T1||P100|Laptop|3|9.99|C1|Sul"},
			expectedValid: 0,
			expectedSkips: 1,
			expectedCode:  runerrors.ErrRowBadValue,
		},
		{
			name:          "Data inválida descarta a linha",
			lines:         []string{"T1|01/01/2024|P100|Laptop|3|9.99|C1|Sul"},
			expectedValid: 0,
			expectedSkips: 1,
			expectedCode:  runerrors.ErrRowBadValue,
		},
		{
			name: "Linha inválida não interrompe o restante do arquivo",
			lines: []string{
				"T1|2024-01-01|P100|Laptop|tres|9.99|C1|Sul",
				"T2|2024-01-02|P101|Mouse|2|5.00|C2|Norte",
			},
			expectedValid: 1,
			expectedSkips: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, warnings := parser.ParseLines(tt.lines)

			assert.Len(t, transactions, tt.expectedValid)
			assert.Len(t, warnings, tt.expectedSkips)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, warnings[0].Code)
			}
		})
	}
}

func TestService_ParseLines_CamposConvertidos(t *testing.T) {
	parser := newTestParser()

	transactions, warnings := parser.ParseLines([]string{"T1|2024-01-15|P100|Laptop|3|9.99|C1|Sul"})

	assert.Empty(t, warnings)
	assert.Len(t, transactions, 1)

	transaction := transactions[0]
	assert.Equal(t, "T1", transaction.TransactionID)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), transaction.Date)
	assert.Equal(t, "P100", transaction.ProductID)
	assert.Equal(t, "Laptop", transaction.ProductName)
	assert.Equal(t, 3, transaction.Quantity)
	assert.Equal(t, 9.99, transaction.UnitPrice)
	assert.Equal(t, "C1", transaction.CustomerID)
	assert.Equal(t, "Sul", transaction.Region)
	assert.InDelta(t, 29.97, transaction.Amount(), 0.0001)
}

func TestService_ParseLines_LayoutCompacto(t *testing.T) {
	parser := newTestParser()

	transactions, warnings := parser.ParseLines([]string{"T1|P100|3|9.99|2024-01-01"})

	assert.Empty(t, warnings)
	require.Len(t, transactions, 1)

	transaction := transactions[0]
	assert.Equal(t, "T1", transaction.TransactionID)
	assert.Equal(t, "P100", transaction.ProductID)
	assert.Equal(t, 3, transaction.Quantity)
	assert.Equal(t, 9.99, transaction.UnitPrice)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), transaction.Date)

	// Campos ausentes no layout compacto recebem o placeholder
	assert.Empty(t, transaction.ProductName)
	assert.Equal(t, domain.UnknownValue, transaction.CustomerID)
	assert.Equal(t, domain.UnknownValue, transaction.Region)
}
