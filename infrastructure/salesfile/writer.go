package salesfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
)

// Cabeçalho do arquivo de dados enriquecidos, campos originais seguidos
// pelos campos obtidos do catálogo
var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
	"API_Category", "API_Brand", "API_Rating", "API_Match",
}

type Writer interface {
	WriteEnrichedData(path string, transactions []*domain.EnrichedTransaction) error
	WriteFile(dir, name, content string) (string, error)
}

type FileWriter struct {
	delimiter string
}

func NewWriter(delimiter string) Writer {
	if delimiter == "" {
		delimiter = "|"
	}
	return &FileWriter{delimiter: delimiter}
}

// WriteEnrichedData grava as transações enriquecidas de volta em formato
// delimitado por pipe, com os campos do catálogo ao final de cada linha
func (w *FileWriter) WriteEnrichedData(path string, transactions []*domain.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return runerrors.FromError(
			errors.Wrapf(err, "erro ao criar o diretório de saída para %s", path),
			runerrors.ErrOutputUnwritable,
		)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(enrichedHeader, w.delimiter))
	sb.WriteString("\n")

	for _, t := range transactions {
		fields := []string{
			t.TransactionID,
			t.Date.Format(time.DateOnly),
			t.ProductID,
			t.ProductName,
			strconv.Itoa(t.Quantity),
			strconv.FormatFloat(t.UnitPrice, 'f', 2, 64),
			t.CustomerID,
			t.Region,
			t.APICategory,
			t.APIBrand,
			formatRating(t.APIRating, t.APIMatch),
			strconv.FormatBool(t.APIMatch),
		}
		sb.WriteString(strings.Join(fields, w.delimiter))
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return runerrors.FromError(
			errors.Wrapf(err, "erro ao gravar o arquivo de dados enriquecidos %s", path),
			runerrors.ErrOutputUnwritable,
		)
	}

	return nil
}

// WriteFile grava um arquivo de saída no diretório informado e retorna o
// caminho completo
func (w *FileWriter) WriteFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", runerrors.FromError(
			errors.Wrapf(err, "erro ao criar o diretório de saída %s", dir),
			runerrors.ErrOutputUnwritable,
		)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", runerrors.FromError(
			errors.Wrapf(err, "erro ao gravar o arquivo de saída %s", path),
			runerrors.ErrOutputUnwritable,
		)
	}

	return path, nil
}

func formatRating(rating float64, match bool) string {
	if !match {
		return ""
	}
	return fmt.Sprintf("%.2f", rating)
}
