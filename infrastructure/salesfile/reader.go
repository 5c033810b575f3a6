// Package salesfile implementa a leitura e escrita dos arquivos de vendas
// delimitados por pipe.
package salesfile

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
	"golang.org/x/text/encoding/charmap"
)

type Reader interface {
	ReadLines(filePath string) ([]string, error)
}

type FileReader struct {
	cfg *config.Config
}

func NewReader(cfg *config.Config) Reader {
	return &FileReader{cfg: cfg}
}

// ReadLines lê o arquivo de vendas e retorna as linhas não vazias, já
// normalizadas. Arquivos que não estão em UTF-8 são decodificados como
// latin-1, como os exports antigos do sistema de vendas.
func (r *FileReader) ReadLines(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, runerrors.FromError(
			errors.Wrapf(err, "erro ao ler o arquivo de vendas %s", filePath),
			runerrors.ErrFileNotFound,
		)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, runerrors.FromError(
				errors.Wrapf(decErr, "erro ao decodificar o arquivo de vendas %s", filePath),
				runerrors.ErrFileEncoding,
			)
		}
		data = decoded
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)

		if r.cfg.Input.MaxLines > 0 && len(lines) >= r.cfg.Input.MaxLines {
			break
		}
	}

	return lines, nil
}
