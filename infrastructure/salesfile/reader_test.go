package salesfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
)

func newTestReader(maxLines int) Reader {
	cfg := &config.Config{}
	cfg.Input.MaxLines = maxLines
	return NewReader(cfg)
}

func TestFileReader_ReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales_data.txt")

	content := "T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul\n\n  \nT2|2024-01-02|P101|Mouse|2|5.00|C2|Norte\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := newTestReader(0).ReadLines(path)

	require.NoError(t, err)
	// Linhas vazias são removidas e o \r do final é normalizado
	assert.Equal(t, []string{
		"T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul",
		"T2|2024-01-02|P101|Mouse|2|5.00|C2|Norte",
	}, lines)
}

func TestFileReader_ReadLines_ArquivoInexistente(t *testing.T) {
	lines, err := newTestReader(0).ReadLines(filepath.Join(t.TempDir(), "nao_existe.txt"))

	assert.Nil(t, lines)
	require.Error(t, err)

	pErr, ok := err.(*runerrors.PipelineError)
	require.True(t, ok)
	assert.Equal(t, runerrors.ErrFileNotFound, pErr.Code)
	assert.True(t, runerrors.IsFatal(pErr.Code))
}

func TestFileReader_ReadLines_Latin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales_data.txt")

	// "São Paulo" em latin-1: 0xE3 não é UTF-8 válido
	raw := append([]byte("T1|2024-01-01|P100|Laptop|3|9.99|C1|S"), 0xE3)
	raw = append(raw, []byte("o Paulo\n")...)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	lines, err := newTestReader(0).ReadLines(path)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "T1|2024-01-01|P100|Laptop|3|9.99|C1|São Paulo", lines[0])
}

func TestFileReader_ReadLines_LimiteDeLinhas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales_data.txt")

	content := "linha1\nlinha2\nlinha3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := newTestReader(2).ReadLines(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"linha1", "linha2"}, lines)
}
