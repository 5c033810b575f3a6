package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogmocks "github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/mocks"
	"github.com/vfg2006/sales-analytics/infrastructure/salesfile"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
	"go.uber.org/mock/gomock"
)

func newTestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Input.FilePath = filepath.Join(t.TempDir(), "sales_data.txt")
	cfg.Input.Delimiter = "|"
	cfg.Output.Dir = filepath.Join(t.TempDir(), "output")
	cfg.Output.ReportFile = "sales_report.txt"
	cfg.Output.EnrichedDataFile = "enriched_sales_data.txt"
	cfg.Enrichment.MaxConcurrentRequests = 1
	cfg.Analysis.TopProductsLimit = 5
	cfg.Analysis.LowPerformanceThreshold = 10
	return cfg
}

func newTestPipeline(cfg *config.Config, mockCatalog *catalogmocks.MockCatalogIntegrator) Runner {
	writer := salesfile.NewWriter(cfg.Input.Delimiter)
	return New(
		cfg,
		salesfile.NewReader(cfg),
		parsing.NewService(cfg),
		filtering.NewService(cfg),
		enriching.NewService(cfg, mockCatalog),
		analyzing.NewService(cfg),
		reporting.NewService(cfg, writer),
	)
}

func TestPipeline_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t)

	content := "T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul\n" +
		"T2|2024-01-02|P100|Laptop|2|5.00|C2|Norte\n" +
		"T3|2024-01-02|P999|Webcam|1|20.00|C1|Sul\n" +
		"T4|2024-01-03|P100|Laptop|err|9.99|C1|Sul\n"
	require.NoError(t, os.WriteFile(cfg.Input.FilePath, []byte(content), 0o644))

	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	mockCatalog.EXPECT().
		GetProductInfo(100).
		Return(&domain.ProductInfo{ID: 100, Title: "Laptop", Category: "laptops", Brand: "Acme", Rating: 4.5}, nil).
		Times(1)
	mockCatalog.EXPECT().
		GetProductInfo(999).
		Return(nil, runerrors.New(runerrors.ErrProductNotFound, "produto não encontrado")).
		Times(1)

	summary, err := newTestPipeline(cfg, mockCatalog).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.LinesRead)
	assert.Equal(t, 3, summary.ValidRows)
	assert.Equal(t, 3, summary.FilteredRows)
	assert.Equal(t, 1, summary.SkippedRows)
	assert.Equal(t, 2, summary.EnrichedRows)

	report, err := os.ReadFile(summary.ReportPath)
	require.NoError(t, err)

	// P100: 3 x 9.99 + 2 x 5.00 = 39.97
	assert.Contains(t, string(report), "Quantidade: 5 | Receita: 39.97")
	// O produto sem correspondência entra no relatório com placeholder
	assert.Contains(t, string(report), "Categoria: Unknown | Marca: Unknown")

	enriched, err := os.ReadFile(summary.EnrichedDataPath)
	require.NoError(t, err)
	assert.Contains(t, string(enriched), "T3|2024-01-02|P999|Webcam|1|20.00|C1|Sul|Unknown|Unknown||false")
}

func TestPipeline_Run_ComFiltroDeRegiao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t)
	cfg.Filter.Region = "sul"

	content := "T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul\n" +
		"T2|2024-01-02|P101|Mouse|2|5.00|C2|Norte\n" +
		"T3|2024-01-02|P100|Laptop|1|9.99|C3|Sul\n"
	require.NoError(t, os.WriteFile(cfg.Input.FilePath, []byte(content), 0o644))

	// Apenas o produto das linhas mantidas deve chegar ao catálogo
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	mockCatalog.EXPECT().
		GetProductInfo(100).
		Return(&domain.ProductInfo{ID: 100, Title: "Laptop", Category: "laptops", Brand: "Acme"}, nil).
		Times(1)

	summary, err := newTestPipeline(cfg, mockCatalog).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ValidRows)
	assert.Equal(t, 2, summary.FilteredRows)

	report, err := os.ReadFile(summary.ReportPath)
	require.NoError(t, err)

	// P100: 3 x 9.99 + 1 x 9.99 = 39.96; a linha da região Norte fica fora
	assert.Contains(t, string(report), "Quantidade: 4 | Receita: 39.96")
	assert.NotContains(t, string(report), "Norte")
}

func TestPipeline_Run_EntradaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t)
	// Nenhuma chamada ao catálogo deve acontecer
	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)

	summary, err := newTestPipeline(cfg, mockCatalog).Run(context.Background())

	assert.Nil(t, summary)
	require.Error(t, err)

	pErr, ok := err.(*runerrors.PipelineError)
	require.True(t, ok)
	assert.Equal(t, runerrors.ErrFileNotFound, pErr.Code)
	assert.Equal(t, 1, runerrors.ExitStatus(err))

	// Nenhum arquivo de saída deve ter sido criado
	_, statErr := os.Stat(filepath.Join(cfg.Output.Dir, cfg.Output.ReportFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_Run_Deterministico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(t)

	content := "T1|2024-01-01|P100|Laptop|3|9.99|C1|Sul\n" +
		"T2|2024-01-02|P101|Mouse|2|5.00|C2|Norte\n"
	require.NoError(t, os.WriteFile(cfg.Input.FilePath, []byte(content), 0o644))

	mockCatalog := catalogmocks.NewMockCatalogIntegrator(ctrl)
	mockCatalog.EXPECT().
		GetProductInfo(gomock.Any()).
		DoAndReturn(func(id int) (*domain.ProductInfo, error) {
			return &domain.ProductInfo{ID: id, Title: "Produto", Category: "geral", Brand: "Acme"}, nil
		}).
		AnyTimes()

	runner := newTestPipeline(cfg, mockCatalog)

	first, err := runner.Run(context.Background())
	require.NoError(t, err)
	firstReport, err := os.ReadFile(first.ReportPath)
	require.NoError(t, err)

	second, err := runner.Run(context.Background())
	require.NoError(t, err)
	secondReport, err := os.ReadFile(second.ReportPath)
	require.NoError(t, err)

	// Mesmo arquivo de entrada e mesmas respostas do catálogo produzem o
	// mesmo relatório, exceto pela linha com o horário de geração
	assert.Equal(t, stripGeneratedAt(string(firstReport)), stripGeneratedAt(string(secondReport)))
}

func stripGeneratedAt(report string) string {
	lines := []string{}
	for _, line := range strings.Split(report, "\n") {
		if strings.HasPrefix(line, "Gerado em") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
