// Package reporting serializa o relatório agregado em arquivos no
// diretório de saída.
package reporting

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics/infrastructure/salesfile"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sectionSeparator = "========================================"

type Reporter interface {
	WriteReport(report *domain.SalesReport, enriched []*domain.EnrichedTransaction) (*ReportPaths, error)
}

// ReportPaths contém os caminhos dos arquivos gerados em uma execução
type ReportPaths struct {
	ReportPath       string
	EnrichedDataPath string
	JSONReportPath   string
}

type Service struct {
	cfg    *config.Config
	writer salesfile.Writer
}

func NewService(cfg *config.Config, writer salesfile.Writer) Reporter {
	return &Service{
		cfg:    cfg,
		writer: writer,
	}
}

// WriteReport grava o relatório em texto, o arquivo de dados enriquecidos e,
// quando configurado, o relatório em JSON. Qualquer falha de escrita é fatal
// para a execução.
func (s *Service) WriteReport(report *domain.SalesReport, enriched []*domain.EnrichedTransaction) (*ReportPaths, error) {
	paths := &ReportPaths{}

	reportPath, err := s.writer.WriteFile(s.cfg.Output.Dir, s.cfg.Output.ReportFile, renderReport(report))
	if err != nil {
		return nil, err
	}
	paths.ReportPath = reportPath

	enrichedPath := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.EnrichedDataFile)
	if err := s.writer.WriteEnrichedData(enrichedPath, enriched); err != nil {
		return nil, err
	}
	paths.EnrichedDataPath = enrichedPath

	if s.cfg.Output.JSONReportFile != "" {
		content, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, err
		}

		jsonPath, err := s.writer.WriteFile(s.cfg.Output.Dir, s.cfg.Output.JSONReportFile, string(content))
		if err != nil {
			return nil, err
		}
		paths.JSONReportPath = jsonPath
	}

	return paths, nil
}

// renderReport monta o relatório em texto, uma seção por análise
func renderReport(report *domain.SalesReport) string {
	sb := &strings.Builder{}

	fmt.Fprintln(sb, sectionSeparator)
	fmt.Fprintln(sb, "RELATÓRIO DE VENDAS")
	fmt.Fprintf(sb, "Gerado em: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintln(sb, sectionSeparator)

	fmt.Fprintln(sb, "\nRESUMO GERAL")
	fmt.Fprintf(sb, "Receita total:        %.2f\n", report.TotalRevenue)
	fmt.Fprintf(sb, "Transações válidas:   %d\n", report.TransactionCount)
	fmt.Fprintf(sb, "Ticket médio:         %.2f\n", report.AverageTicket)
	fmt.Fprintf(sb, "Enriquecidas:         %d (%.1f%%)\n", report.EnrichedCount, report.EnrichmentRate)

	fmt.Fprintln(sb, "\nVENDAS POR PRODUTO")
	for _, p := range report.ProductStats {
		fmt.Fprintf(sb, "- %s (%s)\n", displayName(p), p.ProductID)
		fmt.Fprintf(sb, "  Categoria: %s | Marca: %s\n", defaultUnknown(p.Category), defaultUnknown(p.Brand))
		fmt.Fprintf(sb, "  Quantidade: %d | Receita: %.2f\n", p.TotalQuantity, p.TotalRevenue)
	}

	fmt.Fprintln(sb, "\nVENDAS POR REGIÃO")
	for _, r := range report.RegionStats {
		fmt.Fprintf(sb, "- %s: %.2f (%d transações, %.2f%%)\n",
			r.Region, r.TotalSales, r.TransactionCount, r.Percentage)
	}

	fmt.Fprintf(sb, "\nTOP %d PRODUTOS POR QUANTIDADE\n", len(report.TopProducts))
	for i, p := range report.TopProducts {
		fmt.Fprintf(sb, "%d. %s: %d unidades (%.2f)\n", i+1, displayName(p), p.TotalQuantity, p.TotalRevenue)
	}

	fmt.Fprintln(sb, "\nCLIENTES")
	for _, c := range report.CustomerStats {
		fmt.Fprintf(sb, "- %s: gastou %.2f em %d compras (ticket %.2f)\n",
			c.CustomerID, c.TotalSpent, c.PurchaseCount, c.AvgOrderValue)
		fmt.Fprintf(sb, "  Produtos: %s\n", strings.Join(c.ProductsBought, ", "))
	}

	fmt.Fprintln(sb, "\nTENDÊNCIA DIÁRIA")
	for _, d := range report.DailyTrend {
		fmt.Fprintf(sb, "- %s: %.2f (%d transações, %d clientes)\n",
			d.Date, d.Revenue, d.TransactionCount, d.UniqueCustomers)
	}

	if report.PeakDay != nil {
		fmt.Fprintf(sb, "\nDIA DE PICO: %s com receita de %.2f\n", report.PeakDay.Date, report.PeakDay.Revenue)
	}

	if len(report.LowPerformers) > 0 {
		fmt.Fprintln(sb, "\nPRODUTOS COM BAIXO DESEMPENHO")
		for _, p := range report.LowPerformers {
			fmt.Fprintf(sb, "- %s: %d unidades (%.2f)\n", displayName(p), p.TotalQuantity, p.TotalRevenue)
		}
	}

	fmt.Fprintln(sb, "\n"+sectionSeparator)

	return sb.String()
}

func displayName(p *domain.ProductStat) string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return domain.UnknownValue
}

func defaultUnknown(value string) string {
	if value == "" {
		return domain.UnknownValue
	}
	return value
}
