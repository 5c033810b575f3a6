// Package pipeline orquestra as etapas de uma execução completa da
// análise de vendas: leitura, parsing, filtragem, enriquecimento,
// agregação e escrita do relatório.
package pipeline

import (
	"context"
	"time"

	"github.com/vfg2006/sales-analytics/infrastructure/salesfile"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/pkg/log"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

type Runner interface {
	Run(ctx context.Context) (*domain.RunSummary, error)
}

type Pipeline struct {
	cfg      *config.Config
	reader   salesfile.Reader
	parser   parsing.Parser
	filter   filtering.Filter
	enricher enriching.Enricher
	analyzer analyzing.Analyzer
	reporter reporting.Reporter
}

func New(
	cfg *config.Config,
	reader salesfile.Reader,
	parser parsing.Parser,
	filter filtering.Filter,
	enricher enriching.Enricher,
	analyzer analyzing.Analyzer,
	reporter reporting.Reporter,
) Runner {
	return &Pipeline{
		cfg:      cfg,
		reader:   reader,
		parser:   parser,
		filter:   filter,
		enricher: enricher,
		analyzer: analyzer,
		reporter: reporter,
	}
}

// Run executa o pipeline de ponta a ponta. Erros de linha e de
// enriquecimento são absorvidos ao longo do caminho; apenas falhas de
// leitura da entrada e de escrita da saída abortam a execução.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunSummary, error) {
	startTime := time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	logger.WithField("input", p.cfg.Input.FilePath).Info("[1/6] Lendo o arquivo de vendas")
	lines, err := p.reader.ReadLines(p.cfg.Input.FilePath)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler o arquivo de vendas")
		return nil, err
	}
	logger.Infof("Lidas %d linhas", len(lines))

	logger.Info("[2/6] Validando e convertendo as transações")
	transactions, warnings := p.parser.ParseLines(lines)
	logger.Infof("Válidas: %d | Descartadas: %d", len(transactions), len(warnings))

	logger.Info("[3/6] Aplicando os filtros de região e valor")
	filterInput := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		filterInput = append(filterInput, *transaction)
	}
	filtered := p.filter.Apply(filterInput)

	logger.Info("[4/6] Enriquecendo com os dados do catálogo")
	enrichInput := make([]*domain.Transaction, 0, len(filtered))
	for i := range filtered {
		enrichInput = append(enrichInput, &filtered[i])
	}
	enriched := p.enricher.Enrich(enrichInput)

	enrichedCount := 0
	for _, row := range enriched {
		if row.APIMatch {
			enrichedCount++
		}
	}
	logger.Infof("Enriquecidas %d/%d transações", enrichedCount, len(enriched))

	logger.Info("[5/6] Calculando as métricas de vendas")
	report := p.analyzer.Analyze(enriched)

	logger.Info("[6/6] Gravando o relatório")
	paths, err := p.reporter.WriteReport(report, enriched)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar os arquivos de saída")
		return nil, err
	}

	summary := &domain.RunSummary{
		RunID:            runID,
		LinesRead:        len(lines),
		ValidRows:        len(transactions),
		FilteredRows:     len(filtered),
		SkippedRows:      len(warnings),
		EnrichedRows:     enrichedCount,
		ReportPath:       paths.ReportPath,
		EnrichedDataPath: paths.EnrichedDataPath,
		Duration:         time.Since(startTime),
		Warnings:         warnings,
	}

	logger.WithFields(log.Fields{
		"report":   summary.ReportPath,
		"duration": summary.Duration.String(),
	}).Info("Execução concluída")

	return summary, nil
}
