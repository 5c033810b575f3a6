// Package cli define os comandos da ferramenta de análise de vendas.
package cli

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog"
	"github.com/vfg2006/sales-analytics/infrastructure/integrator/catalog/catalogclient"
	"github.com/vfg2006/sales-analytics/infrastructure/salesfile"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/pipeline"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/internal/usecases/enriching"
	"github.com/vfg2006/sales-analytics/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics/internal/usecases/parsing"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics/pkg/runerrors"
)

var rootCmd = &cobra.Command{
	Use:           "salesanalytics",
	Short:         "Pipeline de análise de vendas com enriquecimento via catálogo de produtos",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute executa o comando raiz e converte o erro no status de saída do
// processo
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(runerrors.ExitStatus(err))
	}
}

// bootstrap carrega a configuração e monta o pipeline com todas as
// dependências, na mesma ordem de inicialização usada nos serviços
func bootstrap() (*config.Config, pipeline.Runner, error) {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	reader := salesfile.NewReader(cfg)
	writer := salesfile.NewWriter(cfg.Input.Delimiter)

	catalogClient := catalogclient.NewClient(cfg)
	catalogIntegrator := catalog.New(cfg, catalogClient)

	parser := parsing.NewService(cfg)
	filter := filtering.NewService(cfg)
	enricher := enriching.NewService(cfg, catalogIntegrator)
	analyzer := analyzing.NewService(cfg)
	reporter := reporting.NewService(cfg, writer)

	runner := pipeline.New(cfg, reader, parser, filter, enricher, analyzer, reporter)

	return cfg, runner, nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
