package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics/internal/scheduler"
)

var runOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Mantém o processo ativo gerando o relatório no agendamento configurado",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, runner, err := bootstrap()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		syncService := scheduler.NewReportSyncService(runner, cfg)
		if err := syncService.Start(ctx); err != nil {
			return err
		}

		if runOnStart {
			syncService.RunNow(ctx)
		}

		logrus.Info("Agendador em execução, aguardando sinal de término")
		<-ctx.Done()
		logrus.Info("Encerrando")

		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "executa o pipeline imediatamente ao iniciar")
}
