package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/pipeline"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento da geração periódica do
// relatório de vendas
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	runner              pipeline.Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do serviço de agendamento
func NewReportSyncService(runner pipeline.Runner, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		runner:      runner,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a geração de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma execução imediata fora do agendamento
func (s *ReportSyncService) RunNow(ctx context.Context) {
	s.runScheduledReport(ctx)
}

// runScheduledReport executa o pipeline completo, ignorando o disparo se uma
// execução anterior ainda estiver em andamento
func (s *ReportSyncService) runScheduledReport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	summary, err := s.runner.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na execução agendada do relatório de vendas")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":       summary.RunID,
		"valid_rows":   summary.ValidRows,
		"skipped_rows": summary.SkippedRows,
		"report":       summary.ReportPath,
	}).Info("Execução agendada do relatório concluída")
}
