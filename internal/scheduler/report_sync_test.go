package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// fakeRunner registra as execuções disparadas pelo agendador
type fakeRunner struct {
	mu       sync.Mutex
	runCount int
	err      error
}

func (f *fakeRunner) Run(ctx context.Context) (*domain.RunSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.runCount++
	if f.err != nil {
		return nil, f.err
	}

	return &domain.RunSummary{RunID: "test", ValidRows: 1}, nil
}

func (f *fakeRunner) runs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runCount
}

func newTestAppConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.ReportSync.CronSchedule = "0 6 * * *"
	cfg.ReportSync.Enabled = enabled
	return cfg
}

func TestReportSyncService_Start_Desabilitado(t *testing.T) {
	runner := &fakeRunner{}
	service := NewReportSyncService(runner, newTestAppConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Desabilitado por configuração: Start não agenda nada e não falha
	require.NoError(t, service.Start(ctx))
	assert.Equal(t, 0, runner.runs())
}

func TestReportSyncService_RunNow(t *testing.T) {
	runner := &fakeRunner{}
	service := NewReportSyncService(runner, newTestAppConfig(true))

	service.RunNow(context.Background())
	service.RunNow(context.Background())

	assert.Equal(t, 2, runner.runs())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestReportSyncService_RunNow_ErroNaExecucao(t *testing.T) {
	runner := &fakeRunner{err: errors.New("entrada inexistente")}
	service := NewReportSyncService(runner, newTestAppConfig(true))

	// O erro é absorvido e registrado; o agendador continua vivo
	service.RunNow(context.Background())

	assert.Equal(t, 1, runner.runs())
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestReportSyncService_Start_CronInvalido(t *testing.T) {
	runner := &fakeRunner{}
	cfg := newTestAppConfig(true)
	cfg.ReportSync.CronSchedule = "cron inválido"

	service := NewReportSyncService(runner, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
