package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Input      Input      `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Filter     Filter     `mapstructure:",squash"`
	Catalog    Catalog    `mapstructure:",squash"`
	Enrichment Enrichment `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Input struct {
	FilePath  string `mapstructure:"input_file_path"`
	Delimiter string `mapstructure:"input_delimiter"`
	MaxLines  int    `mapstructure:"input_max_lines"`
}

type Output struct {
	Dir              string `mapstructure:"output_dir"`
	ReportFile       string `mapstructure:"output_report_file"`
	EnrichedDataFile string `mapstructure:"output_enriched_data_file"`
	JSONReportFile   string `mapstructure:"output_json_report_file"`
}

type Filter struct {
	Region    string  `mapstructure:"filter_region"`
	MinAmount float64 `mapstructure:"filter_min_amount"`
	MaxAmount float64 `mapstructure:"filter_max_amount"`
}

type Catalog struct {
	BaseURL        string `mapstructure:"catalog_base_url"`
	TimeoutSeconds int    `mapstructure:"catalog_timeout_seconds"`
}

type Enrichment struct {
	MaxConcurrentRequests int `mapstructure:"enrichment_max_concurrent_requests"`
	RequestDelayMillis    int `mapstructure:"enrichment_request_delay_millis"`
}

type Analysis struct {
	TopProductsLimit        int `mapstructure:"analysis_top_products_limit"`
	LowPerformanceThreshold int `mapstructure:"analysis_low_performance_threshold"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("INPUT_FILE_PATH", "data/sales_data.txt")
	viper.SetDefault("INPUT_DELIMITER", "|")
	viper.SetDefault("INPUT_MAX_LINES", 0) // 0 = sem limite

	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("OUTPUT_REPORT_FILE", "sales_report.txt")
	viper.SetDefault("OUTPUT_ENRICHED_DATA_FILE", "enriched_sales_data.txt")
	viper.SetDefault("OUTPUT_JSON_REPORT_FILE", "") // vazio = não gerar JSON

	// Filtros opcionais: região vazia e limites zerados mantêm todas as
	// transações
	viper.SetDefault("FILTER_REGION", "")
	viper.SetDefault("FILTER_MIN_AMOUNT", 0.0)
	viper.SetDefault("FILTER_MAX_AMOUNT", 0.0)

	viper.SetDefault("CATALOG_BASE_URL", "https://dummyjson.com")
	viper.SetDefault("CATALOG_TIMEOUT_SECONDS", 30)

	// Defaults para o enriquecimento: 1 requisição por vez preserva o
	// comportamento sequencial original
	viper.SetDefault("ENRICHMENT_MAX_CONCURRENT_REQUESTS", 1)
	viper.SetDefault("ENRICHMENT_REQUEST_DELAY_MILLIS", 0)

	viper.SetDefault("ANALYSIS_TOP_PRODUCTS_LIMIT", 5)
	viper.SetDefault("ANALYSIS_LOW_PERFORMANCE_THRESHOLD", 10)

	// Defaults para a geração agendada de relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Enrichment.MaxConcurrentRequests < 1 {
		config.Enrichment.MaxConcurrentRequests = 1
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
