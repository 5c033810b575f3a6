package domain

import "time"

// ProductStat representa as métricas agregadas de um produto
type ProductStat struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	Brand         string  `json:"brand"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// RegionStat representa as métricas agregadas de uma região
type RegionStat struct {
	Region           string  `json:"region"`
	TotalSales       float64 `json:"total_sales"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

// CustomerStat representa o padrão de compras de um cliente
type CustomerStat struct {
	CustomerID     string   `json:"customer_id"`
	TotalSpent     float64  `json:"total_spent"`
	PurchaseCount  int      `json:"purchase_count"`
	AvgOrderValue  float64  `json:"avg_order_value"`
	ProductsBought []string `json:"products_bought"`
}

// DailyStat representa as métricas de vendas de um dia
type DailyStat struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
	UniqueCustomers  int     `json:"unique_customers"`
}

// SalesReport é o resultado final da agregação de uma execução.
// Uma vez construído pelo agregador, o relatório não é mais modificado.
type SalesReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalRevenue     float64 `json:"total_revenue"`
	TransactionCount int     `json:"transaction_count"`
	AverageTicket    float64 `json:"average_ticket"`

	ProductStats  []*ProductStat  `json:"product_stats"`
	RegionStats   []*RegionStat   `json:"region_stats"`
	CustomerStats []*CustomerStat `json:"customer_stats"`
	DailyTrend    []*DailyStat    `json:"daily_trend"`

	TopProducts    []*ProductStat `json:"top_products"`
	LowPerformers  []*ProductStat `json:"low_performers"`
	PeakDay        *DailyStat     `json:"peak_day,omitempty"`
	EnrichedCount  int            `json:"enriched_count"`
	EnrichmentRate float64        `json:"enrichment_rate"`
}

// RunSummary resume uma execução completa do pipeline
type RunSummary struct {
	RunID            string        `json:"run_id"`
	LinesRead        int           `json:"lines_read"`
	ValidRows        int           `json:"valid_rows"`
	FilteredRows     int           `json:"filtered_rows"`
	SkippedRows      int           `json:"skipped_rows"`
	EnrichedRows     int           `json:"enriched_rows"`
	ReportPath       string        `json:"report_path"`
	EnrichedDataPath string        `json:"enriched_data_path"`
	Duration         time.Duration `json:"duration"`
	Warnings         []RowWarning  `json:"warnings,omitempty"`
}
