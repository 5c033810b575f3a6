// Package analyzing calcula as métricas agregadas de vendas de uma
// execução. Todos os resultados são ordenados de forma estável, garantindo
// que a mesma entrada produza sempre o mesmo relatório.
package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-analytics/internal/config"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

type Analyzer interface {
	Analyze(rows []*domain.EnrichedTransaction) *domain.SalesReport
}

type Service struct {
	topProductsLimit        int
	lowPerformanceThreshold int
}

func NewService(cfg *config.Config) Analyzer {
	return &Service{
		topProductsLimit:        cfg.Analysis.TopProductsLimit,
		lowPerformanceThreshold: cfg.Analysis.LowPerformanceThreshold,
	}
}

// Estruturas de acompanhamento usadas durante a agregação
type productAggregator struct {
	productID     string
	productName   string
	category      string
	brand         string
	totalQuantity int
	totalRevenue  float64
}

type regionAggregator struct {
	region           string
	totalSales       float64
	transactionCount int
}

type customerAggregator struct {
	customerID     string
	totalSpent     float64
	purchaseCount  int
	productsBought map[string]bool
}

type dailyAggregator struct {
	date             string
	revenue          float64
	transactionCount int
	customers        map[string]bool
}

// Analyze computa todas as métricas do relatório a partir das transações
// enriquecidas. A soma e a contagem independem da ordem das linhas.
func (s *Service) Analyze(rows []*domain.EnrichedTransaction) *domain.SalesReport {
	products := make(map[string]*productAggregator)
	regions := make(map[string]*regionAggregator)
	customers := make(map[string]*customerAggregator)
	days := make(map[string]*dailyAggregator)

	totalRevenue := 0.0
	enrichedCount := 0

	for _, row := range rows {
		amount := row.Amount()
		totalRevenue += amount

		if row.APIMatch {
			enrichedCount++
		}

		product, found := products[row.ProductID]
		if !found {
			product = &productAggregator{
				productID:   row.ProductID,
				productName: row.ProductName,
				category:    row.APICategory,
				brand:       row.APIBrand,
			}
			products[row.ProductID] = product
		}
		product.totalQuantity += row.Quantity
		product.totalRevenue += amount

		region, found := regions[row.Region]
		if !found {
			region = &regionAggregator{region: row.Region}
			regions[row.Region] = region
		}
		region.totalSales += amount
		region.transactionCount++

		customer, found := customers[row.CustomerID]
		if !found {
			customer = &customerAggregator{
				customerID:     row.CustomerID,
				productsBought: make(map[string]bool),
			}
			customers[row.CustomerID] = customer
		}
		customer.totalSpent += amount
		customer.purchaseCount++
		customer.productsBought[row.ProductName] = true

		date := row.Date.Format(time.DateOnly)
		day, found := days[date]
		if !found {
			day = &dailyAggregator{date: date, customers: make(map[string]bool)}
			days[date] = day
		}
		day.revenue += amount
		day.transactionCount++
		day.customers[row.CustomerID] = true
	}

	report := &domain.SalesReport{
		GeneratedAt:      time.Now(),
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(totalRevenue),
		TransactionCount: len(rows),
		EnrichedCount:    enrichedCount,
	}

	if len(rows) > 0 {
		report.AverageTicket = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(len(rows)))
		report.EnrichmentRate = utils.Percentage(float64(enrichedCount), float64(len(rows)))
	}

	report.ProductStats = s.buildProductStats(products)
	report.RegionStats = buildRegionStats(regions, totalRevenue)
	report.CustomerStats = buildCustomerStats(customers)
	report.DailyTrend = buildDailyTrend(days)
	report.TopProducts = s.topProducts(report.ProductStats)
	report.LowPerformers = s.lowPerformers(report.ProductStats)
	report.PeakDay = peakDay(report.DailyTrend)

	return report
}

// buildProductStats monta as métricas por produto ordenadas por receita
// decrescente, com desempate pelo ID do produto
func (s *Service) buildProductStats(products map[string]*productAggregator) []*domain.ProductStat {
	stats := make([]*domain.ProductStat, 0, len(products))
	for _, p := range products {
		stats = append(stats, &domain.ProductStat{
			ProductID:     p.productID,
			ProductName:   p.productName,
			Category:      p.category,
			Brand:         p.brand,
			TotalQuantity: p.totalQuantity,
			TotalRevenue:  utils.RoundWithTwoDecimalPlace(p.totalRevenue),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalRevenue != stats[j].TotalRevenue {
			return stats[i].TotalRevenue > stats[j].TotalRevenue
		}
		return stats[i].ProductID < stats[j].ProductID
	})

	return stats
}

// topProducts retorna os N produtos mais vendidos por quantidade
func (s *Service) topProducts(stats []*domain.ProductStat) []*domain.ProductStat {
	top := make([]*domain.ProductStat, len(stats))
	copy(top, stats)

	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalQuantity != top[j].TotalQuantity {
			return top[i].TotalQuantity > top[j].TotalQuantity
		}
		return top[i].ProductID < top[j].ProductID
	})

	if s.topProductsLimit > 0 && len(top) > s.topProductsLimit {
		top = top[:s.topProductsLimit]
	}

	return top
}

// lowPerformers retorna os produtos com quantidade abaixo do limite,
// ordenados pela quantidade crescente
func (s *Service) lowPerformers(stats []*domain.ProductStat) []*domain.ProductStat {
	low := make([]*domain.ProductStat, 0)
	for _, stat := range stats {
		if stat.TotalQuantity < s.lowPerformanceThreshold {
			low = append(low, stat)
		}
	}

	sort.Slice(low, func(i, j int) bool {
		if low[i].TotalQuantity != low[j].TotalQuantity {
			return low[i].TotalQuantity < low[j].TotalQuantity
		}
		return low[i].ProductID < low[j].ProductID
	})

	return low
}

func buildRegionStats(regions map[string]*regionAggregator, totalRevenue float64) []*domain.RegionStat {
	stats := make([]*domain.RegionStat, 0, len(regions))
	for _, r := range regions {
		stats = append(stats, &domain.RegionStat{
			Region:           r.region,
			TotalSales:       utils.RoundWithTwoDecimalPlace(r.totalSales),
			TransactionCount: r.transactionCount,
			Percentage:       utils.Percentage(r.totalSales, totalRevenue),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalSales != stats[j].TotalSales {
			return stats[i].TotalSales > stats[j].TotalSales
		}
		return stats[i].Region < stats[j].Region
	})

	return stats
}

func buildCustomerStats(customers map[string]*customerAggregator) []*domain.CustomerStat {
	stats := make([]*domain.CustomerStat, 0, len(customers))
	for _, c := range customers {
		products := make([]string, 0, len(c.productsBought))
		for name := range c.productsBought {
			products = append(products, name)
		}
		sort.Strings(products)

		avgOrderValue := 0.0
		if c.purchaseCount > 0 {
			avgOrderValue = c.totalSpent / float64(c.purchaseCount)
		}

		stats = append(stats, &domain.CustomerStat{
			CustomerID:     c.customerID,
			TotalSpent:     utils.RoundWithTwoDecimalPlace(c.totalSpent),
			PurchaseCount:  c.purchaseCount,
			AvgOrderValue:  utils.RoundWithTwoDecimalPlace(avgOrderValue),
			ProductsBought: products,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalSpent != stats[j].TotalSpent {
			return stats[i].TotalSpent > stats[j].TotalSpent
		}
		return stats[i].CustomerID < stats[j].CustomerID
	})

	return stats
}

func buildDailyTrend(days map[string]*dailyAggregator) []*domain.DailyStat {
	trend := make([]*domain.DailyStat, 0, len(days))
	for _, d := range days {
		trend = append(trend, &domain.DailyStat{
			Date:             d.date,
			Revenue:          utils.RoundWithTwoDecimalPlace(d.revenue),
			TransactionCount: d.transactionCount,
			UniqueCustomers:  len(d.customers),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})

	return trend
}

// peakDay identifica o dia com maior receita
func peakDay(trend []*domain.DailyStat) *domain.DailyStat {
	var best *domain.DailyStat
	for _, day := range trend {
		if best == nil || day.Revenue > best.Revenue {
			best = day
		}
	}

	return best
}
