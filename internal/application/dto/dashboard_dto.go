package dto

import "github.com/shopspring/decimal"

// TopProductDTO linha do ranking de mais vendidos do mês.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// LocationSummaryDTO acumulado de estoque por local.
type LocationSummaryDTO struct {
	LocationID string          `json:"location_id"`
	Items      int             `json:"items"`
	TotalStock decimal.Decimal `json:"total_stock"`
	Value      decimal.Decimal `json:"value"`
}

// DashboardSummaryDTO resumo do dia/mês + situação do estoque.
type DashboardSummaryDTO struct {
	TodaySales      decimal.Decimal      `json:"today_sales"`
	TodayMargin     decimal.Decimal      `json:"today_margin"`
	MonthlySales    decimal.Decimal      `json:"monthly_sales"`
	MonthlyMargin   decimal.Decimal      `json:"monthly_margin"`
	TopProducts     []TopProductDTO      `json:"top_products"`
	StockValue      decimal.Decimal      `json:"stock_value"`
	LowStockCount   int                  `json:"low_stock_count"`
	StockByLocation []LocationSummaryDTO `json:"stock_by_location"`
	ClientCount     int                  `json:"client_count"`
}
