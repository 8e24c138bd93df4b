package dto

import (
	"encoding/json"

	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
	"github.com/finance-tracker/ledger-reports/internal/domain/entity"
)

// BucketResponse represents one column of a balance table.
type BucketResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BalanceRowResponse represents one account or category line of a balance table.
type BalanceRowResponse struct {
	ID                    string        `json:"id"`
	Title                 string        `json:"title"`
	Description           string        `json:"description"`
	PreviousPeriodBalance json.Number   `json:"previousPeriodBalance"`
	PeriodBalances        []json.Number `json:"periodBalances"`
}

// BalanceReportResponse represents the account and category balance tables.
type BalanceReportResponse struct {
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	Granularity string               `json:"granularity"`
	Buckets     []BucketResponse     `json:"buckets"`
	Rows        []BalanceRowResponse `json:"rows"`
}

// MetricResponse represents a value compared with the previous period.
type MetricResponse struct {
	CurrentValue     json.Number  `json:"currentValue"`
	PreviousValue    json.Number  `json:"previousValue"`
	VariationPercent *json.Number `json:"variationPercent"`
}

// DashboardSummaryResponse represents the dashboard summary cards.
type DashboardSummaryResponse struct {
	StartDate         string         `json:"startDate"`
	EndDate           string         `json:"endDate"`
	PreviousStartDate string         `json:"previousStartDate"`
	PreviousEndDate   string         `json:"previousEndDate"`
	CurrentBalance    MetricResponse `json:"currentBalance"`
	TotalExpenses     MetricResponse `json:"totalExpenses"`
	TotalRevenues     MetricResponse `json:"totalRevenues"`
}

// BalancePointResponse represents one bucket of the balance evolution.
type BalancePointResponse struct {
	Date               string      `json:"date"`
	PeriodAmount       json.Number `json:"periodAmount"`
	AccumulatedBalance json.Number `json:"accumulatedBalance"`
}

// BalanceEvolutionResponse represents the running balance series.
type BalanceEvolutionResponse struct {
	StartDate      string                 `json:"startDate"`
	EndDate        string                 `json:"endDate"`
	Granularity    string                 `json:"granularity"`
	OpeningBalance json.Number            `json:"openingBalance"`
	Points         []BalancePointResponse `json:"points"`
}

// RevenueExpensePointResponse represents one bucket of the revenue versus expense series.
type RevenueExpensePointResponse struct {
	Date     string      `json:"date"`
	Revenues json.Number `json:"revenues"`
	Expenses json.Number `json:"expenses"`
}

// RevenueExpenseEvolutionResponse represents the revenue versus expense series.
type RevenueExpenseEvolutionResponse struct {
	StartDate   string                        `json:"startDate"`
	EndDate     string                        `json:"endDate"`
	Granularity string                        `json:"granularity"`
	Points      []RevenueExpensePointResponse `json:"points"`
}

// ExpenseCategoryItemResponse represents one category slice of the breakdown.
type ExpenseCategoryItemResponse struct {
	CategoryID   string      `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	Amount       json.Number `json:"amount"`
	HasChildren  bool        `json:"hasChildren"`
}

// ExpenseCategoryBreakdownResponse represents expenses per category at one drill-down level.
type ExpenseCategoryBreakdownResponse struct {
	StartDate                 string                        `json:"startDate"`
	EndDate                   string                        `json:"endDate"`
	CurrentParentCategoryID   *string                       `json:"currentParentCategoryId"`
	CurrentParentCategoryName *string                       `json:"currentParentCategoryName"`
	DrillUpParentCategoryID   *string                       `json:"drillUpParentCategoryId"`
	Items                     []ExpenseCategoryItemResponse `json:"items"`
}

// CategoryTotalsSeriesResponse represents the bucketed totals of one category.
type CategoryTotalsSeriesResponse struct {
	CategoryID   string        `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	HasChildren  bool          `json:"hasChildren"`
	Values       []json.Number `json:"values"`
}

// CategoryTotalsEvolutionResponse represents per-category series at one drill-down level.
type CategoryTotalsEvolutionResponse struct {
	StartDate                 string                         `json:"startDate"`
	EndDate                   string                         `json:"endDate"`
	Granularity               string                         `json:"granularity"`
	CurrentParentCategoryID   *string                        `json:"currentParentCategoryId"`
	CurrentParentCategoryName *string                        `json:"currentParentCategoryName"`
	DrillUpParentCategoryID   *string                        `json:"drillUpParentCategoryId"`
	Buckets                   []string                       `json:"buckets"`
	Series                    []CategoryTotalsSeriesResponse `json:"series"`
}

// CategoryOptionResponse represents one entry of the category select list.
type CategoryOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Depth int    `json:"depth"`
}

// ToBalanceReportResponse converts a balance table to its response DTO.
func ToBalanceReportResponse(r *report.BalanceReport) BalanceReportResponse {
	buckets := make([]BucketResponse, len(r.Buckets))
	for i, bucket := range r.Buckets {
		buckets[i] = BucketResponse{StartDate: date(bucket.StartDate), EndDate: date(bucket.EndDate)}
	}

	rows := make([]BalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = BalanceRowResponse{
			ID:                    row.ID.String(),
			Title:                 row.Title,
			Description:           row.Description,
			PreviousPeriodBalance: money(row.PreviousPeriodBalance),
			PeriodBalances:        moneyList(row.PeriodBalances),
		}
	}

	return BalanceReportResponse{
		StartDate:   date(r.StartDate),
		EndDate:     date(r.EndDate),
		Granularity: string(r.Granularity),
		Buckets:     buckets,
		Rows:        rows,
	}
}

func toMetricResponse(m report.Metric) MetricResponse {
	return MetricResponse{
		CurrentValue:     money(m.CurrentValue),
		PreviousValue:    money(m.PreviousValue),
		VariationPercent: percent(m.VariationPercent),
	}
}

// ToDashboardSummaryResponse converts a dashboard summary to its response DTO.
func ToDashboardSummaryResponse(s *report.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		StartDate:         date(s.StartDate),
		EndDate:           date(s.EndDate),
		PreviousStartDate: date(s.PreviousStartDate),
		PreviousEndDate:   date(s.PreviousEndDate),
		CurrentBalance:    toMetricResponse(s.CurrentBalance),
		TotalExpenses:     toMetricResponse(s.TotalExpenses),
		TotalRevenues:     toMetricResponse(s.TotalRevenues),
	}
}

// ToBalanceEvolutionResponse converts a balance evolution to its response DTO.
func ToBalanceEvolutionResponse(e *report.BalanceEvolution) BalanceEvolutionResponse {
	points := make([]BalancePointResponse, len(e.Points))
	for i, point := range e.Points {
		points[i] = BalancePointResponse{
			Date:               date(point.Date),
			PeriodAmount:       money(point.PeriodAmount),
			AccumulatedBalance: money(point.AccumulatedBalance),
		}
	}

	return BalanceEvolutionResponse{
		StartDate:      date(e.StartDate),
		EndDate:        date(e.EndDate),
		Granularity:    string(e.Granularity),
		OpeningBalance: money(e.OpeningBalance),
		Points:         points,
	}
}

// ToRevenueExpenseEvolutionResponse converts a revenue versus expense evolution to its response DTO.
func ToRevenueExpenseEvolutionResponse(e *report.RevenueExpenseEvolution) RevenueExpenseEvolutionResponse {
	points := make([]RevenueExpensePointResponse, len(e.Points))
	for i, point := range e.Points {
		points[i] = RevenueExpensePointResponse{
			Date:     date(point.Date),
			Revenues: money(point.Revenues),
			Expenses: money(point.Expenses),
		}
	}

	return RevenueExpenseEvolutionResponse{
		StartDate:   date(e.StartDate),
		EndDate:     date(e.EndDate),
		Granularity: string(e.Granularity),
		Points:      points,
	}
}

// ToExpenseCategoryBreakdownResponse converts an expense breakdown to its response DTO.
func ToExpenseCategoryBreakdownResponse(b *report.ExpenseCategoryBreakdown) ExpenseCategoryBreakdownResponse {
	items := make([]ExpenseCategoryItemResponse, len(b.Items))
	for i, item := range b.Items {
		items[i] = ExpenseCategoryItemResponse{
			CategoryID:   item.CategoryID.String(),
			CategoryName: item.CategoryName,
			Amount:       money(item.Amount),
			HasChildren:  item.HasChildren,
		}
	}

	return ExpenseCategoryBreakdownResponse{
		StartDate:                 date(b.StartDate),
		EndDate:                   date(b.EndDate),
		CurrentParentCategoryID:   optionalID(b.CurrentParentCategoryID),
		CurrentParentCategoryName: b.CurrentParentCategoryName,
		DrillUpParentCategoryID:   optionalID(b.DrillUpParentCategoryID),
		Items:                     items,
	}
}

// ToCategoryTotalsEvolutionResponse converts a category totals evolution to its response DTO.
func ToCategoryTotalsEvolutionResponse(e *report.CategoryTotalsEvolution) CategoryTotalsEvolutionResponse {
	series := make([]CategoryTotalsSeriesResponse, len(e.Series))
	for i, s := range e.Series {
		series[i] = CategoryTotalsSeriesResponse{
			CategoryID:   s.CategoryID.String(),
			CategoryName: s.CategoryName,
			HasChildren:  s.HasChildren,
			Values:       moneyList(s.Values),
		}
	}

	return CategoryTotalsEvolutionResponse{
		StartDate:                 date(e.StartDate),
		EndDate:                   date(e.EndDate),
		Granularity:               string(e.Granularity),
		CurrentParentCategoryID:   optionalID(e.CurrentParentCategoryID),
		CurrentParentCategoryName: e.CurrentParentCategoryName,
		DrillUpParentCategoryID:   optionalID(e.DrillUpParentCategoryID),
		Buckets:                   dateList(e.Buckets),
		Series:                    series,
	}
}

// ToCategoryOptionResponses converts category options to their response DTOs.
func ToCategoryOptionResponses(options []entity.CategoryOption) []CategoryOptionResponse {
	responses := make([]CategoryOptionResponse, len(options))
	for i, option := range options {
		responses[i] = CategoryOptionResponse{
			ID:    option.ID.String(),
			Label: option.Label,
			Depth: option.Depth,
		}
	}
	return responses
}
