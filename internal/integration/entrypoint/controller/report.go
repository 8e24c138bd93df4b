// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/ledger-reports/internal/domain/error"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/dto"
)

// ReportController handles report and dashboard endpoints.
type ReportController struct {
	accountBalanceUseCase          *report.GetAccountBalanceReportUseCase
	categoryBalanceUseCase         *report.GetCategoryBalanceReportUseCase
	dashboardSummaryUseCase        *report.GetDashboardSummaryUseCase
	balanceEvolutionUseCase        *report.GetBalanceEvolutionUseCase
	revenueExpenseEvolutionUseCase *report.GetRevenueExpenseEvolutionUseCase
	expenseBreakdownUseCase        *report.GetExpenseCategoryBreakdownUseCase
	categoryTotalsUseCase          *report.GetCategoryTotalsEvolutionUseCase
	categoryOptionsUseCase         *report.ListCategoryOptionsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	accountBalanceUseCase *report.GetAccountBalanceReportUseCase,
	categoryBalanceUseCase *report.GetCategoryBalanceReportUseCase,
	dashboardSummaryUseCase *report.GetDashboardSummaryUseCase,
	balanceEvolutionUseCase *report.GetBalanceEvolutionUseCase,
	revenueExpenseEvolutionUseCase *report.GetRevenueExpenseEvolutionUseCase,
	expenseBreakdownUseCase *report.GetExpenseCategoryBreakdownUseCase,
	categoryTotalsUseCase *report.GetCategoryTotalsEvolutionUseCase,
	categoryOptionsUseCase *report.ListCategoryOptionsUseCase,
) *ReportController {
	return &ReportController{
		accountBalanceUseCase:          accountBalanceUseCase,
		categoryBalanceUseCase:         categoryBalanceUseCase,
		dashboardSummaryUseCase:        dashboardSummaryUseCase,
		balanceEvolutionUseCase:        balanceEvolutionUseCase,
		revenueExpenseEvolutionUseCase: revenueExpenseEvolutionUseCase,
		expenseBreakdownUseCase:        expenseBreakdownUseCase,
		categoryTotalsUseCase:          categoryTotalsUseCase,
		categoryOptionsUseCase:         categoryOptionsUseCase,
	}
}

// AccountBalances handles GET /reports/accounts requests.
func (c *ReportController) AccountBalances(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.accountBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceReportResponse(output))
}

// CategoryBalances handles GET /reports/categories requests.
func (c *ReportController) CategoryBalances(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.categoryBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceReportResponse(output))
}

// DashboardSummary handles GET /dashboard/summary requests.
func (c *ReportController) DashboardSummary(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// BalanceEvolution handles GET /dashboard/balance-evolution requests.
func (c *ReportController) BalanceEvolution(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.balanceEvolutionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceEvolutionResponse(output))
}

// RevenuesVsExpenses handles GET /dashboard/revenues-vs-expenses requests.
func (c *ReportController) RevenuesVsExpenses(ctx *gin.Context) {
	input, ok := c.parseRange(ctx)
	if !ok {
		return
	}

	output, err := c.revenueExpenseEvolutionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueExpenseEvolutionResponse(output))
}

// ExpensesByCategory handles GET /dashboard/expenses-by-category requests.
func (c *ReportController) ExpensesByCategory(ctx *gin.Context) {
	input, ok := c.parseDrillDown(ctx)
	if !ok {
		return
	}

	output, err := c.expenseBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseCategoryBreakdownResponse(output))
}

// CategoryTotals handles GET /dashboard/category-totals requests.
func (c *ReportController) CategoryTotals(ctx *gin.Context) {
	input, ok := c.parseDrillDown(ctx)
	if !ok {
		return
	}

	output, err := c.categoryTotalsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsEvolutionResponse(output))
}

// CategoryOptions handles GET /categories/options requests.
func (c *ReportController) CategoryOptions(ctx *gin.Context) {
	options, err := c.categoryOptionsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryOptionResponses(options))
}

// parseRange reads start_date and end_date. Missing values are left zero so
// the use case reports them; malformed values are rejected here.
func (c *ReportController) parseRange(ctx *gin.Context) (report.RangeInput, bool) {
	startDate, ok := c.parseDateQuery(ctx, "start_date")
	if !ok {
		return report.RangeInput{}, false
	}

	endDate, ok := c.parseDateQuery(ctx, "end_date")
	if !ok {
		return report.RangeInput{}, false
	}

	return report.RangeInput{StartDate: startDate, EndDate: endDate}, true
}

func (c *ReportController) parseDrillDown(ctx *gin.Context) (report.DrillDownInput, bool) {
	rangeInput, ok := c.parseRange(ctx)
	if !ok {
		return report.DrillDownInput{}, false
	}

	input := report.DrillDownInput{
		StartDate: rangeInput.StartDate,
		EndDate:   rangeInput.EndDate,
	}

	if raw := ctx.Query("parent_category_id"); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid parent_category_id format",
				Code:  string(domainerror.ErrCodeInvalidCategoryID),
			})
			return report.DrillDownInput{}, false
		}
		input.ParentCategoryID = &parentID
	}

	return input, true
}

func (c *ReportController) parseDateQuery(ctx *gin.Context, name string) (time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, true
	}

	date, err := report.ParseDate(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, false
	}

	return date, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		if statusCode != http.StatusInternalServerError {
			ctx.JSON(statusCode, dto.ErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
			})
			return
		}
	}

	slog.ErrorContext(ctx.Request.Context(), "report request failed",
		"path", ctx.FullPath(),
		"error", err,
	)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeReportInternalError),
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidCategoryID:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownCategory:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
