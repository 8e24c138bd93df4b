// Package mcptools exposes the ledger reports as MCP tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finance-tracker/ledger-reports/internal/application/usecase/report"
	"github.com/finance-tracker/ledger-reports/internal/integration/entrypoint/dto"
)

// ReportTools serves report use cases to MCP clients.
type ReportTools struct {
	accountBalanceUseCase          *report.GetAccountBalanceReportUseCase
	categoryBalanceUseCase         *report.GetCategoryBalanceReportUseCase
	dashboardSummaryUseCase        *report.GetDashboardSummaryUseCase
	balanceEvolutionUseCase        *report.GetBalanceEvolutionUseCase
	revenueExpenseEvolutionUseCase *report.GetRevenueExpenseEvolutionUseCase
	expenseBreakdownUseCase        *report.GetExpenseCategoryBreakdownUseCase
	categoryTotalsUseCase          *report.GetCategoryTotalsEvolutionUseCase
	categoryOptionsUseCase         *report.ListCategoryOptionsUseCase
}

// NewReportTools creates a new ReportTools instance.
func NewReportTools(
	accountBalanceUseCase *report.GetAccountBalanceReportUseCase,
	categoryBalanceUseCase *report.GetCategoryBalanceReportUseCase,
	dashboardSummaryUseCase *report.GetDashboardSummaryUseCase,
	balanceEvolutionUseCase *report.GetBalanceEvolutionUseCase,
	revenueExpenseEvolutionUseCase *report.GetRevenueExpenseEvolutionUseCase,
	expenseBreakdownUseCase *report.GetExpenseCategoryBreakdownUseCase,
	categoryTotalsUseCase *report.GetCategoryTotalsEvolutionUseCase,
	categoryOptionsUseCase *report.ListCategoryOptionsUseCase,
) *ReportTools {
	return &ReportTools{
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

// Register adds every report tool to the server.
func (t *ReportTools) Register(s *server.MCPServer) {
	s.AddTool(rangeTool("dashboard_summary",
		"Summarize the current balance, total expenses and total revenues of a period, each compared with the equal-length period right before it. A null variation means there is no prior baseline.",
	), t.dashboardSummary)

	s.AddTool(rangeTool("balance_evolution",
		"Running balance over a period, bucketed by day or by month for ranges of two months or more. Includes the opening balance before the period.",
	), t.balanceEvolution)

	s.AddTool(rangeTool("revenue_expense_evolution",
		"Revenues and expenses per bucket over a period, bucketed by day or by month for ranges of two months or more.",
	), t.revenueExpenseEvolution)

	s.AddTool(drillDownTool("expenses_by_category",
		"Expenses per category over a period. Each category total includes its subcategories. Pass parent_category_id to drill into a category.",
	), t.expensesByCategory)

	s.AddTool(drillDownTool("category_totals",
		"Net totals per category and bucket over a period, signed (negative for net spending). Pass parent_category_id to drill into a category.",
	), t.categoryTotals)

	s.AddTool(rangeTool("account_balances",
		"Balance table per account: the balance before the period and the net movement of each day, month or year bucket.",
	), t.accountBalances)

	s.AddTool(rangeTool("category_balances",
		"Balance table per category: the balance before the period and the net movement of each day, month or year bucket.",
	), t.categoryBalances)

	s.AddTool(mcp.NewTool("category_options",
		mcp.WithDescription("List every category flattened in hierarchy order, with labels indented by depth."),
	), t.categoryOptions)
}

func rangeTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date (YYYY-MM-DD), inclusive"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date (YYYY-MM-DD), inclusive"),
		),
	)
}

func drillDownTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date (YYYY-MM-DD), inclusive"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date (YYYY-MM-DD), inclusive"),
		),
		mcp.WithString("parent_category_id",
			mcp.Description("Category whose direct children are listed. Omit for root categories."),
		),
	)
}

func (t *ReportTools) dashboardSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseRange(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.dashboardSummaryUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToDashboardSummaryResponse(output))
}

func (t *ReportTools) balanceEvolution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseRange(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.balanceEvolutionUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToBalanceEvolutionResponse(output))
}

func (t *ReportTools) revenueExpenseEvolution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseRange(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.revenueExpenseEvolutionUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToRevenueExpenseEvolutionResponse(output))
}

func (t *ReportTools) expensesByCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseDrillDown(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.expenseBreakdownUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToExpenseCategoryBreakdownResponse(output))
}

func (t *ReportTools) categoryTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseDrillDown(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.categoryTotalsUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToCategoryTotalsEvolutionResponse(output))
}

func (t *ReportTools) accountBalances(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseRange(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.accountBalanceUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToBalanceReportResponse(output))
}

func (t *ReportTools) categoryBalances(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseRange(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	output, err := t.categoryBalanceUseCase.Execute(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToBalanceReportResponse(output))
}

func (t *ReportTools) categoryOptions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	options, err := t.categoryOptionsUseCase.Execute(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(dto.ToCategoryOptionResponses(options))
}

func parseRange(request mcp.CallToolRequest) (report.RangeInput, error) {
	startDate, err := requireDate(request, "start_date")
	if err != nil {
		return report.RangeInput{}, err
	}
	endDate, err := requireDate(request, "end_date")
	if err != nil {
		return report.RangeInput{}, err
	}
	return report.RangeInput{StartDate: startDate, EndDate: endDate}, nil
}

func parseDrillDown(request mcp.CallToolRequest) (report.DrillDownInput, error) {
	rangeInput, err := parseRange(request)
	if err != nil {
		return report.DrillDownInput{}, err
	}

	input := report.DrillDownInput{StartDate: rangeInput.StartDate, EndDate: rangeInput.EndDate}
	if raw := mcp.ParseString(request, "parent_category_id", ""); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			return report.DrillDownInput{}, fmt.Errorf("invalid parent_category_id %q", raw)
		}
		input.ParentCategoryID = &parentID
	}
	return input, nil
}

func requireDate(request mcp.CallToolRequest, name string) (time.Time, error) {
	raw, err := request.RequireString(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	date, err := report.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, raw)
	}
	return date, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
