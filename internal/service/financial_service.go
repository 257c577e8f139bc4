package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/filter"
	"github.com/idealiza/admin-service/internal/format"
	"github.com/idealiza/admin-service/internal/repository"
	"github.com/idealiza/admin-service/internal/tabs"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// Financial tab identifiers.
const (
	FinancialTabOverview = "overview"
	FinancialTabPayroll  = "payroll"
	FinancialTabCosts    = "costs"
	FinancialTabPayments = "payments"
)

// marginTarget is the margin above which a client is flagged healthy.
const marginTarget = 25.0

var financialTabs = tabs.NewSet(
	tabs.Tab{ID: FinancialTabOverview, Label: "Visão Geral"},
	tabs.Tab{ID: FinancialTabPayroll, Label: "Folha de Pagamento"},
	tabs.Tab{ID: FinancialTabCosts, Label: "Custos por Cliente"},
	tabs.Tab{ID: FinancialTabPayments, Label: "Pagamentos"},
)

// FinancialQuery selects a tab and its optional filters.
type FinancialQuery struct {
	Tab    string
	Search string
	Status string
}

// OverviewCard is one headline figure compared with the previous month.
type OverviewCard struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	ValueLabel  string  `json:"value_label"`
	Change      float64 `json:"change"`
	ChangeLabel string  `json:"change_label"`
}

// TrendPoint is one month of the cost trend.
type TrendPoint struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

// OverviewBlock is the overview tab.
type OverviewBlock struct {
	Period    string         `json:"period"`
	Cards     []OverviewCard `json:"cards"`
	CostTrend []TrendPoint   `json:"cost_trend"`
}

// PayrollMonthView adds the net amount to a payroll month.
type PayrollMonthView struct {
	domain.PayrollMonth
	Net float64 `json:"net"`
}

// DepartmentPayrollView adds totals to a department row.
type DepartmentPayrollView struct {
	domain.DepartmentPayroll
	Total      float64 `json:"total"`
	TotalLabel string  `json:"total_label"`
}

// PayrollSummary sums the department breakdown.
type PayrollSummary struct {
	Employees  int     `json:"employees"`
	Salaries   float64 `json:"salaries"`
	Benefits   float64 `json:"benefits"`
	Taxes      float64 `json:"taxes"`
	Total      float64 `json:"total"`
	TotalLabel string  `json:"total_label"`
}

// PayrollBlock is the payroll tab.
type PayrollBlock struct {
	Months      []PayrollMonthView      `json:"months"`
	Departments []DepartmentPayrollView `json:"departments"`
	Summary     PayrollSummary          `json:"summary"`
}

// ClientCostView is a client cost row with labels and the margin badge.
type ClientCostView struct {
	domain.ClientCost
	TotalCostLabel     string  `json:"total_cost_label"`
	AvgCostLabel       string  `json:"avg_cost_label"`
	ContractValueLabel string  `json:"contract_value_label"`
	MarginValue        float64 `json:"margin_value"`
	MarginBadge        string  `json:"margin_badge"`
}

// CostTotals aggregate the listed client rows.
type CostTotals struct {
	Employees          int     `json:"employees"`
	TotalCost          float64 `json:"total_cost"`
	TotalCostLabel     string  `json:"total_cost_label"`
	ContractValue      float64 `json:"contract_value"`
	ContractValueLabel string  `json:"contract_value_label"`
	AverageMargin      float64 `json:"average_margin"`
	AverageMarginLabel string  `json:"average_margin_label"`
}

// CostsBlock is the client costs tab.
type CostsBlock struct {
	Clients []ClientCostView `json:"clients"`
	Totals  CostTotals       `json:"totals"`
}

// PaymentView is a payment with display labels.
type PaymentView struct {
	domain.Payment
	DateLabel   string `json:"date_label"`
	AmountLabel string `json:"amount_label"`
	StatusLabel string `json:"status_label"`
}

// PaymentTotals split the listed amounts by settlement.
type PaymentTotals struct {
	Paid         float64 `json:"paid"`
	PaidLabel    string  `json:"paid_label"`
	Pending      float64 `json:"pending"`
	PendingLabel string  `json:"pending_label"`
}

// PaymentsBlock is the payments tab.
type PaymentsBlock struct {
	Payments []PaymentView `json:"payments"`
	Totals   PaymentTotals `json:"totals"`
}

// FinancialService serves the financial tabs.
type FinancialService struct {
	repo   repository.FinanceRepository
	logger *zap.Logger
}

// NewFinancialService builds the service.
func NewFinancialService(repo repository.FinanceRepository, logger *zap.Logger) *FinancialService {
	return &FinancialService{repo: repo, logger: logger}
}

// View renders exactly the block of the selected tab.
func (s *FinancialService) View(ctx context.Context, q FinancialQuery) (*TabView, error) {
	sel := financialTabs.NewSelector()
	if err := sel.Select(q.Tab); err != nil {
		return nil, unknownTab(err, financialTabs)
	}

	content, err := tabs.Render(ctx, sel, map[string]tabs.Block[any]{
		FinancialTabOverview: func(ctx context.Context) (any, error) { return s.overview(ctx) },
		FinancialTabPayroll:  func(ctx context.Context) (any, error) { return s.payroll(ctx) },
		FinancialTabCosts:    func(ctx context.Context) (any, error) { return s.costs(ctx, q.Search, q.Status) },
		FinancialTabPayments: func(ctx context.Context) (any, error) { return s.payments(ctx, q.Search, q.Status) },
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &TabView{Tabs: sel.Tabs(), Active: sel.Current().ID, Content: content}, nil
}

func (s *FinancialService) overview(ctx context.Context) (*OverviewBlock, error) {
	months, err := s.repo.ListPayrollMonths(ctx)
	if err != nil {
		return nil, err
	}
	block := &OverviewBlock{Cards: []OverviewCard{}, CostTrend: make([]TrendPoint, 0, len(months))}
	for _, m := range months {
		block.CostTrend = append(block.CostTrend, TrendPoint{Month: m.Month, Cost: m.TotalCost})
	}
	if len(months) == 0 {
		return block, nil
	}

	current := months[len(months)-1]
	previous := current
	if len(months) > 1 {
		previous = months[len(months)-2]
	}
	block.Period = current.Month + "/" + strconv.Itoa(current.Year)
	block.Cards = []OverviewCard{
		overviewCard("Folha de Pagamento", previous.Total, current.Total),
		overviewCard("Benefícios", previous.Benefits, current.Benefits),
		overviewCard("Encargos", previous.Taxes, current.Taxes),
		overviewCard("Custo Total", previous.TotalCost, current.TotalCost),
	}
	return block, nil
}

func overviewCard(label string, previous, current float64) OverviewCard {
	change := format.Change(previous, current)
	return OverviewCard{
		Label:       label,
		Value:       current,
		ValueLabel:  format.CompactCurrency(current),
		Change:      change,
		ChangeLabel: format.SignedPercentLabel(change) + " vs mês anterior",
	}
}

func (s *FinancialService) payroll(ctx context.Context) (*PayrollBlock, error) {
	months, err := s.repo.ListPayrollMonths(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.repo.ListDepartmentPayroll(ctx)
	if err != nil {
		return nil, err
	}

	block := &PayrollBlock{
		Months:      make([]PayrollMonthView, 0, len(months)),
		Departments: make([]DepartmentPayrollView, 0, len(departments)),
	}
	for _, m := range months {
		block.Months = append(block.Months, PayrollMonthView{PayrollMonth: m, Net: m.Net()})
	}
	for _, d := range departments {
		total := d.Total()
		block.Departments = append(block.Departments, DepartmentPayrollView{
			DepartmentPayroll: d,
			Total:             total,
			TotalLabel:        format.Currency(total),
		})
		block.Summary.Employees += d.Employees
		block.Summary.Salaries += d.Salaries
		block.Summary.Benefits += d.Benefits
		block.Summary.Taxes += d.Taxes
		block.Summary.Total += total
	}
	block.Summary.TotalLabel = format.Currency(block.Summary.Total)
	return block, nil
}

func (s *FinancialService) costs(ctx context.Context, search, status string) (*CostsBlock, error) {
	all, err := s.repo.ListClientCosts(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.New[domain.ClientCost]().
		Text(search, func(c domain.ClientCost) string { return c.Client }).
		Equals(status, func(c domain.ClientCost) string { return c.Status }).
		Apply(all)

	block := &CostsBlock{Clients: make([]ClientCostView, 0, len(matched))}
	var marginSum float64
	for _, c := range matched {
		margin := parseMargin(c.Margin)
		badge := "warning"
		if margin > marginTarget {
			badge = "success"
		}
		block.Clients = append(block.Clients, ClientCostView{
			ClientCost:         c,
			TotalCostLabel:     format.Currency(c.TotalCost),
			AvgCostLabel:       format.Currency(c.AvgCost),
			ContractValueLabel: format.Currency(c.ContractValue),
			MarginValue:        margin,
			MarginBadge:        badge,
		})
		marginSum += margin
		block.Totals.Employees += c.Employees
		block.Totals.TotalCost += c.TotalCost
		block.Totals.ContractValue += c.ContractValue
	}
	if n := len(matched); n > 0 {
		block.Totals.AverageMargin = format.Round1(marginSum / float64(n))
	}
	block.Totals.TotalCostLabel = format.Currency(block.Totals.TotalCost)
	block.Totals.ContractValueLabel = format.Currency(block.Totals.ContractValue)
	block.Totals.AverageMarginLabel = format.PercentLabel(block.Totals.AverageMargin)
	return block, nil
}

func (s *FinancialService) payments(ctx context.Context, search, status string) (*PaymentsBlock, error) {
	all, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.New[domain.Payment]().
		Text(search, func(p domain.Payment) string { return p.Description }).
		Equals(status, func(p domain.Payment) string { return string(p.Status) }).
		Apply(all)

	block := &PaymentsBlock{Payments: make([]PaymentView, 0, len(matched))}
	for _, p := range matched {
		block.Payments = append(block.Payments, PaymentView{
			Payment:     p,
			DateLabel:   format.Date(p.Date),
			AmountLabel: format.Currency(p.Amount),
			StatusLabel: p.Status.Label(),
		})
		if p.Status == domain.PayrollPaid {
			block.Totals.Paid += p.Amount
		} else {
			block.Totals.Pending += p.Amount
		}
	}
	block.Totals.PaidLabel = format.Currency(block.Totals.Paid)
	block.Totals.PendingLabel = format.Currency(block.Totals.Pending)
	return block, nil
}

// parseMargin reads a "24.4%" style margin; malformed values count as zero.
func parseMargin(margin string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(margin), "%"), 64)
	if err != nil {
		return 0
	}
	return v
}
