package model

// DashboardSummary aggregates the headline figures for one financial year.
// Pipeline figures are not filtered by financial year: they represent future
// opportunities regardless of when they are expected to settle.
type DashboardSummary struct {
	FinancialYear         string  `json:"financial_year"`
	SettledCount          int     `json:"settled_count"`
	GrossGCI              float64 `json:"gross_gci"`
	NetCommission         float64 `json:"net_commission"`
	TotalExpenses         float64 `json:"total_expenses"`
	NetIncome             float64 `json:"net_income"`
	PipelineWeightedValue float64 `json:"pipeline_weighted_value"`
	GCIGoal               float64 `json:"gci_goal"`
	GCIGoalProgress       float64 `json:"gci_goal_progress"`
}
