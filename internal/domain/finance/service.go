package finance

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateRecordRequest struct {
	Kind        string     `json:"kind" validate:"required,oneof=income expense"`
	Category    string     `json:"category" validate:"required,min=2,max=120"`
	Description string     `json:"description" validate:"max=2000"`
	Amount      string     `json:"amount" validate:"required"`
	ClientID    *int64     `json:"client_id"`
	ProjectID   *int64     `json:"project_id"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

func (s *Service) Create(ctx context.Context, userID int64, req *CreateRecordRequest) (*Record, error) {
	kind := Kind(req.Kind)
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	occurred := time.Now()
	if req.OccurredAt != nil {
		occurred = *req.OccurredAt
	}

	now := time.Now()
	rec := &Record{
		Kind:        kind,
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		OccurredAt:  occurred,
		CreatedBy:   &userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	if filter.Kind != nil && !filter.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Summarize fetches the filtered records and folds them into the KPI
// block: totals, balance, per-category expense breakdown and a monthly
// income/expense series sorted chronologically.
func (s *Service) Summarize(ctx context.Context, filter ListFilter) (*Summary, error) {
	records, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return BuildSummary(records), nil
}

// BuildSummary is the pure aggregation over a record set.
func BuildSummary(records []*Record) *Summary {
	summary := &Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
	}

	monthly := make(map[string]*MonthlyTotals)
	for _, rec := range records {
		month := rec.OccurredAt.Format("2006-01")
		mt, ok := monthly[month]
		if !ok {
			mt = &MonthlyTotals{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
			monthly[month] = mt
		}

		switch rec.Kind {
		case KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(rec.Amount)
			mt.Income = mt.Income.Add(rec.Amount)
		case KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(rec.Amount)
			mt.Expense = mt.Expense.Add(rec.Amount)
			current, ok := summary.ByCategory[rec.Category]
			if !ok {
				current = decimal.Zero
			}
			summary.ByCategory[rec.Category] = current.Add(rec.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		summary.Monthly = append(summary.Monthly, *monthly[month])
	}

	return summary
}
