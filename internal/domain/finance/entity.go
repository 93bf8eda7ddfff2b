package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Record is a single financial entry, income or expense, optionally
// linked to a client and project.
type Record struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind        Kind            `gorm:"column:kind;index" json:"kind"`
	Category    string          `gorm:"column:category" json:"category"`
	Description string          `gorm:"column:description" json:"description,omitempty"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(14,2)" json:"amount"`
	ClientID    *int64          `gorm:"column:client_id" json:"client_id,omitempty"`
	ProjectID   *int64          `gorm:"column:project_id" json:"project_id,omitempty"`
	OccurredAt  time.Time       `gorm:"column:occurred_at;index" json:"occurred_at"`
	CreatedBy   *int64          `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Record) TableName() string { return "financial_records" }

// Summary is the KPI block rendered at the top of the finance page.
type Summary struct {
	TotalIncome  decimal.Decimal            `json:"total_income"`
	TotalExpense decimal.Decimal            `json:"total_expense"`
	Balance      decimal.Decimal            `json:"balance"`
	ByCategory   map[string]decimal.Decimal `json:"by_category"`
	Monthly      []MonthlyTotals            `json:"monthly"`
}

// MonthlyTotals is one point of the income/expense chart series.
type MonthlyTotals struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
