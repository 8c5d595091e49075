package models

import "time"

// SalaryTemplate defines a pay structure for a staff grade. Component amounts
// are stored as-is; totals are not cross-checked against the basic salary.
type SalaryTemplate struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Grade         string          `json:"grade" db:"grade"`
	BasicSalary   float64         `json:"basicSalary" db:"basic_salary"`
	Allowances    []PayComponent  `json:"allowances" db:"allowances"`
	Deductions    []PayComponent  `json:"deductions" db:"deductions"`
	EffectiveFrom time.Time       `json:"effectiveFrom" db:"effective_from"`
	CreatedBy     int64           `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// PayComponent is one named allowance or deduction.
type PayComponent struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
