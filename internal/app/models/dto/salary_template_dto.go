package dto

import "github.com/evren/schoolhub/internal/app/models"

// CreateSalaryTemplateRequest represents salary template creation data
type CreateSalaryTemplateRequest struct {
	Name          string                `json:"name" binding:"required"`
	Grade         string                `json:"grade" binding:"required"`
	BasicSalary   float64               `json:"basicSalary" binding:"required,gt=0"`
	Allowances    []models.PayComponent `json:"allowances"`
	Deductions    []models.PayComponent `json:"deductions"`
	EffectiveFrom string                `json:"effectiveFrom" binding:"required"`
}

// UpdateSalaryTemplateRequest represents salary template update data.
// Absent fields are left untouched.
type UpdateSalaryTemplateRequest struct {
	Name          *string                `json:"name"`
	Grade         *string                `json:"grade"`
	BasicSalary   *float64               `json:"basicSalary" binding:"omitempty,gt=0"`
	Allowances    *[]models.PayComponent `json:"allowances"`
	Deductions    *[]models.PayComponent `json:"deductions"`
	EffectiveFrom *string                `json:"effectiveFrom"`
}
