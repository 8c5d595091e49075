package services

import (
	"context"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
)

// SalaryTemplateService handles pay structure templates.
type SalaryTemplateService struct {
	templateRepo *repositories.SalaryTemplateRepository
}

// NewSalaryTemplateService creates a new salary template service.
func NewSalaryTemplateService(templateRepo *repositories.SalaryTemplateRepository) *SalaryTemplateService {
	return &SalaryTemplateService{templateRepo: templateRepo}
}

// CreateSalaryTemplate creates a template. Component amounts are stored
// as-is without cross-checking against the basic salary.
func (s *SalaryTemplateService) CreateSalaryTemplate(ctx context.Context, actorID int64, req *dto.CreateSalaryTemplateRequest) (*models.SalaryTemplate, error) {
	effectiveFrom, err := helpers.ParseDate(req.EffectiveFrom)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid effectiveFrom")
	}

	template := &models.SalaryTemplate{
		Name:          req.Name,
		Grade:         req.Grade,
		BasicSalary:   req.BasicSalary,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
		EffectiveFrom: effectiveFrom,
		CreatedBy:     actorID,
	}
	if template.Allowances == nil {
		template.Allowances = []models.PayComponent{}
	}
	if template.Deductions == nil {
		template.Deductions = []models.PayComponent{}
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// GetSalaryTemplateByID retrieves a template.
func (s *SalaryTemplateService) GetSalaryTemplateByID(ctx context.Context, id int64) (*models.SalaryTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// GetAllSalaryTemplates lists templates, most recently effective first.
func (s *SalaryTemplateService) GetAllSalaryTemplates(ctx context.Context) ([]*models.SalaryTemplate, error) {
	return s.templateRepo.GetAll(ctx)
}

// UpdateSalaryTemplate applies the present fields of the request to an
// existing template.
func (s *SalaryTemplateService) UpdateSalaryTemplate(ctx context.Context, id int64, req *dto.UpdateSalaryTemplateRequest) (*models.SalaryTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Grade != nil {
		template.Grade = *req.Grade
	}
	if req.BasicSalary != nil {
		template.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		template.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		template.Deductions = *req.Deductions
	}
	if req.EffectiveFrom != nil {
		effectiveFrom, err := helpers.ParseDate(*req.EffectiveFrom)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid effectiveFrom")
		}
		template.EffectiveFrom = effectiveFrom
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// DeleteSalaryTemplate removes a template.
func (s *SalaryTemplateService) DeleteSalaryTemplate(ctx context.Context, id int64) error {
	return s.templateRepo.Delete(ctx, id)
}
