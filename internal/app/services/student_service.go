package services

import (
	"context"
	"fmt"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/helpers"
	"github.com/evren/schoolhub/internal/pkg/validation"
)

// StudentService handles student enrollment records.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service.
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudent enrolls a student. Roll numbers must match the school format
// and be unique.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidRollNumber(req.RollNumber) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid roll number: %s", req.RollNumber))
	}

	student := &models.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		RollNumber:    req.RollNumber,
		ClassName:     req.ClassName,
		Section:       req.Section,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents lists a page of students, optionally filtered by class and
// section, along with the pagination metadata for the result set.
func (s *StudentService) GetAllStudents(ctx context.Context, className, section string, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.GetAll(ctx, className, section, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.studentRepo.Count(ctx, className, section)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateStudent applies the present fields of the request to an existing
// student record.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RollNumber != nil {
		if !validation.IsValidRollNumber(*req.RollNumber) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid roll number: %s", *req.RollNumber))
		}
		student.RollNumber = *req.RollNumber
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.Section != nil {
		student.Section = *req.Section
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student record.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
