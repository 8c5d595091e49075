package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/app/repositories"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
	"github.com/evren/schoolhub/internal/pkg/filestorage"
	"github.com/evren/schoolhub/internal/pkg/logger"
)

// ResourceService handles teaching resource uploads.
type ResourceService struct {
	resourceRepo *repositories.ResourceRepository
	fileStorage  filestorage.FileStorage
}

// NewResourceService creates a new resource service.
func NewResourceService(resourceRepo *repositories.ResourceRepository, fileStorage filestorage.FileStorage) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo, fileStorage: fileStorage}
}

// CreateResource stores the uploaded file and records its metadata.
func (s *ResourceService) CreateResource(ctx context.Context, actorID int64, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("resource file is required")
	}

	url, err := s.fileStorage.SaveFileWithPath(file, "resources")
	if err != nil {
		return nil, fmt.Errorf("error saving resource file: %w", err)
	}

	resource := &models.Resource{
		Title:      req.Title,
		Subject:    req.Subject,
		ClassName:  req.ClassName,
		FileURL:    url,
		UploadedBy: actorID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		if delErr := s.fileStorage.DeleteFile(url); delErr != nil {
			logger.Warn().Err(delErr).Str("file", url).Msg("Failed to delete orphaned resource file")
		}
		return nil, err
	}

	return resource, nil
}

// GetResourceByID retrieves a resource.
func (s *ResourceService) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

// GetAllResources lists resources, optionally filtered by subject or class.
func (s *ResourceService) GetAllResources(ctx context.Context, subject, className string) ([]*models.Resource, error) {
	return s.resourceRepo.GetAll(ctx, subject, className)
}

// UpdateResource applies the present metadata fields; a new file replaces
// the stored one.
func (s *ResourceService) UpdateResource(ctx context.Context, id int64, req *dto.UpdateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Subject != nil {
		resource.Subject = *req.Subject
	}
	if req.ClassName != nil {
		resource.ClassName = *req.ClassName
	}

	if file != nil {
		oldURL := resource.FileURL
		url, err := s.fileStorage.SaveFileWithPath(file, "resources")
		if err != nil {
			return nil, fmt.Errorf("error saving resource file: %w", err)
		}
		resource.FileURL = url
		if err := s.fileStorage.DeleteFile(oldURL); err != nil {
			logger.Warn().Err(err).Str("file", oldURL).Msg("Failed to delete replaced resource file")
		}
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// DeleteResource removes a resource and its stored file.
func (s *ResourceService) DeleteResource(ctx context.Context, id int64) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteFile(resource.FileURL); err != nil {
		logger.Warn().Err(err).Str("file", resource.FileURL).Msg("Failed to delete resource file")
	}

	return nil
}
