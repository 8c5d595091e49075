package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/evren/schoolhub/internal/app/models"
	"github.com/evren/schoolhub/internal/app/models/dto"
	"github.com/evren/schoolhub/internal/pkg/apperrors"
)

type fakeProjectStore struct {
	projects map[int64]*models.Project
	nextID   int64
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[int64]*models.Project), nextID: 1}
}

func (f *fakeProjectStore) Create(_ context.Context, p *models.Project) error {
	p.ID = f.nextID
	f.nextID++
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectStore) GetByIDForOwner(_ context.Context, id, ownerID int64) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok || p.CreatedBy != ownerID {
		return nil, apperrors.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectStore) GetAllForOwner(_ context.Context, ownerID int64) ([]*models.Project, error) {
	out := make([]*models.Project, 0)
	for _, p := range f.projects {
		if p.CreatedBy == ownerID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) Update(_ context.Context, p *models.Project) error {
	existing, ok := f.projects[p.ID]
	if !ok || existing.CreatedBy != p.CreatedBy {
		return apperrors.ErrProjectNotFound
	}
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectStore) DeleteForOwner(_ context.Context, id, ownerID int64) error {
	p, ok := f.projects[id]
	if !ok || p.CreatedBy != ownerID {
		return apperrors.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeContributionStore struct {
	contributions []*models.Contribution
	nextID        int64
}

func (f *fakeContributionStore) Create(_ context.Context, c *models.Contribution) error {
	f.nextID++
	c.ID = f.nextID
	copied := *c
	f.contributions = append(f.contributions, &copied)
	return nil
}

func (f *fakeContributionStore) GetByProjectID(_ context.Context, projectID int64) ([]*models.Contribution, error) {
	out := make([]*models.Contribution, 0)
	for _, c := range f.contributions {
		if c.ProjectID == projectID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeFileStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	url := fmt.Sprintf("http://localhost:8080/uploads/%s/%s", subPath, fileHeader.Filename)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeFileStorage) DeleteFile(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func newProjectTestService(studentIDs ...int64) (*ProjectService, *fakeProjectStore, *fakeContributionStore) {
	known := make(map[int64]bool)
	for _, id := range studentIDs {
		known[id] = true
	}
	projects := newFakeProjectStore()
	contributions := &fakeContributionStore{}
	svc := NewProjectService(projects, contributions, &fakeStudentChecker{known: known}, &fakeFileStorage{})
	return svc, projects, contributions
}

func validCreateProjectRequest() dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		Title:     "Solar oven",
		ClassName: "8",
		Section:   "A",
		Subject:   "Science",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
	}
}

func TestCreateProjectDefaultsAndJSONFields(t *testing.T) {
	svc, _, _ := newProjectTestService()
	ctx := context.Background()

	req := validCreateProjectRequest()
	req.EvaluationCriteria = `[{"criterion":"Design","weightage":40},{"criterion":"Report","weightage":60}]`

	project, err := svc.CreateProject(ctx, 3, &req, nil)
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	if project.Status != models.ProjectStatusPlanned {
		t.Errorf("Status = %q, want default %q", project.Status, models.ProjectStatusPlanned)
	}
	if project.CreatedBy != 3 {
		t.Errorf("CreatedBy = %d, want 3", project.CreatedBy)
	}
	if len(project.EvaluationCriteria) != 2 {
		t.Fatalf("criteria count = %d, want 2", len(project.EvaluationCriteria))
	}
	if project.EvaluationCriteria[0].Criterion != "Design" {
		t.Errorf("criteria order not preserved: first = %q", project.EvaluationCriteria[0].Criterion)
	}
	if project.Groups == nil || len(project.Groups) != 0 {
		t.Errorf("Groups = %v, want empty slice for absent field", project.Groups)
	}
}

func TestCreateProjectMalformedJSONRejected(t *testing.T) {
	svc, _, _ := newProjectTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.CreateProjectRequest)
	}{
		{"malformed criteria", func(r *dto.CreateProjectRequest) { r.EvaluationCriteria = `{"not":"a list"` }},
		{"malformed groups", func(r *dto.CreateProjectRequest) { r.Groups = `[[[` }},
		{"unknown status", func(r *dto.CreateProjectRequest) { r.Status = "Abandoned" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateProjectRequest()
			tt.mutate(&req)
			if _, err := svc.CreateProject(ctx, 1, &req, nil); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateProject() error = %v, want validation failure", err)
			}
		})
	}
}

func TestProjectOwnerScoping(t *testing.T) {
	svc, _, _ := newProjectTestService()
	ctx := context.Background()

	req := validCreateProjectRequest()
	project, err := svc.CreateProject(ctx, 1, &req, nil)
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	// Another staff member's reads and writes see nothing.
	if _, err := svc.GetProjectByID(ctx, project.ID, 2); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("GetProjectByID(other owner) error = %v, want %v", err, apperrors.ErrProjectNotFound)
	}
	if err := svc.DeleteProject(ctx, project.ID, 2); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("DeleteProject(other owner) error = %v, want %v", err, apperrors.ErrProjectNotFound)
	}

	others, err := svc.GetAllProjects(ctx, 2)
	if err != nil {
		t.Fatalf("GetAllProjects() error: %v", err)
	}
	if len(others) != 0 {
		t.Errorf("other owner sees %d projects, want 0", len(others))
	}

	// The owner still sees it.
	if _, err := svc.GetProjectByID(ctx, project.ID, 1); err != nil {
		t.Errorf("GetProjectByID(owner) error = %v", err)
	}
}

func TestUpdateProjectShallowMerge(t *testing.T) {
	svc, _, _ := newProjectTestService()
	ctx := context.Background()

	req := validCreateProjectRequest()
	project, err := svc.CreateProject(ctx, 1, &req, nil)
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	status := models.ProjectStatusCompleted
	updated, err := svc.UpdateProject(ctx, project.ID, 1, &dto.UpdateProjectRequest{Status: &status}, nil)
	if err != nil {
		t.Fatalf("UpdateProject() error: %v", err)
	}

	if updated.Status != models.ProjectStatusCompleted {
		t.Errorf("Status = %q, want %q", updated.Status, models.ProjectStatusCompleted)
	}
	if updated.Title != project.Title {
		t.Errorf("Title changed on a status-only update")
	}
	if updated.Subject != project.Subject {
		t.Errorf("Subject changed on a status-only update")
	}
}

func TestDeleteProjectKeepsContributions(t *testing.T) {
	svc, _, contributions := newProjectTestService(42)
	ctx := context.Background()

	req := validCreateProjectRequest()
	project, err := svc.CreateProject(ctx, 1, &req, nil)
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	if _, err := svc.CreateContribution(ctx, project.ID, 1, &dto.CreateContributionRequest{
		StudentID: 42, Date: "2026-06-10", Note: "Built the reflector",
	}); err != nil {
		t.Fatalf("CreateContribution() error: %v", err)
	}

	if err := svc.DeleteProject(ctx, project.ID, 1); err != nil {
		t.Fatalf("DeleteProject() error: %v", err)
	}

	// The contribution rows survive the project deletion.
	if len(contributions.contributions) != 1 {
		t.Errorf("contribution count after delete = %d, want 1", len(contributions.contributions))
	}

	// But listing them requires an existing owned project.
	if _, err := svc.GetContributions(ctx, project.ID, 1); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("GetContributions(deleted project) error = %v, want %v", err, apperrors.ErrProjectNotFound)
	}
}

func TestCreateContributionChecksReferences(t *testing.T) {
	svc, _, _ := newProjectTestService(42)
	ctx := context.Background()

	req := validCreateProjectRequest()
	project, err := svc.CreateProject(ctx, 1, &req, nil)
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	contribution := dto.CreateContributionRequest{StudentID: 42, Date: "2026-06-10", Note: "n"}

	if _, err := svc.CreateContribution(ctx, 999, 1, &contribution); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("CreateContribution(missing project) error = %v, want %v", err, apperrors.ErrProjectNotFound)
	}
	if _, err := svc.CreateContribution(ctx, project.ID, 2, &contribution); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("CreateContribution(other owner) error = %v, want %v", err, apperrors.ErrProjectNotFound)
	}

	missingStudent := dto.CreateContributionRequest{StudentID: 7, Date: "2026-06-10", Note: "n"}
	if _, err := svc.CreateContribution(ctx, project.ID, 1, &missingStudent); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("CreateContribution(missing student) error = %v, want %v", err, apperrors.ErrStudentNotFound)
	}
}
