package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StaffRepository              *StaffRepository
	TokenRepository              *TokenRepository
	StudentRepository            *StudentRepository
	EventRepository              *EventRepository
	EventParticipantRepository   *EventParticipantRepository
	AchievementRepository        *AchievementRepository
	ProjectRepository            *ProjectRepository
	ContributionRepository       *ContributionRepository
	SalaryTemplateRepository     *SalaryTemplateRepository
	TransportFormRepository      *TransportFormRepository
	LeaveRequestRepository       *LeaveRequestRepository
	EnquiryRepository            *EnquiryRepository
	ResourceRepository           *ResourceRepository
	SupportTicketRepository      *SupportTicketRepository
	DisciplinaryActionRepository *DisciplinaryActionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StaffRepository:              NewStaffRepository(db),
		TokenRepository:              NewTokenRepository(db),
		StudentRepository:            NewStudentRepository(db),
		EventRepository:              NewEventRepository(db),
		EventParticipantRepository:   NewEventParticipantRepository(db),
		AchievementRepository:        NewAchievementRepository(db),
		ProjectRepository:            NewProjectRepository(db),
		ContributionRepository:       NewContributionRepository(db),
		SalaryTemplateRepository:     NewSalaryTemplateRepository(db),
		TransportFormRepository:      NewTransportFormRepository(db),
		LeaveRequestRepository:       NewLeaveRequestRepository(db),
		EnquiryRepository:            NewEnquiryRepository(db),
		ResourceRepository:           NewResourceRepository(db),
		SupportTicketRepository:      NewSupportTicketRepository(db),
		DisciplinaryActionRepository: NewDisciplinaryActionRepository(db),
	}
}
