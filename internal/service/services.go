package service

import (
	"github.com/deppfellow/portfolio/internal/lib/email"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/repository"
	"github.com/deppfellow/portfolio/internal/server"
)

type Services struct {
	PersonalInfo   *EntityService[model.PersonalInfo]
	Education      *EntityService[model.Education]
	WorkExperience *EntityService[model.WorkExperience]
	Skills         *EntityService[model.Skill]
	Projects       *EntityService[model.Project]
	Contact        *ContactService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier Notifier
	if s.Config.Contact.NotificationsEnabled() {
		notifier = email.NewClient(s.Config.Contact, s.Logger)
	}

	return &Services{
		PersonalInfo:   NewEntityService(s.DB, repos.PersonalInfo),
		Education:      NewEntityService(s.DB, repos.Education),
		WorkExperience: NewEntityService(s.DB, repos.WorkExperience),
		Skills:         NewEntityService(s.DB, repos.Skills),
		Projects:       NewEntityService(s.DB, repos.Projects),
		Contact: NewContactService(
			s.DB,
			repos.Contact,
			notifier,
			s.Config.Contact.NotifyEmail,
			s.Logger,
		),
	}, nil
}
