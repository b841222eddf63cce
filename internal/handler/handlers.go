package handler

import (
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/server"
	"github.com/deppfellow/portfolio/internal/service"
)

// Handlers groups every HTTP handler the router wires.
type Handlers struct {
	Home    *HomeHandler
	Contact *ContactHandler
	Health  *HealthHandler

	PersonalInfo   *EntityHandler[model.PersonalInfo]
	Education      *EntityHandler[model.Education]
	WorkExperience *EntityHandler[model.WorkExperience]
	Skills         *EntityHandler[model.Skill]
	Projects       *EntityHandler[model.Project]
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Contact: NewContactHandler(s, services.Contact),
		Health:  NewHealthHandler(s),

		PersonalInfo:   NewEntityHandler(s, PersonalInfoResource, services.PersonalInfo),
		Education:      NewEntityHandler(s, EducationResource, services.Education),
		WorkExperience: NewEntityHandler(s, WorkExperienceResource, services.WorkExperience),
		Skills:         NewEntityHandler(s, SkillResource, services.Skills),
		Projects:       NewEntityHandler(s, ProjectResource, services.Projects),
	}
}
