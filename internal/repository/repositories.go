package repository

import (
	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	PersonalInfo   *Table[model.PersonalInfo]
	Education      *Table[model.Education]
	WorkExperience *Table[model.WorkExperience]
	Skills         *Table[model.Skill]
	Projects       *Table[model.Project]
	Contact        *Table[model.ContactMessage]
}

// NewRepositories builds every table repository for the dialect of s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Dialect)
}

// New builds the repositories for an explicit dialect.
func New(d database.Dialect) *Repositories {
	return &Repositories{
		PersonalInfo: NewTable(d, "personal_info",
			[]string{"name", "email", "phone", "bio"},
			func(p model.PersonalInfo) []string {
				return []string{p.Name, p.Email, p.Phone, p.Bio}
			},
			func(id int64, v []string) model.PersonalInfo {
				return model.PersonalInfo{ID: id, Name: v[0], Email: v[1], Phone: v[2], Bio: v[3]}
			},
		),

		Education: NewTable(d, "education",
			[]string{"school", "achievement", "start_year", "end_year", "description"},
			func(e model.Education) []string {
				return []string{e.School, e.Achievement, e.StartYear, e.EndYear, e.Description}
			},
			func(id int64, v []string) model.Education {
				return model.Education{
					ID: id, School: v[0], Achievement: v[1],
					StartYear: v[2], EndYear: v[3], Description: v[4],
				}
			},
		),

		WorkExperience: NewTable(d, "work_experience",
			[]string{"company", "position", "start_year", "end_year", "description"},
			func(w model.WorkExperience) []string {
				return []string{w.Company, w.Position, w.StartYear, w.EndYear, w.Description}
			},
			func(id int64, v []string) model.WorkExperience {
				return model.WorkExperience{
					ID: id, Company: v[0], Position: v[1],
					StartYear: v[2], EndYear: v[3], Description: v[4],
				}
			},
		),

		Skills: NewTable(d, "skills",
			[]string{"skill_name", "category", "proficiency_level"},
			func(s model.Skill) []string {
				return []string{s.SkillName, s.Category, s.ProficiencyLevel}
			},
			func(id int64, v []string) model.Skill {
				return model.Skill{ID: id, SkillName: v[0], Category: v[1], ProficiencyLevel: v[2]}
			},
		),

		Projects: NewTable(d, "projects",
			[]string{"project_name", "description", "start_date", "end_date"},
			func(p model.Project) []string {
				return []string{p.ProjectName, p.Description, p.StartDate, p.EndDate}
			},
			func(id int64, v []string) model.Project {
				return model.Project{ID: id, ProjectName: v[0], Description: v[1], StartDate: v[2], EndDate: v[3]}
			},
		),

		Contact: NewTable(d, "contact",
			[]string{"name", "email", "message"},
			func(m model.ContactMessage) []string {
				return []string{m.Name, m.Email, m.Message}
			},
			func(id int64, v []string) model.ContactMessage {
				return model.ContactMessage{ID: id, Name: v[0], Email: v[1], Message: v[2]}
			},
		),
	}
}
