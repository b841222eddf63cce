package handler

import (
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/view"
)

var PersonalInfoResource = Resource[model.PersonalInfo]{
	Name:     "Personal Info",
	Title:    "Personal Info",
	Slug:     "personal-info",
	ListPath: "/personal-info",
	Fields: []view.Field{
		{Name: "name", Label: "Name"},
		{Name: "email", Label: "Email"},
		{Name: "phone", Label: "Phone"},
		{Name: "bio", Label: "Bio", Multiline: true},
	},
	Values: func(p model.PersonalInfo) []string {
		return []string{p.Name, p.Email, p.Phone, p.Bio}
	},
	Messages: Messages{
		Load:   "Unable to load personal information.",
		Add:    "Unable to add personal information.",
		Update: "Unable to update personal information.",
		Delete: "Unable to delete the personal info.",
	},
}

var EducationResource = Resource[model.Education]{
	Name:     "Education",
	Title:    "Education",
	Slug:     "education",
	ListPath: "/education",
	Fields: []view.Field{
		{Name: "school", Label: "School"},
		{Name: "achievement", Label: "Achievement"},
		{Name: "start_year", Label: "Start Year"},
		{Name: "end_year", Label: "End Year"},
		{Name: "description", Label: "Description", Multiline: true},
	},
	Values: func(e model.Education) []string {
		return []string{e.School, e.Achievement, e.StartYear, e.EndYear, e.Description}
	},
	Messages: Messages{
		Load:   "Unable to load education data.",
		Add:    "Unable to add education.",
		Update: "Unable to update education.",
		Delete: "Unable to delete the education.",
	},
}

var WorkExperienceResource = Resource[model.WorkExperience]{
	Name:     "Work Experience",
	Title:    "Work Experience",
	Slug:     "work-experience",
	ListPath: "/work-experience",
	Fields: []view.Field{
		{Name: "company", Label: "Company"},
		{Name: "position", Label: "Position"},
		{Name: "start_year", Label: "Start Year"},
		{Name: "end_year", Label: "End Year"},
		{Name: "description", Label: "Description", Multiline: true},
	},
	Values: func(w model.WorkExperience) []string {
		return []string{w.Company, w.Position, w.StartYear, w.EndYear, w.Description}
	},
	Messages: Messages{
		Load:   "Unable to load work experience data.",
		Add:    "Unable to add work experience.",
		Update: "Unable to update work experience.",
		Delete: "Unable to delete the work experience.",
	},
}

var SkillResource = Resource[model.Skill]{
	Name:     "Skill",
	Title:    "Skills",
	Slug:     "skill",
	ListPath: "/skills",
	Fields: []view.Field{
		{Name: "skill_name", Label: "Skill"},
		{Name: "category", Label: "Category"},
		{Name: "proficiency_level", Label: "Proficiency"},
	},
	Values: func(s model.Skill) []string {
		return []string{s.SkillName, s.Category, s.ProficiencyLevel}
	},
	Messages: Messages{
		Load:   "Unable to load skills data.",
		Add:    "Unable to add skill.",
		Update: "Unable to update skill.",
		Delete: "Unable to delete the skill.",
	},
}

var ProjectResource = Resource[model.Project]{
	Name:     "Project",
	Title:    "Projects",
	Slug:     "project",
	ListPath: "/projects",
	Fields: []view.Field{
		{Name: "project_name", Label: "Project"},
		{Name: "description", Label: "Description", Multiline: true},
		{Name: "start_date", Label: "Start Date"},
		{Name: "end_date", Label: "End Date"},
	},
	Values: func(p model.Project) []string {
		return []string{p.ProjectName, p.Description, p.StartDate, p.EndDate}
	},
	Messages: Messages{
		Load:   "Unable to load projects data.",
		Add:    "Unable to add project.",
		Update: "Unable to update project.",
		Delete: "Unable to delete the project.",
	},
}
