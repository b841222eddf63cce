// Package model holds the portfolio entities.
//
// Every field is a plain string taken verbatim from the submitted form;
// the form tags are the field names the pages post.
package model

// PersonalInfo is the owner's biography block.
type PersonalInfo struct {
	ID    int64  `form:"-"`
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	Bio   string `form:"bio"`
}

type Education struct {
	ID          int64  `form:"-"`
	School      string `form:"school"`
	Achievement string `form:"achievement"`
	StartYear   string `form:"start_year"`
	EndYear     string `form:"end_year"`
	Description string `form:"description"`
}

type WorkExperience struct {
	ID          int64  `form:"-"`
	Company     string `form:"company"`
	Position    string `form:"position"`
	StartYear   string `form:"start_year"`
	EndYear     string `form:"end_year"`
	Description string `form:"description"`
}

type Skill struct {
	ID               int64  `form:"-"`
	SkillName        string `form:"skill_name"`
	Category         string `form:"category"`
	ProficiencyLevel string `form:"proficiency_level"`
}

type Project struct {
	ID          int64  `form:"-"`
	ProjectName string `form:"project_name"`
	Description string `form:"description"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
}

// ContactMessage is a visitor submission. The site only ever writes these.
type ContactMessage struct {
	ID      int64  `form:"-"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Entity is implemented by every stored model.
type Entity interface {
	GetID() int64
}

func (p PersonalInfo) GetID() int64   { return p.ID }
func (e Education) GetID() int64      { return e.ID }
func (w WorkExperience) GetID() int64 { return w.ID }
func (s Skill) GetID() int64          { return s.ID }
func (p Project) GetID() int64        { return p.ID }
func (m ContactMessage) GetID() int64 { return m.ID }
