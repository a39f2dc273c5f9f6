package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Profile struct {
	BaseModel
	UserID          string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Headline        string         `json:"headline"`
	Bio             string         `json:"bio"`
	Skills          datatypes.JSON `gorm:"type:jsonb" json:"skills"` // ["go", "sql"]
	ExperienceYears int            `gorm:"default:0" json:"experience_years"`
	Location        string         `json:"location"`
	ResumeURL       string         `json:"resume_url"`
	Website         string         `json:"website"`
}

// GetSkills возвращает навыки профиля как slice строк
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills устанавливает навыки профиля
func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}
