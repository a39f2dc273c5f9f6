package dto

// CreateProfileRequest - запрос создания профиля соискателя
type CreateProfileRequest struct {
	Headline        string   `json:"headline,omitempty" binding:"omitempty,max=200"`
	Bio             string   `json:"bio,omitempty" binding:"omitempty,max=5000"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty" binding:"omitempty,min=0,max=80"`
	Location        string   `json:"location,omitempty"`
	ResumeURL       string   `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	Website         string   `json:"website,omitempty" binding:"omitempty,url"`
}

// UpdateProfileRequest - запрос обновления профиля (частичный)
type UpdateProfileRequest struct {
	Headline        *string  `json:"headline,omitempty" binding:"omitempty,max=200"`
	Bio             *string  `json:"bio,omitempty" binding:"omitempty,max=5000"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty" binding:"omitempty,min=0,max=80"`
	Location        *string  `json:"location,omitempty"`
	ResumeURL       *string  `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	Website         *string  `json:"website,omitempty" binding:"omitempty,url"`
}
