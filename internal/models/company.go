package models

type Company struct {
	BaseModel
	OwnerID     string `gorm:"not null;index" json:"owner_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Size        string `json:"size"`

	// Relations
	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
