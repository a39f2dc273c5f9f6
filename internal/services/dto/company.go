package dto

// CreateCompanyRequest - запрос создания компании
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty" binding:"omitempty,url"`
	Location    string `json:"location,omitempty"`
	Size        string `json:"size,omitempty"`
}

// UpdateCompanyRequest - запрос обновления компании (частичный)
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Website     *string `json:"website,omitempty" binding:"omitempty,url"`
	Location    *string `json:"location,omitempty"`
	Size        *string `json:"size,omitempty"`
}

// CompanyListQuery - параметры фильтрации списка компаний
type CompanyListQuery struct {
	Search   string `form:"search"`
	Industry string `form:"industry"`
	Location string `form:"location"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
