package forms

type CommitteeForm struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Position string `json:"position" binding:"required,min=1,max=100" example:"Director"`
	Image    string `json:"image" binding:"required"`
	Bio      string `json:"bio" binding:"omitempty,max=1000"`
	Order    int    `json:"order" binding:"omitempty,min=0"`
	IsActive *bool  `json:"isActive"`
}

type CommitteeUpdateForm struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Position *string `json:"position" binding:"omitempty,min=1,max=100"`
	Image    *string `json:"image" binding:"omitempty,min=1"`
	Bio      *string `json:"bio" binding:"omitempty,max=1000"`
	Order    *int    `json:"order" binding:"omitempty,min=0"`
	IsActive *bool   `json:"isActive"`
}
