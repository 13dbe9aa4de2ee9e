package forms

type BannerForm struct {
	Title       string `json:"title" binding:"required,min=1,max=100" example:"Admissions Open"`
	Description string `json:"description" binding:"required,min=1,max=500" example:"Apply now"`
	Image       string `json:"image" binding:"required" example:"/uploads/banner.jpg"`
	Link        string `json:"link" binding:"omitempty" example:"https://example.com"`
	Order       int    `json:"order" binding:"omitempty,min=0"`
	IsActive    *bool  `json:"isActive"`
}

type BannerUpdateForm struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	Image       *string `json:"image" binding:"omitempty,min=1"`
	Link        *string `json:"link"`
	Order       *int    `json:"order" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}
