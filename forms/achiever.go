package forms

type AchieverForm struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Exam        string `json:"exam" binding:"required,min=1,max=50" example:"UPSC CSE"`
	Rank        string `json:"rank" binding:"required,min=1,max=20" example:"AIR 45"`
	Year        int    `json:"year" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Testimonial string `json:"testimonial" binding:"omitempty,max=1000"`
	IsActive    *bool  `json:"isActive"`
}

type AchieverUpdateForm struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Exam        *string `json:"exam" binding:"omitempty,min=1,max=50"`
	Rank        *string `json:"rank" binding:"omitempty,min=1,max=20"`
	Year        *int    `json:"year"`
	Image       *string `json:"image" binding:"omitempty,min=1"`
	Testimonial *string `json:"testimonial" binding:"omitempty,max=1000"`
	IsActive    *bool   `json:"isActive"`
}
