package forms

// AlumniRegisterForm is also the shape of the public self-registration;
// in that flow the service stores the row unapproved regardless of input.
type AlumniRegisterForm struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Course          string `json:"course" binding:"required" example:"UPSC Foundation"`
	Batch           string `json:"batch" binding:"required" example:"2019"`
	CurrentPosition string `json:"currentPosition" binding:"omitempty,max=200"`
	Company         string `json:"company" binding:"omitempty,max=100"`
	Image           string `json:"image" binding:"omitempty"`
	Testimonial     string `json:"testimonial" binding:"omitempty,max=1000"`
}

type AlumniUpdateForm struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone" binding:"omitempty,min=1"`
	Course          *string `json:"course" binding:"omitempty,min=1"`
	Batch           *string `json:"batch" binding:"omitempty,min=1"`
	CurrentPosition *string `json:"currentPosition" binding:"omitempty,max=200"`
	Company         *string `json:"company" binding:"omitempty,max=100"`
	Image           *string `json:"image"`
	Testimonial     *string `json:"testimonial" binding:"omitempty,max=1000"`
	IsApproved      *bool   `json:"isApproved"`
}
