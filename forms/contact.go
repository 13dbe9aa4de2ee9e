package forms

type ContactForm struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

// ContactUpdateForm only toggles the read flag; message content is
// immutable once submitted.
type ContactUpdateForm struct {
	IsRead *bool `json:"isRead" binding:"required"`
}
