package forms

type LoginForm struct {
	Email    string `json:"email" binding:"required,email" example:"admin@ucdc.co.in"`
	Password string `json:"password" binding:"required,min=6"`
}
