package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=60"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

type LoginUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
