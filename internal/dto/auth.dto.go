package dto

import "github.com/BruksfildServices01/bizmarket/internal/models"

type UserData struct {
	FullName    string  `json:"full_name" binding:"required,min=2,max=120"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=120"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	UserType    string  `json:"user_type" binding:"omitempty,oneof=buyer seller"`
}

type SignUpRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6,max=72"`
	UserData UserData `json:"userData"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token,omitempty"`
}
