package request

import (
	"canteen-reservation/internal/usecase/commands"
)

type CreateStudentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	IsAdmin bool   `json:"is_admin"`
}

func (r CreateStudentRequest) ToParams() commands.RegisterStudentParams {
	return commands.RegisterStudentParams{
		Name:    r.Name,
		Email:   r.Email,
		IsAdmin: r.IsAdmin,
	}
}
