package response

import (
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StudentResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

func FromStudentView(rm *queries.StudentView) *StudentResponse {
	resp := &StudentResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
