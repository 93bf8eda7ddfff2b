package team

type CreateMemberRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
	Position string `json:"position" validate:"max=120"`
	Phone    string `json:"phone" validate:"max=32"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=120"`
	Role     *string `json:"role"`
	Position *string `json:"position" validate:"omitempty,max=120"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Avatar   *string `json:"avatar_url"`
}
