package client

type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=160"`
	ContactName string `json:"contact_name" validate:"max=120"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Website     string `json:"website" validate:"omitempty,url"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=160"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=120"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
	Status      *string `json:"status"`
}
