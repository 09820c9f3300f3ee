package employee

type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	ShiftID    *string `json:"shift_id"`
	LocationID *string `json:"location_id"`
	Username   string  `json:"username" binding:"required"`
	Password   string  `json:"password" binding:"required,min=8"`
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	ShiftID    *string `json:"shift_id"`
	LocationID *string `json:"location_id"`
	IsActive   *bool   `json:"is_active"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Position     *string `json:"position,omitempty"`
	ShiftID      string  `json:"shift_id,omitempty"`
	ShiftName    string  `json:"shift_name,omitempty"`
	LocationID   string  `json:"location_id,omitempty"`
	LocationName string  `json:"location_name,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
