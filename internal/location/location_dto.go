package location

type CreateLocationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusM     *int     `json:"radius_m"`
	Description *string  `json:"description"`
}

type UpdateLocationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RadiusM     *int     `json:"radius_m"`
	Description *string  `json:"description"`
}

type LocationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	RadiusM     *int     `json:"radius_m,omitempty"`
	Description *string  `json:"description,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}
