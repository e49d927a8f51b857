package dto

import "github.com/shopspring/decimal"

// CreateCarRequest alta de auto. Status vacío = available.
type CreateCarRequest struct {
	Model   string          `json:"model"`
	Year    int             `json:"year"`
	VIN     string          `json:"vin"`
	Price   decimal.Decimal `json:"price"`
	Status  string          `json:"status"`
	Mileage int             `json:"mileage"`
	Color   string          `json:"color"`
}

// UpdateCarRequest patch de auto; punteros nil = sin cambio.
type UpdateCarRequest struct {
	Model   *string          `json:"model"`
	Year    *int             `json:"year"`
	VIN     *string          `json:"vin"`
	Price   *decimal.Decimal `json:"price"`
	Status  *string          `json:"status"`
	Mileage *int             `json:"mileage"`
	Color   *string          `json:"color"`
}

// ListCarsRequest filtros, orden y paginación del listado de autos.
type ListCarsRequest struct {
	Model     string `query:"model"`
	Year      int    `query:"year"`
	Color     string `query:"color"`
	Status    string `query:"status"` // ignorado para customers
	SortField string `query:"sort_field"`
	SortOrder string `query:"sort_order"` // ASC | DESC
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// CarResponse proyección de auto.
type CarResponse struct {
	ID      string          `json:"id"`
	Model   string          `json:"model"`
	Year    int             `json:"year"`
	VIN     string          `json:"vin"`
	Price   decimal.Decimal `json:"price"`
	Status  string          `json:"status"`
	Mileage int             `json:"mileage"`
	Color   string          `json:"color"`
}
