package model

type RecommendRequest struct {
	Lat         *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng         *float64 `json:"lng" validate:"required,min=-180,max=180"`
	VehicleType string   `json:"vehicle_type,omitempty" validate:"omitempty,max=32"`
}

type Recommendation struct {
	LotID      string `json:"lot_id"`
	LotName    string `json:"lot_name"`
	SpotID     string `json:"spot_id,omitempty"`
	SpotNumber string `json:"spot_number,omitempty"`
	Reason     string `json:"reason"`
}

type StartBookingRequest struct {
	LotID        string `json:"lot_id" validate:"required"`
	SpotID       string `json:"spot_id" validate:"required"`
	VehiclePlate string `json:"vehicle_plate" validate:"required,max=32,plate"`
	UserName     string `json:"user_name,omitempty" validate:"omitempty,max=100"`
}

type StartBookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type EndBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// Diagnostics is the GET /test payload.
type Diagnostics struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections,omitempty"`
}
