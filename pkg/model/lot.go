package model

type ParkingLot struct {
	ID           string  `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name         string  `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Latitude     float64 `json:"latitude" bson:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" bson:"longitude" validate:"min=-180,max=180"`
	Address      string  `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=300"`
	PricePerHour float64 `json:"price_per_hour" bson:"price_per_hour" validate:"min=0"`
	TotalSpots   int     `json:"total_spots" bson:"total_spots" validate:"required,min=1"`
}

// LotAvailability is a lot as listed by GET /lots.
type LotAvailability struct {
	ParkingLot
	AvailableSpots int `json:"available_spots"`
}

type SeedResult struct {
	Status string `json:"status"`
	Seeded bool   `json:"seeded"`
	LotID  string `json:"lot_id,omitempty"`
}
