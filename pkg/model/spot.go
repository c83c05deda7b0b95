package model

import "strings"

const (
	VehicleCar        = "car"
	VehicleMotorcycle = "motorcycle"
	VehicleEV         = "ev"
	VehicleAccessible = "accessible"
)

var vehicleAliases = map[string]string{
	"standard": VehicleCar,
	"electric": VehicleEV,
}

type ParkingSpot struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	LotID       string `json:"lot_id" bson:"lot_id" validate:"required,mongodb"`
	SpotNumber  string `json:"spot_number" bson:"spot_number" validate:"required,max=20"`
	VehicleType string `json:"vehicle_type" bson:"vehicle_type" validate:"required,oneof=car motorcycle ev accessible"`
	IsOccupied  bool   `json:"is_occupied" bson:"is_occupied"`
}

// NormalizeVehicleType lower-cases a requested category and maps the long
// names "standard" and "electric" onto the stored values. Unknown values are
// returned as-is so they simply match no spot.
func NormalizeVehicleType(vehicleType string) string {
	v := strings.ToLower(strings.TrimSpace(vehicleType))
	if alias, ok := vehicleAliases[v]; ok {
		return alias
	}
	return v
}
