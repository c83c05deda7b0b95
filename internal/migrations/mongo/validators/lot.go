package validators

import "go.mongodb.org/mongo-driver/bson"

var ParkingLotValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"latitude",
			"longitude",
			"price_per_hour",
			"total_spots",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"latitude": bson.M{
				"bsonType": "number",
				"minimum":  -90,
				"maximum":  90,
			},

			"longitude": bson.M{
				"bsonType": "number",
				"minimum":  -180,
				"maximum":  180,
			},

			"address": bson.M{
				"bsonType":  "string",
				"maxLength": 300,
			},

			"price_per_hour": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},

			"total_spots": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},
		},
	},
}

var ParkingSpotValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"lot_id",
			"spot_number",
			"vehicle_type",
			"is_occupied",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"lot_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"spot_number": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20,
			},

			"vehicle_type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"car",
					"motorcycle",
					"ev",
					"accessible",
				},
			},

			"is_occupied": bson.M{
				"bsonType": "bool",
			},
		},
	},
}
