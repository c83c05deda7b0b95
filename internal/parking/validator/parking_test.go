package validator

import (
	"errors"
	"strings"
	"testing"

	"parkwise/pkg/logger"
	"parkwise/pkg/model"
)

func ptr(f float64) *float64 { return &f }

func TestParkingValidator_RecommendRequest(t *testing.T) {
	v := NewParkingValidator(logger.Discard())

	tests := []struct {
		name      string
		req       model.RecommendRequest
		wantField string
	}{
		{name: "valid", req: model.RecommendRequest{Lat: ptr(37.77), Lng: ptr(-122.41)}},
		{name: "zero coordinates are valid", req: model.RecommendRequest{Lat: ptr(0), Lng: ptr(0)}},
		{name: "missing lat", req: model.RecommendRequest{Lng: ptr(1)}, wantField: "lat"},
		{name: "lat out of range", req: model.RecommendRequest{Lat: ptr(91), Lng: ptr(1)}, wantField: "lat"},
		{name: "lng out of range", req: model.RecommendRequest{Lat: ptr(1), Lng: ptr(-181)}, wantField: "lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if _, ok := verrs.Fields()[tt.wantField]; !ok {
				t.Errorf("expected failure on %q, got %v", tt.wantField, verrs)
			}
		})
	}
}

func TestParkingValidator_StartBookingRequest(t *testing.T) {
	v := NewParkingValidator(logger.Discard())

	valid := model.StartBookingRequest{
		LotID:        "65a1b2c3d4e5f60718293a4b",
		SpotID:       "65a1b2c3d4e5f60718293a4c",
		VehiclePlate: "7ABC-123",
	}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	for _, plate := range []string{"ÖL 123", "京A12345", "AB/123", "B-MW 1234X-LONGPLATE!"} {
		req := valid
		req.VehiclePlate = plate
		if err := v.Validate(&req); err != nil {
			t.Errorf("plate %q: expected valid, got %v", plate, err)
		}
	}

	badPlate := valid
	badPlate.VehiclePlate = "7AB\x00123"
	err := v.Validate(&badPlate)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Field != "vehicle_plate" {
		t.Errorf("expected vehicle_plate failure, got %s", verrs[0].Field)
	}
	if verrs[0].Message != "vehicle_plate must contain only printable characters" {
		t.Errorf("unexpected message %q", verrs[0].Message)
	}

	longPlate := valid
	longPlate.VehiclePlate = strings.Repeat("A", 33)
	if err := v.Validate(&longPlate); !errors.As(err, &verrs) || verrs[0].Message != "vehicle_plate must be at most 32" {
		t.Errorf("expected length failure, got %v", err)
	}

	missing := model.StartBookingRequest{}
	err = v.Validate(&missing)
	if !errors.As(err, &verrs) || len(verrs) != 3 {
		t.Errorf("expected three required-field failures, got %v", err)
	}
}

func TestParkingValidator_SpotRecord(t *testing.T) {
	v := NewParkingValidator(logger.Discard())

	spot := model.ParkingSpot{
		LotID:       "65a1b2c3d4e5f60718293a4b",
		SpotNumber:  "5",
		VehicleType: model.VehicleAccessible,
	}
	if err := v.Validate(&spot); err != nil {
		t.Fatalf("expected valid spot, got %v", err)
	}

	spot.VehicleType = "truck"
	err := v.Validate(&spot)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Message != "vehicle_type must be one of: car motorcycle ev accessible" {
		t.Errorf("unexpected message %q", verrs[0].Message)
	}
}
