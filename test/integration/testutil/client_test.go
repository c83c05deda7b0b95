package testutil

import (
	"encoding/json"
	"testing"
)

func TestResponse_Decode(t *testing.T) {
	resp := &Response{Body: []byte(`{"detail":"Spot already occupied","code":"CONFLICT"}`)}

	var body struct {
		Code string `json:"code"`
	}
	if err := resp.Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "CONFLICT" {
		t.Errorf("expected code CONFLICT, got %q", body.Code)
	}
	if got := resp.Detail(t); got != "Spot already occupied" {
		t.Errorf("unexpected detail %q", got)
	}
}

func TestResponse_IsNotAJSONUnmarshaler(t *testing.T) {
	if _, ok := any(&Response{}).(json.Unmarshaler); ok {
		t.Error("Response must not implement json.Unmarshaler")
	}
}
