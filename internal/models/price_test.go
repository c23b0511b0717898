package models

import (
	"encoding/json"
	"testing"
)

func TestPriceMarshalsTwoDecimalString(t *testing.T) {
	p, err := ParsePrice("10.5")
	if err != nil {
		t.Fatalf("ParsePrice returned error: %v", err)
	}
	body, err := json.Marshal(MenuItem{ID: 1, Name: "Soup", Category: CategoryStarter, Price: p})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"item_id":1,"name":"Soup","category":"starter","price":"10.50","is_available":false}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestPriceUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var fromString, fromNumber Price
	if err := json.Unmarshal([]byte(`"28.25"`), &fromString); err != nil {
		t.Fatalf("string form rejected: %v", err)
	}
	if err := json.Unmarshal([]byte(`28.25`), &fromNumber); err != nil {
		t.Fatalf("number form rejected: %v", err)
	}
	if !fromString.Equal(fromNumber.Decimal) {
		t.Fatalf("expected equal prices, got %s and %s", fromString, fromNumber)
	}
}

func TestPriceUnmarshalRejectsGarbage(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte(`"ten"`), &p); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}

func TestEnumsRecogniseKnownValues(t *testing.T) {
	if !IsOrderType(OrderTypeTakeOut) || IsOrderType("takeout") {
		t.Fatal("order type check is wrong")
	}
	if !IsCategory(CategoryDrinks) || IsCategory("drink") {
		t.Fatal("category check is wrong")
	}
}
