package symbol

import "testing"

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"PA2", "PA10", true},
		{"PA10", "PA2", false},
		{"PA2", "PB1", true},
		{"PA9", "PA10", true},
		{"PA10", "PA10", false},
		{"AVDD_0", "AVDD_1", true},
		{"VSS", "VSS_PAD", true},
		{"IOVDD_2", "IOVDD_10", true},
		{"PA01", "PA1", false}, // equal values, shorter run first
		{"PA1", "PA01", true},
		{"", "PA0", true},
	}

	for _, tt := range tests {
		if got := naturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSortPinsNatural(t *testing.T) {
	pins := []*Pin{
		{Name: "PA10"},
		{Name: "PB1"},
		{Name: "PA2"},
		{Name: "PA0"},
	}
	sortPinsNatural(pins)

	want := []string{"PA0", "PA2", "PA10", "PB1"}
	for i, name := range want {
		if pins[i].Name != name {
			t.Fatalf("pins[%d] = %s, want %s", i, pins[i].Name, name)
		}
	}
}

func TestSortPinsNaturalStable(t *testing.T) {
	// Pins with identical names (multiple VSS pins) keep input order.
	pins := []*Pin{
		{Name: "VSS", ID: "12"},
		{Name: "VSS", ID: "25"},
		{Name: "VSS", ID: "38"},
	}
	sortPinsNatural(pins)
	for i, id := range []string{"12", "25", "38"} {
		if pins[i].ID != id {
			t.Fatalf("pins[%d].ID = %s, want %s", i, pins[i].ID, id)
		}
	}
}
