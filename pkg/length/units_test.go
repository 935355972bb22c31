package length

import (
	"sort"
	"testing"
)

func TestUnit_SystemAndMultiplierAreTotal(t *testing.T) {
	units := []Unit{Inches, Feet, Millimetres, Centimetres, Metres, SixtyFourthOfInch}

	for _, u := range units {
		t.Run(u.String(), func(t *testing.T) {
			if _, ok := unitSystems[u]; !ok {
				t.Errorf("%v has no unit system", u)
			}
			if u.Multiplier() <= 0 {
				t.Errorf("%v multiplier = %v", u, u.Multiplier())
			}
		})
	}
}

func TestUnit_System(t *testing.T) {
	tests := []struct {
		unit Unit
		want System
	}{
		{Inches, Imperial},
		{Feet, Imperial},
		{SixtyFourthOfInch, Imperial},
		{Millimetres, Metric},
		{Centimetres, Metric},
		{Metres, Metric},
	}

	for _, tt := range tests {
		if got := tt.unit.System(); got != tt.want {
			t.Errorf("%v.System() = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestNewValue_DerivesSystem(t *testing.T) {
	v := NewValue(Centimetres, 2.5)
	if v.System() != Metric || v.Unit() != Centimetres || v.Value() != 2.5 {
		t.Errorf("NewValue() = %+v", v)
	}
}

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		name   string
		want   Unit
		wantOK bool
	}{
		{`"`, Inches, true},
		{"in", Inches, true},
		{"inches", Inches, true},
		{"'", Feet, true},
		{"ft", Feet, true},
		{"feet", Feet, true},
		{"mm", Millimetres, true},
		{"millimetres", Millimetres, true},
		{"millimeters", Millimetres, true},
		{"cm", Centimetres, true},
		{"centimeters", Centimetres, true},
		{"centimetres", 0, false},
		{"m", Metres, true},
		{"metres", Metres, true},
		{"meters", Metres, true},
		{"FT", 0, false},
		{"yd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupUnit(tt.name)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("LookupUnit(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUnitNames(t *testing.T) {
	names := UnitNames()
	if len(names) != len(unitNames) {
		t.Fatalf("UnitNames() returned %d names, want %d", len(names), len(unitNames))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("UnitNames() not sorted: %q", names)
	}
}
