package domain

import "testing"

func TestMatrixAt(t *testing.T) {
	ten := 10.0
	m := Matrix{
		RowLabels: []string{"Origin_1"},
		ColLabels: []string{"Dest_1", "Dest_2"},
		Cells:     [][]*float64{{&ten, nil}},
	}

	if m.Rows() != 1 || m.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 1x2", m.Rows(), m.Cols())
	}

	if v, ok := m.At(0, 0); !ok || v != 10.0 {
		t.Errorf("At(0,0) = %v (ok=%v), want 10.0", v, ok)
	}
	if _, ok := m.At(0, 1); ok {
		t.Error("At(0,1) should be absent for nil cell")
	}
	if _, ok := m.At(1, 0); ok {
		t.Error("At(1,0) should be absent out of range")
	}
	if _, ok := m.At(0, -1); ok {
		t.Error("At(0,-1) should be absent out of range")
	}
}

func TestCoordinatesLonLat(t *testing.T) {
	c := Coordinates{Lat: 40.0, Lon: -75.1}
	if got := c.LonLat(); got != "-75.1,40" {
		t.Errorf("LonLat() = %q, want %q", got, "-75.1,40")
	}
}

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		c    Coordinates
		want bool
	}{
		{Coordinates{Lat: 0, Lon: 0}, true},
		{Coordinates{Lat: 90, Lon: 180}, true},
		{Coordinates{Lat: -90, Lon: -180}, true},
		{Coordinates{Lat: 91, Lon: 0}, false},
		{Coordinates{Lat: 0, Lon: -181}, false},
	}

	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("Valid(%+v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}
