package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_ZeroDistance(t *testing.T) {
	d := DistanceMeters(ChurchLatitude, ChurchLongitude, ChurchLatitude, ChurchLongitude)
	if d < 0 || d > 1e-9 {
		t.Fatalf("zero distance expected ~0, got %v", d)
	}
}

func TestDistanceMeters_OneDegreeOfLatitude(t *testing.T) {
	// One degree along a meridian is R*pi/180, about 111.19 km.
	want := EarthRadiusMeters * math.Pi / 180
	got := DistanceMeters(0, 0, 1, 0)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("DistanceMeters(0,0,1,0) = %v, want %v", got, want)
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"church itself", ChurchLatitude, ChurchLongitude, true},
		{"55m north", ChurchLatitude + 0.0005, ChurchLongitude, true},
		{"55m south", ChurchLatitude - 0.0005, ChurchLongitude, true},
		{"1.1km north", ChurchLatitude + 0.01, ChurchLongitude, false},
		{"across town", 25.7617, -80.1918, false},
		{"NaN latitude", math.NaN(), ChurchLongitude, false},
		{"NaN longitude", ChurchLatitude, math.NaN(), false},
		{"infinite latitude", math.Inf(1), ChurchLongitude, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Verify(tc.lat, tc.lng); got != tc.want {
				t.Fatalf("Verify(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
			}
		})
	}
}

func TestWithinRadius_Boundary(t *testing.T) {
	// 0.0009 degrees of latitude is about 100.07m, just outside.
	if WithinRadius(0, 0, 0.0009, 0, RadiusMeters) {
		t.Fatalf("expected ~100.07m to be outside a 100m radius")
	}
	// 0.00089 degrees is about 98.96m, just inside.
	if !WithinRadius(0, 0, 0.00089, 0, RadiusMeters) {
		t.Fatalf("expected ~98.96m to be inside a 100m radius")
	}
}
