package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

func km(v float64) *float64 { return &v }

func TestDistanceKm_Symmetric(t *testing.T) {
	a := restroom.Position{Lat: 14.5995, Lng: 120.9842}
	b := restroom.Position{Lat: 14.6515, Lng: 121.0493}

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := restroom.Position{Lat: 14.5995, Lng: 120.9842}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKm_OneDegreeOfLatitude(t *testing.T) {
	a := restroom.Position{Lat: 0, Lng: 0}
	b := restroom.Position{Lat: 1, Lng: 0}

	// One degree of latitude on a 6371 km sphere, rounded to 2 decimals.
	assert.Equal(t, 111.19, DistanceKm(a, b))
}

func TestDistanceKm_RoundedToTwoDecimals(t *testing.T) {
	a := restroom.Position{Lat: 14.5995, Lng: 120.9842}
	b := restroom.Position{Lat: 14.5906, Lng: 120.9831}

	d := DistanceKm(a, b)
	assert.InDelta(t, math.Round(d*100), d*100, 1e-9)
}

func TestWalkingEstimate(t *testing.T) {
	tests := []struct {
		name     string
		distance *float64
		want     string
	}{
		{"absent distance", nil, ""},
		{"short walk", km(2.5), "30 min walk"},
		{"over an hour", km(6), "1h 12m walk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WalkingEstimate(tt.distance))
		})
	}
}

func TestDrivingEstimate(t *testing.T) {
	tests := []struct {
		name     string
		distance *float64
		want     string
	}{
		{"absent distance", nil, ""},
		{"short drive", km(2.5), "5 min drive"},
		{"over an hour", km(32.5), "1h 5m drive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DrivingEstimate(tt.distance))
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance *float64
		want     string
	}{
		{"absent distance", nil, ""},
		{"below one km", km(0.85), "850m"},
		{"above one km", km(2.4), "2.4km"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.distance))
		})
	}
}
