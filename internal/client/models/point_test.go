package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_WKT_LongitudeFirst(t *testing.T) {
	p := Point{Lat: 41.0082, Lng: 28.9784}
	require.Equal(t, "POINT(28.9784 41.0082)", p.WKT())
}

func TestPoint_WKT_Formatting(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Point{Lat: 0, Lng: 0}, "POINT(0 0)"},
		{Point{Lat: 41, Lng: 29}, "POINT(29 41)"},
		{Point{Lat: -33.8688, Lng: 151.2093}, "POINT(151.2093 -33.8688)"},
		{Point{Lat: 41.0655, Lng: 29.0066}, "POINT(29.0066 41.0655)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.WKT())
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Point
		wantErr bool
	}{
		{name: "client format", in: "POINT(28.9784 41.0082)", want: Point{Lat: 41.0082, Lng: 28.9784}},
		{name: "geos format", in: "POINT (28.9784 41.0082)", want: Point{Lat: 41.0082, Lng: 28.9784}},
		{name: "srid prefix", in: "SRID=4326;POINT(1.5 2.5)", want: Point{Lat: 2.5, Lng: 1.5}},
		{name: "lower case", in: "point(1 2)", want: Point{Lat: 2, Lng: 1}},
		{name: "negative", in: "POINT(-73.9857 40.7484)", want: Point{Lat: 40.7484, Lng: -73.9857}},
		{name: "missing coordinate", in: "POINT(1)", wantErr: true},
		{name: "not a point", in: "LINESTRING(0 0, 1 1)", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWKT)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsePoint_RoundTripsWKT(t *testing.T) {
	p := Point{Lat: 41.0082, Lng: 28.9784}
	got, err := ParsePoint(p.WKT())
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestIsValidWKTPoint(t *testing.T) {
	assert.True(t, IsValidWKTPoint("POINT(28.9784 41.0082)"))
	assert.True(t, IsValidWKTPoint("point(28 41)"))
	assert.True(t, IsValidWKTPoint("POINT(28. 41.)"))

	assert.False(t, IsValidWKTPoint("POINT (28.9784 41.0082)"))
	assert.False(t, IsValidWKTPoint("POINT(28.9784)"))
	assert.False(t, IsValidWKTPoint("POINT(28.9784  41.0082)"))
	// Negative coordinates fail the web form's pattern.
	assert.False(t, IsValidWKTPoint(Point{Lat: -33.8688, Lng: 151.2093}.WKT()))
}

func TestPoint_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		P Point `json:"p"`
	}{P: Point{Lat: 41.0082, Lng: 28.9784}})
	require.NoError(t, err)
	require.JSONEq(t, `{"p":"POINT(28.9784 41.0082)"}`, string(b))

	var out struct {
		P Point `json:"p"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"p":"POINT (1 2)"}`), &out))
	require.Equal(t, Point{Lat: 2, Lng: 1}, out.P)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"p":42}`), &out), ErrInvalidWKT)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"p":"nowhere"}`), &out), ErrInvalidWKT)
}
