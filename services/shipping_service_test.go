package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda-hogar/models"
)

func TestZone(t *testing.T) {
	tests := []struct {
		cp   string
		want string
	}{
		{"1000", ZoneCABA},
		{"1250", ZoneCABA},
		{"1499", ZoneCABA},
		{"1500", ZoneAMBA},
		{"1999", ZoneAMBA},
		{"2000", ZoneCentro},
		{"2500", ZoneCentro},
		{"2999", ZoneCentro},
		{"3000", ZoneInterior},
		{"9999", ZoneInterior},
		{"999", ZoneInterior},
		{"0", ZoneInterior},
		{"-5", ZoneInterior},
		{"abc", ZoneInterior},
		{"", ZoneInterior},
		{" 1250 ", ZoneCABA},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Zone(tt.cp), "cp=%q", tt.cp)
	}
}

func TestZoneAlwaysKnown(t *testing.T) {
	known := map[string]bool{ZoneCABA: true, ZoneAMBA: true, ZoneCentro: true, ZoneInterior: true}
	for cp := 0; cp < 10000; cp += 37 {
		assert.True(t, known[Zone(strconv.Itoa(cp))], "cp=%d", cp)
	}
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		weight float64
		want   int
	}{
		{0, 15500},
		{0.5, 15500},
		{1, 15500},
		{1.01, 18300},
		{5, 18300},
		{10, 24500},
		{15, 30300},
		{20, 35700},
		{25, 42900},
		{25.5, 42900},
		{26, 44900},
		{30, 52900},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShippingCost(tt.weight), "weight=%v", tt.weight)
	}
}

func TestShippingCostMonotonic(t *testing.T) {
	prev := 0
	for w := 0.0; w <= 40; w += 0.25 {
		cost := ShippingCost(w)
		assert.GreaterOrEqual(t, cost, prev, "weight=%v", w)
		prev = cost
	}
}

func TestQuoteFor(t *testing.T) {
	cart := []models.CartItem{
		{ID: 1, Weight: 2, Quantity: 2},
		{ID: 2, Weight: 0.5, Quantity: 2},
	}

	quote := QuoteFor(cart, "1400")
	assert.Equal(t, ZoneCABA, quote.Zone)
	assert.Equal(t, 18300, quote.Cost) // 5kg total

	empty := QuoteFor(nil, "xyz")
	assert.Equal(t, ZoneInterior, empty.Zone)
	assert.Equal(t, 15500, empty.Cost)
}
