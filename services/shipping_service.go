package services

import (
	"math"
	"strconv"
	"strings"

	"tienda-hogar/models"
)

// Delivery zones, coarsest first.
const (
	ZoneCABA     = "CABA"
	ZoneAMBA     = "AMBA"
	ZoneCentro   = "CENTRO"
	ZoneInterior = "INTERIOR"
)

// Zone classifies an Argentine postal code into a delivery zone. Anything
// that does not parse or falls outside the known ranges ships as INTERIOR;
// the classifier never fails.
func Zone(postalCode string) string {
	cp, err := strconv.Atoi(strings.TrimSpace(postalCode))
	if err != nil {
		return ZoneInterior
	}

	switch {
	case cp >= 1000 && cp <= 1499:
		return ZoneCABA
	case cp >= 1500 && cp <= 1999:
		return ZoneAMBA
	case cp >= 2000 && cp <= 2999:
		return ZoneCentro
	default:
		return ZoneInterior
	}
}

// ShippingCost prices a shipment by total weight in kg. Above 25kg the top
// tier grows by 2000 per whole kg of excess.
func ShippingCost(weight float64) int {
	switch {
	case weight <= 1:
		return 15500
	case weight <= 5:
		return 18300
	case weight <= 10:
		return 24500
	case weight <= 15:
		return 30300
	case weight <= 20:
		return 35700
	case weight <= 25:
		return 42900
	default:
		return 42900 + 2000*int(math.Floor(weight-25))
	}
}

// QuoteFor builds the shipping quote for the given cart and postal code.
func QuoteFor(items []models.CartItem, postalCode string) models.ShippingQuote {
	return models.ShippingQuote{
		Cost: ShippingCost(models.CartWeight(items)),
		Zone: Zone(postalCode),
	}
}
