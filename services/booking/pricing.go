package booking

import (
	"wintermarket/models"
)

// Per-day booth prices in whole USD.
const (
	RegularVendorPrice = 35
	FoodTruckPrice     = 100
)

// PricePerDay returns the booth price for one market day.
func PricePerDay(vendorType models.VendorType) int {
	if vendorType == models.VendorTypeFood {
		return FoodTruckPrice
	}
	return RegularVendorPrice
}

// TotalPrice computes the aggregate price for a booking session:
// per-day price times the number of selected days. No partial-day
// pricing, no currency conversion.
func TotalPrice(vendorType models.VendorType, days int) int {
	return PricePerDay(vendorType) * days
}
