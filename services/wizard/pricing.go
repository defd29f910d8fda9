package wizard

import "menagio/models"

// Hourly rates in CHF per service type. Extras are billed flat per item.
const (
	rateCleaning         = 39.0
	rateLaundry          = 32.0
	rateIroning          = 32.0
	rateBusinessCleaning = 45.0
	extraItemPrice       = 15.0
)

// QuotePrice computes the displayed total for a booking.
func QuotePrice(serviceType models.ServiceType, hours, extras int) float64 {
	if hours <= 0 {
		return 0
	}
	rate := rateCleaning
	switch serviceType {
	case models.ServiceLaundry:
		rate = rateLaundry
	case models.ServiceIroning:
		rate = rateIroning
	case models.ServiceBusinessCleaning:
		rate = rateBusinessCleaning
	}
	return rate*float64(hours) + extraItemPrice*float64(extras)
}
