package wizard

import (
	"testing"

	"menagio/models"
)

func TestQuotePrice(t *testing.T) {
	tests := []struct {
		name    string
		service models.ServiceType
		hours   int
		extras  int
		want    float64
	}{
		{"cleaning three hours", models.ServiceCleaning, 3, 0, 117},
		{"cleaning with extras", models.ServiceCleaning, 2, 2, 108},
		{"laundry", models.ServiceLaundry, 2, 0, 64},
		{"ironing", models.ServiceIroning, 4, 0, 128},
		{"business cleaning", models.ServiceBusinessCleaning, 2, 0, 90},
		{"unknown type defaults to cleaning rate", models.ServiceType("other"), 1, 0, 39},
		{"zero hours", models.ServiceCleaning, 0, 3, 0},
		{"negative hours", models.ServiceCleaning, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotePrice(tt.service, tt.hours, tt.extras); got != tt.want {
				t.Errorf("QuotePrice(%s, %d, %d) = %v, want %v",
					tt.service, tt.hours, tt.extras, got, tt.want)
			}
		})
	}
}
