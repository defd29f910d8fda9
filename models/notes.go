package models

import "strings"

// BookingDetails is the structured replacement for the legacy tagged notes column.
type BookingDetails struct {
	Extras    []string `bson:"extras,omitempty" json:"extras,omitempty"`
	HasPets   bool     `bson:"has_pets" json:"hasPets"`
	Frequency string   `bson:"frequency,omitempty" json:"frequency,omitempty"`
	FreeText  string   `bson:"free_text,omitempty" json:"freeText,omitempty"`
}

// Legacy bracket tags used by the old booking form, which string-encoded
// several fields into one " | "-delimited notes column.
const (
	legacyTagExtras    = "[EXTRAS]"
	legacyTagPets      = "[ANIMAUX]"
	legacyTagFrequency = "[FREQUENCE]"
)

// ParseLegacyNotes decodes a legacy notes string into structured details.
// Unrecognized segments are folded into FreeText.
func ParseLegacyNotes(notes string) BookingDetails {
	var d BookingDetails
	var free []string
	for _, seg := range strings.Split(notes, " | ") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		switch {
		case strings.HasPrefix(seg, legacyTagExtras):
			raw := strings.TrimSpace(strings.TrimPrefix(seg, legacyTagExtras))
			for _, e := range strings.Split(raw, ",") {
				if e = strings.TrimSpace(e); e != "" {
					d.Extras = append(d.Extras, e)
				}
			}
		case strings.HasPrefix(seg, legacyTagPets):
			d.HasPets = true
		case strings.HasPrefix(seg, legacyTagFrequency):
			d.Frequency = strings.TrimSpace(strings.TrimPrefix(seg, legacyTagFrequency))
		default:
			free = append(free, seg)
		}
	}
	d.FreeText = strings.Join(free, " | ")
	return d
}
