package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLegacyNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  BookingDetails
	}{
		{
			name:  "empty",
			notes: "",
			want:  BookingDetails{},
		},
		{
			name:  "free text only",
			notes: "please ring twice",
			want:  BookingDetails{FreeText: "please ring twice"},
		},
		{
			name:  "extras list",
			notes: "[EXTRAS] fridge, oven, windows",
			want:  BookingDetails{Extras: []string{"fridge", "oven", "windows"}},
		},
		{
			name:  "pets flag",
			notes: "[ANIMAUX]",
			want:  BookingDetails{HasPets: true},
		},
		{
			name:  "frequency",
			notes: "[FREQUENCE] weekly",
			want:  BookingDetails{Frequency: "weekly"},
		},
		{
			name:  "all tags with free text",
			notes: "[EXTRAS] fridge | [ANIMAUX] | [FREQUENCE] biweekly | key under the mat",
			want: BookingDetails{
				Extras:    []string{"fridge"},
				HasPets:   true,
				Frequency: "biweekly",
				FreeText:  "key under the mat",
			},
		},
		{
			name:  "multiple free segments preserved",
			notes: "ring twice | door code 1234",
			want:  BookingDetails{FreeText: "ring twice | door code 1234"},
		},
		{
			name:  "empty segments skipped",
			notes: " | [ANIMAUX] | ",
			want:  BookingDetails{HasPets: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLegacyNotes(tt.notes))
		})
	}
}
