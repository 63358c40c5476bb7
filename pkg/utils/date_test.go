package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateToISO(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "dd/mm/yyyy", input: "05/03/2024", want: "2024-03-05"},
		{name: "d/m/yyyy", input: "5/3/2024", want: "2024-03-05"},
		{name: "dd/mm/yyyy com hora", input: "05/03/2024 10:00", want: "2024-03-05"},
		{name: "iso com hora", input: "2024-03-05T10:00:00Z", want: "2024-03-05"},
		{name: "iso simples", input: "2024-03-05", want: "2024-03-05"},
		{name: "espaços nas pontas", input: "  2024-03-05  ", want: "2024-03-05"},
		{name: "texto livre é mantido", input: "not-a-date", want: "not-a-date"},
		{name: "nil", input: nil, want: ""},
		{name: "vazio", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDateToISO(tt.input))
		})
	}
}

func TestFormatISOTimestamp(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 3, 5, 7, 0, 0, 123000000, loc)

	assert.Equal(t, "2024-03-05T10:00:00.123Z", FormatISOTimestamp(ts))
}
