package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOnlyRoundTrip(t *testing.T) {
	// O parse precisa resolver para o mesmo dia de calendário em qualquer
	// fuso do servidor: um parse em UTC deslocaria a data em fusos negativos.
	zonas := []string{
		"UTC",
		"America/Sao_Paulo",
		"America/Los_Angeles",
		"Pacific/Kiritimati",
	}

	original := time.Local
	defer func() { time.Local = original }()

	for _, zona := range zonas {
		t.Run(zona, func(t *testing.T) {
			loc, err := time.LoadLocation(zona)
			assert.NoError(t, err)
			time.Local = loc

			data, err := ParseDateOnly("2024-03-10")

			assert.NoError(t, err)
			assert.Equal(t, 2024, data.Year())
			assert.Equal(t, time.March, data.Month())
			assert.Equal(t, 10, data.Day())
			assert.Equal(t, 0, data.Hour())
			assert.Equal(t, "2024-03-10", FormatDateOnly(data))
		})
	}
}

func TestParseDateOnlyInvalida(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Formato brasileiro", data: "11/03/2024"},
		{name: "Sem o dia", data: "2024-03"},
		{name: "Mês fora do intervalo", data: "2024-13-01"},
		{name: "Dia fora do intervalo", data: "2024-03-42"},
		{name: "Texto no lugar do ano", data: "ano-03-11"},
		{name: "Vazia", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateOnly(tt.data)

			assert.ErrorIs(t, err, ErrDataInvalida)
		})
	}
}

func TestFormatosPtBr(t *testing.T) {
	data := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "09/03/2024", FormatDatePtBr(data))
	assert.Equal(t, "09/03", FormatDiaMes(data))
}
