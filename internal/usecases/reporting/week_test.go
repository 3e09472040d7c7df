package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolverSemana(t *testing.T) {
	// Quarta-feira, 13 de março de 2024
	quarta := time.Date(2024, 3, 13, 15, 42, 10, 0, time.Local)

	tests := []struct {
		name           string
		agora          time.Time
		offset         int
		inicioEsperado time.Time
		fimEsperado    time.Time
	}{
		{
			name:           "Semana atual a partir de uma quarta-feira",
			agora:          quarta,
			offset:         0,
			inicioEsperado: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 16, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Semana passada a partir de uma quarta-feira",
			agora:          quarta,
			offset:         1,
			inicioEsperado: time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 9, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Domingo pertence à semana que terminou no sábado anterior",
			agora:          time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local),
			offset:         0,
			inicioEsperado: time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 9, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Segunda-feira inicia a própria semana",
			agora:          time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			offset:         0,
			inicioEsperado: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 16, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Sábado ainda pertence à semana corrente",
			agora:          time.Date(2024, 3, 16, 23, 59, 0, 0, time.Local),
			offset:         0,
			inicioEsperado: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 16, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Offset negativo é tratado como semana atual",
			agora:          quarta,
			offset:         -3,
			inicioEsperado: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 3, 16, 23, 59, 59, 999000000, time.Local),
		},
		{
			name:           "Semana que cruza a virada do mês",
			agora:          time.Date(2024, 4, 2, 12, 0, 0, 0, time.Local),
			offset:         0,
			inicioEsperado: time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local),
			fimEsperado:    time.Date(2024, 4, 6, 23, 59, 59, 999000000, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			semana := ResolverSemana(tt.agora, tt.offset)

			assert.Equal(t, tt.inicioEsperado, semana.Inicio)
			assert.Equal(t, tt.fimEsperado, semana.Fim)
			assert.Equal(t, time.Monday, semana.Inicio.Weekday())
			assert.Equal(t, time.Saturday, semana.Fim.Weekday())
			assert.True(t, semana.Inicio.Before(semana.Fim))
		})
	}
}

func TestResolverSemanaOffsetsConsecutivos(t *testing.T) {
	agora := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

	for offset := 0; offset < 10; offset++ {
		atual := ResolverSemana(agora, offset)
		anterior := ResolverSemana(agora, offset+1)

		assert.Equal(t, atual.Inicio.AddDate(0, 0, -7), anterior.Inicio)
		assert.Equal(t, atual.Fim.AddDate(0, 0, -7), anterior.Fim)
	}
}

func TestResolverSemanaDeterministica(t *testing.T) {
	agora := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

	primeira := ResolverSemana(agora, 2)
	segunda := ResolverSemana(agora, 2)

	assert.Equal(t, primeira, segunda)
}

func TestResolverSemanaRotulos(t *testing.T) {
	agora := time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

	semana := ResolverSemana(agora, 0)

	assert.Equal(t, "11/03", semana.InicioFormatado)
	assert.Equal(t, "16/03", semana.FimFormatado)
	assert.Equal(t, 0, semana.Offset)
}
