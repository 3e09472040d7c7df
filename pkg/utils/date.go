package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrDataInvalida indica uma data fora do formato YYYY-MM-DD.
var ErrDataInvalida = errors.New("data inválida")

// ParseDateOnly converte "YYYY-MM-DD" para uma data à meia-noite no horário
// local, evitando o shift de fuso de um parse em UTC: "2024-03-10" resolve
// sempre para 10 de março local, independente do offset do servidor.
func ParseDateOnly(dateStr string) (time.Time, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDataInvalida, dateStr)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDataInvalida, dateStr)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDataInvalida, dateStr)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDataInvalida, dateStr)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDatePtBr formata uma data no padrão brasileiro DD/MM/YYYY.
func FormatDatePtBr(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDiaMes formata apenas dia e mês (DD/MM), usado nos rótulos de semana.
func FormatDiaMes(t time.Time) string {
	return t.Format("02/01")
}

// FormatDateOnly formata uma data de volta para o formato de armazenamento.
func FormatDateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}
