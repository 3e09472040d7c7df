package reporting

import (
	"time"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
)

// ResolverSemana calcula a janela de apuração da semana indicada pelo offset
// (0 = semana atual, 1 = semana passada, e assim por diante; offsets
// negativos são tratados como 0). A janela vai da segunda-feira 00:00:00.000
// ao sábado seguinte 23:59:59.999, sempre no fuso de `agora`. O domingo fica
// fora da janela porque o fechamento de comissões acontece no sábado.
func ResolverSemana(agora time.Time, offset int) domain.SemanaInfo {
	if offset < 0 {
		offset = 0
	}

	// Weekday segue a convenção domingo=0; para chegar na segunda-feira mais
	// recente, domingo volta 6 dias e os demais dias voltam dia-1.
	dia := int(agora.Weekday())
	diff := 1 - dia
	if dia == 0 {
		diff = -6
	}
	diff -= offset * 7

	inicio := time.Date(agora.Year(), agora.Month(), agora.Day()+diff, 0, 0, 0, 0, agora.Location())
	fim := time.Date(inicio.Year(), inicio.Month(), inicio.Day()+5, 23, 59, 59, 999000000, inicio.Location())

	return domain.SemanaInfo{
		Inicio:          inicio,
		Fim:             fim,
		InicioFormatado: utils.FormatDiaMes(inicio),
		FimFormatado:    utils.FormatDiaMes(fim),
		Offset:          offset,
	}
}
