package reporting

import (
	"sort"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
)

// Ordem de exibição dos dias: a semana de apuração vai de segunda a sábado,
// mas o domingo continua listado no fim do detalhamento.
var diasOrdem = []struct {
	Label string
	Valor int
}{
	{"Seg", 1},
	{"Ter", 2},
	{"Qua", 3},
	{"Qui", 4},
	{"Sex", 5},
	{"Sáb", 6},
	{"Dom", 0},
}

// Summarize agrega as lavagens e despesas de um período já filtrado pelo
// chamador. Regras que precisam se manter estáveis:
//
//   - a comissão total é somada lavagem a lavagem com a porcentagem vigente
//     do funcionário, então uma mudança de porcentagem no meio da semana só
//     afeta as lavagens seguintes;
//   - lavagens de funcionário inexistente (cadastro excluído) contam na
//     receita, na comissão (pela porcentagem padrão) e nos dias, mas ficam
//     fora do detalhamento por funcionário;
//   - funcionários ativos sem lavagem aparecem zerados no detalhamento.
func Summarize(
	lavagens []*domain.LavagemComFuncionario,
	despesas []*domain.Despesa,
	funcionarios []*domain.Funcionario,
) (*domain.ResumoSemanal, error) {
	funcionariosPorID := make(map[string]*domain.Funcionario, len(funcionarios))
	for _, funcionario := range funcionarios {
		funcionariosPorID[funcionario.ID] = funcionario
	}

	porDia := make([]domain.ResumoDia, 0, len(diasOrdem))
	diaPorValor := make(map[int]*domain.ResumoDia, len(diasOrdem))
	for _, dia := range diasOrdem {
		porDia = append(porDia, domain.ResumoDia{Dia: dia.Label, DiaSemana: dia.Valor})
	}
	for i := range porDia {
		diaPorValor[porDia[i].DiaSemana] = &porDia[i]
	}

	resumo := &domain.ResumoSemanal{
		PorFuncionario: []domain.ComissaoFuncionario{},
	}

	totaisPorFuncionario := make(map[string]float64)
	for _, lavagem := range lavagens {
		resumo.ReceitaTotal += lavagem.Preco

		porcentagem := domain.PorcentagemComissaoPadrao
		if funcionario, ok := funcionariosPorID[lavagem.FuncionarioID]; ok {
			porcentagem = funcionario.Porcentagem()
			totaisPorFuncionario[funcionario.ID] += lavagem.Preco
		}
		resumo.ComissoesTotal += lavagem.Preco * porcentagem / 100

		data, err := utils.ParseDateOnly(lavagem.DataLavagem)
		if err != nil {
			return nil, err
		}
		dia := diaPorValor[int(data.Weekday())]
		dia.Quantidade++
		dia.Receita += lavagem.Preco
	}

	for _, despesa := range despesas {
		resumo.DespesasTotal += despesa.Valor

		data, err := utils.ParseDateOnly(despesa.DataDespesa)
		if err != nil {
			return nil, err
		}
		diaPorValor[int(data.Weekday())].Despesas += despesa.Valor
	}

	for i := range porDia {
		porDia[i].Saldo = porDia[i].Receita - porDia[i].Despesas
	}
	resumo.PorDia = porDia
	resumo.LucroLiquido = resumo.ReceitaTotal - resumo.DespesasTotal
	resumo.ComissoesTotal = utils.RoundWithTwoDecimalPlace(resumo.ComissoesTotal)

	for _, funcionario := range funcionarios {
		if !funcionario.Ativo {
			continue
		}
		total := totaisPorFuncionario[funcionario.ID]
		porcentagem := funcionario.Porcentagem()
		resumo.PorFuncionario = append(resumo.PorFuncionario, domain.ComissaoFuncionario{
			FuncionarioID:   funcionario.ID,
			FuncionarioNome: funcionario.Nome,
			Total:           total,
			Comissao:        utils.RoundWithTwoDecimalPlace(total * porcentagem / 100),
			Porcentagem:     porcentagem,
		})
	}
	sort.SliceStable(resumo.PorFuncionario, func(i, j int) bool {
		return resumo.PorFuncionario[i].Total > resumo.PorFuncionario[j].Total
	})

	return resumo, nil
}
