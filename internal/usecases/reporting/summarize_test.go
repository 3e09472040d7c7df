package reporting

import (
	"testing"

	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func lavagemComFuncionario(funcionarioID string, preco float64, data string) *domain.LavagemComFuncionario {
	return &domain.LavagemComFuncionario{
		Lavagem: domain.Lavagem{
			FuncionarioID: funcionarioID,
			Preco:         preco,
			DataLavagem:   data,
		},
	}
}

func funcionarioAtivo(id, nome string, porcentagem *float64) *domain.Funcionario {
	return &domain.Funcionario{
		ID:                  id,
		Nome:                nome,
		Ativo:               true,
		PorcentagemComissao: porcentagem,
	}
}

func float64Ptr(f float64) *float64 {
	return &f
}

func diaPorValor(t *testing.T, resumo *domain.ResumoSemanal, valor int) domain.ResumoDia {
	t.Helper()
	for _, dia := range resumo.PorDia {
		if dia.DiaSemana == valor {
			return dia
		}
	}
	t.Fatalf("dia %d não encontrado no detalhamento", valor)
	return domain.ResumoDia{}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		lavagens     []*domain.LavagemComFuncionario
		despesas     []*domain.Despesa
		funcionarios []*domain.Funcionario
		validate     func(t *testing.T, resumo *domain.ResumoSemanal)
	}{
		{
			name: "Lavagem única com porcentagem padrão",
			// 2024-03-11 é uma segunda-feira
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 100.00, "2024-03-11"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 100.00, resumo.ReceitaTotal)
				assert.Equal(t, 40.00, resumo.ComissoesTotal)

				assert.Len(t, resumo.PorFuncionario, 1)
				assert.Equal(t, "F1", resumo.PorFuncionario[0].FuncionarioID)
				assert.Equal(t, 100.00, resumo.PorFuncionario[0].Total)
				assert.Equal(t, 40.00, resumo.PorFuncionario[0].Comissao)
				assert.Equal(t, 40.0, resumo.PorFuncionario[0].Porcentagem)

				segunda := diaPorValor(t, resumo, 1)
				assert.Equal(t, 1, segunda.Quantidade)
				assert.Equal(t, 100.00, segunda.Receita)
				for _, dia := range resumo.PorDia {
					if dia.DiaSemana != 1 {
						assert.Zero(t, dia.Receita, "dia %s deveria estar zerado", dia.Dia)
						assert.Zero(t, dia.Quantidade)
					}
				}
			},
		},
		{
			name: "Duas lavagens do mesmo funcionário no mesmo dia",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 50.00, "2024-03-11"),
				lavagemComFuncionario("F1", 30.00, "2024-03-11"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 80.00, resumo.ReceitaTotal)
				assert.Equal(t, 80.00, resumo.PorFuncionario[0].Total)

				segunda := diaPorValor(t, resumo, 1)
				assert.Equal(t, 2, segunda.Quantidade)
				assert.Equal(t, 80.00, segunda.Receita)
			},
		},
		{
			name: "Despesa sem lavagens deixa o dia no vermelho",
			// 2024-03-12 é uma terça-feira
			despesas: []*domain.Despesa{
				{Valor: 20.00, DataDespesa: "2024-03-12"},
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 0.00, resumo.ReceitaTotal)
				assert.Equal(t, 20.00, resumo.DespesasTotal)
				assert.Equal(t, -20.00, resumo.LucroLiquido)

				terca := diaPorValor(t, resumo, 2)
				assert.Equal(t, 0.00, terca.Receita)
				assert.Equal(t, 20.00, terca.Despesas)
				assert.Equal(t, -20.00, terca.Saldo)
			},
		},
		{
			name: "Lucro líquido negativo preserva o sinal",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 100.00, "2024-03-11"),
			},
			despesas: []*domain.Despesa{
				{Valor: 150.00, DataDespesa: "2024-03-12"},
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, -50.00, resumo.LucroLiquido)
			},
		},
		{
			name: "Funcionário ativo sem lavagens aparece zerado",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 100.00, "2024-03-11"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
				funcionarioAtivo("F2", "Maria", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Len(t, resumo.PorFuncionario, 2)
				assert.Equal(t, "F1", resumo.PorFuncionario[0].FuncionarioID)
				assert.Equal(t, "F2", resumo.PorFuncionario[1].FuncionarioID)
				assert.Equal(t, 0.00, resumo.PorFuncionario[1].Total)
				assert.Equal(t, 0.00, resumo.PorFuncionario[1].Comissao)
			},
		},
		{
			name: "Detalhamento ordenado por total decrescente com empate estável",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 50.00, "2024-03-11"),
				lavagemComFuncionario("F2", 120.00, "2024-03-12"),
				lavagemComFuncionario("F3", 50.00, "2024-03-13"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
				funcionarioAtivo("F2", "Maria", nil),
				funcionarioAtivo("F3", "Pedro", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, "F2", resumo.PorFuncionario[0].FuncionarioID)
				// F1 e F3 empatam em 50.00; a ordem de cadastro prevalece
				assert.Equal(t, "F1", resumo.PorFuncionario[1].FuncionarioID)
				assert.Equal(t, "F3", resumo.PorFuncionario[2].FuncionarioID)
			},
		},
		{
			name: "Funcionário inativo fica fora do detalhamento mas a lavagem conta nos totais",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 100.00, "2024-03-11"),
				lavagemComFuncionario("F2", 200.00, "2024-03-12"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
				{ID: "F2", Nome: "Maria", Ativo: false, PorcentagemComissao: float64Ptr(50)},
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 300.00, resumo.ReceitaTotal)
				// 100*40% + 200*50%: a porcentagem própria da inativa vale
				assert.Equal(t, 140.00, resumo.ComissoesTotal)

				assert.Len(t, resumo.PorFuncionario, 1)
				assert.Equal(t, "F1", resumo.PorFuncionario[0].FuncionarioID)
			},
		},
		{
			name: "Lavagem órfã conta na receita e nos dias com a porcentagem padrão",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 100.00, "2024-03-11"),
				lavagemComFuncionario("EXCLUIDO", 80.00, "2024-03-11"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", nil),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 180.00, resumo.ReceitaTotal)
				// 100*40% + 80*40%
				assert.Equal(t, 72.00, resumo.ComissoesTotal)

				segunda := diaPorValor(t, resumo, 1)
				assert.Equal(t, 2, segunda.Quantidade)
				assert.Equal(t, 180.00, segunda.Receita)

				// A órfã não vira linha no detalhamento por funcionário
				assert.Len(t, resumo.PorFuncionario, 1)
				assert.Equal(t, 100.00, resumo.PorFuncionario[0].Total)
			},
		},
		{
			name: "Porcentagem própria substitui a padrão",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 200.00, "2024-03-11"),
			},
			funcionarios: []*domain.Funcionario{
				funcionarioAtivo("F1", "João", float64Ptr(25)),
			},
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 50.00, resumo.ComissoesTotal)
				assert.Equal(t, 50.00, resumo.PorFuncionario[0].Comissao)
				assert.Equal(t, 25.0, resumo.PorFuncionario[0].Porcentagem)
			},
		},
		{
			name: "Entradas vazias produzem resumo zerado",
			validate: func(t *testing.T, resumo *domain.ResumoSemanal) {
				assert.Equal(t, 0.00, resumo.ReceitaTotal)
				assert.Equal(t, 0.00, resumo.DespesasTotal)
				assert.Equal(t, 0.00, resumo.LucroLiquido)
				assert.Equal(t, 0.00, resumo.ComissoesTotal)
				assert.Empty(t, resumo.PorFuncionario)
				assert.Len(t, resumo.PorDia, 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resumo, err := Summarize(tt.lavagens, tt.despesas, tt.funcionarios)

			assert.NoError(t, err)
			tt.validate(t, resumo)
		})
	}
}

func TestSummarizeOrdemDosDias(t *testing.T) {
	resumo, err := Summarize(nil, nil, nil)

	assert.NoError(t, err)
	esperado := []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}
	for i, dia := range resumo.PorDia {
		assert.Equal(t, esperado[i], dia.Dia)
	}
	assert.Equal(t, 0, resumo.PorDia[6].DiaSemana)
}

func TestSummarizeReceitaAditiva(t *testing.T) {
	lavagens := []*domain.LavagemComFuncionario{
		lavagemComFuncionario("F1", 35.50, "2024-03-11"),
		lavagemComFuncionario("F1", 42.00, "2024-03-12"),
		lavagemComFuncionario("F2", 18.75, "2024-03-14"),
		lavagemComFuncionario("F2", 90.00, "2024-03-16"),
	}
	funcionarios := []*domain.Funcionario{
		funcionarioAtivo("F1", "João", nil),
		funcionarioAtivo("F2", "Maria", nil),
	}

	completo, err := Summarize(lavagens, nil, funcionarios)
	assert.NoError(t, err)

	primeira, err := Summarize(lavagens[:2], nil, funcionarios)
	assert.NoError(t, err)
	segunda, err := Summarize(lavagens[2:], nil, funcionarios)
	assert.NoError(t, err)

	assert.Equal(t, completo.ReceitaTotal, primeira.ReceitaTotal+segunda.ReceitaTotal)
	assert.Equal(t, completo.ComissoesTotal, primeira.ComissoesTotal+segunda.ComissoesTotal)
}

func TestSummarizeDataInvalida(t *testing.T) {
	tests := []struct {
		name     string
		lavagens []*domain.LavagemComFuncionario
		despesas []*domain.Despesa
	}{
		{
			name: "Lavagem com data malformada",
			lavagens: []*domain.LavagemComFuncionario{
				lavagemComFuncionario("F1", 10.00, "11/03/2024"),
			},
		},
		{
			name: "Despesa com data malformada",
			despesas: []*domain.Despesa{
				{Valor: 10.00, DataDespesa: "2024-13-40x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resumo, err := Summarize(tt.lavagens, tt.despesas, nil)

			assert.Nil(t, resumo)
			assert.ErrorIs(t, err, utils.ErrDataInvalida)
		})
	}
}
