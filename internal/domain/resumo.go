package domain

import "time"

// SemanaInfo delimita a semana de trabalho usada em todos os relatórios:
// segunda-feira 00:00:00.000 até sábado 23:59:59.999, horário local. O
// domingo fica fora da semana de apuração, mas continua aparecendo no
// detalhamento por dia, que é como o negócio fecha a semana.
type SemanaInfo struct {
	Inicio          time.Time `json:"inicio"`
	Fim             time.Time `json:"fim"`
	InicioFormatado string    `json:"inicio_formatado"`
	FimFormatado    string    `json:"fim_formatado"`
	Offset          int       `json:"offset"`
}

// ComissaoFuncionario é o subtotal semanal de um funcionário ativo.
type ComissaoFuncionario struct {
	FuncionarioID   string  `json:"funcionario_id"`
	FuncionarioNome string  `json:"funcionario_nome"`
	Total           float64 `json:"total"`
	Comissao        float64 `json:"comissao"`
	Porcentagem     float64 `json:"porcentagem"`
}

// ResumoDia agrega lavagens e despesas de um dia da semana.
// DiaSemana segue a convenção domingo=0 ... sábado=6.
type ResumoDia struct {
	Dia        string  `json:"dia"`
	DiaSemana  int     `json:"dia_semana"`
	Quantidade int     `json:"quantidade"`
	Receita    float64 `json:"receita"`
	Despesas   float64 `json:"despesas"`
	Saldo      float64 `json:"saldo"`
}

// ResumoSemanal é o agregado semanal completo exibido no dashboard.
// LucroLiquido preserva o sinal: semanas no vermelho ficam negativas.
type ResumoSemanal struct {
	ReceitaTotal   float64               `json:"receita_total"`
	DespesasTotal  float64               `json:"despesas_total"`
	LucroLiquido   float64               `json:"lucro_liquido"`
	ComissoesTotal float64               `json:"comissoes_total"`
	PorFuncionario []ComissaoFuncionario `json:"por_funcionario"`
	PorDia         []ResumoDia           `json:"por_dia"`
}

// Dashboard reúne tudo que a tela principal precisa para uma semana: a
// janela resolvida, o agregado e os registros brutos do período.
type Dashboard struct {
	Semana   SemanaInfo               `json:"semana"`
	Resumo   ResumoSemanal            `json:"resumo"`
	Lavagens []*LavagemComFuncionario `json:"lavagens"`
	Despesas []*Despesa               `json:"despesas"`
}

// ComissaoSemanalFuncionario é o extrato semanal de um funcionário, usado
// tanto no detalhe autenticado quanto na página pública de auto-atendimento.
type ComissaoSemanalFuncionario struct {
	Funcionario *Funcionario `json:"funcionario"`
	Semana      SemanaInfo   `json:"semana"`
	Lavagens    []*Lavagem   `json:"lavagens"`
	Total       float64      `json:"total"`
	Comissao    float64      `json:"comissao"`
	Porcentagem float64      `json:"porcentagem"`
}

// ResumoSnapshot é um ResumoSemanal persistido pelo agendador semanal,
// identificado pelo início da semana (YYYY-MM-DD) e pelo tenant.
type ResumoSnapshot struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	SemanaInicio string        `json:"semana_inicio"`
	SemanaFim    string        `json:"semana_fim"`
	Resumo       ResumoSemanal `json:"resumo"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
