package domain

import "time"

// PorcentagemComissaoPadrao é aplicada sempre que o funcionário não tem
// porcentagem própria cadastrada. Único ponto do sistema onde o valor 40
// aparece; dashboard, detalhe do funcionário e página pública usam a mesma
// constante.
const PorcentagemComissaoPadrao = 40.0

type Funcionario struct {
	ID                  string   `json:"id"`
	Nome                string   `json:"nome"`
	Email               *string  `json:"email"`
	Telefone            *string  `json:"telefone"`
	Ativo               bool     `json:"ativo"`
	PorcentagemComissao *float64 `json:"porcentagem_comissao"`
	// CodigoPublico é o identificador curto usado na página pública de
	// auto-atendimento do funcionário.
	CodigoPublico string    `json:"codigo_publico"`
	UserID        *string   `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Porcentagem resolve a porcentagem de comissão efetiva do funcionário.
func (f *Funcionario) Porcentagem() float64 {
	if f.PorcentagemComissao == nil {
		return PorcentagemComissaoPadrao
	}
	return *f.PorcentagemComissao
}

// FuncionarioPublico é a projeção exposta na superfície pública de
// auto-atendimento: apenas o necessário para o funcionário se identificar.
type FuncionarioPublico struct {
	Nome          string `json:"nome"`
	CodigoPublico string `json:"codigo_publico"`
}

type CriarFuncionarioRequest struct {
	Nome                string   `json:"nome"`
	Email               *string  `json:"email"`
	Telefone            *string  `json:"telefone"`
	PorcentagemComissao *float64 `json:"porcentagem_comissao"`
}

type AtualizarFuncionarioRequest struct {
	Nome                *string  `json:"nome"`
	Email               *string  `json:"email"`
	Telefone            *string  `json:"telefone"`
	Ativo               *bool    `json:"ativo"`
	PorcentagemComissao *float64 `json:"porcentagem_comissao"`
}
