package domain

import "time"

// Formas de pagamento aceitas em uma lavagem. Qualquer outro valor recebido
// na requisição é descartado e a lavagem fica sem forma de pagamento.
const (
	FormaPagamentoPix      = "pix"
	FormaPagamentoDinheiro = "dinheiro"
)

func FormaPagamentoValida(forma string) bool {
	return forma == FormaPagamentoPix || forma == FormaPagamentoDinheiro
}

type Lavagem struct {
	ID            string  `json:"id"`
	FuncionarioID string  `json:"funcionario_id"`
	Descricao     string  `json:"descricao"`
	Preco         float64 `json:"preco"`
	// FotoURL guarda a foto como data URL base64; omitida nas listagens para
	// não inflar a resposta, com TemFoto indicando a existência.
	FotoURL        *string   `json:"foto_url,omitempty"`
	TemFoto        bool      `json:"tem_foto"`
	FormaPagamento *string   `json:"forma_pagamento"`
	DataLavagem    string    `json:"data_lavagem"`
	CreatedAt      time.Time `json:"created_at"`
}

type LavagemComFuncionario struct {
	Lavagem
	FuncionarioNome string `json:"funcionario_nome"`
}

type CriarLavagemRequest struct {
	FuncionarioID  string  `json:"funcionario_id"`
	Descricao      string  `json:"descricao"`
	Preco          float64 `json:"preco"`
	Foto           *string `json:"foto"`
	FormaPagamento *string `json:"forma_pagamento"`
	DataLavagem    string  `json:"data_lavagem"`
}

type AtualizarLavagemRequest struct {
	Descricao      string  `json:"descricao"`
	Preco          float64 `json:"preco"`
	Foto           *string `json:"foto"`
	FormaPagamento *string `json:"forma_pagamento"`
	DataLavagem    string  `json:"data_lavagem"`
}
