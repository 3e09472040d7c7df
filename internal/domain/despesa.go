package domain

import "time"

type Despesa struct {
	ID          string    `json:"id"`
	Descricao   string    `json:"descricao"`
	Valor       float64   `json:"valor"`
	FotoURL     *string   `json:"foto_url,omitempty"`
	DataDespesa string    `json:"data_despesa"`
	Observacoes *string   `json:"observacoes"`
	CreatedAt   time.Time `json:"created_at"`
}

type CriarDespesaRequest struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	DataDespesa string  `json:"data_despesa"`
	Observacoes *string `json:"observacoes"`
	Foto        *string `json:"foto"`
}

type AtualizarDespesaRequest struct {
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	DataDespesa string  `json:"data_despesa"`
	Observacoes *string `json:"observacoes"`
	Foto        *string `json:"foto"`
}
