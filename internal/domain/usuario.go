package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Usuario representa o dono de um lava jato (tenant da aplicação).
// Todos os funcionários, lavagens e despesas pertencem a um usuário.
type Usuario struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	SenhaHash   string    `json:"-"`
	Slug        string    `json:"slug"`
	NomeNegocio string    `json:"nome_negocio"`
	CreatedAt   time.Time `json:"created_at"`
}

type RegistroRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Senha       string `json:"senha"`
	NomeNegocio string `json:"nome_negocio"`
}

type Claims struct {
	UserID      string
	UserNome    string
	UserEmail   string
	UserSlug    string
	NomeNegocio string
	jwt.RegisteredClaims
}
