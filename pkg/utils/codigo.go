package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GerarCodigoPublico gera o código curto usado nas URLs públicas de
// auto-atendimento dos funcionários.
func GerarCodigoPublico() (string, error) {
	return gonanoid.Generate(characters, 8)
}
