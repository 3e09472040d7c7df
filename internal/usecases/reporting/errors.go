package reporting

import "github.com/pkg/errors"

var (
	// ErrFuncionarioNaoEncontrado indica que o funcionário do extrato não
	// existe ou não pertence ao tenant.
	ErrFuncionarioNaoEncontrado = errors.New("funcionário não encontrado")

	// ErrResumoNaoEncontrado indica que a semana pedida ainda não teve o
	// fechamento persistido pelo sync.
	ErrResumoNaoEncontrado = errors.New("resumo fechado não encontrado")
)
