package reporting

import (
	"time"

	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
)

// Reporter resolve semanas e monta os agregados consumidos pelo dashboard,
// pelo detalhe de funcionário, pela página pública e pelo sync semanal.
type Reporter interface {
	ResolverSemana(offset int) domain.SemanaInfo
	Dashboard(userID *string, offset int) (*domain.Dashboard, error)
	ComissaoDaSemana(funcionarioID string, offset int, incluirFotos bool) (*domain.ComissaoSemanalFuncionario, error)
	ComissaoPorCodigoPublico(codigo string, offset int) (*domain.ComissaoSemanalFuncionario, error)
	ResumoFechado(userID *string, offset int) (*domain.ResumoSnapshot, error)
}

type Service struct {
	lavagemRepository     repository.LavagemRepository
	despesaRepository     repository.DespesaRepository
	funcionarioRepository repository.FuncionarioRepository
	snapshotRepository    repository.ResumoSnapshotRepository
	clock                 func() time.Time
}

func NewService(
	lavagemRepo repository.LavagemRepository,
	despesaRepo repository.DespesaRepository,
	funcionarioRepo repository.FuncionarioRepository,
	snapshotRepo repository.ResumoSnapshotRepository,
) *Service {
	return &Service{
		lavagemRepository:     lavagemRepo,
		despesaRepository:     despesaRepo,
		funcionarioRepository: funcionarioRepo,
		snapshotRepository:    snapshotRepo,
		clock:                 time.Now,
	}
}

// WithClock troca a fonte de "agora", usada nos testes para fixar a semana.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

func (s *Service) ResolverSemana(offset int) domain.SemanaInfo {
	return ResolverSemana(s.clock(), offset)
}

// Dashboard monta o agregado da semana do tenant: resolve a janela, busca os
// registros do período e delega a aritmética para Summarize.
func (s *Service) Dashboard(userID *string, offset int) (*domain.Dashboard, error) {
	semana := s.ResolverSemana(offset)
	inicio := utils.FormatDateOnly(semana.Inicio)
	fim := utils.FormatDateOnly(semana.Fim)

	lavagens, err := s.lavagemRepository.ListLavagensPeriodo(userID, inicio, fim)
	if err != nil {
		return nil, err
	}

	despesas, err := s.despesaRepository.ListDespesasPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}

	funcionarios, err := s.funcionarioRepository.ListFuncionarios(userID)
	if err != nil {
		return nil, err
	}

	resumo, err := Summarize(lavagens, despesas, funcionarios)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Semana:   semana,
		Resumo:   *resumo,
		Lavagens: lavagens,
		Despesas: despesas,
	}, nil
}

func (s *Service) ComissaoDaSemana(funcionarioID string, offset int, incluirFotos bool) (*domain.ComissaoSemanalFuncionario, error) {
	funcionario, err := s.funcionarioRepository.GetFuncionarioByID(funcionarioID)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrFuncionarioNaoEncontrado
	}

	return s.extratoFuncionario(funcionario, offset, incluirFotos)
}

// ComissaoPorCodigoPublico é a variante da página de auto-atendimento: o
// funcionário consulta o próprio extrato pelo código curto, sem login e
// sempre sem as fotos.
func (s *Service) ComissaoPorCodigoPublico(codigo string, offset int) (*domain.ComissaoSemanalFuncionario, error) {
	funcionario, err := s.funcionarioRepository.GetFuncionarioByCodigoPublico(codigo)
	if err != nil {
		return nil, err
	}
	if funcionario == nil || !funcionario.Ativo {
		return nil, ErrFuncionarioNaoEncontrado
	}

	return s.extratoFuncionario(funcionario, offset, false)
}

// ResumoFechado busca o consolidado persistido pelo sync semanal. Diferente
// do Dashboard, que recalcula a semana a cada chamada, aqui vale o que foi
// gravado no fechamento: semanas ainda abertas ou anteriores ao primeiro sync
// retornam ErrResumoNaoEncontrado.
func (s *Service) ResumoFechado(userID *string, offset int) (*domain.ResumoSnapshot, error) {
	if userID == nil {
		return nil, ErrResumoNaoEncontrado
	}

	semana := s.ResolverSemana(offset)

	snapshot, err := s.snapshotRepository.GetResumoSnapshot(*userID, utils.FormatDateOnly(semana.Inicio))
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrResumoNaoEncontrado
	}

	return snapshot, nil
}

// extratoFuncionario soma as lavagens da semana do funcionário e aplica a
// porcentagem vigente. O cálculo usa a mesma porcentagem padrão do resumo
// semanal quando o funcionário não tem valor próprio.
func (s *Service) extratoFuncionario(funcionario *domain.Funcionario, offset int, incluirFotos bool) (*domain.ComissaoSemanalFuncionario, error) {
	semana := s.ResolverSemana(offset)
	inicio := utils.FormatDateOnly(semana.Inicio)
	fim := utils.FormatDateOnly(semana.Fim)

	lavagens, err := s.lavagemRepository.ListLavagensFuncionario(funcionario.ID, inicio, fim, incluirFotos)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, lavagem := range lavagens {
		total += lavagem.Preco
	}

	porcentagem := funcionario.Porcentagem()

	return &domain.ComissaoSemanalFuncionario{
		Funcionario: funcionario,
		Semana:      semana,
		Lavagens:    lavagens,
		Total:       total,
		Comissao:    utils.RoundWithTwoDecimalPlace(total * porcentagem / 100),
		Porcentagem: porcentagem,
	}, nil
}
