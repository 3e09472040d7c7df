package funcionario

import (
	"github.com/google/uuid"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrFuncionarioNaoEncontrado = errors.New("funcionário não encontrado")
	ErrNomeObrigatorio          = errors.New("nome é obrigatório")
	ErrPorcentagemInvalida      = errors.New("porcentagem de comissão deve estar entre 0 e 100")
)

type Manager interface {
	CriarFuncionario(userID *string, req *domain.CriarFuncionarioRequest) (*domain.Funcionario, error)
	AtualizarFuncionario(funcionarioID string, req *domain.AtualizarFuncionarioRequest) (*domain.Funcionario, error)
	ExcluirFuncionario(funcionarioID string) error
	GetFuncionario(funcionarioID string) (*domain.Funcionario, error)
	ListFuncionarios(userID *string, somenteAtivos bool) ([]*domain.Funcionario, error)
	ListFuncionariosPublicos() ([]*domain.FuncionarioPublico, error)
}

type Service struct {
	funcionarioRepo repository.FuncionarioRepository
}

func NewService(funcionarioRepo repository.FuncionarioRepository) Manager {
	return &Service{
		funcionarioRepo: funcionarioRepo,
	}
}

func (s *Service) CriarFuncionario(userID *string, req *domain.CriarFuncionarioRequest) (*domain.Funcionario, error) {
	if req.Nome == "" {
		return nil, ErrNomeObrigatorio
	}
	if err := validarPorcentagem(req.PorcentagemComissao); err != nil {
		return nil, err
	}

	codigo, err := utils.GerarCodigoPublico()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar código público do funcionário")
		return nil, err
	}

	funcionario := &domain.Funcionario{
		ID:                  uuid.NewString(),
		Nome:                req.Nome,
		Email:               req.Email,
		Telefone:            req.Telefone,
		Ativo:               true,
		PorcentagemComissao: req.PorcentagemComissao,
		CodigoPublico:       codigo,
		UserID:              userID,
	}

	return s.funcionarioRepo.CreateFuncionario(funcionario)
}

// AtualizarFuncionario aplica apenas os campos presentes na requisição, no
// mesmo espírito do update parcial de usuários.
func (s *Service) AtualizarFuncionario(funcionarioID string, req *domain.AtualizarFuncionarioRequest) (*domain.Funcionario, error) {
	funcionario, err := s.funcionarioRepo.GetFuncionarioByID(funcionarioID)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrFuncionarioNaoEncontrado
	}

	if req.Nome != nil {
		if *req.Nome == "" {
			return nil, ErrNomeObrigatorio
		}
		funcionario.Nome = *req.Nome
	}

	if req.Email != nil {
		funcionario.Email = req.Email
	}

	if req.Telefone != nil {
		funcionario.Telefone = req.Telefone
	}

	if req.Ativo != nil {
		funcionario.Ativo = *req.Ativo
	}

	if req.PorcentagemComissao != nil {
		if err := validarPorcentagem(req.PorcentagemComissao); err != nil {
			return nil, err
		}
		funcionario.PorcentagemComissao = req.PorcentagemComissao
	}

	if err := s.funcionarioRepo.UpdateFuncionario(funcionario); err != nil {
		return nil, err
	}

	return funcionario, nil
}

func (s *Service) ExcluirFuncionario(funcionarioID string) error {
	funcionario, err := s.funcionarioRepo.GetFuncionarioByID(funcionarioID)
	if err != nil {
		return err
	}
	if funcionario == nil {
		return ErrFuncionarioNaoEncontrado
	}

	return s.funcionarioRepo.DeleteFuncionario(funcionarioID)
}

func (s *Service) GetFuncionario(funcionarioID string) (*domain.Funcionario, error) {
	funcionario, err := s.funcionarioRepo.GetFuncionarioByID(funcionarioID)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrFuncionarioNaoEncontrado
	}

	return funcionario, nil
}

func (s *Service) ListFuncionarios(userID *string, somenteAtivos bool) ([]*domain.Funcionario, error) {
	if somenteAtivos {
		return s.funcionarioRepo.ListFuncionariosAtivos(userID)
	}
	return s.funcionarioRepo.ListFuncionarios(userID)
}

// ListFuncionariosPublicos projeta os funcionários ativos para a página
// pública de auto-atendimento, expondo só nome e código.
func (s *Service) ListFuncionariosPublicos() ([]*domain.FuncionarioPublico, error) {
	funcionarios, err := s.funcionarioRepo.ListFuncionariosAtivos(nil)
	if err != nil {
		return nil, err
	}

	publicos := make([]*domain.FuncionarioPublico, 0, len(funcionarios))
	for _, f := range funcionarios {
		publicos = append(publicos, &domain.FuncionarioPublico{
			Nome:          f.Nome,
			CodigoPublico: f.CodigoPublico,
		})
	}

	return publicos, nil
}

func validarPorcentagem(porcentagem *float64) error {
	if porcentagem == nil {
		return nil
	}
	if *porcentagem < 0 || *porcentagem > 100 {
		return ErrPorcentagemInvalida
	}
	return nil
}
