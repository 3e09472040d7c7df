package despesa

import (
	"github.com/google/uuid"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/pkg/errors"
)

var (
	ErrDespesaNaoEncontrada = errors.New("despesa não encontrada")
	ErrValorInvalido        = errors.New("valor deve ser maior que zero")
	ErrDescricaoObrigatoria = errors.New("descrição é obrigatória")
)

type Manager interface {
	CriarDespesa(req *domain.CriarDespesaRequest) (*domain.Despesa, error)
	AtualizarDespesa(despesaID string, req *domain.AtualizarDespesaRequest) (*domain.Despesa, error)
	ExcluirDespesa(despesaID string) error
	ListDespesas() ([]*domain.Despesa, error)
	ListDespesasPeriodo(inicio, fim string) ([]*domain.Despesa, error)
}

type Service struct {
	despesaRepo repository.DespesaRepository
}

func NewService(despesaRepo repository.DespesaRepository) Manager {
	return &Service{
		despesaRepo: despesaRepo,
	}
}

func (s *Service) CriarDespesa(req *domain.CriarDespesaRequest) (*domain.Despesa, error) {
	if err := validarDespesa(req.Descricao, req.Valor, req.DataDespesa); err != nil {
		return nil, err
	}

	despesa := &domain.Despesa{
		ID:          uuid.NewString(),
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		FotoURL:     req.Foto,
		DataDespesa: req.DataDespesa,
		Observacoes: req.Observacoes,
	}

	return s.despesaRepo.CreateDespesa(despesa)
}

func (s *Service) AtualizarDespesa(despesaID string, req *domain.AtualizarDespesaRequest) (*domain.Despesa, error) {
	despesa, err := s.despesaRepo.GetDespesaByID(despesaID)
	if err != nil {
		return nil, err
	}
	if despesa == nil {
		return nil, ErrDespesaNaoEncontrada
	}

	if err := validarDespesa(req.Descricao, req.Valor, req.DataDespesa); err != nil {
		return nil, err
	}

	despesa.Descricao = req.Descricao
	despesa.Valor = req.Valor
	despesa.DataDespesa = req.DataDespesa
	despesa.Observacoes = req.Observacoes
	if req.Foto != nil {
		despesa.FotoURL = req.Foto
	}

	if err := s.despesaRepo.UpdateDespesa(despesa); err != nil {
		return nil, err
	}

	return despesa, nil
}

func (s *Service) ExcluirDespesa(despesaID string) error {
	despesa, err := s.despesaRepo.GetDespesaByID(despesaID)
	if err != nil {
		return err
	}
	if despesa == nil {
		return ErrDespesaNaoEncontrada
	}

	return s.despesaRepo.DeleteDespesa(despesaID)
}

func (s *Service) ListDespesas() ([]*domain.Despesa, error) {
	return s.despesaRepo.ListTodasDespesas()
}

func (s *Service) ListDespesasPeriodo(inicio, fim string) ([]*domain.Despesa, error) {
	return s.despesaRepo.ListDespesasPeriodo(inicio, fim)
}

func validarDespesa(descricao string, valor float64, data string) error {
	if descricao == "" {
		return ErrDescricaoObrigatoria
	}
	if valor <= 0 {
		return ErrValorInvalido
	}
	if _, err := utils.ParseDateOnly(data); err != nil {
		return err
	}
	return nil
}
