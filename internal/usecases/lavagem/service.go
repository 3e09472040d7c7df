package lavagem

import (
	"github.com/google/uuid"
	"github.com/lavajato/lava-jato-api/infrastructure/repository"
	"github.com/lavajato/lava-jato-api/internal/domain"
	"github.com/lavajato/lava-jato-api/pkg/utils"
	"github.com/pkg/errors"
)

var (
	ErrLavagemNaoEncontrada     = errors.New("lavagem não encontrada")
	ErrFuncionarioNaoEncontrado = errors.New("funcionário não encontrado")
	ErrPrecoInvalido            = errors.New("preço deve ser maior que zero")
	ErrDescricaoObrigatoria     = errors.New("descrição é obrigatória")
	ErrFotoNaoEncontrada        = errors.New("lavagem não possui foto")
)

type Manager interface {
	CriarLavagem(req *domain.CriarLavagemRequest) (*domain.Lavagem, error)
	CriarLavagemPublica(codigo string, req *domain.CriarLavagemRequest) (*domain.Lavagem, error)
	AtualizarLavagem(lavagemID string, req *domain.AtualizarLavagemRequest) (*domain.Lavagem, error)
	ExcluirLavagem(lavagemID string) error
	GetFoto(lavagemID string) (string, error)
	ListLavagens(userID *string) ([]*domain.LavagemComFuncionario, error)
	ListLavagensPeriodo(userID *string, inicio, fim string) ([]*domain.LavagemComFuncionario, error)
	ListLavagensPorDia(userID *string, diaSemana int) ([]*domain.LavagemComFuncionario, error)
}

type Service struct {
	lavagemRepo     repository.LavagemRepository
	funcionarioRepo repository.FuncionarioRepository
}

func NewService(lavagemRepo repository.LavagemRepository, funcionarioRepo repository.FuncionarioRepository) Manager {
	return &Service{
		lavagemRepo:     lavagemRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

func (s *Service) CriarLavagem(req *domain.CriarLavagemRequest) (*domain.Lavagem, error) {
	if req.Descricao == "" {
		return nil, ErrDescricaoObrigatoria
	}
	if req.Preco <= 0 {
		return nil, ErrPrecoInvalido
	}
	if _, err := utils.ParseDateOnly(req.DataLavagem); err != nil {
		return nil, err
	}

	funcionario, err := s.funcionarioRepo.GetFuncionarioByID(req.FuncionarioID)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrFuncionarioNaoEncontrado
	}

	lavagem := &domain.Lavagem{
		ID:             uuid.NewString(),
		FuncionarioID:  req.FuncionarioID,
		Descricao:      req.Descricao,
		Preco:          req.Preco,
		FotoURL:        req.Foto,
		FormaPagamento: normalizarFormaPagamento(req.FormaPagamento),
		DataLavagem:    req.DataLavagem,
	}

	return s.lavagemRepo.CreateLavagem(lavagem)
}

// CriarLavagemPublica registra uma lavagem pela página de auto-atendimento:
// o funcionário se identifica pelo código curto, sem login. Código
// desconhecido ou de funcionário inativo é tratado como não encontrado.
func (s *Service) CriarLavagemPublica(codigo string, req *domain.CriarLavagemRequest) (*domain.Lavagem, error) {
	funcionario, err := s.funcionarioRepo.GetFuncionarioByCodigoPublico(codigo)
	if err != nil {
		return nil, err
	}
	if funcionario == nil || !funcionario.Ativo {
		return nil, ErrFuncionarioNaoEncontrado
	}

	req.FuncionarioID = funcionario.ID
	return s.CriarLavagem(req)
}

func (s *Service) AtualizarLavagem(lavagemID string, req *domain.AtualizarLavagemRequest) (*domain.Lavagem, error) {
	lavagem, err := s.lavagemRepo.GetLavagemByID(lavagemID)
	if err != nil {
		return nil, err
	}
	if lavagem == nil {
		return nil, ErrLavagemNaoEncontrada
	}

	if req.Descricao == "" {
		return nil, ErrDescricaoObrigatoria
	}
	if req.Preco <= 0 {
		return nil, ErrPrecoInvalido
	}
	if _, err := utils.ParseDateOnly(req.DataLavagem); err != nil {
		return nil, err
	}

	lavagem.Descricao = req.Descricao
	lavagem.Preco = req.Preco
	lavagem.FormaPagamento = normalizarFormaPagamento(req.FormaPagamento)
	lavagem.DataLavagem = req.DataLavagem

	// Foto só é trocada quando a requisição envia uma nova; o update parcial
	// preserva a existente.
	if req.Foto != nil {
		lavagem.FotoURL = req.Foto
	}

	if err := s.lavagemRepo.UpdateLavagem(lavagem); err != nil {
		return nil, err
	}

	lavagem.TemFoto = lavagem.FotoURL != nil && *lavagem.FotoURL != ""
	return lavagem, nil
}

func (s *Service) ExcluirLavagem(lavagemID string) error {
	lavagem, err := s.lavagemRepo.GetLavagemByID(lavagemID)
	if err != nil {
		return err
	}
	if lavagem == nil {
		return ErrLavagemNaoEncontrada
	}

	return s.lavagemRepo.DeleteLavagem(lavagemID)
}

// GetFoto busca somente a foto da lavagem, servida num endpoint separado para
// manter as listagens leves.
func (s *Service) GetFoto(lavagemID string) (string, error) {
	foto, err := s.lavagemRepo.GetFotoLavagem(lavagemID)
	if err != nil {
		return "", err
	}
	if foto == nil || *foto == "" {
		return "", ErrFotoNaoEncontrada
	}

	return *foto, nil
}

func (s *Service) ListLavagens(userID *string) ([]*domain.LavagemComFuncionario, error) {
	return s.lavagemRepo.ListTodasLavagens(userID)
}

func (s *Service) ListLavagensPeriodo(userID *string, inicio, fim string) ([]*domain.LavagemComFuncionario, error) {
	return s.lavagemRepo.ListLavagensPeriodo(userID, inicio, fim)
}

// ListLavagensPorDia filtra as lavagens pelo dia da semana da data
// (domingo = 0 ... sábado = 6).
func (s *Service) ListLavagensPorDia(userID *string, diaSemana int) ([]*domain.LavagemComFuncionario, error) {
	lavagens, err := s.lavagemRepo.ListTodasLavagens(userID)
	if err != nil {
		return nil, err
	}

	filtradas := make([]*domain.LavagemComFuncionario, 0, len(lavagens))
	for _, l := range lavagens {
		data, err := utils.ParseDateOnly(l.DataLavagem)
		if err != nil {
			return nil, err
		}
		if int(data.Weekday()) == diaSemana {
			filtradas = append(filtradas, l)
		}
	}

	return filtradas, nil
}

// normalizarFormaPagamento descarta valores fora da lista aceita em vez de
// rejeitar a requisição; a lavagem fica apenas sem forma de pagamento.
func normalizarFormaPagamento(forma *string) *string {
	if forma == nil || !domain.FormaPagamentoValida(*forma) {
		return nil
	}
	return forma
}
