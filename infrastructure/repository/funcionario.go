package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/domain"
)

const funcionariosTable = "funcionarios"

type FuncionarioRepository interface {
	CreateFuncionario(funcionario *domain.Funcionario) (*domain.Funcionario, error)
	UpdateFuncionario(funcionario *domain.Funcionario) error
	DeleteFuncionario(funcionarioID string) error
	GetFuncionarioByID(funcionarioID string) (*domain.Funcionario, error)
	GetFuncionarioByCodigoPublico(codigo string) (*domain.Funcionario, error)
	ListFuncionarios(userID *string) ([]*domain.Funcionario, error)
	ListFuncionariosAtivos(userID *string) ([]*domain.Funcionario, error)
}

type funcionarioRepository struct {
	conn *postgres.Connection
}

func NewFuncionarioRepository(conn *postgres.Connection) FuncionarioRepository {
	return &funcionarioRepository{
		conn: conn,
	}
}

const funcionarioColumns = "id, nome, email, telefone, ativo, porcentagem_comissao, COALESCE(codigo_publico, ''), user_id, created_at"

func (r *funcionarioRepository) CreateFuncionario(funcionario *domain.Funcionario) (*domain.Funcionario, error) {
	queryBuilder := squirrel.
		Insert(funcionariosTable).
		Columns("id", "nome", "email", "telefone", "ativo", "porcentagem_comissao", "codigo_publico", "user_id").
		Values(
			funcionario.ID,
			funcionario.Nome,
			funcionario.Email,
			funcionario.Telefone,
			funcionario.Ativo,
			funcionario.PorcentagemComissao,
			funcionario.CodigoPublico,
			funcionario.UserID,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	funcionarioSQL, funcionarioArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(funcionarioSQL, funcionarioArgs...).Scan(&funcionario.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar funcionário: %w", err)
	}

	return funcionario, nil
}

func (r *funcionarioRepository) UpdateFuncionario(funcionario *domain.Funcionario) error {
	queryBuilder := squirrel.
		Update(funcionariosTable).
		Set("nome", funcionario.Nome).
		Set("email", funcionario.Email).
		Set("telefone", funcionario.Telefone).
		Set("ativo", funcionario.Ativo).
		Set("porcentagem_comissao", funcionario.PorcentagemComissao).
		Where(squirrel.Eq{"id": funcionario.ID})

	funcionarioSQL, funcionarioArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(funcionarioSQL, funcionarioArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar funcionário: %w", err)
	}

	return nil
}

func (r *funcionarioRepository) DeleteFuncionario(funcionarioID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(funcionariosTable).
		Where(squirrel.Eq{"id": funcionarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao excluir funcionário: %w", err)
	}

	return nil
}

func (r *funcionarioRepository) GetFuncionarioByID(funcionarioID string) (*domain.Funcionario, error) {
	return r.getFuncionario(squirrel.Eq{"id": funcionarioID})
}

func (r *funcionarioRepository) GetFuncionarioByCodigoPublico(codigo string) (*domain.Funcionario, error) {
	return r.getFuncionario(squirrel.Eq{"codigo_publico": codigo})
}

func (r *funcionarioRepository) getFuncionario(whereClause map[string]interface{}) (*domain.Funcionario, error) {
	funcionarioSQL, funcionarioArgs, err := squirrel.
		Select(funcionarioColumns).
		From(funcionariosTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(funcionarioSQL, funcionarioArgs...)

	funcionario, err := deserializeFuncionario(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return funcionario, nil
}

func deserializeFuncionario(row *sql.Row) (*domain.Funcionario, error) {
	funcionario := &domain.Funcionario{}

	if err := row.Scan(
		&funcionario.ID,
		&funcionario.Nome,
		&funcionario.Email,
		&funcionario.Telefone,
		&funcionario.Ativo,
		&funcionario.PorcentagemComissao,
		&funcionario.CodigoPublico,
		&funcionario.UserID,
		&funcionario.CreatedAt,
	); err != nil {
		return nil, err
	}

	return funcionario, nil
}

func (r *funcionarioRepository) ListFuncionarios(userID *string) ([]*domain.Funcionario, error) {
	return r.listFuncionarios(userID, false)
}

func (r *funcionarioRepository) ListFuncionariosAtivos(userID *string) ([]*domain.Funcionario, error) {
	return r.listFuncionarios(userID, true)
}

// listFuncionarios retorna os funcionários do tenant. Linhas legadas sem
// user_id continuam visíveis para qualquer usuário autenticado.
func (r *funcionarioRepository) listFuncionarios(userID *string, somenteAtivos bool) ([]*domain.Funcionario, error) {
	queryBuilder := squirrel.
		Select(funcionarioColumns).
		From(funcionariosTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.Eq{"user_id": *userID},
			squirrel.Eq{"user_id": nil},
		})
	}

	if somenteAtivos {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ativo": true})
	}

	funcionariosSQL, funcionariosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(funcionariosSQL, funcionariosArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar funcionários: %w", err)
	}
	defer rows.Close()

	var funcionarios []*domain.Funcionario
	for rows.Next() {
		var funcionario domain.Funcionario
		if err := rows.Scan(
			&funcionario.ID,
			&funcionario.Nome,
			&funcionario.Email,
			&funcionario.Telefone,
			&funcionario.Ativo,
			&funcionario.PorcentagemComissao,
			&funcionario.CodigoPublico,
			&funcionario.UserID,
			&funcionario.CreatedAt,
		); err != nil {
			return nil, err
		}
		funcionarios = append(funcionarios, &funcionario)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return funcionarios, nil
}
