package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/domain"
)

const despesasTable = "despesas"

type DespesaRepository interface {
	CreateDespesa(despesa *domain.Despesa) (*domain.Despesa, error)
	UpdateDespesa(despesa *domain.Despesa) error
	DeleteDespesa(despesaID string) error
	GetDespesaByID(despesaID string) (*domain.Despesa, error)
	ListDespesasPeriodo(inicio, fim string) ([]*domain.Despesa, error)
	ListTodasDespesas() ([]*domain.Despesa, error)
}

type despesaRepository struct {
	conn *postgres.Connection
}

func NewDespesaRepository(conn *postgres.Connection) DespesaRepository {
	return &despesaRepository{
		conn: conn,
	}
}

const despesaColumns = "id, descricao, valor, foto_url, data_despesa, observacoes, created_at"

func (r *despesaRepository) CreateDespesa(despesa *domain.Despesa) (*domain.Despesa, error) {
	queryBuilder := squirrel.
		Insert(despesasTable).
		Columns("id", "descricao", "valor", "foto_url", "data_despesa", "observacoes").
		Values(
			despesa.ID,
			despesa.Descricao,
			despesa.Valor,
			despesa.FotoURL,
			despesa.DataDespesa,
			despesa.Observacoes,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	despesaSQL, despesaArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(despesaSQL, despesaArgs...).Scan(&despesa.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar despesa: %w", err)
	}

	return despesa, nil
}

func (r *despesaRepository) UpdateDespesa(despesa *domain.Despesa) error {
	queryBuilder := squirrel.
		Update(despesasTable).
		Set("descricao", despesa.Descricao).
		Set("valor", despesa.Valor).
		Set("foto_url", despesa.FotoURL).
		Set("data_despesa", despesa.DataDespesa).
		Set("observacoes", despesa.Observacoes).
		Where(squirrel.Eq{"id": despesa.ID})

	despesaSQL, despesaArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(despesaSQL, despesaArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}

	return nil
}

func (r *despesaRepository) DeleteDespesa(despesaID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(despesasTable).
		Where(squirrel.Eq{"id": despesaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao excluir despesa: %w", err)
	}

	return nil
}

func (r *despesaRepository) GetDespesaByID(despesaID string) (*domain.Despesa, error) {
	despesaSQL, despesaArgs, err := squirrel.
		Select(despesaColumns).
		From(despesasTable).
		Where(squirrel.Eq{"id": despesaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var despesa domain.Despesa
	err = r.conn.QueryRow(despesaSQL, despesaArgs...).Scan(
		&despesa.ID,
		&despesa.Descricao,
		&despesa.Valor,
		&despesa.FotoURL,
		&despesa.DataDespesa,
		&despesa.Observacoes,
		&despesa.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &despesa, nil
}

// ListDespesasPeriodo retorna as despesas no intervalo [inicio, fim]
// inclusivo, comparando as datas "YYYY-MM-DD" como texto.
func (r *despesaRepository) ListDespesasPeriodo(inicio, fim string) ([]*domain.Despesa, error) {
	queryBuilder := squirrel.
		Select(despesaColumns).
		From(despesasTable).
		Where(squirrel.GtOrEq{"data_despesa": inicio}).
		Where(squirrel.LtOrEq{"data_despesa": fim}).
		OrderBy("data_despesa DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listDespesas(queryBuilder)
}

func (r *despesaRepository) ListTodasDespesas() ([]*domain.Despesa, error) {
	queryBuilder := squirrel.
		Select(despesaColumns).
		From(despesasTable).
		OrderBy("data_despesa DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.listDespesas(queryBuilder)
}

func (r *despesaRepository) listDespesas(queryBuilder squirrel.SelectBuilder) ([]*domain.Despesa, error) {
	despesasSQL, despesasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(despesasSQL, despesasArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar despesas: %w", err)
	}
	defer rows.Close()

	var despesas []*domain.Despesa
	for rows.Next() {
		var despesa domain.Despesa
		if err := rows.Scan(
			&despesa.ID,
			&despesa.Descricao,
			&despesa.Valor,
			&despesa.FotoURL,
			&despesa.DataDespesa,
			&despesa.Observacoes,
			&despesa.CreatedAt,
		); err != nil {
			return nil, err
		}
		despesas = append(despesas, &despesa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return despesas, nil
}
