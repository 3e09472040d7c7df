package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/domain"
)

const (
	lavagensTable     = "lavagens l"
	lavagensBareTable = "lavagens"
)

type LavagemRepository interface {
	CreateLavagem(lavagem *domain.Lavagem) (*domain.Lavagem, error)
	UpdateLavagem(lavagem *domain.Lavagem) error
	DeleteLavagem(lavagemID string) error
	GetLavagemByID(lavagemID string) (*domain.Lavagem, error)
	GetFotoLavagem(lavagemID string) (*string, error)
	// ListLavagensPeriodo retorna as lavagens do tenant no intervalo
	// [inicio, fim] inclusivo. As datas chegam como "YYYY-MM-DD" e a
	// comparação é textual, segura porque o formato é zero-padded.
	ListLavagensPeriodo(userID *string, inicio, fim string) ([]*domain.LavagemComFuncionario, error)
	ListLavagensFuncionario(funcionarioID, inicio, fim string, incluirFotos bool) ([]*domain.Lavagem, error)
	ListTodasLavagens(userID *string) ([]*domain.LavagemComFuncionario, error)
}

type lavagemRepository struct {
	conn *postgres.Connection
}

func NewLavagemRepository(conn *postgres.Connection) LavagemRepository {
	return &lavagemRepository{
		conn: conn,
	}
}

func (r *lavagemRepository) CreateLavagem(lavagem *domain.Lavagem) (*domain.Lavagem, error) {
	queryBuilder := squirrel.
		Insert(lavagensBareTable).
		Columns("id", "funcionario_id", "descricao", "preco", "foto_url", "forma_pagamento", "data_lavagem").
		Values(
			lavagem.ID,
			lavagem.FuncionarioID,
			lavagem.Descricao,
			lavagem.Preco,
			lavagem.FotoURL,
			lavagem.FormaPagamento,
			lavagem.DataLavagem,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	lavagemSQL, lavagemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(lavagemSQL, lavagemArgs...).Scan(&lavagem.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar lavagem: %w", err)
	}

	lavagem.TemFoto = lavagem.FotoURL != nil && *lavagem.FotoURL != ""
	return lavagem, nil
}

func (r *lavagemRepository) UpdateLavagem(lavagem *domain.Lavagem) error {
	queryBuilder := squirrel.
		Update(lavagensBareTable).
		Set("descricao", lavagem.Descricao).
		Set("preco", lavagem.Preco).
		Set("foto_url", lavagem.FotoURL).
		Set("forma_pagamento", lavagem.FormaPagamento).
		Set("data_lavagem", lavagem.DataLavagem).
		Where(squirrel.Eq{"id": lavagem.ID})

	lavagemSQL, lavagemArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(lavagemSQL, lavagemArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar lavagem: %w", err)
	}

	return nil
}

func (r *lavagemRepository) DeleteLavagem(lavagemID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(lavagensBareTable).
		Where(squirrel.Eq{"id": lavagemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao excluir lavagem: %w", err)
	}

	return nil
}

func (r *lavagemRepository) GetLavagemByID(lavagemID string) (*domain.Lavagem, error) {
	var (
		lavagem domain.Lavagem
		fotoURL *string
	)
	err := r.conn.QueryRow(
		"SELECT id, funcionario_id, descricao, preco, foto_url, forma_pagamento, data_lavagem, created_at FROM lavagens WHERE id = $1",
		lavagemID,
	).Scan(
		&lavagem.ID,
		&lavagem.FuncionarioID,
		&lavagem.Descricao,
		&lavagem.Preco,
		&fotoURL,
		&lavagem.FormaPagamento,
		&lavagem.DataLavagem,
		&lavagem.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lavagem.FotoURL = fotoURL
	lavagem.TemFoto = fotoURL != nil && *fotoURL != ""
	return &lavagem, nil
}

func (r *lavagemRepository) GetFotoLavagem(lavagemID string) (*string, error) {
	var fotoURL *string
	err := r.conn.QueryRow("SELECT foto_url FROM lavagens WHERE id = $1", lavagemID).Scan(&fotoURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return fotoURL, nil
}

func (r *lavagemRepository) ListLavagensPeriodo(userID *string, inicio, fim string) ([]*domain.LavagemComFuncionario, error) {
	queryBuilder := squirrel.
		Select(
			"l.id",
			"l.funcionario_id",
			"l.descricao",
			"l.preco",
			"l.foto_url IS NOT NULL AND l.foto_url <> ''",
			"l.forma_pagamento",
			"l.data_lavagem",
			"l.created_at",
			"f.nome",
		).
		From(lavagensTable).
		Join("funcionarios f ON l.funcionario_id = f.id").
		Where(squirrel.GtOrEq{"l.data_lavagem": inicio}).
		Where(squirrel.LtOrEq{"l.data_lavagem": fim}).
		OrderBy("l.data_lavagem DESC", "l.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.Eq{"f.user_id": *userID},
			squirrel.Eq{"f.user_id": nil},
		})
	}

	lavagensSQL, lavagensArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(lavagensSQL, lavagensArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lavagens: %w", err)
	}
	defer rows.Close()

	var lavagens []*domain.LavagemComFuncionario
	for rows.Next() {
		var lavagem domain.LavagemComFuncionario
		if err := rows.Scan(
			&lavagem.ID,
			&lavagem.FuncionarioID,
			&lavagem.Descricao,
			&lavagem.Preco,
			&lavagem.TemFoto,
			&lavagem.FormaPagamento,
			&lavagem.DataLavagem,
			&lavagem.CreatedAt,
			&lavagem.FuncionarioNome,
		); err != nil {
			return nil, err
		}
		lavagens = append(lavagens, &lavagem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lavagens, nil
}

// ListLavagensFuncionario lista as lavagens de um funcionário no intervalo.
// Com incluirFotos=false as fotos base64 ficam de fora da resposta, restando
// apenas o indicador tem_foto.
func (r *lavagemRepository) ListLavagensFuncionario(funcionarioID, inicio, fim string, incluirFotos bool) ([]*domain.Lavagem, error) {
	queryBuilder := squirrel.
		Select("id", "funcionario_id", "descricao", "preco", "foto_url", "forma_pagamento", "data_lavagem", "created_at").
		From(lavagensBareTable).
		Where(squirrel.Eq{"funcionario_id": funcionarioID}).
		Where(squirrel.GtOrEq{"data_lavagem": inicio}).
		Where(squirrel.LtOrEq{"data_lavagem": fim}).
		OrderBy("data_lavagem DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	lavagensSQL, lavagensArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(lavagensSQL, lavagensArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lavagens do funcionário: %w", err)
	}
	defer rows.Close()

	var lavagens []*domain.Lavagem
	for rows.Next() {
		var (
			lavagem domain.Lavagem
			fotoURL *string
		)
		if err := rows.Scan(
			&lavagem.ID,
			&lavagem.FuncionarioID,
			&lavagem.Descricao,
			&lavagem.Preco,
			&fotoURL,
			&lavagem.FormaPagamento,
			&lavagem.DataLavagem,
			&lavagem.CreatedAt,
		); err != nil {
			return nil, err
		}

		lavagem.TemFoto = fotoURL != nil && *fotoURL != ""
		if incluirFotos {
			lavagem.FotoURL = fotoURL
		}
		lavagens = append(lavagens, &lavagem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lavagens, nil
}

func (r *lavagemRepository) ListTodasLavagens(userID *string) ([]*domain.LavagemComFuncionario, error) {
	queryBuilder := squirrel.
		Select(
			"l.id",
			"l.funcionario_id",
			"l.descricao",
			"l.preco",
			"l.foto_url IS NOT NULL AND l.foto_url <> ''",
			"l.forma_pagamento",
			"l.data_lavagem",
			"l.created_at",
			"f.nome",
		).
		From(lavagensTable).
		Join("funcionarios f ON l.funcionario_id = f.id").
		OrderBy("l.data_lavagem DESC", "l.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.Eq{"f.user_id": *userID},
			squirrel.Eq{"f.user_id": nil},
		})
	}

	lavagensSQL, lavagensArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(lavagensSQL, lavagensArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lavagens: %w", err)
	}
	defer rows.Close()

	var lavagens []*domain.LavagemComFuncionario
	for rows.Next() {
		var lavagem domain.LavagemComFuncionario
		if err := rows.Scan(
			&lavagem.ID,
			&lavagem.FuncionarioID,
			&lavagem.Descricao,
			&lavagem.Preco,
			&lavagem.TemFoto,
			&lavagem.FormaPagamento,
			&lavagem.DataLavagem,
			&lavagem.CreatedAt,
			&lavagem.FuncionarioNome,
		); err != nil {
			return nil, err
		}
		lavagens = append(lavagens, &lavagem)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lavagens, nil
}
