package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/domain"
)

const usuariosTable = "usuarios"

type UsuarioRepository interface {
	CreateUsuario(usuario *domain.Usuario) (*domain.Usuario, error)
	GetUsuarioByEmail(email string) (*domain.Usuario, error)
	GetUsuarioByID(usuarioID string) (*domain.Usuario, error)
	GetUsuarioBySlug(slug string) (*domain.Usuario, error)
	ListSlugs() ([]string, error)
	ListUsuarios() ([]*domain.Usuario, error)
	UpdateNomeNegocio(usuarioID, nomeNegocio string) error
}

type usuarioRepository struct {
	conn *postgres.Connection
}

func NewUsuarioRepository(conn *postgres.Connection) UsuarioRepository {
	return &usuarioRepository{
		conn: conn,
	}
}

func (r *usuarioRepository) CreateUsuario(usuario *domain.Usuario) (*domain.Usuario, error) {
	queryBuilder := squirrel.
		Insert(usuariosTable).
		Columns("id", "nome", "email", "senha_hash", "slug", "nome_negocio").
		Values(usuario.ID, usuario.Nome, usuario.Email, usuario.SenhaHash, usuario.Slug, usuario.NomeNegocio).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	usuarioSQL, usuarioArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usuarioSQL, usuarioArgs...).Scan(&usuario.CreatedAt)
	if err != nil {
		return nil, err
	}

	return usuario, nil
}

func (r *usuarioRepository) GetUsuarioByEmail(email string) (*domain.Usuario, error) {
	return r.getUsuario(squirrel.Eq{"email": email})
}

func (r *usuarioRepository) GetUsuarioByID(usuarioID string) (*domain.Usuario, error) {
	return r.getUsuario(squirrel.Eq{"id": usuarioID})
}

func (r *usuarioRepository) GetUsuarioBySlug(slug string) (*domain.Usuario, error) {
	return r.getUsuario(squirrel.Eq{"slug": slug})
}

func (r *usuarioRepository) getUsuario(whereClause map[string]interface{}) (*domain.Usuario, error) {
	usuarioSQL, usuarioArgs, err := squirrel.
		Select("id", "nome", "email", "senha_hash", "COALESCE(slug, '')", "COALESCE(nome_negocio, '')", "created_at").
		From(usuariosTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var usuario domain.Usuario
	err = r.conn.QueryRow(usuarioSQL, usuarioArgs...).Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.Email,
		&usuario.SenhaHash,
		&usuario.Slug,
		&usuario.NomeNegocio,
		&usuario.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &usuario, nil
}

// ListSlugs retorna todos os slugs já cadastrados, usados para garantir
// unicidade ao registrar um novo negócio.
func (r *usuarioRepository) ListSlugs() ([]string, error) {
	rows, err := r.conn.Query("SELECT slug FROM usuarios WHERE slug IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		slugs = append(slugs, slug)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return slugs, nil
}

func (r *usuarioRepository) ListUsuarios() ([]*domain.Usuario, error) {
	queryBuilder := squirrel.
		Select("id", "nome", "email", "senha_hash", "COALESCE(slug, '')", "COALESCE(nome_negocio, '')", "created_at").
		From(usuariosTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	usuariosSQL, usuariosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usuariosSQL, usuariosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []*domain.Usuario
	for rows.Next() {
		var usuario domain.Usuario
		if err := rows.Scan(
			&usuario.ID,
			&usuario.Nome,
			&usuario.Email,
			&usuario.SenhaHash,
			&usuario.Slug,
			&usuario.NomeNegocio,
			&usuario.CreatedAt,
		); err != nil {
			return nil, err
		}
		usuarios = append(usuarios, &usuario)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usuarios, nil
}

func (r *usuarioRepository) UpdateNomeNegocio(usuarioID, nomeNegocio string) error {
	updateSQL, updateArgs, err := squirrel.
		Update(usuariosTable).
		Set("nome_negocio", nomeNegocio).
		Where(squirrel.Eq{"id": usuarioID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.Exec(updateSQL, updateArgs...); err != nil {
		return fmt.Errorf("erro ao atualizar nome do negócio: %w", err)
	}

	return nil
}
