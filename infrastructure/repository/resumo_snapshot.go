package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/lavajato/lava-jato-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const resumoSnapshotsTable = "resumo_snapshots"

type ResumoSnapshotRepository interface {
	UpsertResumoSnapshot(snapshot *domain.ResumoSnapshot) error
	GetResumoSnapshot(userID, semanaInicio string) (*domain.ResumoSnapshot, error)
}

type resumoSnapshotRepository struct {
	conn *postgres.Connection
}

func NewResumoSnapshotRepository(conn *postgres.Connection) ResumoSnapshotRepository {
	return &resumoSnapshotRepository{
		conn: conn,
	}
}

// UpsertResumoSnapshot grava o consolidado da semana do tenant. Cada par
// (user_id, semana_inicio) tem no máximo um snapshot; execuções repetidas do
// sync apenas atualizam o resumo.
func (r *resumoSnapshotRepository) UpsertResumoSnapshot(snapshot *domain.ResumoSnapshot) error {
	resumoJSON, err := json.Marshal(snapshot.Resumo)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo: %w", err)
	}

	queryBuilder := squirrel.
		Insert(resumoSnapshotsTable).
		Columns("id", "user_id", "semana_inicio", "semana_fim", "resumo").
		Values(snapshot.ID, snapshot.UserID, snapshot.SemanaInicio, snapshot.SemanaFim, resumoJSON).
		Suffix(`ON CONFLICT (user_id, semana_inicio) DO UPDATE
			SET semana_fim = EXCLUDED.semana_fim,
				resumo = EXCLUDED.resumo,
				updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(snapshotSQL, snapshotArgs...); err != nil {
		return fmt.Errorf("erro ao gravar snapshot do resumo: %w", err)
	}

	return nil
}

func (r *resumoSnapshotRepository) GetResumoSnapshot(userID, semanaInicio string) (*domain.ResumoSnapshot, error) {
	snapshotSQL, snapshotArgs, err := squirrel.
		Select("id", "user_id", "semana_inicio", "semana_fim", "resumo", "created_at", "updated_at").
		From(resumoSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"semana_inicio": semanaInicio}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		snapshot   domain.ResumoSnapshot
		resumoJSON []byte
	)
	err = r.conn.QueryRow(snapshotSQL, snapshotArgs...).Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.SemanaInicio,
		&snapshot.SemanaFim,
		&resumoJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resumoJSON, &snapshot.Resumo); err != nil {
		return nil, fmt.Errorf("erro ao desserializar resumo: %w", err)
	}

	return &snapshot, nil
}
