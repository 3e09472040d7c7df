package migration

import (
	"context"
	"database/sql"

	"github.com/lavajato/lava-jato-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

// Migration é um passo de evolução do schema. A lista é ordenada por versão
// e aplicada uma única vez na inicialização; o histórico do que já rodou
// fica na tabela schema_migrations.
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

type Migrator struct {
	conn *postgres.Connection
}

func NewMigrator(conn *postgres.Connection) *Migrator {
	return &Migrator{conn: conn}
}

// Run aplica as migrations pendentes em ordem de versão, cada uma dentro da
// própria transação.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.ensureVersionTable(); err != nil {
		return err
	}

	current, err := m.currentVersion()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if mig.Version <= current {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"version": mig.Version,
			"name":    mig.Name,
		}).Info("Aplicando migration")

		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range mig.Statements {
				if _, err := tx.Exec(stmt); err != nil {
					return err
				}
			}
			_, err := tx.Exec(
				"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)",
				mig.Version, mig.Name,
			)
			return err
		})
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao aplicar migration %d (%s)", mig.Version, mig.Name)
			return err
		}
	}

	return nil
}

func (m *Migrator) ensureVersionTable() error {
	_, err := m.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (m *Migrator) currentVersion() (int, error) {
	var version sql.NullInt64
	err := m.conn.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
