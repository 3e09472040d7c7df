package migration

// A lista reproduz a evolução real do schema: a base veio primeiro, depois a
// porcentagem de comissão por funcionário, a forma de pagamento das lavagens,
// o isolamento por usuário (multi-tenant), os dados do negócio no cadastro e
// por fim o código público e os snapshots semanais.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "schema_base",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS usuarios (
				id TEXT PRIMARY KEY,
				nome TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				senha_hash TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS funcionarios (
				id TEXT PRIMARY KEY,
				nome TEXT NOT NULL,
				email TEXT,
				telefone TEXT,
				ativo BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS lavagens (
				id TEXT PRIMARY KEY,
				funcionario_id TEXT NOT NULL,
				descricao TEXT NOT NULL,
				preco DOUBLE PRECISION NOT NULL,
				foto_url TEXT,
				data_lavagem TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS despesas (
				id TEXT PRIMARY KEY,
				descricao TEXT NOT NULL,
				valor DOUBLE PRECISION NOT NULL,
				foto_url TEXT,
				data_despesa TEXT NOT NULL,
				observacoes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_lavagens_data ON lavagens (data_lavagem)`,
			`CREATE INDEX IF NOT EXISTS idx_lavagens_funcionario ON lavagens (funcionario_id)`,
			`CREATE INDEX IF NOT EXISTS idx_despesas_data ON despesas (data_despesa)`,
		},
	},
	{
		Version: 2,
		Name:    "porcentagem_comissao",
		Statements: []string{
			`ALTER TABLE funcionarios ADD COLUMN IF NOT EXISTS porcentagem_comissao DOUBLE PRECISION`,
		},
	},
	{
		Version: 3,
		Name:    "forma_pagamento",
		Statements: []string{
			`ALTER TABLE lavagens ADD COLUMN IF NOT EXISTS forma_pagamento TEXT`,
		},
	},
	{
		Version: 4,
		Name:    "tenant_user_id",
		Statements: []string{
			`ALTER TABLE funcionarios ADD COLUMN IF NOT EXISTS user_id TEXT`,
			`CREATE INDEX IF NOT EXISTS idx_funcionarios_user ON funcionarios (user_id)`,
		},
	},
	{
		Version: 5,
		Name:    "slug_nome_negocio_usuarios",
		Statements: []string{
			`ALTER TABLE usuarios ADD COLUMN IF NOT EXISTS slug TEXT`,
			`ALTER TABLE usuarios ADD COLUMN IF NOT EXISTS nome_negocio TEXT`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_slug ON usuarios (slug)`,
		},
	},
	{
		Version: 6,
		Name:    "codigo_publico_funcionarios",
		Statements: []string{
			`ALTER TABLE funcionarios ADD COLUMN IF NOT EXISTS codigo_publico TEXT`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_funcionarios_codigo_publico ON funcionarios (codigo_publico)`,
		},
	},
	{
		Version: 7,
		Name:    "resumo_snapshots",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS resumo_snapshots (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				semana_inicio TEXT NOT NULL,
				semana_fim TEXT NOT NULL,
				resumo JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (user_id, semana_inicio)
			)`,
		},
	},
}
