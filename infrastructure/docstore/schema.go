package docstore

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/painel-leads-api/infrastructure/database/postgres"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	data JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
)`

const createNotifyFunction = `
CREATE OR REPLACE FUNCTION notify_document_change() RETURNS trigger AS $$
DECLARE
	changed documents%%ROWTYPE;
BEGIN
	IF TG_OP = 'DELETE' THEN
		changed := OLD;
	ELSE
		changed := NEW;
	END IF;
	PERFORM pg_notify(%s, changed.collection || '/' || changed.id);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`

const dropNotifyTrigger = `DROP TRIGGER IF EXISTS documents_notify ON documents`

const createNotifyTrigger = `
CREATE TRIGGER documents_notify
AFTER INSERT OR UPDATE OR DELETE ON documents
FOR EACH ROW EXECUTE FUNCTION notify_document_change()`

// EnsureSchema cria a tabela de documentos e o trigger que publica "<coleção>/<id>" no canal informado.
func EnsureSchema(ctx context.Context, db postgres.Queryer, channel string) error {
	statements := schemaStatements(channel)

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return errors.Wrap(err, "erro ao criar esquema de documentos")
		}
	}

	return nil
}

func schemaStatements(channel string) []string {
	return []string{
		createDocumentsTable,
		fmt.Sprintf(createNotifyFunction, pq.QuoteLiteral(channel)),
		dropNotifyTrigger,
		createNotifyTrigger,
	}
}
