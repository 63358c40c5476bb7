package docstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/infrastructure/database/postgres"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	documentsTable = "documents"

	// Sem notificações por esse tempo, o listener é pingado para detectar conexão caída.
	listenerIdlePing = 90 * time.Second
)

// ChangeFeed é a origem das notificações do LISTEN/NOTIFY.
type ChangeFeed interface {
	Notifications() <-chan *pq.Notification
	Ping() error
}

// PostgresStore guarda cada documento como uma linha JSONB da tabela documents.
// As alterações chegam pelo trigger de NOTIFY criado em EnsureSchema.
type PostgresStore struct {
	db    postgres.Queryer
	feed  ChangeFeed
	hub   *watchHub
	newID func() (string, error)
}

func NewPostgresStore(db postgres.Queryer, feed ChangeFeed) *PostgresStore {
	return &PostgresStore{
		db:    db,
		feed:  feed,
		hub:   newWatchHub(),
		newID: utils.GenerateDocumentID,
	}
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}

	query, args, err := listQuery(collection).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar a coleção %s", collection)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, errors.Wrap(err, "erro ao ler documento")
		}

		data, err := decodeData(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "documento %s/%s com JSON inválido", collection, id)
		}

		docs = append(docs, domain.Document{ID: id, Data: data})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer documentos")
	}

	return docs, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}

	query, args, err := getQuery(collection, id).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar documento %s/%s", collection, id)
	}

	data, err := decodeData(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "documento %s/%s com JSON inválido", collection, id)
	}

	return &domain.Document{ID: id, Data: data}, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar id do documento")
	}

	payload, err := encodeData(data)
	if err != nil {
		return "", err
	}

	query, args, err := insertQuery(collection, id, payload).ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", errors.Wrapf(err, "erro ao inserir documento em %s", collection)
	}

	s.hub.notify(collection)
	return id, nil
}

func (s *PostgresStore) Patch(ctx context.Context, collection, id string, data map[string]any) error {
	if err := validCollection(collection); err != nil {
		return err
	}

	payload, err := encodeData(data)
	if err != nil {
		return err
	}

	query, args, err := patchQuery(collection, id, payload).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar documento %s/%s", collection, id)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	s.hub.notify(collection)
	return nil
}

func (s *PostgresStore) MergeSet(ctx context.Context, collection, id string, data map[string]any) error {
	if err := validCollection(collection); err != nil {
		return err
	}

	payload, err := encodeData(data)
	if err != nil {
		return err
	}

	query, args, err := mergeSetQuery(collection, id, payload).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar documento %s/%s", collection, id)
	}

	s.hub.notify(collection)
	return nil
}

func (s *PostgresStore) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}

	return s.hub.add(ctx, collection), nil
}

// Run consome as notificações do banco até ctx terminar. Deve rodar em uma goroutine própria.
func (s *PostgresStore) Run(ctx context.Context) error {
	if s.feed == nil {
		<-ctx.Done()
		return nil
	}

	logrus.Info("Iniciando consumo de alterações de documentos")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Parando consumo de alterações de documentos")
			return nil

		case n, ok := <-s.feed.Notifications():
			if !ok {
				return errors.New("canal de notificações do PostgreSQL fechado")
			}

			if n == nil {
				logrus.Warn("Listener do PostgreSQL reconectado, recarregando todas as coleções")
				s.hub.notifyAll()
				continue
			}

			collection, id := parseNotification(n.Extra)
			logrus.WithFields(logrus.Fields{
				"collection":  collection,
				"document_id": id,
			}).Debug("Alteração de documento recebida")

			s.hub.notify(collection)

		case <-time.After(listenerIdlePing):
			go func() {
				if err := s.feed.Ping(); err != nil {
					logrus.WithError(err).Warn("Falha no ping do listener do PostgreSQL")
				}
			}()
		}
	}
}

func listQuery(collection string) squirrel.SelectBuilder {
	return squirrel.
		Select("id", "data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func getQuery(collection, id string) squirrel.SelectBuilder {
	return squirrel.
		Select("data").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertQuery(collection, id, payload string) squirrel.InsertBuilder {
	return squirrel.
		Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, squirrel.Expr("?::jsonb", payload)).
		PlaceholderFormat(squirrel.Dollar)
}

func patchQuery(collection, id, payload string) squirrel.UpdateBuilder {
	return squirrel.
		Update(documentsTable).
		Set("data", squirrel.Expr("data || ?::jsonb", payload)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func mergeSetQuery(collection, id, payload string) squirrel.InsertBuilder {
	return insertQuery(collection, id, payload).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = " + documentsTable + ".data || EXCLUDED.data, updated_at = NOW()")
}

// parseNotification separa o payload "<coleção>/<id>" enviado pelo trigger.
func parseNotification(payload string) (collection, id string) {
	collection, id, _ = strings.Cut(payload, "/")
	return collection, id
}

func encodeData(data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}

	payload, err := json.MarshalToString(data)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar documento")
	}

	return payload, nil
}

func decodeData(raw []byte) (map[string]any, error) {
	data := map[string]any{}
	if len(raw) == 0 {
		return data, nil
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	return data, nil
}
