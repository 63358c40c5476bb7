// Script de importação: carrega um export JSON das coleções ({coleção: {id: {campo: valor}}})
// para a tabela documents. Pode ser executado mais de uma vez; documentos existentes são mesclados.
package main

import (
	"context"
	"os"
	"sort"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/painel-leads-api/infrastructure/database/postgres"
	"github.com/vfg2006/painel-leads-api/infrastructure/docstore"
	"github.com/vfg2006/painel-leads-api/internal/config"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/log"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultConcurrency = 8

type exportedDocument struct {
	Collection string
	ID         string
	Data       map[string]any
}

type importResult struct {
	Imported int64
	Failed   int64
}

func setupLogger(level string) {
	if _, err := log.Configure(level); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
	}
	logrus.Info("Iniciando script de importação...")
}

func readExport(path string) (map[string]map[string]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	var export map[string]map[string]map[string]any
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, errors.Wrap(err, "export em formato inválido")
	}

	return export, nil
}

// flattenExport ordena por coleção e id para que duas execuções gravem na mesma ordem.
// Documentos sem id recebem um novo; coleções que o painel não lê ficam de fora.
func flattenExport(export map[string]map[string]map[string]any) ([]exportedDocument, error) {
	var docs []exportedDocument

	for collection, byID := range export {
		if !domain.IsKnownCollection(collection) {
			logrus.WithField("collection", collection).Warn("Coleção desconhecida ignorada na importação")
			continue
		}

		for id, data := range byID {
			if id == "" {
				newID, err := utils.GenerateDocumentID()
				if err != nil {
					return nil, err
				}
				id = newID
			}
			if data == nil {
				data = map[string]any{}
			}

			docs = append(docs, exportedDocument{Collection: collection, ID: id, Data: data})
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Collection != docs[j].Collection {
			return docs[i].Collection < docs[j].Collection
		}
		return docs[i].ID < docs[j].ID
	})

	return docs, nil
}

// importDocuments grava os documentos em paralelo. Falhas são contadas e registradas sem parar a importação.
func importDocuments(ctx context.Context, store docstore.Store, docs []exportedDocument, concurrency int) importResult {
	var imported, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, doc := range docs {
		g.Go(func() error {
			if err := store.MergeSet(gctx, doc.Collection, doc.ID, doc.Data); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"collection":  doc.Collection,
					"document_id": doc.ID,
				}).Error("Erro ao importar documento")
				failed.Add(1)
				return nil
			}

			if n := imported.Add(1); n%100 == 0 {
				logrus.Infof("Progresso: %d/%d documentos importados", n, len(docs))
			}
			return nil
		})
	}

	_ = g.Wait()

	return importResult{Imported: imported.Load(), Failed: failed.Load()}
}

func main() {
	pflag.String("file", "export.json", "arquivo JSON exportado das coleções")
	pflag.Int("concurrency", defaultConcurrency, "número de gravações simultâneas")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	setupLogger(cfg.App.LogLevel)

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		logrus.Fatal(err)
	}

	if !cfg.Database.IsConfigured() {
		logrus.Fatal("Banco de dados não configurado: defina DATABASE_URL e DATABASE_PASSWORD")
	}

	ctx := context.Background()
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := docstore.EnsureSchema(ctx, conn, cfg.DocStore.NotifyChannel); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de documentos")
	}

	export, err := readExport(viper.GetString("file"))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar export")
	}

	docs, err := flattenExport(export)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar ids dos documentos")
	}

	logrus.Infof("Importando %d documentos de %d coleções...", len(docs), len(export))

	// Sem listener: a importação não precisa acompanhar alterações
	store := docstore.NewPostgresStore(conn, nil)
	result := importDocuments(ctx, store, docs, viper.GetInt("concurrency"))

	logrus.WithFields(logrus.Fields{
		"imported": result.Imported,
		"failed":   result.Failed,
		"elapsed":  time.Since(startTime).String(),
	}).Info("Importação concluída")

	if result.Failed > 0 {
		os.Exit(1)
	}
}
