package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/infrastructure/docstore"
	"github.com/vfg2006/painel-leads-api/internal/subscribing"
	"github.com/vfg2006/painel-leads-api/internal/translator"
	"github.com/vfg2006/painel-leads-api/internal/usecases/dashboard"
	"github.com/vfg2006/painel-leads-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// errorCode traduz os erros do painel e do banco para os códigos da API.
func errorCode(err error) string {
	var schemaErr *translator.SchemaMismatchError

	switch {
	case errors.Is(err, subscribing.ErrStoreUnavailable):
		return apiErrors.ErrStoreUnavailable
	case errors.Is(err, dashboard.ErrLeadNotFound):
		return apiErrors.ErrLeadNotFound
	case errors.Is(err, dashboard.ErrUserNotFound):
		return apiErrors.ErrUserNotFound
	case errors.Is(err, docstore.ErrDocumentNotFound):
		return apiErrors.ErrDocumentNotFound
	case errors.Is(err, translator.ErrRecordMismatch),
		errors.Is(err, translator.ErrNilRecord),
		errors.As(err, &schemaErr):
		return apiErrors.ErrRecordMismatch
	case errors.Is(err, dashboard.ErrLeadRequired),
		errors.Is(err, dashboard.ErrLeadIDRequired),
		errors.Is(err, dashboard.ErrUserRequired),
		errors.Is(err, dashboard.ErrUserIDRequired):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, dashboard.ErrInvalidTotal):
		return apiErrors.ErrInvalidRequest
	default:
		return apiErrors.ErrDatabaseOperation
	}
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	apiErrors.WriteError(w, errorCode(err), message, nil)
}
