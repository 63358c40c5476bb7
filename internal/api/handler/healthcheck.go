package handler

import (
	"net/http"
	"time"
)

// StoreStatus informa se o banco de documentos está configurado.
type StoreStatus interface {
	Available() bool
}

func HealthcheckHandler(store StoreStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"time":            time.Now().Format(time.RFC3339),
			"store_available": store.Available(),
		})
	})
}
