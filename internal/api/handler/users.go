package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/apiErrors"
)

func ListUsers(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, board.Users())
	}
}

// CreateUser grava um usuário novo em usuarios
func CreateUser(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if user.Name == "" || user.Login == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e usuário são obrigatórios", nil)
			return
		}

		id, err := board.AddUser(r.Context(), &user)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar usuário")
			writeServiceError(w, err, "Erro ao salvar dados.")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func UpdateUser(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		user.ID = id

		if err := board.UpdateUser(r.Context(), &user); err != nil {
			logrus.WithError(err).WithField("document_id", id).Error("Erro ao atualizar usuário")
			writeServiceError(w, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// GetMe devolve o usuário atual do painel
func GetMe(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := board.CurrentUser()
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Nenhum usuário cadastrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

type selectUserRequest struct {
	ID string `json:"id"`
}

// SelectMe troca o usuário atual do painel
func SelectMe(board Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.ID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		user, err := board.SelectUser(req.ID)
		if err != nil {
			writeServiceError(w, err, "Usuário não encontrado")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
