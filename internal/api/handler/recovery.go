package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-backoffice-api/internal/usecases/recovering"
	"github.com/vfg2006/retail-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/retail-backoffice-api/pkg/log"
)

type RecoverPasswordRequest struct {
	Email string `json:"email"`
}

// RecoverPassword dispara o fluxo de recuperação de senha. A resposta é a
// mesma exista ou não uma conta com o email informado, para não permitir
// enumerar contas cadastradas.
func RecoverPassword(service recovering.Recoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req RecoverPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		_, err := service.Recover(req.Email)
		if err != nil {
			switch {
			case errors.Is(err, recovering.ErrEmailRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O email é obrigatório", nil)

			case errors.Is(err, recovering.ErrNotificationFailed):
				// A senha já foi trocada; o operador precisa saber que o
				// email não saiu.
				logger.WithError(err).Error("recovery: email de recuperação não enviado")
				apiErrors.WriteError(w, apiErrors.ErrNotificationFailure, "Não foi possível enviar o email de recuperação", nil)

			default:
				logger.WithError(err).Error("recovery: erro ao processar recuperação de senha")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar recuperação de senha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Si el correo está registrado, enviaremos una contraseña temporal",
		})
	}
}
