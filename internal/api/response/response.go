package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// Write padroniza o tratamento de respostas HTTP dos handlers.
// Sucesso escreve o payload com o status informado; erro é traduzido pela
// taxonomia de internal/errors para {code, category, message[, details]}.
func Write(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		log.Debug("Requisição concluída com sucesso.", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				log.Error("Falha ao codificar JSON de resposta.", jsonErr)
			}
		}
		return
	}

	status, category, message, details := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) não são falhas do servidor
		log.Debug("Requisição rejeitada.", map[string]interface{}{
			"path":     r.URL.Path,
			"status":   status,
			"category": category,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Details:  details,
	})
}
