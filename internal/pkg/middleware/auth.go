package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
// Um tipo próprio garante que as chaves não colidam com strings de outros pacotes.
type ContextKey int

const (
	identidadeKey ContextKey = iota
	requestIDKey
)

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria o middleware que valida o JWT do header Authorization
// e anexa a Identidade do chamador ao contexto da requisição.
//
// A identidade carrega apenas {id, email, tipo} extraídos das claims. Ela diz
// quem o token afirma ser — a conta viva é sempre resolvida pelo serviço, a
// cada operação, para que um token de conta excluída não conceda acesso.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extrair o Token do Header Authorization: Bearer <token>
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, "Token de autorização ausente ou malformado.")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			// 2. Validar o Token (assinatura, emissor, expiração)
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				writeAuthError(w, "Token inválido ou expirado.")
				return
			}

			// 3. Anexar a Identidade ao Contexto
			identidade := domain.Identidade{
				ID:    claims.UserID,
				Email: claims.Subject,
				Tipo:  claims.Tipo,
			}

			ctx := context.WithValue(r.Context(), identidadeKey, identidade)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentidadeFromContext extrai a identidade do chamador no handler.
func GetIdentidadeFromContext(ctx context.Context) (domain.Identidade, bool) {
	identidade, ok := ctx.Value(identidadeKey).(domain.Identidade)
	return identidade, ok
}

// writeAuthError escreve a resposta 401 no mesmo formato de erro da API.
func writeAuthError(w http.ResponseWriter, msg string) {
	appErr := apperror.NewUnauthorizedError(msg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     http.StatusUnauthorized,
		Category: appErr.Category(),
		Message:  appErr.Error(),
	})
}
