package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"godelivery/internal/api/response"
	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// AuthService define o contrato que o Handler espera da camada de Serviço.
type AuthService interface {
	Registrar(ctx context.Context, req domain.RegisterRequest) error
	Login(ctx context.Context, email, senha string) (domain.LoginResponse, error)
}

// LoginRequest representa o payload de entrada do login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Handler agrupa os métodos de Handler de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterHandler lida com a requisição POST /auth/register.
// @Summary Registra uma nova conta (cliente ou empresa)
// @Description Cria uma conta nova. O tipo é resolvido no backend: CNPJ preenchido define EMPRESA, caso contrário CLIENTE.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.RegisterRequest true "Dados de cadastro"
// @Success 200 "Conta criada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido (mensagens por campo em details)"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	if err := h.Service.Registrar(ctx, req); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	// Corpo vazio no sucesso, como os clientes existentes esperam
	response.Write(w, r, h.Logger, nil, nil, http.StatusOK)
}

// LoginHandler lida com a requisição POST /auth/login.
// @Summary Autentica uma conta e retorna um JWT
// @Description Recebe email/senha, valida as credenciais e emite um token com 24h de vida (configurável).
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credenciais (email e senha)"
// @Success 200 {object} domain.LoginResponse "Token, nome e tipo da conta"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	resp, err := h.Service.Login(ctx, req.Email, req.Senha)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, resp, nil, http.StatusOK)
}
