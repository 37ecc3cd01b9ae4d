package pedido

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"godelivery/internal/api/response"
	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
	"godelivery/internal/pkg/middleware"
)

// PedidoService define o contrato que o Handler espera da camada de Serviço.
// Todas as operações recebem a identidade do chamador explicitamente.
type PedidoService interface {
	Criar(ctx context.Context, identidade domain.Identidade, req domain.PedidoRequest) (domain.PedidoResponse, error)
	Listar(ctx context.Context, identidade domain.Identidade) ([]domain.PedidoResponse, error)
	AvancarStatus(ctx context.Context, identidade domain.Identidade, id int64) (domain.PedidoResponse, error)
	Atualizar(ctx context.Context, identidade domain.Identidade, id int64, req domain.PedidoRequest) (domain.PedidoResponse, error)
	Excluir(ctx context.Context, identidade domain.Identidade, id int64) error
}

// Handler agrupa os métodos de Handler de pedidos.
type Handler struct {
	Service PedidoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PedidoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// identidade extrai a identidade anexada pelo middleware de autenticação.
func identidade(r *http.Request) (domain.Identidade, error) {
	id, ok := middleware.GetIdentidadeFromContext(r.Context())
	if !ok {
		return domain.Identidade{}, apperror.NewUnauthorizedError("Autorização necessária.")
	}
	return id, nil
}

// pedidoID extrai e converte o parâmetro {id} da URL.
func pedidoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("Identificador de pedido inválido.")
	}
	return id, nil
}

// CriarHandler lida com a requisição POST /pedidos.
// @Summary Cria um pedido
// @Description Empresa cria pedido de balcão (sem cliente); cliente cria pedido informando o restaurante (empresaId).
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pedido body domain.PedidoRequest true "Dados do pedido"
// @Success 201 {object} domain.PedidoResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou restaurante não informado"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 404 {object} domain.ErrorResponse "Restaurante não encontrado"
// @Router /pedidos [post]
func (h *Handler) CriarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	var req domain.PedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	resp, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, resp, nil, http.StatusCreated)
}

// ListarHandler lida com a requisição GET /pedidos.
// @Summary Lista os pedidos visíveis para o chamador
// @Description Empresa vê os pedidos que possui; cliente vê os pedidos que fez.
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PedidoResponse
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Router /pedidos [get]
func (h *Handler) ListarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	resp, err := h.Service.Listar(r.Context(), ident)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, resp, nil, http.StatusOK)
}

// AvancarHandler lida com a requisição PUT /pedidos/{id}/avancar.
// @Summary Avança o status do pedido um passo
// @Description RECEBIDO → EM_PREPARO → A_CAMINHO → ENTREGUE. Pedido ENTREGUE permanece ENTREGUE (no-op). Apenas a empresa dona.
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pedido"
// @Success 200 {object} domain.PedidoResponse
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Chamador não é a empresa dona"
// @Failure 404 {object} domain.ErrorResponse "Pedido não encontrado"
// @Router /pedidos/{id}/avancar [put]
func (h *Handler) AvancarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	id, err := pedidoID(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	resp, err := h.Service.AvancarStatus(r.Context(), ident, id)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, resp, nil, http.StatusOK)
}

// AtualizarHandler lida com a requisição PUT /pedidos/{id}.
// @Summary Atualiza a descrição do pedido
// @Description Somente a empresa dona ou o cliente dono do pedido.
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pedido"
// @Param pedido body domain.PedidoRequest true "Dados do pedido"
// @Success 200 {object} domain.PedidoResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Sem permissão"
// @Failure 404 {object} domain.ErrorResponse "Pedido não encontrado"
// @Router /pedidos/{id} [put]
func (h *Handler) AtualizarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	id, err := pedidoID(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	var req domain.PedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	resp, err := h.Service.Atualizar(r.Context(), ident, id, req)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, resp, nil, http.StatusOK)
}

// ExcluirHandler lida com a requisição DELETE /pedidos/{id}.
// @Summary Exclui um pedido
// @Description Somente a empresa dona ou o cliente dono do pedido.
// @Tags pedidos
// @Security BearerAuth
// @Param id path int true "ID do pedido"
// @Success 204 "Pedido excluído"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Sem permissão"
// @Failure 404 {object} domain.ErrorResponse "Pedido não encontrado"
// @Router /pedidos/{id} [delete]
func (h *Handler) ExcluirHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	id, err := pedidoID(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	if err := h.Service.Excluir(r.Context(), ident, id); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, nil, nil, http.StatusNoContent)
}
