package produto

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

// ProdutoService define o contrato que o Handler espera da camada de Serviço.
type ProdutoService interface {
	Listar(ctx context.Context, identidade domain.Identidade) ([]domain.Produto, error)
	Criar(ctx context.Context, identidade domain.Identidade, req domain.ProdutoRequest) (domain.Produto, error)
	Excluir(ctx context.Context, identidade domain.Identidade, id int64) error
}

// Handler agrupa os métodos de Handler de produtos.
type Handler struct {
	Service ProdutoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProdutoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func identidade(r *http.Request) (domain.Identidade, error) {
	id, ok := middleware.GetIdentidadeFromContext(r.Context())
	if !ok {
		return domain.Identidade{}, apperror.NewUnauthorizedError("Autorização necessária.")
	}
	return id, nil
}

// ListarHandler lida com a requisição GET /empresa/produtos.
// @Summary Lista o cardápio da empresa chamadora
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Produto
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Chamador não é empresa"
// @Router /empresa/produtos [get]
func (h *Handler) ListarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	produtos, err := h.Service.Listar(r.Context(), ident)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, produtos, nil, http.StatusOK)
}

// CriarHandler lida com a requisição POST /empresa/produtos.
// @Summary Adiciona um produto ao cardápio da empresa chamadora
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param produto body domain.ProdutoRequest true "Dados do produto"
// @Success 201 {object} domain.Produto
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Chamador não é empresa"
// @Router /empresa/produtos [post]
func (h *Handler) CriarHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	var req domain.ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Payload JSON inválido."), 0)
		return
	}

	produto, err := h.Service.Criar(r.Context(), ident, req)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, produto, nil, http.StatusCreated)
}

// ExcluirHandler lida com a requisição DELETE /empresa/produtos/{id}.
// @Summary Remove um produto do cardápio
// @Tags produtos
// @Security BearerAuth
// @Param id path int true "ID do produto"
// @Success 204 "Produto removido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Produto de outra empresa"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /empresa/produtos/{id} [delete]
func (h *Handler) ExcluirHandler(w http.ResponseWriter, r *http.Request) {
	ident, err := identidade(r)
	if err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Write(w, r, h.Logger, nil, apperror.NewValidationError("Identificador de produto inválido."), 0)
		return
	}

	if err := h.Service.Excluir(r.Context(), ident, id); err != nil {
		response.Write(w, r, h.Logger, nil, err, 0)
		return
	}

	response.Write(w, r, h.Logger, nil, nil, http.StatusNoContent)
}
