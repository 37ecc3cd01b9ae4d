package produtoservice

import (
	"context"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// ProdutoService implementa o gerenciamento do cardápio das empresas.
// Todas as operações são restritas a contas EMPRESA e escopadas ao
// cardápio da própria empresa chamadora.
type ProdutoService struct {
	ProdutoRepo domain.ProdutoRepository
	UsuarioRepo domain.UsuarioRepository
	Logger      logger.Logger
}

// NewService cria uma nova instância do ProdutoService, injetando as dependências.
func NewService(produtoRepo domain.ProdutoRepository, usuarioRepo domain.UsuarioRepository, log logger.Logger) *ProdutoService {
	return &ProdutoService{
		ProdutoRepo: produtoRepo,
		UsuarioRepo: usuarioRepo,
		Logger:      log,
	}
}

// resolverEmpresa resolve a conta viva do chamador e exige o papel EMPRESA.
func (s *ProdutoService) resolverEmpresa(ctx context.Context, identidade domain.Identidade) (domain.Usuario, error) {
	usuario, err := s.UsuarioRepo.FindByEmail(ctx, identidade.Email)
	if err != nil {
		if _, ok := err.(*apperror.NotFoundError); ok {
			return domain.Usuario{}, apperror.NewUnauthorizedError("Conta do chamador não encontrada.")
		}
		return domain.Usuario{}, err
	}
	if usuario.Tipo != domain.TipoEmpresa {
		return domain.Usuario{}, apperror.NewForbiddenError("Apenas empresas gerenciam produtos.")
	}
	return usuario, nil
}

// Listar devolve o cardápio da empresa chamadora.
func (s *ProdutoService) Listar(ctx context.Context, identidade domain.Identidade) ([]domain.Produto, error) {
	empresa, err := s.resolverEmpresa(ctx, identidade)
	if err != nil {
		return nil, err
	}
	return s.ProdutoRepo.FindByEmpresa(ctx, empresa.ID)
}

// Criar adiciona um produto ao cardápio da empresa chamadora.
func (s *ProdutoService) Criar(ctx context.Context, identidade domain.Identidade, req domain.ProdutoRequest) (domain.Produto, error) {
	empresa, err := s.resolverEmpresa(ctx, identidade)
	if err != nil {
		return domain.Produto{}, err
	}

	details := map[string]string{}
	if req.Nome == "" {
		details["nome"] = "O nome não pode ser vazio"
	}
	if req.Preco < 0 {
		details["preco"] = "O preço não pode ser negativo"
	}
	if len(details) > 0 {
		return domain.Produto{}, apperror.NewFieldValidationError(details)
	}

	produto := domain.Produto{
		Nome:      req.Nome,
		Preco:     req.Preco,
		Categoria: req.Categoria,
		EmpresaID: empresa.ID,
	}

	criado, err := s.ProdutoRepo.Save(ctx, produto)
	if err != nil {
		return domain.Produto{}, err
	}

	s.Logger.Info("Produto adicionado ao cardápio.", map[string]interface{}{
		"produto_id": criado.ID,
		"empresa_id": empresa.ID,
	})
	return criado, nil
}

// Excluir remove um produto do cardápio.
// O produto precisa pertencer à empresa chamadora.
func (s *ProdutoService) Excluir(ctx context.Context, identidade domain.Identidade, id int64) error {
	empresa, err := s.resolverEmpresa(ctx, identidade)
	if err != nil {
		return err
	}

	produto, err := s.ProdutoRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if produto.EmpresaID != empresa.ID {
		return apperror.NewForbiddenError("O produto pertence a outra empresa.")
	}

	return s.ProdutoRepo.Delete(ctx, produto.ID)
}
