package domain

import "context"

// Produto é um item do cardápio de uma empresa específica.
type Produto struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Categoria string  `json:"categoria,omitempty"` // Ex: Lanches, Bebidas
	EmpresaID int64   `json:"empresaId"`
}

// ProdutoRequest é o payload de criação de produto.
type ProdutoRequest struct {
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Categoria string  `json:"categoria,omitempty"`
}

// ProdutoRepository define o contrato de persistência para a entidade Produto.
type ProdutoRepository interface {
	Save(ctx context.Context, produto Produto) (Produto, error)
	FindByID(ctx context.Context, id int64) (Produto, error)
	FindByEmpresa(ctx context.Context, empresaID int64) ([]Produto, error)
	Delete(ctx context.Context, id int64) error
}
