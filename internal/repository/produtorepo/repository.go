package produtorepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/cache"
	"godelivery/internal/pkg/logger"
)

// Chave de cache do cardápio de uma empresa.
const produtosCacheKey = "produtos:empresa:%d"

// ProdutoRepository implementa a interface domain.ProdutoRepository.
// A listagem por empresa usa a estratégia Cache-Aside: leitura tenta o Redis
// antes do DB; escrita e exclusão invalidam a chave da empresa.
type ProdutoRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProdutoRepository cria uma nova instância do Repositório, injetando DB e Cache.
func NewProdutoRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *ProdutoRepository {
	return &ProdutoRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Save insere um novo produto e invalida o cache do cardápio da empresa.
func (r *ProdutoRepository) Save(ctx context.Context, produto domain.Produto) (domain.Produto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO produtos (nome, preco, categoria, empresa_id)
	                   VALUES ($1, $2, NULLIF($3, ''), $4)
	                   RETURNING id`

	err := r.DB.QueryRowContext(
		ctxTimeout,
		insertSQL,
		produto.Nome,
		produto.Preco,
		produto.Categoria,
		produto.EmpresaID,
	).Scan(&produto.ID)

	if err != nil {
		r.logger.Error("Falha ao inserir produto no DB.", err)
		return domain.Produto{}, apperror.NewDBError("falha ao inserir produto", err)
	}

	r.invalidar(ctxTimeout, produto.EmpresaID)

	return produto, nil
}

// FindByID busca um produto pelo identificador.
func (r *ProdutoRepository) FindByID(ctx context.Context, id int64) (domain.Produto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, nome, preco, COALESCE(categoria, ''), empresa_id
	               FROM produtos WHERE id = $1`

	var produto domain.Produto
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&produto.ID,
		&produto.Nome,
		&produto.Preco,
		&produto.Categoria,
		&produto.EmpresaID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Produto{}, apperror.NewNotFoundError(fmt.Sprintf("Produto %d não encontrado", id))
		}
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Produto{}, apperror.NewDBError("falha ao buscar produto", err)
	}

	return produto, nil
}

// FindByEmpresa lista o cardápio de uma empresa, usando Cache-Aside.
func (r *ProdutoRepository) FindByEmpresa(ctx context.Context, empresaID int64) ([]domain.Produto, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(produtosCacheKey, empresaID)

	// 1. Tentar obter do Cache (Redis)
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		var produtos []domain.Produto
		if json.Unmarshal([]byte(cachedData), &produtos) == nil {
			return produtos, nil
		}
		// Desserialização falhou: segue para o DB
	} else if err != cache.ErrCacheMiss {
		// Erro real de cache (conexão perdida) não bloqueia a leitura
		r.logger.Warn("Falha ao ler cardápio do cache.", map[string]interface{}{"empresa_id": empresaID})
	}

	// 2. Busca no Banco de Dados (PostgreSQL)
	const query = `SELECT id, nome, preco, COALESCE(categoria, ''), empresa_id
	               FROM produtos WHERE empresa_id = $1 ORDER BY nome`

	rows, err := r.DB.QueryContext(ctxTimeout, query, empresaID)
	if err != nil {
		r.logger.Error("Falha ao listar produtos no DB.", err)
		return nil, apperror.NewDBError("falha ao listar produtos", err)
	}
	defer rows.Close()

	produtos := []domain.Produto{}
	for rows.Next() {
		var produto domain.Produto
		if err := rows.Scan(&produto.ID, &produto.Nome, &produto.Preco, &produto.Categoria, &produto.EmpresaID); err != nil {
			return nil, apperror.NewDBError("falha ao mapear produto", err)
		}
		produtos = append(produtos, produto)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar produtos", err)
	}

	// 3. Popula o cache para futuras requisições
	if produtosJSON, marshalErr := json.Marshal(produtos); marshalErr == nil {
		r.Cache.Set(ctxTimeout, key, produtosJSON, r.CacheTTL)
	}

	return produtos, nil
}

// Delete remove um produto e invalida o cache do cardápio da empresa.
func (r *ProdutoRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var empresaID int64
	err := r.DB.QueryRowContext(ctxTimeout,
		`DELETE FROM produtos WHERE id = $1 RETURNING empresa_id`, id).Scan(&empresaID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFoundError(fmt.Sprintf("Produto %d não encontrado", id))
		}
		r.logger.Error("Falha ao excluir produto no DB.", err)
		return apperror.NewDBError("falha ao excluir produto", err)
	}

	r.invalidar(ctxTimeout, empresaID)

	return nil
}

// invalidar descarta o cardápio em cache da empresa após uma escrita.
func (r *ProdutoRepository) invalidar(ctx context.Context, empresaID int64) {
	key := fmt.Sprintf(produtosCacheKey, empresaID)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache de produtos.", map[string]interface{}{"empresa_id": empresaID})
	}
}
