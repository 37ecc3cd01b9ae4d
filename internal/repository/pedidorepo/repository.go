package pedidorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// PedidoRepository implementa a interface domain.PedidoRepository.
type PedidoRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewPedidoRepository cria uma nova instância do PedidoRepository, injetando o DB.
func NewPedidoRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *PedidoRepository {
	return &PedidoRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const pedidoColumns = `id, descricao, endereco, valor_total, status, criado_em, empresa_id, cliente_id`

// Save insere um novo pedido no banco de dados.
func (r *PedidoRepository) Save(ctx context.Context, pedido domain.Pedido) (domain.Pedido, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	pedido.CriadoEm = time.Now()

	const insertSQL = `INSERT INTO pedidos_delivery (descricao, endereco, valor_total, status, criado_em, empresa_id, cliente_id)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7)
	                   RETURNING id`

	err := r.DB.QueryRowContext(
		ctxTimeout,
		insertSQL,
		pedido.Descricao,
		pedido.Endereco,
		pedido.ValorTotal,
		pedido.Status,
		pedido.CriadoEm,
		pedido.EmpresaID,
		pedido.ClienteID,
	).Scan(&pedido.ID)

	if err != nil {
		r.logger.Error("Falha ao inserir pedido no DB.", err)
		return domain.Pedido{}, apperror.NewDBError("falha ao inserir pedido", err)
	}

	r.logger.Info("Pedido salvo com sucesso no repositório.", map[string]interface{}{
		"pedido_id":  pedido.ID,
		"empresa_id": pedido.EmpresaID,
	})
	return pedido, nil
}

// FindByID busca um pedido pelo identificador.
func (r *PedidoRepository) FindByID(ctx context.Context, id int64) (domain.Pedido, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM pedidos_delivery WHERE id = $1`, pedidoColumns)

	pedido, err := scanPedido(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pedido{}, apperror.NewNotFoundError(fmt.Sprintf("Pedido %d não encontrado", id))
		}
		r.logger.Error("Falha ao buscar pedido no DB.", err)
		return domain.Pedido{}, apperror.NewDBError("falha ao buscar pedido", err)
	}

	return pedido, nil
}

// FindByEmpresa lista os pedidos pertencentes a uma empresa, mais recentes primeiro.
func (r *PedidoRepository) FindByEmpresa(ctx context.Context, empresaID int64) ([]domain.Pedido, error) {
	query := fmt.Sprintf(`SELECT %s FROM pedidos_delivery WHERE empresa_id = $1 ORDER BY criado_em DESC`, pedidoColumns)
	return r.findAll(ctx, query, empresaID)
}

// FindByCliente lista os pedidos feitos por um cliente, mais recentes primeiro.
func (r *PedidoRepository) FindByCliente(ctx context.Context, clienteID int64) ([]domain.Pedido, error) {
	query := fmt.Sprintf(`SELECT %s FROM pedidos_delivery WHERE cliente_id = $1 ORDER BY criado_em DESC`, pedidoColumns)
	return r.findAll(ctx, query, clienteID)
}

func (r *PedidoRepository) findAll(ctx context.Context, query string, arg interface{}) ([]domain.Pedido, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, arg)
	if err != nil {
		r.logger.Error("Falha ao listar pedidos no DB.", err)
		return nil, apperror.NewDBError("falha ao listar pedidos", err)
	}
	defer rows.Close()

	pedidos := []domain.Pedido{}
	for rows.Next() {
		pedido, err := scanPedido(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao mapear pedido", err)
		}
		pedidos = append(pedidos, pedido)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar pedidos", err)
	}

	return pedidos, nil
}

// UpdateStatus troca o status do pedido somente se o valor atual ainda for 'de'.
// A cláusula WHERE com o status esperado faz o read-modify-write ser atômico:
// dois avanços concorrentes sobre o mesmo pedido nunca pulam um estado — o
// segundo encontra zero linhas e recebe um Conflito.
func (r *PedidoRepository) UpdateStatus(ctx context.Context, id int64, de, para domain.StatusPedido) (domain.Pedido, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE pedidos_delivery SET status = $1
	                      WHERE id = $2 AND status = $3
	                      RETURNING %s`, pedidoColumns)

	pedido, err := scanPedido(r.DB.QueryRowContext(ctxTimeout, query, para, id, de))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pedido{}, apperror.NewConflictError(
				fmt.Sprintf("Pedido %d mudou de status durante a operação.", id),
			)
		}
		r.logger.Error("Falha ao atualizar status do pedido no DB.", err)
		return domain.Pedido{}, apperror.NewDBError("falha ao atualizar status do pedido", err)
	}

	return pedido, nil
}

// UpdateDescricao atualiza a descrição do pedido.
func (r *PedidoRepository) UpdateDescricao(ctx context.Context, id int64, descricao string) (domain.Pedido, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE pedidos_delivery SET descricao = $1
	                      WHERE id = $2
	                      RETURNING %s`, pedidoColumns)

	pedido, err := scanPedido(r.DB.QueryRowContext(ctxTimeout, query, descricao, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pedido{}, apperror.NewNotFoundError(fmt.Sprintf("Pedido %d não encontrado", id))
		}
		r.logger.Error("Falha ao atualizar pedido no DB.", err)
		return domain.Pedido{}, apperror.NewDBError("falha ao atualizar pedido", err)
	}

	return pedido, nil
}

// Delete remove o pedido definitivamente.
func (r *PedidoRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM pedidos_delivery WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao excluir pedido no DB.", err)
		return apperror.NewDBError("falha ao excluir pedido", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("falha ao verificar exclusão do pedido", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Pedido %d não encontrado", id))
	}

	r.logger.Info("Pedido excluído do repositório.", map[string]interface{}{"pedido_id": id})
	return nil
}

// rowScanner cobre *sql.Row e *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPedido mapeia uma linha para a struct Pedido.
func scanPedido(row rowScanner) (domain.Pedido, error) {
	var pedido domain.Pedido
	var clienteID sql.NullInt64

	err := row.Scan(
		&pedido.ID,
		&pedido.Descricao,
		&pedido.Endereco,
		&pedido.ValorTotal,
		&pedido.Status,
		&pedido.CriadoEm,
		&pedido.EmpresaID,
		&clienteID,
	)
	if err != nil {
		return domain.Pedido{}, err
	}

	if clienteID.Valid {
		id := clienteID.Int64
		pedido.ClienteID = &id
	}

	return pedido, nil
}
