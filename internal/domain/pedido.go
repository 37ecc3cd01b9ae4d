package domain

import (
	"context"
	"time"
)

// StatusPedido é o estado de um pedido dentro do fluxo de entrega.
type StatusPedido string

const (
	StatusRecebido  StatusPedido = "RECEBIDO"
	StatusEmPreparo StatusPedido = "EM_PREPARO"
	StatusACaminho  StatusPedido = "A_CAMINHO"
	StatusEntregue  StatusPedido = "ENTREGUE"
)

// ordemStatus é a sequência fixa de avanço. ENTREGUE é o estado terminal.
var ordemStatus = []StatusPedido{
	StatusRecebido,
	StatusEmPreparo,
	StatusACaminho,
	StatusEntregue,
}

// Valido informa se o valor veio de uma fonte confiável (DB, request).
func (s StatusPedido) Valido() bool {
	for _, st := range ordemStatus {
		if s == st {
			return true
		}
	}
	return false
}

// Proximo devolve o estado seguinte na sequência fixa.
// No estado terminal (ENTREGUE) devolve o próprio estado: avançar um pedido
// já entregue é um no-op, não um erro. Valores desconhecidos também são
// devolvidos sem alteração.
func (s StatusPedido) Proximo() StatusPedido {
	for i, st := range ordemStatus {
		if s == st {
			if i == len(ordemStatus)-1 {
				return s
			}
			return ordemStatus[i+1]
		}
	}
	return s
}

// Terminal informa se o pedido chegou ao fim do fluxo.
func (s StatusPedido) Terminal() bool {
	return s == StatusEntregue
}

// Pedido representa um pedido de delivery.
// Todo pedido pertence a exatamente uma empresa; o cliente só existe quando
// um usuário CLIENTE fez o pedido pelo aplicativo. Pedidos de balcão/telefone
// criados pela própria empresa ficam sem cliente.
type Pedido struct {
	ID         int64
	Descricao  string
	Endereco   string
	ValorTotal float64
	Status     StatusPedido
	CriadoEm   time.Time
	EmpresaID  int64
	ClienteID  *int64
}

// PedidoRequest é o payload de criação/atualização de pedido.
// EmpresaId só é exigido quando o chamador é um CLIENTE escolhendo o restaurante.
type PedidoRequest struct {
	Descricao  string  `json:"descricao"`
	Endereco   string  `json:"endereco"`
	ValorTotal float64 `json:"valorTotal"`
	EmpresaID  *int64  `json:"empresaId,omitempty"`
}

// PedidoResponse é a projeção devolvida pela API, no formato que o
// frontend existente consome.
type PedidoResponse struct {
	ID         int64     `json:"id"`
	Descricao  string    `json:"descricao"`
	Endereco   string    `json:"endereco"`
	ValorTotal float64   `json:"valorTotal"`
	Status     string    `json:"status"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// ToResponse projeta o pedido para o formato de resposta da API.
func (p Pedido) ToResponse() PedidoResponse {
	return PedidoResponse{
		ID:         p.ID,
		Descricao:  p.Descricao,
		Endereco:   p.Endereco,
		ValorTotal: p.ValorTotal,
		Status:     string(p.Status),
		CriadoEm:   p.CriadoEm,
	}
}

// PedidoRepository define o contrato de persistência para a entidade Pedido.
// O repositório é o único dono dos registros: o serviço sempre relê o estado
// atual antes de agir, nunca guarda pedidos entre chamadas.
type PedidoRepository interface {
	Save(ctx context.Context, pedido Pedido) (Pedido, error)
	FindByID(ctx context.Context, id int64) (Pedido, error)
	FindByEmpresa(ctx context.Context, empresaID int64) ([]Pedido, error)
	FindByCliente(ctx context.Context, clienteID int64) ([]Pedido, error)
	// UpdateStatus troca o status somente se o valor atual ainda for 'de',
	// evitando que dois avanços concorrentes pulem um estado.
	UpdateStatus(ctx context.Context, id int64, de, para StatusPedido) (Pedido, error)
	UpdateDescricao(ctx context.Context, id int64, descricao string) (Pedido, error)
	Delete(ctx context.Context, id int64) error
}
