package pedidoservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
	"godelivery/internal/service/pedidoservice"
)

// MockPedidoRepository é uma implementação mock da interface PedidoRepository.
type MockPedidoRepository struct {
	mock.Mock
}

func (m *MockPedidoRepository) Save(ctx context.Context, pedido domain.Pedido) (domain.Pedido, error) {
	args := m.Called(ctx, pedido)
	return args.Get(0).(domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) FindByID(ctx context.Context, id int64) (domain.Pedido, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) FindByEmpresa(ctx context.Context, empresaID int64) ([]domain.Pedido, error) {
	args := m.Called(ctx, empresaID)
	return args.Get(0).([]domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) FindByCliente(ctx context.Context, clienteID int64) ([]domain.Pedido, error) {
	args := m.Called(ctx, clienteID)
	return args.Get(0).([]domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) UpdateStatus(ctx context.Context, id int64, de, para domain.StatusPedido) (domain.Pedido, error) {
	args := m.Called(ctx, id, de, para)
	return args.Get(0).(domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) UpdateDescricao(ctx context.Context, id int64, descricao string) (domain.Pedido, error) {
	args := m.Called(ctx, id, descricao)
	return args.Get(0).(domain.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUsuarioRepository é uma implementação mock da interface UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Save(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	args := m.Called(ctx, usuario)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (domain.Usuario, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id int64) (domain.Usuario, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

// envioRegistrado é o que o FakeSender viu passar.
type envioRegistrado struct {
	Destinatario string
	Descricao    string
	NomeCliente  string
}

// FakeSender registra os envios num canal, porque a confirmação roda em
// goroutine própria e um slice compartilhado daria corrida no teste.
type FakeSender struct {
	Envios chan envioRegistrado
	Err    error
}

func NewFakeSender() *FakeSender {
	return &FakeSender{Envios: make(chan envioRegistrado, 1)}
}

func (f *FakeSender) SendOrderConfirmation(destinatario, descricaoPedido, nomeCliente string) error {
	f.Envios <- envioRegistrado{Destinatario: destinatario, Descricao: descricaoPedido, NomeCliente: nomeCliente}
	return f.Err
}

// aguardarEnvio espera a goroutine de confirmação entregar o registro.
func aguardarEnvio(t *testing.T, sender *FakeSender) envioRegistrado {
	t.Helper()
	select {
	case envio := <-sender.Envios:
		return envio
	case <-time.After(2 * time.Second):
		t.Fatal("confirmação de pedido nunca foi enviada")
		return envioRegistrado{}
	}
}

var (
	empresa = domain.Usuario{ID: 1, Nome: "Pizzaria Central", Email: "contato@pizzaria.com", Tipo: domain.TipoEmpresa}
	cliente = domain.Usuario{ID: 2, Nome: "Maria", Email: "maria@example.com", Tipo: domain.TipoCliente}
)

func identidadeDe(u domain.Usuario) domain.Identidade {
	return domain.Identidade{ID: u.ID, Email: u.Email, Tipo: u.Tipo}
}

func novoPedidoService(pedidoRepo *MockPedidoRepository, usuarioRepo *MockUsuarioRepository, sender *FakeSender) *pedidoservice.PedidoService {
	return pedidoservice.NewService(pedidoRepo, usuarioRepo, sender, logger.NewLogger("error"))
}

// TestCriar_Success_PedidoBalcao: empresa criando pedido para si mesma.
// Não há cliente e a confirmação vai para a própria empresa como "Cliente Balcão".
func TestCriar_Success_PedidoBalcao(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	sender := NewFakeSender()
	svc := novoPedidoService(pedidoRepo, usuarioRepo, sender)

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Pedido) bool {
		return p.EmpresaID == empresa.ID && p.ClienteID == nil && p.Status == domain.StatusRecebido
	})).Return(domain.Pedido{
		ID: 10, Descricao: "Pizza grande", Endereco: "Balcão",
		Status: domain.StatusRecebido, EmpresaID: empresa.ID,
	}, nil)

	resp, err := svc.Criar(context.Background(), identidadeDe(empresa), domain.PedidoRequest{
		Descricao: "Pizza grande",
		Endereco:  "Balcão",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, string(domain.StatusRecebido), resp.Status)

	envio := aguardarEnvio(t, sender)
	assert.Equal(t, empresa.Email, envio.Destinatario)
	assert.Equal(t, "Cliente Balcão", envio.NomeCliente)
	pedidoRepo.AssertExpectations(t)
}

// TestCriar_Success_PedidoCliente: cliente pedindo para um restaurante existente.
// O chamador vira o cliente do pedido e recebe a confirmação no próprio email.
func TestCriar_Success_PedidoCliente(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	sender := NewFakeSender()
	svc := novoPedidoService(pedidoRepo, usuarioRepo, sender)

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)
	usuarioRepo.On("FindByID", mock.Anything, empresa.ID).Return(empresa, nil)
	pedidoRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Pedido) bool {
		return p.EmpresaID == empresa.ID && p.ClienteID != nil && *p.ClienteID == cliente.ID
	})).Return(domain.Pedido{
		ID: 11, Descricao: "Lasanha", Endereco: "Rua A, 100",
		Status: domain.StatusRecebido, EmpresaID: empresa.ID, ClienteID: &cliente.ID,
	}, nil)

	empresaID := empresa.ID
	resp, err := svc.Criar(context.Background(), identidadeDe(cliente), domain.PedidoRequest{
		Descricao: "Lasanha",
		Endereco:  "Rua A, 100",
		EmpresaID: &empresaID,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)

	envio := aguardarEnvio(t, sender)
	assert.Equal(t, cliente.Email, envio.Destinatario)
	assert.Equal(t, cliente.Nome, envio.NomeCliente)
}

// TestCriar_Success_FalhaDeEmailNaoDerrubaPedido: o envio de confirmação é
// melhor-esforço; o pedido já foi criado quando o email falha.
func TestCriar_Success_FalhaDeEmailNaoDerrubaPedido(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	sender := NewFakeSender()
	sender.Err = errors.New("smtp indisponível")
	svc := novoPedidoService(pedidoRepo, usuarioRepo, sender)

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("Save", mock.Anything, mock.Anything).
		Return(domain.Pedido{ID: 12, Status: domain.StatusRecebido, EmpresaID: empresa.ID}, nil)

	resp, err := svc.Criar(context.Background(), identidadeDe(empresa), domain.PedidoRequest{
		Descricao: "Esfiha",
		Endereco:  "Balcão",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	aguardarEnvio(t, sender)
}

// TestCriar_Fail_Validacao: descrição e endereço são obrigatórios.
func TestCriar_Fail_Validacao(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)

	_, err := svc.Criar(context.Background(), identidadeDe(cliente), domain.PedidoRequest{})

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Details, "descricao")
	assert.Contains(t, vErr.Details, "endereco")
	pedidoRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_ClienteSemEmpresa: cliente precisa indicar o restaurante.
func TestCriar_Fail_ClienteSemEmpresa(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)

	_, err := svc.Criar(context.Background(), identidadeDe(cliente), domain.PedidoRequest{
		Descricao: "Lasanha",
		Endereco:  "Rua A, 100",
	})

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	pedidoRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_RestauranteInexistente: empresaId que não existe vira 404.
func TestCriar_Fail_RestauranteInexistente(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)
	usuarioRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.Usuario{}, apperror.NewNotFoundError("Usuário com id '99' não encontrado"))

	inexistente := int64(99)
	_, err := svc.Criar(context.Background(), identidadeDe(cliente), domain.PedidoRequest{
		Descricao: "Lasanha",
		Endereco:  "Rua A, 100",
		EmpresaID: &inexistente,
	})

	var nfErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	pedidoRepo.AssertNotCalled(t, "Save")
}

// TestCriar_Fail_ContaExcluida: um token ainda válido de conta que não existe
// mais falha como não autenticado, não como 404.
func TestCriar_Fail_ContaExcluida(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, "fantasma@example.com").
		Return(domain.Usuario{}, apperror.NewNotFoundError("Usuário com email 'fantasma@example.com' não encontrado"))

	_, err := svc.Criar(context.Background(), domain.Identidade{ID: 7, Email: "fantasma@example.com", Tipo: domain.TipoCliente}, domain.PedidoRequest{
		Descricao: "Lasanha",
		Endereco:  "Rua A, 100",
	})

	var uErr *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &uErr)
}

// TestListar_Success_EscopoPorPapel: empresa lista os pedidos que possui,
// cliente lista os pedidos que fez.
func TestListar_Success_EscopoPorPapel(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)
	pedidoRepo.On("FindByEmpresa", mock.Anything, empresa.ID).
		Return([]domain.Pedido{{ID: 1, EmpresaID: empresa.ID}, {ID: 2, EmpresaID: empresa.ID}}, nil)
	pedidoRepo.On("FindByCliente", mock.Anything, cliente.ID).
		Return([]domain.Pedido{{ID: 2, EmpresaID: empresa.ID, ClienteID: &cliente.ID}}, nil)

	daEmpresa, err := svc.Listar(context.Background(), identidadeDe(empresa))
	assert.NoError(t, err)
	assert.Len(t, daEmpresa, 2)

	doCliente, err := svc.Listar(context.Background(), identidadeDe(cliente))
	assert.NoError(t, err)
	assert.Len(t, doCliente, 1)
	assert.Equal(t, int64(2), doCliente[0].ID)
}

// TestListar_Success_SemPedidos devolve lista vazia, não nula.
func TestListar_Success_SemPedidos(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)
	pedidoRepo.On("FindByCliente", mock.Anything, cliente.ID).Return([]domain.Pedido{}, nil)

	resultado, err := svc.Listar(context.Background(), identidadeDe(cliente))

	assert.NoError(t, err)
	assert.NotNil(t, resultado)
	assert.Empty(t, resultado)
}

// TestAvancarStatus_Success percorre um passo da sequência com troca condicionada
// ao status lido.
func TestAvancarStatus_Success(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(10)).
		Return(domain.Pedido{ID: 10, Status: domain.StatusRecebido, EmpresaID: empresa.ID}, nil)
	pedidoRepo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusRecebido, domain.StatusEmPreparo).
		Return(domain.Pedido{ID: 10, Status: domain.StatusEmPreparo, EmpresaID: empresa.ID}, nil)

	resp, err := svc.AvancarStatus(context.Background(), identidadeDe(empresa), 10)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusEmPreparo), resp.Status)
	pedidoRepo.AssertExpectations(t)
}

// TestAvancarStatus_Success_EntregueNaoMuda: avançar um pedido terminal é
// no-op, devolve a projeção atual sem tocar no repositório.
func TestAvancarStatus_Success_EntregueNaoMuda(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(10)).
		Return(domain.Pedido{ID: 10, Status: domain.StatusEntregue, EmpresaID: empresa.ID}, nil)

	resp, err := svc.AvancarStatus(context.Background(), identidadeDe(empresa), 10)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusEntregue), resp.Status)
	pedidoRepo.AssertNotCalled(t, "UpdateStatus")
}

// TestAvancarStatus_Fail_ClienteNaoAvanca: nem mesmo o cliente dono do pedido
// pode mudar o status.
func TestAvancarStatus_Fail_ClienteNaoAvanca(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)

	_, err := svc.AvancarStatus(context.Background(), identidadeDe(cliente), 10)

	var fErr *apperror.ForbiddenError
	assert.ErrorAs(t, err, &fErr)
	pedidoRepo.AssertNotCalled(t, "FindByID")
}

// TestAvancarStatus_Fail_OutraEmpresa: empresa só avança pedido próprio.
func TestAvancarStatus_Fail_OutraEmpresa(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	outraEmpresa := domain.Usuario{ID: 3, Nome: "Sushi Bar", Email: "contato@sushibar.com", Tipo: domain.TipoEmpresa}
	usuarioRepo.On("FindByEmail", mock.Anything, outraEmpresa.Email).Return(outraEmpresa, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(10)).
		Return(domain.Pedido{ID: 10, Status: domain.StatusRecebido, EmpresaID: empresa.ID}, nil)

	_, err := svc.AvancarStatus(context.Background(), identidadeDe(outraEmpresa), 10)

	var fErr *apperror.ForbiddenError
	assert.ErrorAs(t, err, &fErr)
	pedidoRepo.AssertNotCalled(t, "UpdateStatus")
}

// TestAvancarStatus_Fail_PedidoInexistente: 404 do repositório sobe intacto.
func TestAvancarStatus_Fail_PedidoInexistente(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(99)).
		Return(domain.Pedido{}, apperror.NewNotFoundError("Pedido com id '99' não encontrado"))

	_, err := svc.AvancarStatus(context.Background(), identidadeDe(empresa), 99)

	var nfErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

// TestAtualizar_Success: cliente dono do pedido pode trocar a descrição.
func TestAtualizar_Success(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(11)).
		Return(domain.Pedido{ID: 11, Descricao: "Lasanha", EmpresaID: empresa.ID, ClienteID: &cliente.ID}, nil)
	pedidoRepo.On("UpdateDescricao", mock.Anything, int64(11), "Lasanha sem cebola").
		Return(domain.Pedido{ID: 11, Descricao: "Lasanha sem cebola", EmpresaID: empresa.ID, ClienteID: &cliente.ID}, nil)

	resp, err := svc.Atualizar(context.Background(), identidadeDe(cliente), 11, domain.PedidoRequest{Descricao: "Lasanha sem cebola"})

	assert.NoError(t, err)
	assert.Equal(t, "Lasanha sem cebola", resp.Descricao)
}

// TestAtualizar_Fail_SemPermissao: cliente que não é dono do pedido recebe 403.
func TestAtualizar_Fail_SemPermissao(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	outroCliente := domain.Usuario{ID: 8, Nome: "João", Email: "joao@example.com", Tipo: domain.TipoCliente}
	usuarioRepo.On("FindByEmail", mock.Anything, outroCliente.Email).Return(outroCliente, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(11)).
		Return(domain.Pedido{ID: 11, EmpresaID: empresa.ID, ClienteID: &cliente.ID}, nil)

	_, err := svc.Atualizar(context.Background(), identidadeDe(outroCliente), 11, domain.PedidoRequest{Descricao: "Hackeado"})

	var fErr *apperror.ForbiddenError
	assert.ErrorAs(t, err, &fErr)
	pedidoRepo.AssertNotCalled(t, "UpdateDescricao")
}

// TestAtualizar_Fail_DescricaoVazia: a nova descrição é obrigatória.
func TestAtualizar_Fail_DescricaoVazia(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, cliente.Email).Return(cliente, nil)

	_, err := svc.Atualizar(context.Background(), identidadeDe(cliente), 11, domain.PedidoRequest{})

	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	pedidoRepo.AssertNotCalled(t, "FindByID")
}

// TestExcluir_Success_EmpresaDona: a empresa dona pode excluir qualquer pedido seu.
func TestExcluir_Success_EmpresaDona(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	usuarioRepo.On("FindByEmail", mock.Anything, empresa.Email).Return(empresa, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(11)).
		Return(domain.Pedido{ID: 11, EmpresaID: empresa.ID, ClienteID: &cliente.ID}, nil)
	pedidoRepo.On("Delete", mock.Anything, int64(11)).Return(nil)

	err := svc.Excluir(context.Background(), identidadeDe(empresa), 11)

	assert.NoError(t, err)
	pedidoRepo.AssertExpectations(t)
}

// TestExcluir_Fail_SemPermissao: terceiros não excluem pedidos alheios.
func TestExcluir_Fail_SemPermissao(t *testing.T) {
	pedidoRepo := new(MockPedidoRepository)
	usuarioRepo := new(MockUsuarioRepository)
	svc := novoPedidoService(pedidoRepo, usuarioRepo, NewFakeSender())

	outroCliente := domain.Usuario{ID: 8, Nome: "João", Email: "joao@example.com", Tipo: domain.TipoCliente}
	usuarioRepo.On("FindByEmail", mock.Anything, outroCliente.Email).Return(outroCliente, nil)
	pedidoRepo.On("FindByID", mock.Anything, int64(11)).
		Return(domain.Pedido{ID: 11, EmpresaID: empresa.ID, ClienteID: &cliente.ID}, nil)

	err := svc.Excluir(context.Background(), identidadeDe(outroCliente), 11)

	var fErr *apperror.ForbiddenError
	assert.ErrorAs(t, err, &fErr)
	pedidoRepo.AssertNotCalled(t, "Delete")
}
