package pedidoservice

import (
	"context"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
	"godelivery/internal/pkg/mailer"
)

// nomeClienteBalcao é o nome usado na confirmação de pedidos de balcão,
// que não têm cliente cadastrado.
const nomeClienteBalcao = "Cliente Balcão"

// PedidoService implementa o fluxo de pedidos: criação, listagem, avanço de
// status, atualização e exclusão, com as regras de autorização por papel.
//
// O serviço é stateless por chamada: cada operação resolve a conta do chamador
// e relê o estado atual do pedido antes de agir. Nada é guardado entre chamadas.
type PedidoService struct {
	PedidoRepo  domain.PedidoRepository
	UsuarioRepo domain.UsuarioRepository
	Mailer      mailer.Sender
	Logger      logger.Logger
}

// NewService cria uma nova instância do PedidoService, injetando as dependências.
func NewService(pedidoRepo domain.PedidoRepository, usuarioRepo domain.UsuarioRepository, sender mailer.Sender, log logger.Logger) *PedidoService {
	return &PedidoService{
		PedidoRepo:  pedidoRepo,
		UsuarioRepo: usuarioRepo,
		Mailer:      sender,
		Logger:      log,
	}
}

// resolverChamador troca a identidade do token pela conta viva.
// As claims do token nunca substituem a consulta: um token ainda válido de
// uma conta excluída precisa falhar aqui, como não autenticado.
func (s *PedidoService) resolverChamador(ctx context.Context, identidade domain.Identidade) (domain.Usuario, error) {
	usuario, err := s.UsuarioRepo.FindByEmail(ctx, identidade.Email)
	if err != nil {
		if _, ok := err.(*apperror.NotFoundError); ok {
			return domain.Usuario{}, apperror.NewUnauthorizedError("Conta do chamador não encontrada.")
		}
		return domain.Usuario{}, err
	}
	return usuario, nil
}

// Criar registra um novo pedido.
//
// Chamador EMPRESA: pedido de balcão/telefone — a própria empresa é a dona e
// não há cliente. Chamador CLIENTE: o restaurante alvo (empresaId) é
// obrigatório e precisa existir; o chamador vira o cliente do pedido.
func (s *PedidoService) Criar(ctx context.Context, identidade domain.Identidade, req domain.PedidoRequest) (domain.PedidoResponse, error) {
	chamador, err := s.resolverChamador(ctx, identidade)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	// 1. Validação do payload
	details := map[string]string{}
	if req.Descricao == "" {
		details["descricao"] = "A descrição é obrigatória"
	}
	if req.Endereco == "" {
		details["endereco"] = "O endereço é obrigatório"
	}
	if len(details) > 0 {
		return domain.PedidoResponse{}, apperror.NewFieldValidationError(details)
	}

	// 2. Resolver empresa e cliente conforme o papel do chamador
	var empresa domain.Usuario
	var clienteID *int64

	if chamador.Tipo == domain.TipoEmpresa {
		// Cenário 1: a própria empresa criando pedido (balcão/telefone)
		empresa = chamador
	} else {
		// Cenário 2: cliente criando pedido pelo aplicativo
		if req.EmpresaID == nil {
			return domain.PedidoResponse{}, apperror.NewValidationError("Selecione um restaurante para fazer o pedido.")
		}

		empresa, err = s.UsuarioRepo.FindByID(ctx, *req.EmpresaID)
		if err != nil {
			if _, ok := err.(*apperror.NotFoundError); ok {
				return domain.PedidoResponse{}, apperror.NewNotFoundError("Restaurante não encontrado.")
			}
			return domain.PedidoResponse{}, err
		}

		clienteID = &chamador.ID
	}

	// 3. Persistir o pedido com o status inicial
	novoPedido := domain.Pedido{
		Descricao:  req.Descricao,
		Endereco:   req.Endereco,
		ValorTotal: req.ValorTotal,
		Status:     domain.StatusRecebido,
		EmpresaID:  empresa.ID,
		ClienteID:  clienteID,
	}

	pedidoSalvo, err := s.PedidoRepo.Save(ctx, novoPedido)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	// 4. Notificação de confirmação, fora da transação e fora do caminho da
	// resposta: o resultado do envio é logado e descartado. A criação do
	// pedido já está concluída, falha de e-mail não muda nada.
	destinatario := empresa.Email
	nomeDestinatario := nomeClienteBalcao
	if clienteID != nil {
		destinatario = chamador.Email
		nomeDestinatario = chamador.Nome
	}
	go s.enviarConfirmacao(destinatario, pedidoSalvo, nomeDestinatario)

	return pedidoSalvo.ToResponse(), nil
}

// enviarConfirmacao roda em goroutine própria; todo erro morre aqui, no log.
func (s *PedidoService) enviarConfirmacao(destinatario string, pedido domain.Pedido, nome string) {
	if err := s.Mailer.SendOrderConfirmation(destinatario, pedido.Descricao, nome); err != nil {
		s.Logger.Error("Falha ao enviar confirmação de pedido.", err)
		return
	}
	s.Logger.Info("Confirmação de pedido enviada.", map[string]interface{}{
		"pedido_id":    pedido.ID,
		"destinatario": destinatario,
	})
}

// Listar devolve os pedidos visíveis para o chamador:
// EMPRESA vê os pedidos que possui, CLIENTE vê os pedidos que fez.
func (s *PedidoService) Listar(ctx context.Context, identidade domain.Identidade) ([]domain.PedidoResponse, error) {
	chamador, err := s.resolverChamador(ctx, identidade)
	if err != nil {
		return nil, err
	}

	var pedidos []domain.Pedido
	if chamador.Tipo == domain.TipoEmpresa {
		pedidos, err = s.PedidoRepo.FindByEmpresa(ctx, chamador.ID)
	} else {
		pedidos, err = s.PedidoRepo.FindByCliente(ctx, chamador.ID)
	}
	if err != nil {
		return nil, err
	}

	respostas := make([]domain.PedidoResponse, 0, len(pedidos))
	for _, pedido := range pedidos {
		respostas = append(respostas, pedido.ToResponse())
	}
	return respostas, nil
}

// AvancarStatus move o pedido um passo adiante na sequência fixa
// RECEBIDO → EM_PREPARO → A_CAMINHO → ENTREGUE.
//
// Apenas a empresa dona do pedido pode avançar. Um pedido já ENTREGUE não
// muda: a operação devolve a projeção atual sem erro.
func (s *PedidoService) AvancarStatus(ctx context.Context, identidade domain.Identidade, id int64) (domain.PedidoResponse, error) {
	chamador, err := s.resolverChamador(ctx, identidade)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	if chamador.Tipo != domain.TipoEmpresa {
		return domain.PedidoResponse{}, apperror.NewForbiddenError("Apenas empresas podem alterar status.")
	}

	pedido, err := s.PedidoRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	if pedido.EmpresaID != chamador.ID {
		return domain.PedidoResponse{}, apperror.NewForbiddenError("Acesso negado.")
	}

	if pedido.Status.Terminal() {
		// No-op documentado: avançar um pedido entregue não é erro
		return pedido.ToResponse(), nil
	}

	atualizado, err := s.PedidoRepo.UpdateStatus(ctx, pedido.ID, pedido.Status, pedido.Status.Proximo())
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	s.Logger.Info("Status do pedido avançado.", map[string]interface{}{
		"pedido_id": atualizado.ID,
		"status":    atualizado.Status,
	})
	return atualizado.ToResponse(), nil
}

// Atualizar troca a descrição do pedido.
// Somente a empresa dona ou o cliente dono podem atualizar.
func (s *PedidoService) Atualizar(ctx context.Context, identidade domain.Identidade, id int64, req domain.PedidoRequest) (domain.PedidoResponse, error) {
	chamador, err := s.resolverChamador(ctx, identidade)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	if req.Descricao == "" {
		return domain.PedidoResponse{}, apperror.NewValidationError("A descrição é obrigatória.")
	}

	pedido, err := s.PedidoRepo.FindByID(ctx, id)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	if !podeManipular(pedido, chamador) {
		return domain.PedidoResponse{}, apperror.NewForbiddenError("Sem permissão para atualizar.")
	}

	atualizado, err := s.PedidoRepo.UpdateDescricao(ctx, pedido.ID, req.Descricao)
	if err != nil {
		return domain.PedidoResponse{}, err
	}

	return atualizado.ToResponse(), nil
}

// Excluir remove o pedido definitivamente.
// Somente a empresa dona ou o cliente dono podem excluir.
func (s *PedidoService) Excluir(ctx context.Context, identidade domain.Identidade, id int64) error {
	chamador, err := s.resolverChamador(ctx, identidade)
	if err != nil {
		return err
	}

	pedido, err := s.PedidoRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !podeManipular(pedido, chamador) {
		return apperror.NewForbiddenError("Sem permissão para excluir.")
	}

	return s.PedidoRepo.Delete(ctx, pedido.ID)
}

// podeManipular verifica se o chamador é a empresa dona OU o cliente dono do pedido.
func podeManipular(pedido domain.Pedido, chamador domain.Usuario) bool {
	if pedido.EmpresaID == chamador.ID {
		return true
	}
	return pedido.ClienteID != nil && *pedido.ClienteID == chamador.ID
}
