package mailer

import (
	"fmt"
	"net/smtp"

	"godelivery/internal/pkg/logger"
)

// Sender é o contrato da notificação de confirmação de pedido.
// O envio é melhor-esforço: o erro retornado é logado e descartado pelo
// chamador, nunca misturado com o resultado da criação do pedido.
type Sender interface {
	SendOrderConfirmation(destinatario, descricaoPedido, nomeCliente string) error
}

// SMTPSender envia e-mails de confirmação via SMTP com autenticação PLAIN.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender cria o remetente SMTP.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// SendOrderConfirmation monta e envia a mensagem de confirmação.
func (s *SMTPSender) SendOrderConfirmation(destinatario, descricaoPedido, nomeCliente string) error {
	corpo := fmt.Sprintf(
		"Olá %s,\r\n\r\n"+
			"Seu pedido com a descrição:\r\n\"%s\"\r\n"+
			"foi recebido e está sendo processado!\r\n\r\n"+
			"Aguarde novas atualizações.\r\n\r\n"+
			"Obrigado por escolher nossos serviços!",
		nomeCliente, descricaoPedido,
	)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Confirmação do seu pedido\r\n\r\n%s\r\n",
		s.username, destinatario, corpo,
	))

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.username, []string{destinatario}, msg); err != nil {
		return fmt.Errorf("falha ao enviar e-mail para %s: %w", destinatario, err)
	}

	return nil
}

// LogSender é o remetente usado quando o SMTP não está configurado:
// apenas registra que a notificação teria sido enviada.
type LogSender struct {
	Logger logger.Logger
}

// SendOrderConfirmation registra a notificação sem enviá-la.
func (s *LogSender) SendOrderConfirmation(destinatario, descricaoPedido, nomeCliente string) error {
	s.Logger.Info("SMTP desativado; confirmação de pedido não enviada.", map[string]interface{}{
		"destinatario": destinatario,
		"cliente":      nomeCliente,
	})
	return nil
}
