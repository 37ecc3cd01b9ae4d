package domain

import (
	"context"
	"strings"
	"time"
)

// Usuario representa tanto clientes quanto empresas (restaurantes).
// O mesmo cadastro serve para os dois papéis; o campo Tipo decide qual.
type Usuario struct {
	ID       int64       `json:"id"`
	Nome     string      `json:"nome"`
	Email    string      `json:"email"`
	Senha    string      `json:"-"` // Hash BCrypt, nunca exposto no JSON de resposta
	CPF      string      `json:"cpf,omitempty"`
	CNPJ     string      `json:"cnpj,omitempty"`
	Tipo     TipoUsuario `json:"tipo"`
	CriadoEm time.Time   `json:"criadoEm"`
}

// TipoUsuario é o papel da conta no sistema.
type TipoUsuario string

const (
	// TipoCliente faz pedidos pelo aplicativo.
	TipoCliente TipoUsuario = "CLIENTE"
	// TipoEmpresa é a conta do restaurante.
	TipoEmpresa TipoUsuario = "EMPRESA"
)

// ResolverTipo decide o tipo da conta no momento do cadastro:
// CNPJ preenchido e não-branco define EMPRESA; caso contrário, CLIENTE.
// A resolução acontece uma única vez, na criação — nunca depois.
func ResolverTipo(cnpj string) TipoUsuario {
	if strings.TrimSpace(cnpj) != "" {
		return TipoEmpresa
	}
	return TipoCliente
}

// Identidade é a visão mínima do chamador autenticado, extraída do token
// pelo middleware e passada explicitamente para as camadas de serviço.
// As regras de negócio nunca leem o "usuário logado" de estado global.
type Identidade struct {
	ID    int64
	Email string
	Tipo  TipoUsuario
}

// RegisterRequest é o payload de entrada do cadastro.
// Não há campo 'tipo': o backend determina CLIENTE/EMPRESA pela presença do CNPJ.
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	CPF   string `json:"cpf,omitempty"`
	CNPJ  string `json:"cnpj,omitempty"`
}

// LoginResponse é devolvido após autenticação bem sucedida.
type LoginResponse struct {
	Token string      `json:"token"`
	Nome  string      `json:"nome"`
	Tipo  TipoUsuario `json:"tipo"`
}

// UsuarioRepository define o contrato de persistência para a entidade Usuario.
type UsuarioRepository interface {
	Save(ctx context.Context, usuario Usuario) (Usuario, error)
	FindByEmail(ctx context.Context, email string) (Usuario, error)
	FindByID(ctx context.Context, id int64) (Usuario, error)
}
