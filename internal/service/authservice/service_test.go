package authservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
	"godelivery/internal/service/authservice"
)

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

// MockTokenService simula a emissão de JWT.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(usuario domain.Usuario) (string, error) {
	args := m.Called(usuario)
	return args.String(0), args.Error(1)
}

func novoAuthService(repo *MockUsuarioRepository, tokenSvc *MockTokenService) *authservice.AuthService {
	return authservice.NewService(repo, tokenSvc, logger.NewLogger("error"))
}

// TestRegistrar_Success_Empresa: CNPJ preenchido resolve o tipo EMPRESA
// e a senha é persistida como hash BCrypt, nunca em texto puro.
func TestRegistrar_Success_Empresa(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := novoAuthService(mockRepo, new(MockTokenService))

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.Usuario) bool {
		if u.Tipo != domain.TipoEmpresa {
			return false
		}
		// O hash deve validar contra a senha original
		return bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte("senha123")) == nil
	})).Return(domain.Usuario{ID: 1}, nil)

	err := svc.Registrar(context.Background(), domain.RegisterRequest{
		Nome:  "Pizzaria Central",
		Email: "contato@pizzaria.com",
		Senha: "senha123",
		CNPJ:  "12.345.678/0001-00",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestRegistrar_Success_Cliente: sem CNPJ o tipo resolve para CLIENTE.
func TestRegistrar_Success_Cliente(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := novoAuthService(mockRepo, new(MockTokenService))

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.Usuario) bool {
		return u.Tipo == domain.TipoCliente
	})).Return(domain.Usuario{ID: 2}, nil)

	err := svc.Registrar(context.Background(), domain.RegisterRequest{
		Nome:  "Maria",
		Email: "maria@example.com",
		Senha: "senha123",
		CPF:   "111.222.333-44",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestRegistrar_Fail_Validacao: campos inválidos produzem mensagens por campo
// e o repositório nunca é chamado.
func TestRegistrar_Fail_Validacao(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := novoAuthService(mockRepo, new(MockTokenService))

	err := svc.Registrar(context.Background(), domain.RegisterRequest{
		Nome:  "",
		Email: "nao-e-email",
		Senha: "curta",
	})

	assert.Error(t, err)
	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Details, "nome")
	assert.Contains(t, vErr.Details, "email")
	assert.Contains(t, vErr.Details, "senha")
	mockRepo.AssertNotCalled(t, "Save")
}

// TestRegistrar_Fail_EmailDuplicado: o Conflito do repositório sobe intacto.
func TestRegistrar_Fail_EmailDuplicado(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := novoAuthService(mockRepo, new(MockTokenService))

	mockRepo.On("Save", mock.Anything, mock.Anything).
		Return(domain.Usuario{}, apperror.NewConflictError("O email 'maria@example.com' já está em uso."))

	err := svc.Registrar(context.Background(), domain.RegisterRequest{
		Nome:  "Maria",
		Email: "maria@example.com",
		Senha: "senha123",
	})

	assert.Error(t, err)
	var cErr *apperror.ConflictError
	assert.ErrorAs(t, err, &cErr)
}

// TestLogin_Success devolve token, nome e tipo da conta.
func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockToken := new(MockTokenService)
	svc := novoAuthService(mockRepo, mockToken)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	usuario := domain.Usuario{
		ID:    1,
		Nome:  "Pizzaria Central",
		Email: "contato@pizzaria.com",
		Senha: string(hash),
		Tipo:  domain.TipoEmpresa,
	}

	mockRepo.On("FindByEmail", mock.Anything, "contato@pizzaria.com").Return(usuario, nil)
	mockToken.On("GenerateToken", usuario).Return("jwt-token", nil)

	resp, err := svc.Login(context.Background(), "contato@pizzaria.com", "senha123")

	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "Pizzaria Central", resp.Nome)
	assert.Equal(t, domain.TipoEmpresa, resp.Tipo)
}

// TestLogin_Fail_SenhaIncorreta responde 401 sem emitir token.
func TestLogin_Fail_SenhaIncorreta(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockToken := new(MockTokenService)
	svc := novoAuthService(mockRepo, mockToken)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	mockRepo.On("FindByEmail", mock.Anything, "maria@example.com").
		Return(domain.Usuario{Email: "maria@example.com", Senha: string(hash)}, nil)

	_, err := svc.Login(context.Background(), "maria@example.com", "senha-errada")

	assert.Error(t, err)
	var uErr *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &uErr)
	mockToken.AssertNotCalled(t, "GenerateToken")
}

// TestLogin_Fail_EmailDesconhecido: NotFound vira Unauthorized para não
// revelar quais emails existem.
func TestLogin_Fail_EmailDesconhecido(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := novoAuthService(mockRepo, new(MockTokenService))

	mockRepo.On("FindByEmail", mock.Anything, "ninguem@example.com").
		Return(domain.Usuario{}, apperror.NewNotFoundError("Usuário com email 'ninguem@example.com' não encontrado"))

	_, err := svc.Login(context.Background(), "ninguem@example.com", "senha123")

	assert.Error(t, err)
	var uErr *apperror.UnauthorizedError
	assert.ErrorAs(t, err, &uErr)
}
