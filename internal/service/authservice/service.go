package authservice

import (
	"context"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// senhaTamanhoMinimo é o mínimo de caracteres aceito no cadastro.
const senhaTamanhoMinimo = 6

// AuthService implementa o cadastro e o login de contas.
type AuthService struct {
	UsuarioRepo domain.UsuarioRepository
	TokenSvc    TokenService
	Logger      logger.Logger
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(usuario domain.Usuario) (string, error)
}

// NewService cria uma nova instância do AuthService, injetando as dependências.
func NewService(repo domain.UsuarioRepository, tokenSvc TokenService, log logger.Logger) *AuthService {
	return &AuthService{
		UsuarioRepo: repo,
		TokenSvc:    tokenSvc,
		Logger:      log,
	}
}

// Registrar cadastra uma nova conta.
// O tipo (CLIENTE/EMPRESA) é resolvido aqui, uma única vez: CNPJ presente e
// não-branco define EMPRESA. Email duplicado vem do repositório como Conflito.
func (s *AuthService) Registrar(ctx context.Context, req domain.RegisterRequest) error {
	// 1. Validação campo a campo
	details := map[string]string{}
	if req.Nome == "" {
		details["nome"] = "O nome não pode ser vazio"
	}
	if req.Email == "" {
		details["email"] = "O email não pode ser vazio"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		details["email"] = "Email inválido"
	}
	if len(req.Senha) < senhaTamanhoMinimo {
		details["senha"] = "A senha deve ter no mínimo 6 caracteres"
	}
	if len(details) > 0 {
		return apperror.NewFieldValidationError(details)
	}

	// 2. Hashing da Senha
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// 3. Criação da conta com o tipo resolvido
	novoUsuario := domain.Usuario{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: string(hash),
		CPF:   req.CPF,
		CNPJ:  req.CNPJ,
		Tipo:  domain.ResolverTipo(req.CNPJ),
	}

	// 4. Persistência (email duplicado chega aqui como ConflictError)
	if _, err := s.UsuarioRepo.Save(ctx, novoUsuario); err != nil {
		return err
	}

	s.Logger.Info("Conta registrada.", map[string]interface{}{
		"email": novoUsuario.Email,
		"tipo":  novoUsuario.Tipo,
	})
	return nil
}

// Login autentica um usuário, verifica a senha e emite um JWT.
func (s *AuthService) Login(ctx context.Context, email, senha string) (domain.LoginResponse, error) {
	// 1. Validação básica
	if email == "" || senha == "" {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	// 2. Buscar o usuário pelo email
	usuario, err := s.UsuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		// NotFound vira Unauthorized para não dar dicas a invasores
		if _, ok := err.(*apperror.NotFoundError); ok {
			return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return domain.LoginResponse{}, err
	}

	// 3. Comparar a senha informada com o hash salvo
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(senha)); err != nil {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	// 4. Emitir o JWT
	tokenString, err := s.TokenSvc.GenerateToken(usuario)
	if err != nil {
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	return domain.LoginResponse{
		Token: tokenString,
		Nome:  usuario.Nome,
		Tipo:  usuario.Tipo,
	}, nil
}
