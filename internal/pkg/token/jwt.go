package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"godelivery/internal/domain"
)

// Issuer é o identificador fixo do emissor gravado em todos os tokens.
const Issuer = "godelivery-api"

// TokenService define o contrato para emissão e validação de JWTs.
type TokenService interface {
	GenerateToken(usuario domain.Usuario) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims define as informações específicas gravadas no JWT.
// O subject é o email do usuário; o id numérico e o tipo da conta vão em
// claims próprias. Essas claims são dicas: toda requisição resolve a conta
// viva pelo email antes de autorizar qualquer operação.
type CustomClaims struct {
	UserID int64              `json:"id"`
	Tipo   domain.TipoUsuario `json:"tipo"`
	jwt.RegisteredClaims
}

// Service implementa a interface TokenService.
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService cria uma nova instância do serviço de tokens.
// Não existe revogação: um token comprometido continua válido até expirar.
// Limitação documentada do sistema, não um defeito a corrigir aqui.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// GenerateToken cria um novo JWT assinado para o usuário.
func (s *Service) GenerateToken(usuario domain.Usuario) (string, error) {
	now := time.Now()

	claims := CustomClaims{
		UserID: usuario.ID,
		Tipo:   usuario.Tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   usuario.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida assinatura, emissor e expiração, e retorna as claims.
// Qualquer falha (token malformado, adulterado, expirado ou de outro emissor)
// resulta em erro.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verifica se o método de assinatura é o esperado (HS256)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(Issuer))

	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}

	return claims, nil
}
