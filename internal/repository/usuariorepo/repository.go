package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"godelivery/internal/domain"
	apperror "godelivery/internal/errors"
	"godelivery/internal/pkg/logger"
)

// uniqueViolation é o código de erro do PostgreSQL para violação de chave única.
const uniqueViolation = "23505"

// UsuarioRepository implementa a interface domain.UsuarioRepository.
type UsuarioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUsuarioRepository cria uma nova instância do UsuarioRepository, injetando o DB.
func NewUsuarioRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Save insere um novo usuário no banco de dados.
// Email duplicado (índice único) vira um erro de Conflito tipado.
func (r *UsuarioRepository) Save(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"email": usuario.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	usuario.CriadoEm = time.Now()

	const insertSQL = `INSERT INTO usuarios (nome, email, senha, cpf, cnpj, tipo, criado_em)
	                   VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
	                   RETURNING id`

	err := r.DB.QueryRowContext(
		ctxTimeout,
		insertSQL,
		usuario.Nome,
		usuario.Email,
		usuario.Senha,
		usuario.CPF,
		usuario.CNPJ,
		usuario.Tipo,
		usuario.CriadoEm,
	).Scan(&usuario.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.logger.Info("Tentativa de cadastro com email duplicado.", map[string]interface{}{"email": usuario.Email})
			return domain.Usuario{}, apperror.NewConflictError(
				fmt.Sprintf("O email '%s' já está em uso.", usuario.Email),
			)
		}

		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("falha ao inserir usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": usuario.ID, "tipo": usuario.Tipo})
	return usuario, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (domain.Usuario, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, nome, email, senha, cpf, cnpj, tipo, criado_em
	               FROM usuarios WHERE email = $1`

	return r.scanUsuario(
		r.DB.QueryRowContext(ctxTimeout, query, email),
		fmt.Sprintf("Usuário com email '%s' não encontrado", email),
	)
}

// FindByID busca um usuário pelo identificador.
func (r *UsuarioRepository) FindByID(ctx context.Context, id int64) (domain.Usuario, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, nome, email, senha, cpf, cnpj, tipo, criado_em
	               FROM usuarios WHERE id = $1`

	return r.scanUsuario(
		r.DB.QueryRowContext(ctxTimeout, query, id),
		fmt.Sprintf("Usuário com id %d não encontrado", id),
	)
}

// scanUsuario mapeia uma linha para a struct Usuario, tratando o 404.
func (r *UsuarioRepository) scanUsuario(row *sql.Row, notFoundMsg string) (domain.Usuario, error) {
	var usuario domain.Usuario
	var cpf, cnpj sql.NullString

	err := row.Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.Email,
		&usuario.Senha,
		&cpf,
		&cnpj,
		&usuario.Tipo,
		&usuario.CriadoEm,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Usuario{}, apperror.NewNotFoundError(notFoundMsg)
		}
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("falha ao buscar usuário", err)
	}

	usuario.CPF = cpf.String
	usuario.CNPJ = cnpj.String

	return usuario, nil
}
