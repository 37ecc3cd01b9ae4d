package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"godelivery/internal/api/auth"
	"godelivery/internal/api/pedido"
	"godelivery/internal/api/produto"
	"godelivery/internal/pkg/cache"
	"godelivery/internal/pkg/middleware"

	_ "godelivery/docs" // Registro da especificação Swagger gerada
)

// Options carrega os parâmetros de middleware do roteador.
type Options struct {
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
//
// Rotas públicas: health check, cadastro, login e documentação.
// Todo o restante exige token Bearer válido.
func NewRouter(
	authHandler *auth.Handler,
	pedidoHandler *pedido.Handler,
	produtoHandler *produto.Handler,
	tokenSvc middleware.TokenService,
	cacheClient cache.Client,
	opts Options,
) http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.RequestID)
	r.Use(middleware.RateLimiter(cacheClient, opts.RateLimitMaxRequests, opts.RateLimitPeriod))

	// --- Rotas públicas ---
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler)
		r.Post("/login", authHandler.LoginHandler)
	})

	// --- Rotas protegidas (Bearer token) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(tokenSvc))

		r.Route("/pedidos", func(r chi.Router) {
			r.Post("/", pedidoHandler.CriarHandler)
			r.Get("/", pedidoHandler.ListarHandler)
			r.Put("/{id}", pedidoHandler.AtualizarHandler)
			r.Put("/{id}/avancar", pedidoHandler.AvancarHandler)
			r.Delete("/{id}", pedidoHandler.ExcluirHandler)
		})

		r.Route("/empresa/produtos", func(r chi.Router) {
			r.Get("/", produtoHandler.ListarHandler)
			r.Post("/", produtoHandler.CriarHandler)
			r.Delete("/{id}", produtoHandler.ExcluirHandler)
		})
	})

	return r
}

// PingHandler é o health check da API.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
