package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"godelivery/config"
	"godelivery/internal/pkg/cache"
	"godelivery/internal/pkg/database"
	"godelivery/internal/pkg/logger"
	"godelivery/internal/pkg/mailer"
	"godelivery/internal/pkg/token"

	"godelivery/internal/api/auth"
	"godelivery/internal/api/pedido"
	"godelivery/internal/api/produto"
	"godelivery/internal/api/router"
	"godelivery/internal/repository/pedidorepo"
	"godelivery/internal/repository/produtorepo"
	"godelivery/internal/repository/usuariorepo"
	"godelivery/internal/service/authservice"
	"godelivery/internal/service/pedidoservice"
	"godelivery/internal/service/produtoservice"
)

// @title GoDelivery API
// @version 1.0
// @description Backend de pedidos de delivery: autenticação JWT, pedidos e cardápio.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuração e Inicialização
	// O godotenv.Load() procura por um arquivo .env na raiz; a ausência não é
	// erro, pois as variáveis podem estar no ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro de configuração: %v", err)
	}

	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	logg.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		// O cache acelera, não sustenta: seguimos sem ele
		logg.Warn("Redis indisponível; cache e rate limiting degradados.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		logg.Info("Conexão Redis estabelecida.", nil)
	}

	// C. Notificação (SMTP) — opcional
	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	} else {
		sender = &mailer.LogSender{Logger: logg}
	}

	// 3. Injeção de Dependências (Repository -> Service -> Handler)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, logg)
	pedidoRepo := pedidorepo.NewPedidoRepository(db, cfg.DBTimeout, logg)
	produtoRepo := produtorepo.NewProdutoRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, logg)

	authSvc := authservice.NewService(usuarioRepo, tokenSvc, logg)
	pedidoSvc := pedidoservice.NewService(pedidoRepo, usuarioRepo, sender, logg)
	produtoSvc := produtoservice.NewService(produtoRepo, usuarioRepo, logg)

	authHandler := auth.NewHandler(authSvc, logg)
	pedidoHandler := pedido.NewHandler(pedidoSvc, logg)
	produtoHandler := produto.NewHandler(produtoSvc, logg)

	// 4. Configuração e Início do Roteador/Servidor

	r := router.NewRouter(authHandler, pedidoHandler, produtoHandler, tokenSvc, cacheClient, router.Options{
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor ouvindo.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}

	logg.Info("Servidor encerrado com sucesso.", nil)
}
