package main

import (
	"net/http"
	"os"

	"github.com/fechamento-app/api-caixa/internal/auth"
	"github.com/fechamento-app/api-caixa/internal/caixa"
	"github.com/fechamento-app/api-caixa/internal/logger"
	"github.com/fechamento-app/api-caixa/internal/movimento"
	"github.com/fechamento-app/api-caixa/internal/opcredito"
	"github.com/fechamento-app/api-caixa/internal/operadora"
	"github.com/fechamento-app/api-caixa/internal/usuario"
	"github.com/fechamento-app/api-caixa/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	log := logger.Must(logger.New())
	defer log.Sync()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&caixa.Caixa{},
		&operadora.OperadoraCredito{},
		&opcredito.OpCredito{},
		&movimento.Movimento{},
	); err != nil {
		log.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	caixaHandler := caixa.NewHandler(database)
	operadoraHandler := operadora.NewHandler(database)
	opCreditoHandler := opcredito.NewHandler(database)
	movimentoHandler := movimento.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(logger.MiddlewareRequisicao(log))

	// Rotas abertas
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de caixas
	api.HandleFunc("/caixas", caixaHandler.CriarCaixa).Methods("POST")
	api.HandleFunc("/caixas", caixaHandler.ListarCaixas).Methods("GET")
	api.HandleFunc("/caixas/previa-fechamento", caixaHandler.PreviaFechamento).Methods("POST")
	api.HandleFunc("/caixas/{id}", caixaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/caixas/{id}", caixaHandler.AtualizarCaixa).Methods("PUT")
	api.HandleFunc("/caixas/{id}", caixaHandler.DeletarCaixa).Methods("DELETE")
	api.HandleFunc("/caixas/{id}/opcreditos", opCreditoHandler.ListarPorCaixa).Methods("GET")
	api.HandleFunc("/caixas/{id}/movimentos", movimentoHandler.ListarPorCaixa).Methods("GET")

	// Rotas de operadoras
	api.HandleFunc("/operadoras", operadoraHandler.CriarOperadora).Methods("POST")
	api.HandleFunc("/operadoras", operadoraHandler.ListarOperadoras).Methods("GET")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.AtualizarOperadora).Methods("PUT")
	api.HandleFunc("/operadoras/{id}", operadoraHandler.DeletarOperadora).Methods("DELETE")

	// Rotas de operações de crédito
	api.HandleFunc("/opcreditos", opCreditoHandler.CriarOpCredito).Methods("POST")
	api.HandleFunc("/opcreditos", opCreditoHandler.ListarOpCreditos).Methods("GET")
	api.HandleFunc("/opcreditos/{id}", opCreditoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/opcreditos/{id}", opCreditoHandler.AtualizarOpCredito).Methods("PUT")
	api.HandleFunc("/opcreditos/{id}", opCreditoHandler.DeletarOpCredito).Methods("DELETE")

	// Rotas de movimentos
	api.HandleFunc("/movimentos", movimentoHandler.CriarMovimento).Methods("POST")
	api.HandleFunc("/movimentos", movimentoHandler.ListarMovimentos).Methods("GET")
	api.HandleFunc("/movimentos/{id}", movimentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/movimentos/{id}", movimentoHandler.AtualizarMovimento).Methods("PUT")
	api.HandleFunc("/movimentos/{id}", movimentoHandler.DeletarMovimento).Methods("DELETE")

	handler := cors.AllowAll().Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Info("servidor rodando", zap.String("porta", porta))
	if err := http.ListenAndServe(":"+porta, handler); err != nil {
		log.Fatal("servidor encerrou", zap.Error(err))
	}
}
