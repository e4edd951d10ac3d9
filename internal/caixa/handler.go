package caixa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fechamento-app/api-caixa/internal/moeda"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// caixaRequest carrega os valores monetários como texto no formato
// pt-BR ("1.234,50"), do jeito que os campos do formulário enviam.
type caixaRequest struct {
	CaixaAberto        string `json:"caixaAberto"`
	Data               string `json:"data"`
	SaldoInicial       string `json:"saldoInicial"`
	ValorCartaoCredito string `json:"valorCartaoCredito"`
	ValorCartaoDebito  string `json:"valorCartaoDebito"`
	ValorIfood         string `json:"valorIfood"`
	ValorDinheiro      string `json:"valorDinheiro"`
	ValorFiado         string `json:"valorFiado"`
	SaidasCaixa        string `json:"saidasCaixa"`
	ValorAcrescimo     string `json:"valorAcrescimo"`
}

type previaFechamentoResponse struct {
	FechamentoDoCaixa string `json:"fechamentoDoCaixa"`
}

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de caixas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// parseCampoMonetario aceita campo vazio como zero; texto malformado é
// rejeitado (o zero-por-padrão vale só para a prévia, não para persistir).
func parseCampoMonetario(texto string) (decimal.Decimal, error) {
	if texto == "" {
		return decimal.Zero, nil
	}
	return moeda.Parse(texto)
}

func (req *caixaRequest) paraModelo() (*Caixa, string, error) {
	c := Caixa{CaixaAberto: req.CaixaAberto}

	if req.Data == "" {
		c.Data = time.Now()
	} else {
		data, err := time.Parse("2006-01-02", req.Data)
		if err != nil {
			return nil, "data", err
		}
		c.Data = data
	}

	campos := []struct {
		nome    string
		texto   string
		destino *decimal.Decimal
	}{
		{"saldoInicial", req.SaldoInicial, &c.SaldoInicial},
		{"valorCartaoCredito", req.ValorCartaoCredito, &c.ValorCartaoCredito},
		{"valorCartaoDebito", req.ValorCartaoDebito, &c.ValorCartaoDebito},
		{"valorIfood", req.ValorIfood, &c.ValorIfood},
		{"valorDinheiro", req.ValorDinheiro, &c.ValorDinheiro},
		{"valorFiado", req.ValorFiado, &c.ValorFiado},
		{"saidasCaixa", req.SaidasCaixa, &c.SaidasCaixa},
		{"valorAcrescimo", req.ValorAcrescimo, &c.ValorAcrescimo},
	}
	for _, campo := range campos {
		valor, err := parseCampoMonetario(campo.texto)
		if err != nil {
			return nil, campo.nome, err
		}
		*campo.destino = valor
	}

	return &c, "", nil
}

// CriarCaixa trata POST /caixas
func (h *Handler) CriarCaixa(w http.ResponseWriter, r *http.Request) {
	var req caixaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaAberto == "" {
		http.Error(w, "O campo 'caixaAberto' é obrigatório", http.StatusBadRequest)
		return
	}

	c, campo, err := req.paraModelo()
	if err != nil {
		if errors.Is(err, moeda.ErrValorInvalido) {
			http.Error(w, "Valor monetário inválido no campo '"+campo+"'", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Campo '"+campo+"' inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, c); err != nil {
		if errors.Is(err, ErrNomeDuplicado) {
			http.Error(w, "Já existe um caixa com esse nome", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao criar caixa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarCaixas trata GET /caixas
func (h *Handler) ListarCaixas(w http.ResponseWriter, r *http.Request) {
	caixas, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar caixas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(caixas)
}

// BuscarPorID trata GET /caixas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Caixa não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarCaixa trata PUT /caixas/{id}
func (h *Handler) AtualizarCaixa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req caixaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaAberto == "" {
		http.Error(w, "O campo 'caixaAberto' é obrigatório", http.StatusBadRequest)
		return
	}

	novosDados, campo, err := req.paraModelo()
	if err != nil {
		if errors.Is(err, moeda.ErrValorInvalido) {
			http.Error(w, "Valor monetário inválido no campo '"+campo+"'", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Campo '"+campo+"' inválido", http.StatusBadRequest)
		return
	}

	atualizado, err := h.Repository.Atualizar(h.DB, uint(id), novosDados)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Caixa não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrNomeDuplicado):
			http.Error(w, "Já existe um caixa com esse nome", http.StatusConflict)
		default:
			http.Error(w, "Erro ao atualizar caixa", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// DeletarCaixa trata DELETE /caixas/{id}
func (h *Handler) DeletarCaixa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Caixa não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrPossuiDependentes):
			http.Error(w, "Caixa possui operações ou movimentos vinculados", http.StatusConflict)
		default:
			http.Error(w, "Erro ao deletar caixa", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Caixa removido com sucesso"))
}

// PreviaFechamento trata POST /caixas/previa-fechamento: calcula o
// fechamento ao vivo enquanto o formulário é preenchido. Campos
// malformados entram como zero em vez de derrubar a prévia.
func (h *Handler) PreviaFechamento(w http.ResponseWriter, r *http.Request) {
	var req caixaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	fechamento := CalcularFechamento(
		moeda.ParseOuZero(req.SaldoInicial),
		moeda.ParseOuZero(req.ValorCartaoCredito),
		moeda.ParseOuZero(req.ValorCartaoDebito),
		moeda.ParseOuZero(req.ValorIfood),
		moeda.ParseOuZero(req.ValorDinheiro),
		moeda.ParseOuZero(req.ValorFiado),
		moeda.ParseOuZero(req.SaidasCaixa),
		moeda.ParseOuZero(req.ValorAcrescimo),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(previaFechamentoResponse{
		FechamentoDoCaixa: moeda.Formatar(fechamento),
	})
}
