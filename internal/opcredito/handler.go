package opcredito

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

type opCreditoRequest struct {
	CaixaID      uint   `json:"caixaId"`
	OperadoraID  uint   `json:"operadoraId"`
	DataExtrato  string `json:"dataExtrato"`
	TotalCredito string `json:"totalCredito"`
	TotalDebito  string `json:"totalDebito"`
	ValorPix     string `json:"valorPix"`
	ValorVoucher string `json:"valorVoucher"`
}

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de operações de crédito
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func parseCampoMonetario(texto string) (decimal.Decimal, error) {
	if texto == "" {
		return decimal.Zero, nil
	}
	return moeda.Parse(texto)
}

func (req *opCreditoRequest) paraModelo() (*OpCredito, string, error) {
	op := OpCredito{
		CaixaID:     req.CaixaID,
		OperadoraID: req.OperadoraID,
	}

	if req.DataExtrato == "" {
		op.DataExtrato = time.Now()
	} else {
		data, err := time.Parse("2006-01-02", req.DataExtrato)
		if err != nil {
			return nil, "dataExtrato", err
		}
		op.DataExtrato = data
	}

	campos := []struct {
		nome    string
		texto   string
		destino *decimal.Decimal
	}{
		{"totalCredito", req.TotalCredito, &op.TotalCredito},
		{"totalDebito", req.TotalDebito, &op.TotalDebito},
		{"valorPix", req.ValorPix, &op.ValorPix},
		{"valorVoucher", req.ValorVoucher, &op.ValorVoucher},
	}
	for _, campo := range campos {
		valor, err := parseCampoMonetario(campo.texto)
		if err != nil {
			return nil, campo.nome, err
		}
		*campo.destino = valor
	}

	return &op, "", nil
}

func responderErroReferencia(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrCaixaNaoEncontrado):
		http.Error(w, "Caixa informado não existe", http.StatusNotFound)
	case errors.Is(err, ErrOperadoraNaoEncontrada):
		http.Error(w, "Operadora informada não existe", http.StatusNotFound)
	default:
		return false
	}
	return true
}

// CriarOpCredito trata POST /opcreditos
func (h *Handler) CriarOpCredito(w http.ResponseWriter, r *http.Request) {
	var req opCreditoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaID == 0 || req.OperadoraID == 0 {
		http.Error(w, "Os campos 'caixaId' e 'operadoraId' são obrigatórios", http.StatusBadRequest)
		return
	}

	op, campo, err := req.paraModelo()
	if err != nil {
		if errors.Is(err, moeda.ErrValorInvalido) {
			http.Error(w, "Valor monetário inválido no campo '"+campo+"'", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Campo '"+campo+"' inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, op); err != nil {
		if responderErroReferencia(w, err) {
			return
		}
		http.Error(w, "Erro ao criar operação de crédito", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(op)
}

// ListarOpCreditos trata GET /opcreditos
func (h *Handler) ListarOpCreditos(w http.ResponseWriter, r *http.Request) {
	ops, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar operações de crédito", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ops)
}

// ListarPorCaixa trata GET /caixas/{id}/opcreditos
func (h *Handler) ListarPorCaixa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de caixa inválido", http.StatusBadRequest)
		return
	}

	ops, err := h.Repository.ListarPorCaixa(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar operações de crédito", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ops)
}

// BuscarPorID trata GET /opcreditos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	op, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Operação de crédito não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(op)
}

// AtualizarOpCredito trata PUT /opcreditos/{id}
func (h *Handler) AtualizarOpCredito(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req opCreditoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaID == 0 || req.OperadoraID == 0 {
		http.Error(w, "Os campos 'caixaId' e 'operadoraId' são obrigatórios", http.StatusBadRequest)
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

	op, err := h.Repository.Atualizar(h.DB, uint(id), novosDados)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Operação de crédito não encontrada", http.StatusNotFound)
			return
		}
		if responderErroReferencia(w, err) {
			return
		}
		http.Error(w, "Erro ao atualizar operação de crédito", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(op)
}

// DeletarOpCredito trata DELETE /opcreditos/{id}
func (h *Handler) DeletarOpCredito(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Operação de crédito não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar operação de crédito", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Operação de crédito removida com sucesso"))
}
