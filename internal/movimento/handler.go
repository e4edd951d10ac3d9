package movimento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fechamento-app/api-caixa/internal/moeda"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type movimentoRequest struct {
	CaixaID       uint   `json:"caixaId"`
	TipoMovimento string `json:"tipoMovimento"`
	Valor         string `json:"valor"`
	DataHora      string `json:"dataHora"`
	Descricao     string `json:"descricao"`
}

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de movimentos
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func (req *movimentoRequest) paraModelo() (*Movimento, string, error) {
	m := Movimento{
		CaixaID:       req.CaixaID,
		TipoMovimento: req.TipoMovimento,
		Descricao:     req.Descricao,
	}

	if req.DataHora == "" {
		m.DataHora = time.Now()
	} else {
		dataHora, err := time.Parse(time.RFC3339, req.DataHora)
		if err != nil {
			return nil, "dataHora", err
		}
		m.DataHora = dataHora
	}

	valor, err := moeda.Parse(req.Valor)
	if err != nil {
		return nil, "valor", err
	}
	m.Valor = valor

	return &m, "", nil
}

// CriarMovimento trata POST /movimentos
func (h *Handler) CriarMovimento(w http.ResponseWriter, r *http.Request) {
	var req movimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaID == 0 {
		http.Error(w, "O campo 'caixaId' é obrigatório", http.StatusBadRequest)
		return
	}
	if req.TipoMovimento == "" {
		http.Error(w, "O campo 'tipoMovimento' é obrigatório", http.StatusBadRequest)
		return
	}

	m, campo, err := req.paraModelo()
	if err != nil {
		if errors.Is(err, moeda.ErrValorInvalido) {
			http.Error(w, "Valor monetário inválido no campo '"+campo+"'", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Campo '"+campo+"' inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, m); err != nil {
		if errors.Is(err, ErrCaixaNaoEncontrado) {
			http.Error(w, "Caixa informado não existe", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao criar movimento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListarMovimentos trata GET /movimentos
func (h *Handler) ListarMovimentos(w http.ResponseWriter, r *http.Request) {
	movimentos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar movimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movimentos)
}

// ListarPorCaixa trata GET /caixas/{id}/movimentos
func (h *Handler) ListarPorCaixa(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de caixa inválido", http.StatusBadRequest)
		return
	}

	movimentos, err := h.Repository.ListarPorCaixa(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar movimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movimentos)
}

// BuscarPorID trata GET /movimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Movimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// AtualizarMovimento trata PUT /movimentos/{id}
func (h *Handler) AtualizarMovimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req movimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.CaixaID == 0 {
		http.Error(w, "O campo 'caixaId' é obrigatório", http.StatusBadRequest)
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

	m, err := h.Repository.Atualizar(h.DB, uint(id), novosDados)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Movimento não encontrado", http.StatusNotFound)
		case errors.Is(err, ErrCaixaNaoEncontrado):
			http.Error(w, "Caixa informado não existe", http.StatusNotFound)
		default:
			http.Error(w, "Erro ao atualizar movimento", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// DeletarMovimento trata DELETE /movimentos/{id}
func (h *Handler) DeletarMovimento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Movimento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar movimento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Movimento removido com sucesso"))
}
