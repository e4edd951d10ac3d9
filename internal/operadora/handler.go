package operadora

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type operadoraRequest struct {
	NomeOperadora string `json:"nomeOperadora"`
}

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de operadoras
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarOperadora trata POST /operadoras
func (h *Handler) CriarOperadora(w http.ResponseWriter, r *http.Request) {
	var req operadoraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.NomeOperadora == "" {
		http.Error(w, "O campo 'nomeOperadora' é obrigatório", http.StatusBadRequest)
		return
	}

	o := OperadoraCredito{NomeOperadora: req.NomeOperadora}
	if err := h.Repository.Criar(h.DB, &o); err != nil {
		if errors.Is(err, ErrNomeDuplicado) {
			http.Error(w, "Já existe uma operadora com esse nome", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao criar operadora", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// ListarOperadoras trata GET /operadoras
func (h *Handler) ListarOperadoras(w http.ResponseWriter, r *http.Request) {
	operadoras, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar operadoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(operadoras)
}

// BuscarPorID trata GET /operadoras/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	o, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Operadora não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// AtualizarOperadora trata PUT /operadoras/{id}
func (h *Handler) AtualizarOperadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req operadoraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.NomeOperadora == "" {
		http.Error(w, "O campo 'nomeOperadora' é obrigatório", http.StatusBadRequest)
		return
	}

	o, err := h.Repository.Atualizar(h.DB, uint(id), req.NomeOperadora)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Operadora não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrNomeDuplicado):
			http.Error(w, "Já existe uma operadora com esse nome", http.StatusConflict)
		default:
			http.Error(w, "Erro ao atualizar operadora", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// DeletarOperadora trata DELETE /operadoras/{id}
func (h *Handler) DeletarOperadora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Operadora não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrPossuiDependentes):
			http.Error(w, "Operadora possui operações de crédito vinculadas", http.StatusConflict)
		default:
			http.Error(w, "Erro ao deletar operadora", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Operadora removida com sucesso"))
}
