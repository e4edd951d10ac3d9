package caixa_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fechamento-app/api-caixa/internal/caixa"
)

func TestPreviaFechamento(t *testing.T) {
	h := caixa.NewHandler(nil)

	body := `{
		"saldoInicial": "100,00",
		"valorCartaoCredito": "50,00",
		"valorCartaoDebito": "20,00",
		"valorDinheiro": "30,00",
		"saidasCaixa": "10,00",
		"valorAcrescimo": "5,00"
	}`
	req := httptest.NewRequest(http.MethodPost, "/caixas/previa-fechamento", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PreviaFechamento(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	var resp struct {
		FechamentoDoCaixa string `json:"fechamentoDoCaixa"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decodificando resposta: %v", err)
	}
	if resp.FechamentoDoCaixa != "195,00" {
		t.Errorf("fechamentoDoCaixa = %q, esperado \"195,00\"", resp.FechamentoDoCaixa)
	}
}

// Campo malformado entra como zero na prévia em vez de derrubar o cálculo.
func TestPreviaFechamentoCampoInvalidoViraZero(t *testing.T) {
	h := caixa.NewHandler(nil)

	body := `{"saldoInicial": "100,00", "valorDinheiro": "abc"}`
	req := httptest.NewRequest(http.MethodPost, "/caixas/previa-fechamento", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PreviaFechamento(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	var resp struct {
		FechamentoDoCaixa string `json:"fechamentoDoCaixa"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decodificando resposta: %v", err)
	}
	if resp.FechamentoDoCaixa != "100,00" {
		t.Errorf("fechamentoDoCaixa = %q, esperado \"100,00\"", resp.FechamentoDoCaixa)
	}
}

// Para persistir, valor malformado é rejeitado em vez de virar zero.
func TestCriarCaixaValorInvalido(t *testing.T) {
	db := setupDB(t)
	h := caixa.NewHandler(db)

	body := `{"caixaAberto": "Turno1", "valorDinheiro": "12,,50"}`
	req := httptest.NewRequest(http.MethodPost, "/caixas", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CriarCaixa(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, esperado 422", rec.Code)
	}

	caixas, err := caixa.NewRepository().ListarTodos(db)
	if err != nil {
		t.Fatalf("ListarTodos: %v", err)
	}
	if len(caixas) != 0 {
		t.Errorf("nenhum caixa deveria ter sido persistido, obtidos %d", len(caixas))
	}
}
