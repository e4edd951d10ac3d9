package opcredito_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fechamento-app/api-caixa/internal/caixa"
	"github.com/fechamento-app/api-caixa/internal/opcredito"
	"github.com/fechamento-app/api-caixa/internal/operadora"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, *caixa.Caixa, *operadora.OperadoraCredito) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrindo banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&caixa.Caixa{}, &operadora.OperadoraCredito{}, &opcredito.OpCredito{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	c := caixa.Caixa{CaixaAberto: "Turno1", Data: time.Now()}
	if err := caixa.NewRepository().Criar(db, &c); err != nil {
		t.Fatalf("criando caixa: %v", err)
	}
	o := operadora.OperadoraCredito{NomeOperadora: "Visa"}
	if err := operadora.NewRepository().Criar(db, &o); err != nil {
		t.Fatalf("criando operadora: %v", err)
	}
	return db, &c, &o
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCriarEListarPorCaixa(t *testing.T) {
	db, c, o := setupDB(t)
	repo := opcredito.NewRepository()

	op := opcredito.OpCredito{
		CaixaID:      c.ID,
		OperadoraID:  o.ID,
		DataExtrato:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalCredito: d("120.00"),
		TotalDebito:  d("80.00"),
		ValorPix:     d("45.50"),
	}
	if err := repo.Criar(db, &op); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	ops, err := repo.ListarPorCaixa(db, c.ID)
	if err != nil {
		t.Fatalf("ListarPorCaixa: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("esperada 1 operação, obtidas %d", len(ops))
	}
	if !ops[0].ValorPix.Equal(d("45.50")) {
		t.Errorf("ValorPix = %s, esperado 45.50", ops[0].ValorPix)
	}
}

func TestCriarComCaixaInexistente(t *testing.T) {
	db, _, o := setupDB(t)
	repo := opcredito.NewRepository()

	op := opcredito.OpCredito{CaixaID: 9999, OperadoraID: o.ID, DataExtrato: time.Now()}
	if err := repo.Criar(db, &op); !errors.Is(err, opcredito.ErrCaixaNaoEncontrado) {
		t.Errorf("esperado ErrCaixaNaoEncontrado, obtido %v", err)
	}
}

func TestCriarComOperadoraInexistente(t *testing.T) {
	db, c, _ := setupDB(t)
	repo := opcredito.NewRepository()

	op := opcredito.OpCredito{CaixaID: c.ID, OperadoraID: 9999, DataExtrato: time.Now()}
	if err := repo.Criar(db, &op); !errors.Is(err, opcredito.ErrOperadoraNaoEncontrada) {
		t.Errorf("esperado ErrOperadoraNaoEncontrada, obtido %v", err)
	}
}

func TestAtualizarSobrescreveTotais(t *testing.T) {
	db, c, o := setupDB(t)
	repo := opcredito.NewRepository()

	op := opcredito.OpCredito{
		CaixaID:      c.ID,
		OperadoraID:  o.ID,
		DataExtrato:  time.Now(),
		TotalCredito: d("120.00"),
		TotalDebito:  d("80.00"),
	}
	if err := repo.Criar(db, &op); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	novosDados := op
	novosDados.TotalCredito = d("200.00")
	atualizado, err := repo.Atualizar(db, op.ID, &novosDados)
	if err != nil {
		t.Fatalf("Atualizar: %v", err)
	}
	if !atualizado.TotalCredito.Equal(d("200.00")) {
		t.Errorf("TotalCredito = %s, esperado 200.00", atualizado.TotalCredito)
	}
}

func TestDeletarOpCreditoInexistente(t *testing.T) {
	db, _, _ := setupDB(t)
	repo := opcredito.NewRepository()

	if err := repo.Deletar(db, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("esperado ErrRecordNotFound, obtido %v", err)
	}
}
