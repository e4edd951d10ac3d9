package movimento_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fechamento-app/api-caixa/internal/caixa"
	"github.com/fechamento-app/api-caixa/internal/movimento"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, *caixa.Caixa) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrindo banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&caixa.Caixa{}, &movimento.Movimento{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	c := caixa.Caixa{CaixaAberto: "Turno1", Data: time.Now()}
	if err := caixa.NewRepository().Criar(db, &c); err != nil {
		t.Fatalf("criando caixa: %v", err)
	}
	return db, &c
}

func TestCriarEListarPorCaixa(t *testing.T) {
	db, c := setupDB(t)
	repo := movimento.NewRepository()

	m := movimento.Movimento{
		CaixaID:       c.ID,
		TipoMovimento: "sangria",
		Valor:         decimal.RequireFromString("25.00"),
		DataHora:      time.Now(),
		Descricao:     "retirada para troco",
	}
	if err := repo.Criar(db, &m); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	movimentos, err := repo.ListarPorCaixa(db, c.ID)
	if err != nil {
		t.Fatalf("ListarPorCaixa: %v", err)
	}
	if len(movimentos) != 1 {
		t.Fatalf("esperado 1 movimento, obtidos %d", len(movimentos))
	}
	if movimentos[0].TipoMovimento != "sangria" {
		t.Errorf("TipoMovimento = %q, esperado \"sangria\"", movimentos[0].TipoMovimento)
	}
}

func TestCriarComCaixaInexistente(t *testing.T) {
	db, _ := setupDB(t)
	repo := movimento.NewRepository()

	m := movimento.Movimento{CaixaID: 9999, TipoMovimento: "sangria", DataHora: time.Now()}
	if err := repo.Criar(db, &m); !errors.Is(err, movimento.ErrCaixaNaoEncontrado) {
		t.Errorf("esperado ErrCaixaNaoEncontrado, obtido %v", err)
	}
}

func TestAtualizarMovimento(t *testing.T) {
	db, c := setupDB(t)
	repo := movimento.NewRepository()

	m := movimento.Movimento{
		CaixaID:       c.ID,
		TipoMovimento: "sangria",
		Valor:         decimal.RequireFromString("25.00"),
		DataHora:      time.Now(),
	}
	if err := repo.Criar(db, &m); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	novosDados := m
	novosDados.Valor = decimal.RequireFromString("40.00")
	novosDados.Descricao = "corrigido"
	atualizado, err := repo.Atualizar(db, m.ID, &novosDados)
	if err != nil {
		t.Fatalf("Atualizar: %v", err)
	}
	if !atualizado.Valor.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("Valor = %s, esperado 40.00", atualizado.Valor)
	}
}

func TestDeletarMovimentoInexistente(t *testing.T) {
	db, _ := setupDB(t)
	repo := movimento.NewRepository()

	if err := repo.Deletar(db, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("esperado ErrRecordNotFound, obtido %v", err)
	}
}
