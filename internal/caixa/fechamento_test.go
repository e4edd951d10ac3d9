package caixa

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalcularFechamento(t *testing.T) {
	got := CalcularFechamento(
		d("100.00"), // saldo inicial
		d("50.00"),  // cartão de crédito
		d("20.00"),  // cartão de débito
		d("0"),      // ifood
		d("30.00"),  // dinheiro
		d("0"),      // fiado
		d("10.00"),  // saídas
		d("5.00"),   // acréscimo
	)
	if !got.Equal(d("195.00")) {
		t.Errorf("fechamento = %s, esperado 195.00", got)
	}
}

func TestCalcularFechamentoSaidasReduzemUmParaUm(t *testing.T) {
	base := CalcularFechamento(d("500"), d("10"), d("20"), d("30"), d("40"), d("50"), d("60"), d("70"))

	for _, extra := range []string{"0.01", "1", "99.99", "1234.56"} {
		x := d(extra)
		com := CalcularFechamento(d("500"), d("10"), d("20"), d("30"), d("40"), d("50"), d("60").Add(x), d("70"))
		if !base.Sub(com).Equal(x) {
			t.Errorf("aumentar saídas em %s mudou o fechamento em %s", x, base.Sub(com))
		}
	}
}

func TestAtualizarFechamento(t *testing.T) {
	c := Caixa{
		SaldoInicial:  d("100"),
		ValorDinheiro: d("250.50"),
		SaidasCaixa:   d("50.50"),
	}
	c.AtualizarFechamento()
	if !c.FechamentoDoCaixa.Equal(d("300")) {
		t.Errorf("FechamentoDoCaixa = %s, esperado 300", c.FechamentoDoCaixa)
	}
}
