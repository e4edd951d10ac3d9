package caixa

import "github.com/shopspring/decimal"

// CalcularFechamento soma o saldo inicial com todas as entradas e o
// acréscimo, e subtrai as saídas do caixa. Função pura, recalculada por
// inteiro a cada criação ou atualização — nunca ajustada incrementalmente.
func CalcularFechamento(saldoInicial, cartaoCredito, cartaoDebito, ifood, dinheiro, fiado, saidas, acrescimo decimal.Decimal) decimal.Decimal {
	return saldoInicial.
		Add(cartaoCredito).
		Add(cartaoDebito).
		Add(ifood).
		Add(dinheiro).
		Add(fiado).
		Add(acrescimo).
		Sub(saidas)
}

// AtualizarFechamento recalcula o fechamento a partir dos campos atuais
// do próprio caixa.
func (c *Caixa) AtualizarFechamento() {
	c.FechamentoDoCaixa = CalcularFechamento(
		c.SaldoInicial,
		c.ValorCartaoCredito,
		c.ValorCartaoDebito,
		c.ValorIfood,
		c.ValorDinheiro,
		c.ValorFiado,
		c.SaidasCaixa,
		c.ValorAcrescimo,
	)
}
