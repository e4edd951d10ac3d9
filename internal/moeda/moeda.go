package moeda

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrValorInvalido indica texto monetário fora do formato "1.234,56".
var ErrValorInvalido = errors.New("valor monetário inválido")

// Formatar renderiza um valor com exatamente duas casas decimais no
// formato pt-BR: ponto como separador de milhar e vírgula como separador
// decimal. Ex.: 1234.5 vira "1.234,50".
func Formatar(valor decimal.Decimal) string {
	fixo := valor.StringFixed(2)

	negativo := strings.HasPrefix(fixo, "-")
	if negativo {
		fixo = strings.TrimPrefix(fixo, "-")
	}

	partes := strings.SplitN(fixo, ".", 2)
	inteiro, fracao := partes[0], partes[1]

	var b strings.Builder
	if negativo {
		b.WriteByte('-')
	}
	for i, digito := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digito)
	}
	b.WriteByte(',')
	b.WriteString(fracao)
	return b.String()
}

// Parse é o inverso exato de Formatar: remove os pontos de milhar, troca
// a vírgula por ponto e interpreta o resultado como decimal. Texto fora
// do formato retorna ErrValorInvalido.
func Parse(texto string) (decimal.Decimal, error) {
	normalizado := strings.ReplaceAll(strings.TrimSpace(texto), ".", "")
	normalizado = strings.ReplaceAll(normalizado, ",", ".")

	valor, err := decimal.NewFromString(normalizado)
	if err != nil {
		return decimal.Zero, ErrValorInvalido
	}
	return valor, nil
}

// ParseOuZero aplica Parse e devolve zero para texto inválido. Usado na
// prévia do fechamento, onde um campo ainda não preenchido não deve
// bloquear o cálculo.
func ParseOuZero(texto string) decimal.Decimal {
	valor, err := Parse(texto)
	if err != nil {
		return decimal.Zero
	}
	return valor
}
