package moeda

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatar(t *testing.T) {
	tests := []struct {
		name  string
		valor decimal.Decimal
		want  string
	}{
		{"zero", decimal.Zero, "0,00"},
		{"sem milhar", decimal.RequireFromString("12.34"), "12,34"},
		{"uma casa decimal", decimal.RequireFromString("1234.5"), "1.234,50"},
		{"milhar exato", decimal.RequireFromString("1000"), "1.000,00"},
		{"milhao", decimal.RequireFromString("1234567.89"), "1.234.567,89"},
		{"negativo", decimal.RequireFromString("-1234.5"), "-1.234,50"},
		{"centavos", decimal.RequireFromString("0.07"), "0,07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatar(tt.valor); got != tt.want {
				t.Errorf("Formatar(%s) = %q, esperado %q", tt.valor, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		texto string
		want  string
	}{
		{"0,00", "0"},
		{"1.234,50", "1234.5"},
		{"12,34", "12.34"},
		{"1.000.000,00", "1000000"},
		{"-1.234,50", "-1234.5"},
		{" 10,00 ", "10"},
	}

	for _, tt := range tests {
		got, err := Parse(tt.texto)
		if err != nil {
			t.Fatalf("Parse(%q) retornou erro inesperado: %v", tt.texto, err)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Parse(%q) = %s, esperado %s", tt.texto, got, tt.want)
		}
	}
}

func TestParseRejeitaTextoInvalido(t *testing.T) {
	for _, texto := range []string{"abc", "12,,50", "", "1,2,3", "R$ 10,00"} {
		if _, err := Parse(texto); !errors.Is(err, ErrValorInvalido) {
			t.Errorf("Parse(%q): esperado ErrValorInvalido, obtido %v", texto, err)
		}
	}
}

func TestParseFormatarIdaEVolta(t *testing.T) {
	// varre valores com exatamente duas casas decimais
	for centavos := int64(0); centavos < 5_000_000; centavos += 9973 {
		valor := decimal.New(centavos, -2)
		volta, err := Parse(Formatar(valor))
		if err != nil {
			t.Fatalf("Parse(Formatar(%s)) retornou erro: %v", valor, err)
		}
		if !volta.Equal(valor) {
			t.Fatalf("ida e volta quebrou: %s virou %s", valor, volta)
		}
	}
}

func TestParseOuZero(t *testing.T) {
	if got := ParseOuZero("abc"); !got.IsZero() {
		t.Errorf("ParseOuZero(\"abc\") = %s, esperado 0", got)
	}
	if got := ParseOuZero("1.234,50"); !got.Equal(decimal.RequireFromString("1234.5")) {
		t.Errorf("ParseOuZero(\"1.234,50\") = %s", got)
	}
}
