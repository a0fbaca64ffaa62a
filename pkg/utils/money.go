package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// O dashboard exibe valores no padrão colombiano: ponto como separador de
// milhar e vírgula como separador decimal.
var moneyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatMoney formata um valor como moeda, com o símbolo "$" e sempre
// duas casas decimais. Ex.: 1234567.5 -> "$1.234.567,50".
func FormatMoney(value float64) string {
	return moneyPrinter.Sprintf("$%v", number.Decimal(
		value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
