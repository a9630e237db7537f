package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// NormalizeMonth converte uma representação heterogênea de mês na chave
// canônica de 6 dígitos (YYYYMM). Aceita valores já numéricos ("202401")
// ou strings contendo dígitos com separadores/rótulos; a PRIMEIRA sequência
// contígua de dígitos é reinterpretada como inteiro e formatada com zeros à
// esquerda. Retorna ok=false quando não há dígitos ou a conversão falha —
// nunca gera pânico; o chamador descarta a linha.
func NormalizeMonth(raw string) (string, bool) {
	run := digitRun.FindString(strings.TrimSpace(raw))
	if run == "" {
		return "", false
	}

	value, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("%06d", value), true
}

// NormalizeProductID coage um identificador de produto (CAI) para a forma
// canônica de string inteira. Valores numéricos (inclusive decimais como
// "1234.0") são truncados para inteiro; valores não numéricos caem no
// identificador "0", compatível com a base histórica. Retorna ok=false no
// fallback para que o chamador contabilize a ocorrência.
func NormalizeProductID(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "0", false
	}

	return strconv.FormatInt(int64(value), 10), true
}

// FormatMonthDisplay formata a chave canônica YYYYMM como "YYYY/MM" para
// exibição. Chaves fora do formato esperado são devolvidas sem alteração.
func FormatMonthDisplay(month string) string {
	if len(month) != 6 {
		return month
	}
	return month[:4] + "/" + month[4:]
}
