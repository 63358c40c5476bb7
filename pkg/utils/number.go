package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySymbols = regexp.MustCompile(`[R$\s]`)
	nonNumeric      = regexp.MustCompile(`[^\d.]`)
	percentSymbols  = regexp.MustCompile(`[%\s]`)
	floatPrefix     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseCurrency converte um valor monetário vindo do banco em float64.
// Aceita número, "R$ 1.234,56", "1.234,56" ou "1234.56". Qualquer entrada inválida resulta em 0.
func ParseCurrency(val any) float64 {
	if n, ok := numberValue(val); ok {
		return n
	}

	cleanStr, ok := stringValue(val)
	if !ok {
		return 0
	}

	// Formato brasileiro: vírgula decimal ou mais de um ponto de milhar
	if strings.Contains(cleanStr, ",") || len(strings.Split(cleanStr, ".")) > 2 {
		cleanStr = currencySymbols.ReplaceAllString(cleanStr, "")
		cleanStr = strings.ReplaceAll(cleanStr, ".", "")
		cleanStr = strings.Replace(cleanStr, ",", ".", 1)
	} else {
		cleanStr = nonNumeric.ReplaceAllString(cleanStr, "")
	}

	return ParseFloatPrefix(cleanStr)
}

// ParsePercentage converte "15%", "1,5%" ou um número em float64. Entrada inválida resulta em 0.
func ParsePercentage(val any) float64 {
	if n, ok := numberValue(val); ok {
		return n
	}

	cleanStr, ok := stringValue(val)
	if !ok {
		return 0
	}

	cleanStr = percentSymbols.ReplaceAllString(cleanStr, "")
	if strings.Contains(cleanStr, ",") {
		cleanStr = strings.ReplaceAll(cleanStr, ".", "")
		cleanStr = strings.Replace(cleanStr, ",", ".", 1)
	}

	return ParseFloatPrefix(cleanStr)
}

// ParseFloatPrefix lê o maior prefixo numérico válido da string ("12.5abc" -> 12.5).
// Sem prefixo numérico retorna 0.
func ParseFloatPrefix(s string) float64 {
	prefix := floatPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}

	number, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}

	return number
}

// numberValue reconhece os tipos numéricos que chegam do banco (JSON decodifica como float64).
func numberValue(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	}

	return 0, false
}

// stringValue devolve a representação textual de valores "verdadeiros"; nil, "" e false não têm valor.
func stringValue(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), v
	case []byte:
		return string(v), len(v) > 0
	case interface{ String() string }:
		s := v.String()
		return s, s != ""
	}

	return "", false
}

// ToText converte um valor do banco em texto, tratando números sem notação científica.
func ToText(val any) string {
	if n, ok := numberValue(val); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	s, ok := stringValue(val)
	if !ok {
		return ""
	}

	return s
}

// ToInt converte o valor de um contador do banco em inteiro.
func ToInt(val any) int {
	if n, ok := numberValue(val); ok {
		return int(n)
	}

	return int(ParseCurrency(val))
}
