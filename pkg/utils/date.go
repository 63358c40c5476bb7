package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

var (
	brDatePattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// ParseDateToISO normaliza datas do banco para YYYY-MM-DD.
// "5/3/2024" e "05/03/2024" viram "2024-03-05"; "2024-03-05T10:00:00Z" vira "2024-03-05".
// Qualquer outro texto é devolvido como veio, sem validação.
func ParseDateToISO(val any) string {
	str := strings.TrimSpace(ToText(val))
	if str == "" {
		return ""
	}

	if match := brDatePattern.FindStringSubmatch(str); match != nil {
		return fmt.Sprintf("%s-%s-%s", match[3], padTwo(match[2]), padTwo(match[1]))
	}

	if isoDatePattern.MatchString(str) {
		return str[:10]
	}

	return str
}

// FormatISOTimestamp formata no mesmo padrão usado pelo banco (UTC, milissegundos).
func FormatISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}

	return s
}
