package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Abreviações pt-BR, com e sem ponto final ("jan." e "jan").
var ptBrMonths = map[string]time.Month{
	"jan.": time.January, "fev.": time.February, "mar.": time.March,
	"abr.": time.April, "mai.": time.May, "jun.": time.June,
	"jul.": time.July, "ago.": time.August, "set.": time.September,
	"out.": time.October, "nov.": time.November, "dez.": time.December,
	"jan": time.January, "fev": time.February, "mar": time.March,
	"abr": time.April, "mai": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "set": time.September,
	"out": time.October, "nov": time.November, "dez": time.December,
}

// ParsePtBrDate interpreta datas no formato do export do Typebot:
// "8 de jan., 23:20" ou "31 de dez. de 2025, 14:51". Sem ano assume o ano de
// now; sem hora assume 00:00. Se o resultado cair mais de 30 dias no futuro,
// recua um ano — é a virada de ano de um export sem ano explícito.
// Entrada imprestável devolve now, nunca erro.
func ParsePtBrDate(raw string, now time.Time) time.Time {
	if strings.TrimSpace(raw) == "" {
		return now
	}

	year := now.Year()
	month := now.Month()
	hour, minute := 0, 0

	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(raw), "de ", ""))
	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(parts) < 2 {
		return now
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return now
	}

	if m, ok := ptBrMonths[parts[1]]; ok {
		month = m
	}

	explicitYear := false
	if len(parts) >= 4 {
		if y, err := strconv.Atoi(parts[2]); err == nil && len(parts[2]) == 4 {
			year = y
			explicitYear = true
		}
	}

	last := parts[len(parts)-1]
	if strings.Contains(last, ":") {
		hm := strings.SplitN(last, ":", 2)
		if h, err := strconv.Atoi(hm[0]); err == nil {
			hour = h
		}
		if m, err := strconv.Atoi(hm[1]); err == nil {
			minute = m
		}
	}

	date := time.Date(year, month, day, hour, minute, 0, 0, now.Location())

	// Correção de virada de ano, só quando o ano foi deduzido.
	if !explicitYear && date.After(now.Add(30*24*time.Hour)) {
		date = date.AddDate(-1, 0, 0)
	}

	return date
}

// ParseSubmittedAt aceita tanto timestamps ISO (caminho feliz dos webhooks)
// quanto o formato pt-BR do CSV.
func ParseSubmittedAt(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now
	}

	if strings.Contains(raw, "-") {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}

	return ParsePtBrDate(raw, now)
}
