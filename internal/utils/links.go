package utils

import (
	"strings"
)

// NormalizeOriginalLink canonicaliza o campo "link original" antes de salvar:
// DOI puro vira https://doi.org/<doi>, doi.org sem esquema ganha https://,
// URLs com esquema passam direto e qualquer outra coisa ganha https://.
// Entrada vazia passa vazia (o formulário já exige o campo).
func NormalizeOriginalLink(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)

	// DOI puro, ex: 10.1000/xyz
	if strings.HasPrefix(s, "10.") && strings.Contains(s, "/") {
		return "https://doi.org/" + s
	}

	if strings.HasPrefix(lower, "doi.org/") {
		return "https://" + s
	}

	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}

	return "https://" + s
}
