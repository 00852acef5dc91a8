package utils

import (
	"testing"
)

func TestNormalizeOriginalLink(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"doi puro", "10.1000/xyz", "https://doi.org/10.1000/xyz"},
		{"doi.org sem esquema", "doi.org/10.1/abc", "https://doi.org/10.1/abc"},
		{"doi.org maiúsculo", "DOI.org/10.1/abc", "https://DOI.org/10.1/abc"},
		{"http passa direto", "http://x.com", "http://x.com"},
		{"https passa direto", "https://example.org/paper", "https://example.org/paper"},
		{"dominio nu", "example.com", "https://example.com"},
		{"espaços nas pontas", "  example.com  ", "https://example.com"},
		{"vazio passa vazio", "", ""},
		{"só espaços", "   ", ""},
		{"10. sem barra não é doi", "10.example", "https://10.example"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOriginalLink(tc.in)
			if got != tc.want {
				t.Errorf("NormalizeOriginalLink(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
