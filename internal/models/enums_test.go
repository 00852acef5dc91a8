package models

import (
	"testing"
)

func TestParseAreaCoercesUnknownToDefault(t *testing.T) {
	cases := []struct {
		in   string
		want Area
	}{
		{"Saúde", AreaSaude},
		{"Tecnologia", AreaTecnologia},
		{"Humanas", AreaHumanas},
		{"Exatas", AreaExatas},
		{"Biológicas", AreaBiologicas},
		{"Invalid", AreaHumanas},
		{"", AreaHumanas},
		{"saúde", AreaHumanas}, // case-sensitive, como o conjunto fixo
	}

	for _, tc := range cases {
		if got := ParseArea(tc.in); got != tc.want {
			t.Errorf("ParseArea(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseEvidenciaCoercesUnknownToDefault(t *testing.T) {
	cases := []struct {
		in   string
		want Evidencia
	}{
		{"Forte", EvidenciaForte},
		{"Moderada", EvidenciaModerada},
		{"Inicial", EvidenciaInicial},
		{"", EvidenciaInicial},
		{"Fortíssima", EvidenciaInicial},
	}

	for _, tc := range cases {
		if got := ParseEvidencia(tc.in); got != tc.want {
			t.Errorf("ParseEvidencia(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEnumSetsAreClosed(t *testing.T) {
	if len(Areas()) != 5 {
		t.Errorf("Areas() returned %d values, want 5", len(Areas()))
	}
	for _, a := range Areas() {
		if !a.Valid() {
			t.Errorf("Areas() contains invalid value %q", a)
		}
	}

	if len(Evidencias()) != 3 {
		t.Errorf("Evidencias() returned %d values, want 3", len(Evidencias()))
	}
	for _, e := range Evidencias() {
		if !e.Valid() {
			t.Errorf("Evidencias() contains invalid value %q", e)
		}
	}

	if Area("Jurídicas").Valid() {
		t.Error("Area fora do conjunto fixo não deveria ser válida")
	}
}
