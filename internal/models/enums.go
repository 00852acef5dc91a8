package models

// Area é a grande área de conhecimento de uma pesquisa.
type Area string

const (
	AreaSaude      Area = "Saúde"
	AreaTecnologia Area = "Tecnologia"
	AreaHumanas    Area = "Humanas"
	AreaExatas     Area = "Exatas"
	AreaBiologicas Area = "Biológicas"
)

// Areas returns the fixed set of areas, in display order.
func Areas() []Area {
	return []Area{AreaSaude, AreaTecnologia, AreaHumanas, AreaExatas, AreaBiologicas}
}

func (a Area) Valid() bool {
	switch a {
	case AreaSaude, AreaTecnologia, AreaHumanas, AreaExatas, AreaBiologicas:
		return true
	}
	return false
}

// ParseArea coage entrada desconhecida para a área padrão em vez de
// rejeitar, mantendo submissões antigas válidas.
func ParseArea(s string) Area {
	if a := Area(s); a.Valid() {
		return a
	}
	return AreaHumanas
}

// Evidencia é a força da evidência científica de uma pesquisa.
type Evidencia string

const (
	EvidenciaForte    Evidencia = "Forte"
	EvidenciaModerada Evidencia = "Moderada"
	EvidenciaInicial  Evidencia = "Inicial"
)

// Evidencias returns the fixed set of evidence strengths, in display order.
func Evidencias() []Evidencia {
	return []Evidencia{EvidenciaForte, EvidenciaModerada, EvidenciaInicial}
}

func (e Evidencia) Valid() bool {
	switch e {
	case EvidenciaForte, EvidenciaModerada, EvidenciaInicial:
		return true
	}
	return false
}

// ParseEvidencia coage entrada desconhecida para a força padrão.
func ParseEvidencia(s string) Evidencia {
	if e := Evidencia(s); e.Valid() {
		return e
	}
	return EvidenciaInicial
}
