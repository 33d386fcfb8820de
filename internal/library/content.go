package library

import "github.com/lexmex/lexmex-mcp/internal/legal"

// Disclaimer is attached to every assessment the evaluator produces. The
// analysis is keyword matching over a fixed knowledge base, never a
// substitute for professional counsel.
const Disclaimer = "AVISO: Este análisis se genera mediante coincidencia de patrones sobre una base de conocimiento fija. No constituye asesoría jurídica, no garantiza la vigencia de las disposiciones citadas y no sustituye la consulta con un profesional del derecho."

// NoMatchFinding is returned when no rule of the area's table matched.
// An empty-guidance result is a legitimate outcome, not an error.
func NoMatchFinding(area legal.Area) legal.Finding {
	return legal.Finding{
		CitedProvisions: []string{},
		Conclusion:      "Los hechos y la pregunta planteada no coinciden con ningún patrón de la base de conocimiento para la materia " + string(area) + ".",
		RiskLevel:       legal.RiskLow,
		RecommendedActions: []string{
			"Reformular los hechos con mayor detalle jurídico",
			"Consultar con un abogado especializado en la materia",
		},
	}
}

// FundamentalRight maps a constitutional right to the keywords that
// suggest it and the article that protects it.
type FundamentalRight struct {
	Right    string
	Keywords []string
	Article  string
}

// FundamentalRights lists the rights scanned by the constitutional check,
// in the order they are reported.
func FundamentalRights() []FundamentalRight {
	return []FundamentalRight{
		{Right: "igualdad ante la ley", Keywords: []string{"igualdad", "discriminacion"}, Article: "Artículo 1o. constitucional"},
		{Right: "derecho a la educación", Keywords: []string{"educacion", "escuela"}, Article: "Artículo 3o. constitucional"},
		{Right: "libertad de trabajo", Keywords: []string{"libertad"}, Article: "Artículo 5o. constitucional"},
		{Right: "libertad de expresión", Keywords: []string{"expresion", "censura"}, Article: "Artículo 6o. constitucional"},
		{Right: "debido proceso legal", Keywords: []string{"debido proceso", "audiencia"}, Article: "Artículo 14 constitucional"},
		{Right: "principio de legalidad", Keywords: []string{"legalidad", "fundamentacion"}, Article: "Artículo 16 constitucional"},
		{Right: "derecho de propiedad", Keywords: []string{"propiedad", "expropiacion"}, Article: "Artículo 27 constitucional"},
	}
}

// ContractRequisito is one of the four elements a contract needs under
// the Civil Code, with the keywords that evidence it in the terms.
type ContractRequisito struct {
	Name           string
	Keywords       []string
	Problem        string
	Recommendation string
}

// ContractRequisitos lists the four requisitos in the order they are
// checked: consentimiento, objeto, causa, forma.
func ContractRequisitos() []ContractRequisito {
	return []ContractRequisito{
		{
			Name:           "consentimiento",
			Keywords:       []string{"acepto", "aceptamos", "convenimos", "acordamos"},
			Problem:        "Falta expresión clara del consentimiento",
			Recommendation: "Incluir cláusula expresa de aceptación de términos",
		},
		{
			Name:           "objeto",
			Keywords:       []string{"objeto", "prestacion", "obligacion"},
			Problem:        "Objeto del contrato no está claramente definido",
			Recommendation: "Definir claramente el objeto del contrato",
		},
		{
			Name:           "causa",
			Keywords:       []string{"porque", "motivo", "causa", "razon"},
			Problem:        "Causa del contrato no está especificada",
			Recommendation: "Especificar el motivo o fin determinante del contrato",
		},
		{
			Name:           "forma",
			Keywords:       []string{"por escrito", "firma", "firmado", "escritura"},
			Problem:        "No consta la forma escrita del contrato",
			Recommendation: "Hacer constar el contrato por escrito con la firma de las partes",
		},
	}
}

// ContractValidityProvisions are the Civil Code articles cited by the
// contract-validity analysis.
func ContractValidityProvisions() []string {
	return []string{
		"Artículo 1794 del Código Civil Federal",
		"Artículo 1795 del Código Civil Federal",
		"Artículo 1796 del Código Civil Federal",
	}
}

// CrimePattern maps a crime to its trigger keywords, constitutive
// elements and penalty under the Penal Code.
type CrimePattern struct {
	Crime     string
	Keywords  []string
	Elements  []string
	Penalty   string
	Provision string
}

// CrimePatterns lists the crimes the liability scan recognizes, in the
// order they are checked.
func CrimePatterns() []CrimePattern {
	return []CrimePattern{
		{
			Crime:    "homicidio",
			Keywords: []string{"matar", "muerte", "asesinato"},
			Elements: []string{
				"Privar de la vida a otra persona",
				"Dolo o culpa en la conducta",
				"Nexo causal entre la conducta y el resultado",
			},
			Penalty:   "12 a 30 años de prisión",
			Provision: "Artículo 302 del Código Penal Federal",
		},
		{
			Crime:    "robo",
			Keywords: []string{"robar", "sustraer", "hurtar"},
			Elements: []string{
				"Apoderamiento de cosa ajena mueble",
				"Sin derecho y sin consentimiento del dueño",
			},
			Penalty:   "Hasta 10 años de prisión según el monto de lo robado",
			Provision: "Artículo 367 del Código Penal Federal",
		},
		{
			Crime:    "fraude",
			Keywords: []string{"engañar", "defraudar", "estafar"},
			Elements: []string{
				"Engaño o aprovechamiento del error",
				"Obtención ilícita de una cosa o un lucro indebido",
			},
			Penalty:   "De 3 días a 12 años de prisión según el monto defraudado",
			Provision: "Artículo 386 del Código Penal Federal",
		},
		{
			Crime:    "lesiones",
			Keywords: []string{"golpear", "herir", "lastimar"},
			Elements: []string{
				"Alteración en la salud de una persona",
				"Causada por una conducta externa",
			},
			Penalty:   "De 3 días a 5 años de prisión según la gravedad",
			Provision: "Artículo 288 del Código Penal Federal",
		},
		{
			Crime:    "difamación",
			Keywords: []string{"calumniar", "difamar", "injuriar"},
			Elements: []string{
				"Imputación de un hecho falso",
				"Comunicación de la imputación a un tercero",
			},
			Penalty:   "Sanción conforme a la legislación penal local aplicable",
			Provision: "Legislación penal de las entidades federativas",
		},
		{
			Crime:    "violación",
			Keywords: []string{"violar", "abuso sexual", "agresión sexual"},
			Elements: []string{
				"Cópula obtenida por medio de la violencia física o moral",
				"Ausencia de consentimiento de la víctima",
			},
			Penalty:   "De 8 a 20 años de prisión",
			Provision: "Artículo 265 del Código Penal Federal",
		},
	}
}

// CriminalDefenses are the defenses suggested when a crime pattern
// matches.
func CriminalDefenses() []string {
	return []string{
		"Legítima defensa",
		"Estado de necesidad",
		"Error de hecho",
	}
}

// AreaKeywords maps each area to the keywords used to infer it when the
// caller omits the area. Evaluated in the declared order; civil is the
// fallback.
type AreaKeywordSet struct {
	Area     legal.Area
	Keywords []string
}

func AreaKeywords() []AreaKeywordSet {
	return []AreaKeywordSet{
		{Area: legal.AreaConstitucional, Keywords: []string{"constitucion", "derechos fundamentales", "amparo", "garantias"}},
		{Area: legal.AreaCivil, Keywords: []string{"contrato", "propiedad", "obligaciones", "responsabilidad civil"}},
		{Area: legal.AreaPenal, Keywords: []string{"delito", "crimen", "penal", "criminal"}},
		{Area: legal.AreaLaboral, Keywords: []string{"trabajo", "empleado", "salario", "despido"}},
		{Area: legal.AreaMercantil, Keywords: []string{"comercio", "empresa", "mercantil", "sociedad"}},
		{Area: legal.AreaAdministrativo, Keywords: []string{"autoridad", "funcionario", "administrativo", "gobierno"}},
		{Area: legal.AreaFiscal, Keywords: []string{"impuesto", "fiscal", "tributario", "hacienda"}},
		{Area: legal.AreaFamiliar, Keywords: []string{"matrimonio", "divorcio", "patria potestad", "alimentos"}},
	}
}
