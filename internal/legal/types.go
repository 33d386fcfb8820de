package legal

import "time"

// DocumentType identifies a generatable document class.
type DocumentType string

const (
	DocAmparo          DocumentType = "amparo"
	DocContract        DocumentType = "contract"
	DocLawsuit         DocumentType = "lawsuit"
	DocPowerOfAttorney DocumentType = "power_of_attorney"
	DocWill            DocumentType = "will"
)

// Area identifies one of the supported areas of Mexican law.
type Area string

const (
	AreaConstitucional  Area = "constitucional"
	AreaCivil           Area = "civil"
	AreaPenal           Area = "penal"
	AreaLaboral         Area = "laboral"
	AreaMercantil       Area = "mercantil"
	AreaAdministrativo  Area = "administrativo"
	AreaFiscal          Area = "fiscal"
	AreaFamiliar        Area = "familiar"
)

var Areas = []Area{
	AreaConstitucional,
	AreaCivil,
	AreaPenal,
	AreaLaboral,
	AreaMercantil,
	AreaAdministrativo,
	AreaFiscal,
	AreaFamiliar,
}

func (a Area) Valid() bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

// RiskLevel is the qualitative rating attached to a Finding.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FieldValue is a single caller-supplied field: either free text or an
// ordered list of strings. Exactly one of the two forms is set.
type FieldValue struct {
	Text string
	List []string
}

func Text(s string) FieldValue {
	return FieldValue{Text: s}
}

func List(items ...string) FieldValue {
	if items == nil {
		items = []string{}
	}
	return FieldValue{List: items}
}

func (v FieldValue) IsList() bool {
	return v.List != nil
}

func (v FieldValue) Empty() bool {
	if v.IsList() {
		return len(v.List) == 0
	}
	return v.Text == ""
}

// DocumentRequest carries the facts needed to render one document.
type DocumentRequest struct {
	DocumentType DocumentType           `json:"document_type"`
	Fields       map[string]FieldValue  `json:"fields"`
}

// Section is one rendered block of a generated document.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GeneratedDocument is the immutable result of a successful render.
type GeneratedDocument struct {
	ID           string       `json:"id"`
	DocumentType DocumentType `json:"document_type"`
	Sections     []Section    `json:"sections"`
	RenderedText string       `json:"rendered_text"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// CaseFacts is the input to rule evaluation.
type CaseFacts struct {
	Facts         []string `json:"facts"`
	LegalQuestion string   `json:"legal_question"`
	Area          Area     `json:"area"`
}

// Finding is a single structured conclusion from the rule evaluator.
type Finding struct {
	CitedProvisions    []string  `json:"cited_provisions"`
	Conclusion         string    `json:"conclusion"`
	RiskLevel          RiskLevel `json:"risk_level"`
	RecommendedActions []string  `json:"recommended_actions"`
}

// AssessmentResult is the full outcome of analyzing a case. Disclaimer is
// always populated; findings may be the single generic no-match finding.
type AssessmentResult struct {
	Area       Area      `json:"area"`
	Findings   []Finding `json:"findings"`
	Disclaimer string    `json:"disclaimer"`
}

// RightsCheck reports which fundamental rights a situation may implicate.
type RightsCheck struct {
	ViolatedRights         []string `json:"violated_rights"`
	ConstitutionalArticles []string `json:"constitutional_articles"`
	AmparoViable           bool     `json:"amparo_viable"`
	Recommendation         string   `json:"recommendation"`
	Disclaimer             string   `json:"disclaimer"`
}

// ContractValidity reports which of the four requisitos the contract terms
// satisfy under the Civil Code.
type ContractValidity struct {
	Valid           bool              `json:"valid"`
	Requirements    map[string]bool   `json:"requirements"`
	Problems        []string          `json:"problems"`
	CitedProvisions []string          `json:"cited_provisions"`
	Recommendations []string          `json:"recommendations"`
	Disclaimer      string            `json:"disclaimer"`
}

// CrimeAssessment describes one potential crime matched against the facts.
type CrimeAssessment struct {
	Crime    string   `json:"crime"`
	Elements []string `json:"elements"`
	Penalty  string   `json:"penalty"`
}

// CriminalAssessment is the outcome of a criminal-liability scan.
type CriminalAssessment struct {
	PotentialCrimes  []CrimeAssessment `json:"potential_crimes"`
	PossibleDefenses []string          `json:"possible_defenses"`
	Recommendation   string            `json:"recommendation"`
	Disclaimer       string            `json:"disclaimer"`
}
