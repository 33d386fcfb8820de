package drafting

const amparoSchema = `{
	"type": "object",
	"properties": {
		"quejoso_nombre": {"type": "string", "description": "Name of the complainant"},
		"quejoso_domicilio": {"type": "string", "description": "Address of the complainant"},
		"autoridad_responsable": {"type": "string", "description": "Responsible authority"},
		"acto_reclamado": {"type": "string", "description": "Act being challenged"},
		"derecho_violado": {"type": "string", "description": "Right that was violated"},
		"conceptos_violacion": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Concepts of violation"
		},
		"fecha_acto": {"type": "string", "format": "date", "description": "Date of the act"},
		"juzgado": {"type": "string", "description": "Court/jurisdiction"},
		"fecha_presentacion": {"type": "string", "format": "date", "description": "Filing date (defaults to today)"}
	},
	"required": ["quejoso_nombre", "quejoso_domicilio", "autoridad_responsable",
		"acto_reclamado", "derecho_violado", "conceptos_violacion", "fecha_acto", "juzgado"]
}`

const contractSchema = `{
	"type": "object",
	"properties": {
		"tipo_contrato": {"type": "string", "description": "Type of contract"},
		"parte_1_nombre": {"type": "string", "description": "First party name"},
		"parte_1_datos": {"type": "string", "description": "First party details"},
		"parte_2_nombre": {"type": "string", "description": "Second party name"},
		"parte_2_datos": {"type": "string", "description": "Second party details"},
		"objeto_contrato": {"type": "string", "description": "Contract object/purpose"},
		"precio": {"type": "string", "description": "Price"},
		"plazo": {"type": "string", "description": "Term/duration"},
		"condiciones_especiales": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Special conditions"
		},
		"fecha_firma": {"type": "string", "format": "date", "description": "Signing date (defaults to today)"}
	},
	"required": ["tipo_contrato", "parte_1_nombre", "parte_1_datos",
		"parte_2_nombre", "parte_2_datos", "objeto_contrato"]
}`

const lawsuitSchema = `{
	"type": "object",
	"properties": {
		"demandante_nombre": {"type": "string", "description": "Plaintiff name"},
		"demandante_domicilio": {"type": "string", "description": "Plaintiff address"},
		"demandado_nombre": {"type": "string", "description": "Defendant name"},
		"demandado_domicilio": {"type": "string", "description": "Defendant address"},
		"prestaciones": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Claims/demands"
		},
		"hechos": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Facts of the case"
		},
		"fundamentos_derecho": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Legal foundations"
		},
		"juzgado": {"type": "string", "description": "Court/jurisdiction"},
		"fecha_presentacion": {"type": "string", "format": "date", "description": "Filing date (defaults to today)"}
	},
	"required": ["demandante_nombre", "demandante_domicilio", "demandado_nombre",
		"demandado_domicilio", "prestaciones", "hechos", "fundamentos_derecho", "juzgado"]
}`

const powerOfAttorneySchema = `{
	"type": "object",
	"properties": {
		"poderdante": {"type": "string", "description": "Person granting the power"},
		"apoderado": {"type": "string", "description": "Person receiving the power"},
		"facultades": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Granted faculties"
		},
		"fecha_otorgamiento": {"type": "string", "format": "date", "description": "Granting date (defaults to today)"}
	},
	"required": ["poderdante", "apoderado", "facultades"]
}`

const willSchema = `{
	"type": "object",
	"properties": {
		"testador": {"type": "string", "description": "Testator name"},
		"herederos": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Heirs, one entry per heir with share and relationship"
		},
		"bienes": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Assets"
		},
		"fecha_otorgamiento": {"type": "string", "format": "date", "description": "Granting date (defaults to today)"}
	},
	"required": ["testador", "herederos", "bienes"]
}`
