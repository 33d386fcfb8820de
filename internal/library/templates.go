package library

import "github.com/lexmex/lexmex-mcp/internal/legal"

func builtinSkeletons() []*Skeleton {
	return []*Skeleton{
		amparoSkeleton(),
		contractSkeleton(),
		lawsuitSkeleton(),
		powerOfAttorneySkeleton(),
		willSkeleton(),
	}
}

func amparoSkeleton() *Skeleton {
	return &Skeleton{
		DocumentType: legal.DocAmparo,
		Fields: []FieldDef{
			{Name: "quejoso_nombre", Kind: FieldText, Required: true},
			{Name: "quejoso_domicilio", Kind: FieldText, Required: true},
			{Name: "autoridad_responsable", Kind: FieldText, Required: true},
			{Name: "acto_reclamado", Kind: FieldText, Required: true},
			{Name: "derecho_violado", Kind: FieldText, Required: true},
			{Name: "conceptos_violacion", Kind: FieldList, Required: true},
			{Name: "fecha_acto", Kind: FieldDate, Required: true},
			{Name: "juzgado", Kind: FieldText, Required: true},
			{Name: "fecha_presentacion", Kind: FieldDate, Required: false},
		},
		Sections: []SectionDef{
			{
				Title: "JUICIO DE AMPARO INDIRECTO",
				Body:  "C. JUEZ {{juzgado}}\nP R E S E N T E",
			},
			{
				Body: "{{quejoso_nombre}}, por mi propio derecho, con domicilio en {{quejoso_domicilio}}, ante Usted comparezco y expongo:\n\nQue por medio del presente escrito vengo a promover JUICIO DE AMPARO INDIRECTO en contra de:",
			},
			{
				Title: "AUTORIDAD RESPONSABLE",
				Body:  "{{autoridad_responsable}}",
			},
			{
				Title: "ACTO RECLAMADO",
				Body:  "{{acto_reclamado}}",
			},
			{
				Title: "CONCEPTOS DE VIOLACIÓN",
				Body:  "{{conceptos_violacion}}",
			},
			{
				Body: "Por lo anterior, a Usted C. Juez, atentamente solicito:\n\nPRIMERO.- Se admita la presente demanda de amparo.\nSEGUNDO.- Se conceda la suspensión del acto reclamado.\nTERCERO.- Se otorgue el amparo y protección de la Justicia Federal.",
			},
			{
				Title: "DERECHO VIOLADO",
				Body:  "{{derecho_violado}}",
			},
			{
				Body: "Fecha del acto reclamado: {{fecha_acto}}",
			},
			{
				Title: "PROTESTO LO NECESARIO",
				Body:  "{{fecha_presentacion}}\n\n_____________________________\n{{quejoso_nombre}}\nQUEJOSO",
			},
		},
	}
}

func contractSkeleton() *Skeleton {
	return &Skeleton{
		DocumentType: legal.DocContract,
		Fields: []FieldDef{
			{Name: "tipo_contrato", Kind: FieldText, Required: true},
			{Name: "parte_1_nombre", Kind: FieldText, Required: true},
			{Name: "parte_1_datos", Kind: FieldText, Required: true},
			{Name: "parte_2_nombre", Kind: FieldText, Required: true},
			{Name: "parte_2_datos", Kind: FieldText, Required: true},
			{Name: "objeto_contrato", Kind: FieldText, Required: true},
			{Name: "precio", Kind: FieldText, Required: false, Default: "A convenir"},
			{Name: "plazo", Kind: FieldText, Required: false, Default: "Por tiempo indefinido"},
			{Name: "condiciones_especiales", Kind: FieldList, Required: false},
			{Name: "fecha_firma", Kind: FieldDate, Required: false},
		},
		Sections: []SectionDef{
			{
				Title: "CONTRATO DE {{tipo_contrato}}",
				Body:  "En {{fecha_firma}}, en la Ciudad de México, las partes que intervienen en este contrato son:",
			},
			{
				Title: "PRIMERA PARTE",
				Body:  "{{parte_1_nombre}}\n{{parte_1_datos}}",
			},
			{
				Title: "SEGUNDA PARTE",
				Body:  "{{parte_2_nombre}}\n{{parte_2_datos}}",
			},
			{
				Title: "DECLARACIONES",
				Body:  "Ambas partes declaran que tienen capacidad legal para contratar y obligarse.",
			},
			{
				Title: "CLÁUSULAS",
				Body:  "PRIMERA.- OBJETO DEL CONTRATO\n{{objeto_contrato}}\n\nSEGUNDA.- PRECIO\nEl precio será de {{precio}}\n\nTERCERA.- PLAZO\nEl presente contrato tendrá una duración de {{plazo}}",
			},
			{
				Title: "CUARTA.- CONDICIONES ESPECIALES",
				Body:  "{{condiciones_especiales}}",
				When:  "condiciones_especiales",
			},
			{
				Title: "QUINTA.- JURISDICCIÓN",
				Body:  "Para la interpretación y cumplimiento de este contrato, las partes se someten a la jurisdicción de los tribunales de la Ciudad de México.",
			},
			{
				Body: "En fe de lo cual, firman las partes en la fecha señalada.\n\n_____________________________        _____________________________\n{{parte_1_nombre}}                    {{parte_2_nombre}}",
			},
		},
	}
}

func lawsuitSkeleton() *Skeleton {
	return &Skeleton{
		DocumentType: legal.DocLawsuit,
		Fields: []FieldDef{
			{Name: "demandante_nombre", Kind: FieldText, Required: true},
			{Name: "demandante_domicilio", Kind: FieldText, Required: true},
			{Name: "demandado_nombre", Kind: FieldText, Required: true},
			{Name: "demandado_domicilio", Kind: FieldText, Required: true},
			{Name: "prestaciones", Kind: FieldList, Required: true},
			{Name: "hechos", Kind: FieldList, Required: true},
			{Name: "fundamentos_derecho", Kind: FieldList, Required: true},
			{Name: "juzgado", Kind: FieldText, Required: true},
			{Name: "fecha_presentacion", Kind: FieldDate, Required: false},
		},
		Sections: []SectionDef{
			{
				Body: "C. JUEZ {{juzgado}}\nP R E S E N T E",
			},
			{
				Body: "{{demandante_nombre}}, con domicilio en {{demandante_domicilio}}, por mi propio derecho, ante Usted comparezco y expongo:\n\nQue por medio del presente escrito vengo a demandar de {{demandado_nombre}}, con domicilio en {{demandado_domicilio}}, las siguientes:",
			},
			{
				Title: "PRESTACIONES",
				Body:  "{{prestaciones}}",
			},
			{
				Title: "HECHOS",
				Body:  "{{hechos}}",
			},
			{
				Title: "FUNDAMENTOS DE DERECHO",
				Body:  "{{fundamentos_derecho}}",
			},
			{
				Body: "Por lo anterior, a Usted C. Juez, atentamente solicito se sirva:\n\nPRIMERO.- Tener por presentada la demanda y admitirla a trámite.\nSEGUNDO.- Declarar procedente la demanda y condenar al demandado al cumplimiento de las prestaciones reclamadas.",
			},
			{
				Title: "PROTESTO LO NECESARIO",
				Body:  "{{fecha_presentacion}}\n\n_____________________________\n{{demandante_nombre}}\nDEMANDANTE",
			},
		},
	}
}

func powerOfAttorneySkeleton() *Skeleton {
	return &Skeleton{
		DocumentType: legal.DocPowerOfAttorney,
		Fields: []FieldDef{
			{Name: "poderdante", Kind: FieldText, Required: true},
			{Name: "apoderado", Kind: FieldText, Required: true},
			{Name: "facultades", Kind: FieldList, Required: true},
			{Name: "fecha_otorgamiento", Kind: FieldDate, Required: false},
		},
		Sections: []SectionDef{
			{
				Title: "PODER NOTARIAL",
				Body:  "Por medio del presente documento, yo {{poderdante}}, otorgo poder amplio y suficiente a {{apoderado}} para que en mi nombre y representación realice los siguientes actos:",
			},
			{
				Title: "FACULTADES",
				Body:  "{{facultades}}",
			},
			{
				Body: "Este poder se otorga con las facultades necesarias para su debido cumplimiento.\n\n{{fecha_otorgamiento}}",
			},
			{
				Body: "_____________________________\n{{poderdante}}\nPODERDANTE\n\n_____________________________\n{{apoderado}}\nAPODERADO",
			},
		},
	}
}

func willSkeleton() *Skeleton {
	return &Skeleton{
		DocumentType: legal.DocWill,
		Fields: []FieldDef{
			{Name: "testador", Kind: FieldText, Required: true},
			{Name: "herederos", Kind: FieldList, Required: true},
			{Name: "bienes", Kind: FieldList, Required: true},
			{Name: "fecha_otorgamiento", Kind: FieldDate, Required: false},
		},
		Sections: []SectionDef{
			{
				Title: "TESTAMENTO",
				Body:  "Yo, {{testador}}, en pleno uso de mis facultades mentales, otorgo el presente testamento:",
			},
			{
				Title: "PRIMERA",
				Body:  "Revoco cualquier testamento anterior.",
			},
			{
				Title: "SEGUNDA",
				Body:  "Instituyo como mis herederos a:\n\n{{herederos}}",
			},
			{
				Title: "TERCERA",
				Body:  "Mis bienes son:\n\n{{bienes}}",
			},
			{
				Title: "CUARTA",
				Body:  "Es mi voluntad que se respeten estas disposiciones.\n\n{{fecha_otorgamiento}}",
			},
			{
				Body: "_____________________________\n{{testador}}\nTESTADOR",
			},
		},
	}
}
