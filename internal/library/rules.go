package library

import "github.com/lexmex/lexmex-mcp/internal/legal"

// builtinRuleTables declares the per-area rules in the order they are
// evaluated. Patterns are matched case- and accent-insensitively, so they
// are written here without accents.
func builtinRuleTables() []*RuleTable {
	return []*RuleTable{
		constitucionalRules(),
		civilRules(),
		penalRules(),
		laboralRules(),
		mercantilRules(),
		administrativoRules(),
		fiscalRules(),
		familiarRules(),
	}
}

func constitucionalRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaConstitucional,
		Rules: []Rule{
			{
				Name:  "violacion-derechos-fundamentales",
				AnyOf: []string{"derechos fundamentales", "derechos humanos", "garantias", "derecho violado"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 1o. de la Constitución Política de los Estados Unidos Mexicanos",
						"Artículo 103 constitucional",
						"Artículo 107 constitucional",
					},
					Conclusion: "Los hechos sugieren una posible violación de derechos fundamentales atribuible a una autoridad.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Promover juicio de amparo indirecto dentro del plazo legal de quince días",
						"Recabar toda la documentación probatoria disponible",
						"Consultar con un abogado especializado en materia constitucional",
					},
				},
			},
			{
				Name:  "debido-proceso",
				AnyOf: []string{"debido proceso", "sin audiencia", "indefension", "no fue oido"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 14 constitucional",
						"Artículo 17 constitucional",
					},
					Conclusion: "Se advierte una posible afectación a la garantía de audiencia y al debido proceso legal.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Documentar las etapas procesales omitidas",
						"Evaluar la promoción de juicio de amparo por violaciones procesales",
					},
				},
			},
			{
				Name:  "legalidad-acto-molestia",
				AnyOf: []string{"acto de molestia", "sin fundamentacion", "sin motivacion", "sin orden escrita"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 16 constitucional",
					},
					Conclusion: "El acto de autoridad descrito podría carecer de la fundamentación y motivación que exige el principio de legalidad.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Conservar copia del acto de autoridad y de su notificación",
						"Verificar la competencia de la autoridad emisora",
					},
				},
			},
		},
	}
}

func civilRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaCivil,
		Rules: []Rule{
			{
				Name:   "incumplimiento-contractual",
				AllOf:  []string{"contrato"},
				AnyOf:  []string{"incumplimiento", "incumplio", "no cumplio", "rescision"},
				NoneOf: []string{"cumplimiento total"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 1794 del Código Civil Federal",
						"Artículo 1796 del Código Civil Federal",
						"Artículo 2104 del Código Civil Federal",
					},
					Conclusion: "Los hechos apuntan a un posible incumplimiento de obligaciones contractuales.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Exigir el cumplimiento forzoso o la rescisión del contrato con pago de daños y perjuicios",
						"Evaluar la posibilidad de una solución extrajudicial",
						"Reunir el contrato y las comunicaciones entre las partes como prueba",
					},
				},
			},
			{
				Name:  "responsabilidad-civil",
				AnyOf: []string{"daño", "perjuicio", "negligencia", "responsabilidad civil"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 1910 del Código Civil Federal",
					},
					Conclusion: "Podría configurarse responsabilidad civil por hecho ilícito, con obligación de reparar el daño causado.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Cuantificar y documentar el daño sufrido",
						"Acreditar el nexo causal entre la conducta y el daño",
					},
				},
			},
			{
				Name:  "obligaciones-de-pago",
				AnyOf: []string{"adeudo", "deuda", "pago pendiente", "mora"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 2062 del Código Civil Federal",
						"Artículo 2104 del Código Civil Federal",
					},
					Conclusion: "Existe una obligación de pago cuyo cumplimiento puede exigirse judicialmente.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Requerir el pago de manera fehaciente antes de demandar",
						"Verificar el plazo de prescripción de la acción",
					},
				},
			},
		},
	}
}

func penalRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaPenal,
		Rules: []Rule{
			{
				Name:  "homicidio",
				AnyOf: []string{"matar", "muerte", "asesinato", "homicidio"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 302 del Código Penal Federal",
						"Artículo 307 del Código Penal Federal",
					},
					Conclusion: "Los hechos podrían configurar el delito de homicidio.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Contactar inmediatamente con un abogado penalista especializado",
						"No rendir declaración sin la presencia de un defensor",
					},
				},
			},
			{
				Name:  "robo",
				AnyOf: []string{"robo", "robar", "sustraer", "hurtar"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 367 del Código Penal Federal",
					},
					Conclusion: "Los hechos podrían configurar el delito de robo.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Presentar denuncia ante el Ministerio Público",
						"Preservar toda evidencia del apoderamiento",
					},
				},
			},
			{
				Name:  "fraude",
				AnyOf: []string{"fraude", "engañar", "defraudar", "estafar"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 386 del Código Penal Federal",
					},
					Conclusion: "Los hechos podrían configurar el delito de fraude.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Reunir los documentos que acrediten el engaño y el lucro indebido",
						"Presentar querella ante el Ministerio Público",
					},
				},
			},
			{
				Name:  "lesiones",
				AnyOf: []string{"golpear", "herir", "lastimar", "lesiones"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 288 del Código Penal Federal",
					},
					Conclusion: "Los hechos podrían configurar el delito de lesiones.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Obtener certificado médico de las lesiones a la brevedad",
						"Presentar denuncia o querella según la gravedad",
					},
				},
			},
		},
	}
}

func laboralRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaLaboral,
		Rules: []Rule{
			{
				Name:   "despido-injustificado",
				AnyOf:  []string{"despedido", "despido"},
				NoneOf: []string{"renuncia voluntaria", "por causa justificada"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 123, apartado A, de la Constitución Política de los Estados Unidos Mexicanos",
						"Artículo 47 de la Ley Federal del Trabajo",
						"Artículo 48 de la Ley Federal del Trabajo",
					},
					Conclusion: "Los hechos sugieren un despido injustificado que da derecho a reinstalación o a indemnización constitucional.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Presentar demanda ante el Tribunal Laboral dentro del plazo de dos meses",
						"Reclamar la indemnización constitucional de tres meses de salario o la reinstalación",
						"Reclamar salarios vencidos y prestaciones adeudadas",
					},
				},
			},
			{
				Name:  "prestaciones-adeudadas",
				AnyOf: []string{"finiquito", "aguinaldo", "salario", "vacaciones", "horas extra", "prestaciones"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 82 de la Ley Federal del Trabajo",
						"Artículo 87 de la Ley Federal del Trabajo",
					},
					Conclusion: "Se advierte el posible adeudo de salarios o prestaciones laborales exigibles.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Cuantificar las prestaciones adeudadas con recibos de nómina",
						"Agotar la instancia conciliatoria previa a la demanda",
					},
				},
			},
			{
				Name:  "riesgo-de-trabajo",
				AnyOf: []string{"accidente de trabajo", "riesgo de trabajo", "enfermedad de trabajo"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 473 de la Ley Federal del Trabajo",
						"Artículo 487 de la Ley Federal del Trabajo",
					},
					Conclusion: "Los hechos describen un posible riesgo de trabajo que genera derecho a atención médica e indemnización.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Solicitar la calificación del riesgo ante el IMSS",
						"Conservar los dictámenes médicos emitidos",
					},
				},
			},
		},
	}
}

func mercantilRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaMercantil,
		Rules: []Rule{
			{
				Name:  "titulos-de-credito",
				AnyOf: []string{"pagare", "cheque", "letra de cambio", "titulo de credito"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 5 de la Ley General de Títulos y Operaciones de Crédito",
						"Artículo 170 de la Ley General de Títulos y Operaciones de Crédito",
					},
					Conclusion: "El documento descrito es un título de crédito que permite ejercer la acción cambiaria en la vía ejecutiva mercantil.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Verificar los requisitos formales del título",
						"Ejercer la acción cambiaria antes de que prescriba",
					},
				},
			},
			{
				Name:  "sociedades-mercantiles",
				AnyOf: []string{"sociedad", "socio", "acciones", "asamblea"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 6 de la Ley General de Sociedades Mercantiles",
						"Artículo 201 de la Ley General de Sociedades Mercantiles",
					},
					Conclusion: "La controversia se rige por el régimen de las sociedades mercantiles.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Revisar los estatutos sociales y las actas de asamblea",
						"Evaluar la oposición judicial a los acuerdos cuestionados",
					},
				},
			},
			{
				Name:  "actos-de-comercio",
				AnyOf: []string{"comercio", "mercantil", "proveedor", "compraventa mercantil"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 75 del Código de Comercio",
						"Artículo 1049 del Código de Comercio",
					},
					Conclusion: "Los hechos constituyen actos de comercio sujetos a la legislación mercantil.",
					RiskLevel:  legal.RiskLow,
					RecommendedActions: []string{
						"Documentar la relación comercial con facturas y órdenes de compra",
					},
				},
			},
		},
	}
}

func administrativoRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaAdministrativo,
		Rules: []Rule{
			{
				Name:  "sancion-administrativa",
				AnyOf: []string{"multa", "sancion", "clausura", "suspension de actividades"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 70 de la Ley Federal de Procedimiento Administrativo",
						"Artículo 16 constitucional",
					},
					Conclusion: "La sanción administrativa impuesta puede impugnarse si carece de fundamentación o el procedimiento fue irregular.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Interponer recurso de revisión dentro del plazo de quince días",
						"Considerar el juicio contencioso administrativo ante el TFJA",
					},
				},
			},
			{
				Name:  "acto-administrativo-irregular",
				AnyOf: []string{"acto administrativo", "autoridad", "funcionario", "negativa"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 3 de la Ley Federal de Procedimiento Administrativo",
					},
					Conclusion: "El acto administrativo debe reunir los elementos de validez; su omisión permite solicitar su nulidad.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Solicitar por escrito la fundamentación del acto",
						"Agotar los medios ordinarios de defensa antes del amparo",
					},
				},
			},
		},
	}
}

func fiscalRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaFiscal,
		Rules: []Rule{
			{
				Name:  "credito-fiscal",
				AnyOf: []string{"credito fiscal", "embargo", "requerimiento de pago", "multa fiscal"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 65 del Código Fiscal de la Federación",
						"Artículo 145 del Código Fiscal de la Federación",
					},
					Conclusion: "Existe un crédito fiscal exigible cuyo cobro coactivo puede suspenderse garantizando el interés fiscal.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Interponer recurso de revocación o juicio de nulidad dentro del plazo de treinta días",
						"Garantizar el interés fiscal para suspender el procedimiento de ejecución",
					},
				},
			},
			{
				Name:  "devolucion-impuestos",
				AnyOf: []string{"devolucion", "saldo a favor", "pago de lo indebido"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 22 del Código Fiscal de la Federación",
					},
					Conclusion: "Procede solicitar la devolución de saldos a favor o de cantidades pagadas indebidamente.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Presentar la solicitud de devolución ante el SAT con la documentación soporte",
						"Impugnar la negativa mediante recurso de revocación",
					},
				},
			},
			{
				Name:  "obligaciones-fiscales",
				AnyOf: []string{"impuesto", "sat", "hacienda", "declaracion"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 6 del Código Fiscal de la Federación",
					},
					Conclusion: "La situación se rige por las disposiciones generales en materia de contribuciones.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Verificar el cumplimiento de las obligaciones fiscales del periodo",
						"Consultar con un especialista fiscal antes de autocorregirse",
					},
				},
			},
		},
	}
}

func familiarRules() *RuleTable {
	return &RuleTable{
		Area: legal.AreaFamiliar,
		Rules: []Rule{
			{
				Name:  "divorcio",
				AnyOf: []string{"divorcio", "disolucion del matrimonio", "separacion"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 266 del Código Civil Federal",
						"Artículo 267 del Código Civil Federal",
					},
					Conclusion: "Procede el trámite de divorcio; el régimen patrimonial y la situación de los hijos deben resolverse en el mismo procedimiento.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Reunir acta de matrimonio y actas de nacimiento de los hijos",
						"Elaborar propuesta de convenio sobre alimentos, guarda y custodia",
					},
				},
			},
			{
				Name:  "pension-alimenticia",
				AnyOf: []string{"alimentos", "pension alimenticia", "manutencion"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 301 del Código Civil Federal",
						"Artículo 308 del Código Civil Federal",
					},
					Conclusion: "Existe obligación alimentaria exigible; su incumplimiento permite solicitar aseguramiento.",
					RiskLevel:  legal.RiskHigh,
					RecommendedActions: []string{
						"Solicitar la fijación judicial de pensión provisional",
						"Acreditar las necesidades del acreedor y la capacidad del deudor",
					},
				},
			},
			{
				Name:  "guarda-y-custodia",
				AnyOf: []string{"patria potestad", "custodia", "guarda", "convivencia"},
				Finding: legal.Finding{
					CitedProvisions: []string{
						"Artículo 414 del Código Civil Federal",
						"Artículo 416 del Código Civil Federal",
					},
					Conclusion: "La controversia sobre guarda y custodia se resuelve atendiendo al interés superior del menor.",
					RiskLevel:  legal.RiskMedium,
					RecommendedActions: []string{
						"Privilegiar los acuerdos entre los padres homologados judicialmente",
						"Documentar la situación escolar y de salud de los menores",
					},
				},
			},
		},
	}
}
