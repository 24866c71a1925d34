package source

import "github.com/thingvallatech/community-assist/internal/catalog"

// local211SeedPrograms returns the curated Brevard County programs.
func local211SeedPrograms() []catalog.ProgramRecord {
	return []catalog.ProgramRecord{
		{
			Code:               "211-INFO",
			Name:               "211 Information & Referral",
			NameES:             catalog.Ptr("Información y Referencias 211"),
			Category:           catalog.Ptr(catalog.CategoryFinancial),
			Description:        catalog.Ptr("211 is a free, confidential service that connects people with local resources for food, housing, utilities, healthcare, childcare, and more. Available 24 hours a day, 7 days a week. Trained specialists help you find the right programs and services."),
			DescriptionES:      catalog.Ptr("211 es un servicio gratuito y confidencial que conecta a las personas con recursos locales para alimentos, vivienda, servicios públicos, atención médica, cuidado infantil y más. Disponible las 24 horas del día, los 7 días de la semana."),
			BenefitsSummary:    catalog.Ptr("Free information and referral service. Specialists can help you find: emergency food, shelter, utility assistance, healthcare, mental health services, childcare, employment help, and more. Available in English and Spanish."),
			EligibilitySummary: catalog.Ptr("Anyone can call 211. No income requirements or documentation needed. Service is free and confidential."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": false,
				"serves_everyone":  true,
			},
			HowToApply:     catalog.Ptr("Dial 2-1-1 from any phone, or text your ZIP code to 898211. You can also search online at 211brevard.org or 211.org."),
			SourceName:     catalog.Ptr("211 Brevard"),
			Confidence:     catalog.Ptr(1.0),
			IsActive:       catalog.Ptr(true),
			IsEmergency:    catalog.Ptr(true),
			ServesCounty:   []string{"Brevard"},
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("211"),
			ContactWebsite: catalog.Ptr("https://211brevard.org"),
		},
		{
			Code:               "SALVATION-ARMY-EA",
			Name:               "Salvation Army Emergency Assistance",
			NameES:             catalog.Ptr("Asistencia de Emergencia del Ejército de Salvación"),
			Category:           catalog.Ptr(catalog.CategoryFinancial),
			Description:        catalog.Ptr("The Salvation Army provides emergency assistance to individuals and families in crisis. Services may include help with rent, utilities, food, and other emergency needs. Assistance is provided based on available funding and individual circumstances."),
			DescriptionES:      catalog.Ptr("El Ejército de Salvación proporciona asistencia de emergencia a individuos y familias en crisis. Los servicios pueden incluir ayuda con el alquiler, servicios públicos, alimentos y otras necesidades de emergencia."),
			BenefitsSummary:    catalog.Ptr("Emergency financial assistance for rent, utilities, and other needs. Amount varies based on funding and need. May also provide food boxes, clothing, and referrals to other services."),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyOneTime),
			EligibilitySummary: catalog.Ptr("Must demonstrate financial need and crisis situation. May need to provide ID, proof of income, and documentation of the emergency (eviction notice, utility shutoff notice, etc.). Limited to Brevard County residents."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_families":      true,
				"emergency_assistance": true,
			},
			HowToApply:   catalog.Ptr("Call or visit the Salvation Army Melbourne location. May need to call ahead to schedule an appointment for assistance."),
			SourceName:   catalog.Ptr("Salvation Army"),
			Confidence:   catalog.Ptr(0.85),
			IsActive:     catalog.Ptr(true),
			IsEmergency:  catalog.Ptr(true),
			ServesCounty: []string{"Brevard"},
			ServesState:  []string{"FL"},
			ContactPhone: catalog.Ptr("(321) 724-2689"),
		},
		{
			Code:               "DAILY-BREAD-FOOD",
			Name:               "Daily Bread Food Pantry",
			NameES:             catalog.Ptr("Despensa de Alimentos Daily Bread"),
			Category:           catalog.Ptr(catalog.CategoryFood),
			Description:        catalog.Ptr("Daily Bread is a nonprofit organization providing food assistance to hungry families in Brevard County. They operate food pantries and provide free groceries to those in need. No proof of income required - just show ID and proof of Brevard County residence."),
			DescriptionES:      catalog.Ptr("Daily Bread es una organización sin fines de lucro que proporciona asistencia alimentaria a familias hambrientas en el Condado de Brevard. Operan despensas de alimentos y proporcionan comestibles gratis."),
			BenefitsSummary:    catalog.Ptr("Free groceries including fresh produce, meat, dairy, canned goods, and bread. Can visit once per week. Serves individuals and families. No limit on family size."),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyWeekly),
			EligibilitySummary: catalog.Ptr("Must be a Brevard County resident. Bring photo ID and proof of address (utility bill, lease, etc.). No proof of income required."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": false,
				"serves_families":  true,
				"serves_everyone":  true,
			},
			HowToApply:     catalog.Ptr("Visit during distribution hours. No appointment needed. Main location in Melbourne with additional pantry sites throughout Brevard."),
			SourceName:     catalog.Ptr("Daily Bread"),
			Confidence:     catalog.Ptr(0.90),
			IsActive:       catalog.Ptr(true),
			ServesCounty:   []string{"Brevard"},
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("(321) 723-1060"),
			ContactWebsite: catalog.Ptr("https://dailybreadinc.org"),
		},
		{
			Code:               "COMMUNITY-HOPE",
			Name:               "Community of Hope Homeless Services",
			NameES:             catalog.Ptr("Servicios para Personas sin Hogar Community of Hope"),
			Category:           catalog.Ptr(catalog.CategoryHousing),
			Description:        catalog.Ptr("Community of Hope provides services for individuals and families experiencing homelessness in Brevard County. Services include emergency shelter, transitional housing, case management, and support services to help people achieve stable housing."),
			DescriptionES:      catalog.Ptr("Community of Hope proporciona servicios para individuos y familias que experimentan falta de vivienda en el Condado de Brevard. Los servicios incluyen refugio de emergencia, vivienda de transición y apoyo."),
			BenefitsSummary:    catalog.Ptr("Emergency shelter beds, transitional housing programs, case management, employment assistance, and supportive services. Focus on helping people become self-sufficient and obtain permanent housing."),
			EligibilitySummary: catalog.Ptr("Must be homeless or at imminent risk of homelessness in Brevard County. Different programs have different eligibility requirements. Contact for intake assessment."),
			Eligibility: catalog.Eligibility{
				"serves_homeless":      true,
				"serves_families":      true,
				"emergency_assistance": true,
			},
			HowToApply:   catalog.Ptr("Call the main office for intake information. May also be referred through 211 or coordinated entry system."),
			SourceName:   catalog.Ptr("Community of Hope"),
			Confidence:   catalog.Ptr(0.85),
			IsActive:     catalog.Ptr(true),
			IsEmergency:  catalog.Ptr(true),
			ServesCounty: []string{"Brevard"},
			ServesState:  []string{"FL"},
			ContactPhone: catalog.Ptr("(321) 632-5100"),
		},
		{
			Code:               "BREVARD-SCHOOLS-FOOD",
			Name:               "Brevard Schools Free Meals Program",
			NameES:             catalog.Ptr("Programa de Comidas Gratis de las Escuelas de Brevard"),
			Category:           catalog.Ptr(catalog.CategoryFood),
			Description:        catalog.Ptr("Brevard Public Schools provides free breakfast and lunch to all students at participating Community Eligibility Provision (CEP) schools. At non-CEP schools, free and reduced-price meals are available based on family income."),
			DescriptionES:      catalog.Ptr("Las Escuelas Públicas de Brevard proporcionan desayuno y almuerzo gratis a todos los estudiantes en escuelas participantes."),
			BenefitsSummary:    catalog.Ptr("Free breakfast and lunch at CEP schools (no application needed). Free or reduced-price meals at other schools based on income eligibility. Summer meal programs also available."),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyDaily),
			EligibilitySummary: catalog.Ptr("All students at CEP schools qualify for free meals. At other schools, families must complete an application and meet income guidelines (130% FPL for free, 185% FPL for reduced)."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": true,
				"fpl_percentage":   185,
				"serves_children":  true,
				"serves_families":  true,
			},
			HowToApply:     catalog.Ptr("At CEP schools, meals are automatically free. At other schools, complete the meal application form available at your child's school or online through Brevard Schools website."),
			SourceName:     catalog.Ptr("Brevard Public Schools"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesCounty:   []string{"Brevard"},
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("(321) 633-1000"),
			ContactWebsite: catalog.Ptr("https://www.brevardschools.org"),
		},
		{
			Code:               "CCFL-CHILDCARE",
			Name:               "School Readiness (Subsidized Childcare)",
			NameES:             catalog.Ptr("Preparación Escolar (Cuidado Infantil Subsidiado)"),
			Category:           catalog.Ptr(catalog.CategoryChildcare),
			Description:        catalog.Ptr("The School Readiness program helps low-income families pay for childcare so parents can work or attend school. Also known as subsidized childcare or the child care subsidy program. Administered by the Early Learning Coalition."),
			DescriptionES:      catalog.Ptr("El programa de Preparación Escolar ayuda a las familias de bajos ingresos a pagar el cuidado infantil para que los padres puedan trabajar o asistir a la escuela."),
			BenefitsSummary:    catalog.Ptr("Pays a portion of childcare costs at participating providers. Family pays a copay based on income. Covers care for children birth through age 12 (or 13 for special needs)."),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyOngoing),
			EligibilitySummary: catalog.Ptr("Family income at or below 150% FPL (200% to remain eligible). Parent must be working, in school, or in job training. Child must be under 13 (or under 19 with special needs). Must be Florida resident."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":  true,
				"fpl_percentage":    150,
				"serves_families":   true,
				"serves_children":   true,
				"work_requirements": true,
			},
			HowToApply:     catalog.Ptr("Apply through the Early Learning Coalition of Brevard at (321) 637-1800 or online. Wait list may apply."),
			SourceName:     catalog.Ptr("Early Learning Coalition of Brevard"),
			Confidence:     catalog.Ptr(0.90),
			IsActive:       catalog.Ptr(true),
			ServesCounty:   []string{"Brevard"},
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("(321) 637-1800"),
			ContactWebsite: catalog.Ptr("https://www.elcbrevard.org"),
		},
		{
			Code:               "VPK-FL",
			Name:               "Voluntary Prekindergarten (VPK)",
			NameES:             catalog.Ptr("Prekindergarten Voluntario (VPK)"),
			Category:           catalog.Ptr(catalog.CategoryChildcare),
			Description:        catalog.Ptr("Florida's VPK program is a free educational program for all 4-year-olds. It prepares children for kindergarten with early learning activities. Available at schools, childcare centers, and other approved providers throughout Brevard County."),
			DescriptionES:      catalog.Ptr("El programa VPK de Florida es un programa educativo gratuito para todos los niños de 4 años. Prepara a los niños para el kindergarten con actividades de aprendizaje temprano."),
			BenefitsSummary:    catalog.Ptr("FREE program for all eligible 4-year-olds. School year program: 540 hours (3 hours/day). Summer program: 300 hours. No income requirements - it's free for everyone!"),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyAnnual),
			EligibilitySummary: catalog.Ptr("Child must be 4 years old on or before September 1 of the program year. Must be a Florida resident. No income requirements - VPK is free for all eligible children."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": false,
				"serves_children":  true,
				"serves_families":  true,
				"age_requirement":  true,
			},
			HowToApply:     catalog.Ptr("Obtain a VPK certificate from the Early Learning Coalition of Brevard (online or by phone), then enroll at a VPK provider of your choice."),
			ApplicationURL: catalog.Ptr("https://familyservices.floridaearlylearning.com/"),
			SourceName:     catalog.Ptr("Florida Office of Early Learning"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesCounty:   []string{"Brevard"},
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("(321) 637-1800"),
			ContactWebsite: catalog.Ptr("https://www.elcbrevard.org"),
		},
		{
			Code:               "BREVARD-CARES-EA",
			Name:               "Brevard CARES Emergency Assistance",
			NameES:             catalog.Ptr("Asistencia de Emergencia Brevard CARES"),
			Category:           catalog.Ptr(catalog.CategoryHousing),
			Description:        catalog.Ptr("Brevard CARES provides emergency financial assistance to Brevard County residents facing housing crises. Funded through various sources including CDBG and local funds. Helps prevent homelessness by assisting with rent and utility costs."),
			DescriptionES:      catalog.Ptr("Brevard CARES proporciona asistencia financiera de emergencia a residentes del Condado de Brevard que enfrentan crisis de vivienda."),
			BenefitsSummary:    catalog.Ptr("Emergency assistance with rent, utilities, and mortgage (limited). Assistance amount varies based on funding availability. May provide one-time or short-term assistance."),
			BenefitFrequency:   catalog.Ptr(catalog.FrequencyOneTime),
			EligibilitySummary: catalog.Ptr("Must be Brevard County resident. Must demonstrate financial hardship and risk of losing housing. Income requirements apply (typically below 80% AMI). Must provide documentation of emergency situation."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_families":      true,
				"emergency_assistance": true,
			},
			HowToApply:   catalog.Ptr("Contact Brevard County Housing and Human Services or call 211 for referral. Intake may be required."),
			SourceName:   catalog.Ptr("Brevard County"),
			Confidence:   catalog.Ptr(0.80),
			IsActive:     catalog.Ptr(true),
			IsEmergency:  catalog.Ptr(true),
			ServesCounty: []string{"Brevard"},
			ServesState:  []string{"FL"},
			ContactPhone: catalog.Ptr("(321) 633-2076"),
		},
	}
}

// local211SeedProviders returns the physical service points in Brevard
// County.
func local211SeedProviders() []catalog.ProviderRecord {
	weekdays9to5 := map[string]string{
		"monday":    "8:00 AM - 5:00 PM",
		"tuesday":   "8:00 AM - 5:00 PM",
		"wednesday": "8:00 AM - 5:00 PM",
		"thursday":  "8:00 AM - 5:00 PM",
		"friday":    "8:00 AM - 5:00 PM",
	}

	return []catalog.ProviderRecord{
		{
			Name:      "Florida Department of Children and Families - Brevard",
			NameES:    catalog.Ptr("Departamento de Niños y Familias de Florida - Brevard"),
			Type:      catalog.Ptr("government"),
			Street:    catalog.Ptr("2535 N Courtenay Pkwy"),
			City:      "Merritt Island",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32953"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 504-2000"),
			Website:   catalog.Ptr("https://www.myflfamilies.com/"),
			Hours:     weekdays9to5,
			Services:  []string{"SNAP", "Medicaid", "TANF", "Food Assistance", "Cash Assistance"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:    "Daily Bread - Melbourne",
			Type:    catalog.Ptr("nonprofit"),
			Street:  catalog.Ptr("815 E Fee Ave"),
			City:    "Melbourne",
			State:   catalog.Ptr("FL"),
			Zip:     catalog.Ptr("32901"),
			County:  catalog.Ptr("Brevard"),
			Phone:   catalog.Ptr("(321) 723-1060"),
			Website: catalog.Ptr("https://dailybreadinc.org"),
			Hours: map[string]string{
				"monday":    "9:00 AM - 12:00 PM",
				"tuesday":   "9:00 AM - 12:00 PM",
				"wednesday": "9:00 AM - 12:00 PM",
				"thursday":  "9:00 AM - 12:00 PM",
				"friday":    "9:00 AM - 12:00 PM",
			},
			Services:  []string{"Food Pantry", "Emergency Food"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:      "Salvation Army - Melbourne",
			Type:      catalog.Ptr("nonprofit"),
			Street:    catalog.Ptr("1515 S Hickory St"),
			City:      "Melbourne",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32901"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 724-2689"),
			Services:  []string{"Emergency Assistance", "Food Pantry", "Utility Assistance", "Rent Assistance"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:    "Social Security Administration - Melbourne",
			Type:    catalog.Ptr("government"),
			Street:  catalog.Ptr("1480 Palm Bay Rd NE"),
			City:    "Palm Bay",
			State:   catalog.Ptr("FL"),
			Zip:     catalog.Ptr("32905"),
			County:  catalog.Ptr("Brevard"),
			Phone:   catalog.Ptr("1-800-772-1213"),
			Website: catalog.Ptr("https://www.ssa.gov"),
			Hours: map[string]string{
				"monday":    "9:00 AM - 4:00 PM",
				"tuesday":   "9:00 AM - 4:00 PM",
				"wednesday": "9:00 AM - 12:00 PM",
				"thursday":  "9:00 AM - 4:00 PM",
				"friday":    "9:00 AM - 4:00 PM",
			},
			Services:  []string{"Social Security", "SSI", "SSDI", "Medicare"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:      "Brevard County Housing Authority",
			Type:      catalog.Ptr("government"),
			Street:    catalog.Ptr("4149 S Washington Ave"),
			City:      "Titusville",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32780"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 631-5620"),
			Website:   catalog.Ptr("https://brevardhousing.org"),
			Services:  []string{"Section 8 Housing Vouchers", "Public Housing"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:      "WIC - Brevard County Health Department",
			NameES:    catalog.Ptr("WIC - Departamento de Salud del Condado de Brevard"),
			Type:      catalog.Ptr("government"),
			Street:    catalog.Ptr("2555 Judge Fran Jamieson Way"),
			City:      "Viera",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32940"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 639-5793"),
			Website:   catalog.Ptr("https://brevard.floridahealth.gov"),
			Services:  []string{"WIC", "Nutrition Education", "Breastfeeding Support"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:      "Early Learning Coalition of Brevard",
			Type:      catalog.Ptr("nonprofit"),
			Street:    catalog.Ptr("1800 Penn St Suite 10"),
			City:      "Melbourne",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32901"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 637-1800"),
			Website:   catalog.Ptr("https://www.elcbrevard.org"),
			Services:  []string{"School Readiness", "VPK", "Childcare Assistance"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
		{
			Name:      "Community of Hope",
			Type:      catalog.Ptr("nonprofit"),
			Street:    catalog.Ptr("209 S New York Ave"),
			City:      "Cocoa",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32922"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 632-5100"),
			Services:  []string{"Emergency Shelter", "Transitional Housing", "Homeless Services"},
			Languages: []string{"English"},
			IsActive:  true,
		},
		{
			Name:      "CareerSource Brevard",
			Type:      catalog.Ptr("government"),
			Street:    catalog.Ptr("295 Barnes Blvd"),
			City:      "Rockledge",
			State:     catalog.Ptr("FL"),
			Zip:       catalog.Ptr("32955"),
			County:    catalog.Ptr("Brevard"),
			Phone:     catalog.Ptr("(321) 504-7600"),
			Website:   catalog.Ptr("https://careersourcebrevard.com"),
			Hours:     weekdays9to5,
			Services:  []string{"Job Search Assistance", "Resume Help", "Training Programs", "Unemployment"},
			Languages: []string{"English", "Spanish"},
			IsActive:  true,
		},
	}
}
