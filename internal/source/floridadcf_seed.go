package source

import (
	"time"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

var snapLimitsEffective = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// snapIncomeLimits2024 is the Florida 130%-FPL gross income limit table for
// SNAP, by household size.
func snapIncomeLimits2024() []IncomeLimitRow {
	limits := []struct {
		size  int
		limit float64
	}{
		{1, 1580}, {2, 2137}, {3, 2694}, {4, 3250},
		{5, 3807}, {6, 4364}, {7, 4921}, {8, 5478},
	}
	rows := make([]IncomeLimitRow, 0, len(limits))
	for _, l := range limits {
		rows = append(rows, IncomeLimitRow{
			ProgramCode:   "SNAP-FL",
			HouseholdSize: l.size,
			MonthlyLimit:  l.limit,
			FPLPercentage: 130,
			EffectiveDate: snapLimitsEffective,
		})
	}
	return rows
}

// floridaDCFSeedPrograms returns the hand-curated core state programs.
// These are the reliability floor: they ship even when scraping fails.
func floridaDCFSeedPrograms() []catalog.ProgramRecord {
	return []catalog.ProgramRecord{
		{
			Code:              "SNAP-FL",
			Name:              "SNAP (Food Stamps)",
			NameES:            catalog.Ptr("SNAP (Cupones de Alimentos)"),
			Category:          catalog.Ptr(catalog.CategoryFood),
			Description:       catalog.Ptr("The Supplemental Nutrition Assistance Program (SNAP) provides monthly benefits to help low-income households buy the food they need for good health. Benefits are provided on an Electronic Benefits Transfer (EBT) card, which works like a debit card at authorized retail stores."),
			DescriptionES:     catalog.Ptr("El Programa de Asistencia Nutricional Suplementaria (SNAP) proporciona beneficios mensuales para ayudar a los hogares de bajos ingresos a comprar los alimentos que necesitan para una buena salud. Los beneficios se proporcionan en una tarjeta de Transferencia Electrónica de Beneficios (EBT), que funciona como una tarjeta de débito en tiendas autorizadas."),
			BenefitsSummary:   catalog.Ptr("Monthly food benefits loaded onto an EBT card. Maximum monthly benefits: 1 person: $234, 2 people: $430, 3 people: $616, 4 people: $782, 5 people: $929, 6 people: $1,114, 7 people: $1,232, 8 people: $1,408. Additional household members: +$176 each."),
			BenefitsSummaryES: catalog.Ptr("Beneficios mensuales de alimentos cargados en una tarjeta EBT. Beneficios mensuales máximos: 1 persona: $234, 2 personas: $430, 3 personas: $616, 4 personas: $782, 5 personas: $929, 6 personas: $1,114, 7 personas: $1,232, 8 personas: $1,408."),
			BenefitAmountMin:  catalog.Ptr(23.0),
			BenefitAmountMax:  catalog.Ptr(1408.0),
			BenefitFrequency:  catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Must meet income limits (gross monthly income at or below 130% of poverty level). Must be a U.S. citizen or qualified non-citizen. Must have a Social Security number. Must meet work requirements (unless exempt). Resources/assets are generally not counted in Florida."),
			EligibilitySummaryES: catalog.Ptr("Debe cumplir con los límites de ingresos (ingreso mensual bruto igual o inferior al 130% del nivel de pobreza). Debe ser ciudadano estadounidense o no ciudadano calificado. Debe tener un número de Seguro Social. Debe cumplir con los requisitos de trabajo (a menos que esté exento)."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"fpl_percentage":       130,
				"serves_families":      true,
				"serves_seniors":       true,
				"serves_disabled":      true,
				"citizenship_required": true,
				"work_requirements":    true,
			},
			HowToApply:     catalog.Ptr("Apply online at ACCESS Florida (myflorida.com/accessflorida), call 1-866-762-2237, or visit your local DCF service center. You will need: Photo ID, Social Security cards, proof of income, proof of residence, and bank statements."),
			HowToApplyES:   catalog.Ptr("Solicite en línea en ACCESS Florida (myflorida.com/accessflorida), llame al 1-866-762-2237, o visite su centro de servicio DCF local. Necesitará: Identificación con foto, tarjetas de Seguro Social, comprobante de ingresos, comprobante de residencia y estados de cuenta bancarios."),
			ApplicationURL: catalog.Ptr(accessFloridaURL),
			ProcessingTime: catalog.Ptr("30 days (7 days for emergency/expedited)"),
			SourceURL:      catalog.Ptr("https://www.myflfamilies.com/service-programs/access/food-assistance-snap"),
			SourceName:     catalog.Ptr(floridaDCFName),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			IsEmergency:    catalog.Ptr(false),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr(accessFloridaPhone),
			ContactWebsite: catalog.Ptr(accessFloridaURL),
		},
		{
			Code:            "MEDICAID-FL",
			Name:            "Florida Medicaid",
			NameES:          catalog.Ptr("Medicaid de Florida"),
			Category:        catalog.Ptr(catalog.CategoryHealthcare),
			Description:     catalog.Ptr("Florida Medicaid provides free or low-cost health coverage for eligible low-income adults, children, pregnant women, elderly adults, and people with disabilities. Medicaid covers doctor visits, hospital stays, prescriptions, mental health services, and more."),
			DescriptionES:   catalog.Ptr("Medicaid de Florida proporciona cobertura de salud gratuita o de bajo costo para adultos de bajos ingresos, niños, mujeres embarazadas, adultos mayores y personas con discapacidades elegibles."),
			BenefitsSummary: catalog.Ptr("Comprehensive health coverage including: doctor visits, hospital care, prescription drugs, lab tests, mental health services, substance abuse treatment, dental (limited for adults), vision (children), medical equipment, home health care, nursing home care."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyOngoing),
			EligibilitySummary: catalog.Ptr("Income limits vary by category. Children: up to 210% FPL. Pregnant women: up to 191% FPL. Parents/caretakers: up to 31% FPL. Aged/disabled: up to 88% FPL. Must be a Florida resident. Must be a U.S. citizen or qualified immigrant."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_families":      true,
				"serves_seniors":       true,
				"serves_disabled":      true,
				"serves_children":      true,
				"citizenship_required": true,
			},
			HowToApply:     catalog.Ptr("Apply online at ACCESS Florida, call 1-866-762-2237, or visit your local DCF office. Children may also apply through Florida KidCare at 1-888-540-5437."),
			ApplicationURL: catalog.Ptr(accessFloridaURL),
			ProcessingTime: catalog.Ptr("45 days (90 days for disability-based)"),
			SourceURL:      catalog.Ptr("https://www.myflfamilies.com/service-programs/access/medicaid"),
			SourceName:     catalog.Ptr(floridaDCFName),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr(accessFloridaPhone),
			ContactWebsite: catalog.Ptr(accessFloridaURL),
		},
		{
			Code:             "TANF-FL",
			Name:             "Temporary Cash Assistance (TANF)",
			NameES:           catalog.Ptr("Asistencia Temporal en Efectivo (TANF)"),
			Category:         catalog.Ptr(catalog.CategoryFinancial),
			Description:      catalog.Ptr("Temporary Cash Assistance provides cash benefits to families with children when the parents or other responsible relatives cannot provide for the family's basic needs. The program helps families become self-sufficient through employment."),
			DescriptionES:    catalog.Ptr("La Asistencia Temporal en Efectivo proporciona beneficios en efectivo a familias con niños cuando los padres u otros familiares responsables no pueden satisfacer las necesidades básicas de la familia."),
			BenefitsSummary:  catalog.Ptr("Monthly cash benefit amounts vary by family size and income. Typical ranges: 1-person family: up to $180/month, 2-person: up to $241/month, 3-person: up to $303/month, 4-person: up to $364/month. Benefits are time-limited (48 months lifetime)."),
			BenefitAmountMin: catalog.Ptr(180.0),
			BenefitAmountMax: catalog.Ptr(364.0),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Must have a child under 18 (or 18 if still in high school). Must meet income and asset limits. Must participate in work activities. Must cooperate with child support enforcement. Must be a U.S. citizen or qualified non-citizen."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_families":      true,
				"requires_children":    true,
				"work_requirements":    true,
				"citizenship_required": true,
				"time_limited":         true,
			},
			HowToApply:     catalog.Ptr("Apply online at ACCESS Florida, call 1-866-762-2237, or visit your local DCF service center."),
			ApplicationURL: catalog.Ptr(accessFloridaURL),
			ProcessingTime: catalog.Ptr("30 days"),
			SourceURL:      catalog.Ptr("https://www.myflfamilies.com/service-programs/access/temporary-cash-assistance"),
			SourceName:     catalog.Ptr(floridaDCFName),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr(accessFloridaPhone),
			ContactWebsite: catalog.Ptr(accessFloridaURL),
		},
		{
			Code:             "LIHEAP-FL",
			Name:             "Low Income Home Energy Assistance Program (LIHEAP)",
			NameES:           catalog.Ptr("Programa de Asistencia de Energía para Hogares de Bajos Ingresos (LIHEAP)"),
			Category:         catalog.Ptr(catalog.CategoryHousing),
			Description:      catalog.Ptr("LIHEAP helps low-income households pay their home energy bills. The program provides a one-time payment to help with heating or cooling costs, or crisis assistance if you're facing disconnection or have already been disconnected."),
			DescriptionES:    catalog.Ptr("LIHEAP ayuda a los hogares de bajos ingresos a pagar sus facturas de energía del hogar. El programa proporciona un pago único para ayudar con los costos de calefacción o refrigeración."),
			BenefitsSummary:  catalog.Ptr("One-time payment typically ranging from $150-$600, paid directly to your utility company. Crisis assistance available for households facing utility disconnection. Amount depends on income, household size, and energy costs."),
			BenefitAmountMin: catalog.Ptr(150.0),
			BenefitAmountMax: catalog.Ptr(600.0),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyOneTime),
			EligibilitySummary: catalog.Ptr("Household income must be at or below 150% of the Federal Poverty Level. Must be responsible for home energy costs (directly or included in rent). Priority given to households with elderly, disabled, or children under 6."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": true,
				"fpl_percentage":   150,
				"serves_families":  true,
				"serves_seniors":   true,
				"serves_disabled":  true,
			},
			HowToApply:   catalog.Ptr("Apply through your local Community Action Agency. In Brevard County, contact Community Action Agency at (321) 631-2766. Applications typically open October 1st each year."),
			SourceName:   catalog.Ptr("Florida DCF / LIHEAP"),
			Confidence:   catalog.Ptr(0.90),
			IsActive:     catalog.Ptr(true),
			IsEmergency:  catalog.Ptr(true),
			ServesState:  []string{"FL"},
			ContactPhone: catalog.Ptr(accessFloridaPhone),
		},
		{
			Code:             "WIC-FL",
			Name:             "Women, Infants, and Children (WIC)",
			NameES:           catalog.Ptr("Mujeres, Infantes y Niños (WIC)"),
			Category:         catalog.Ptr(catalog.CategoryFood),
			Description:      catalog.Ptr("WIC provides nutritious foods, nutrition education, breastfeeding support, and referrals to health and social services for pregnant and postpartum women, infants, and children up to age 5 who are at nutritional risk."),
			DescriptionES:    catalog.Ptr("WIC proporciona alimentos nutritivos, educación nutricional, apoyo para la lactancia y referencias a servicios de salud y sociales para mujeres embarazadas y posparto, bebés y niños hasta los 5 años que están en riesgo nutricional."),
			BenefitsSummary:  catalog.Ptr("Monthly food package including milk, cheese, eggs, cereal, juice, beans, peanut butter, fruits and vegetables. Infant formula provided if not breastfeeding. Approximate value: $50-100/month per participant."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Must be pregnant, postpartum (up to 6 months), breastfeeding (up to 1 year), an infant, or a child under 5. Must meet income guidelines (185% FPL). Must be at nutritional risk (determined by WIC staff). Florida resident."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": true,
				"fpl_percentage":   185,
				"serves_families":  true,
				"serves_pregnant":  true,
				"serves_children":  true,
			},
			HowToApply:     catalog.Ptr("Call your local WIC office to schedule an appointment. In Brevard County: (321) 639-5793. Bring ID, proof of address, proof of income, and immunization records for children."),
			SourceName:     catalog.Ptr("Florida Department of Health"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-342-3556"),
			ContactWebsite: catalog.Ptr("https://www.floridahealth.gov/programs-and-services/wic/"),
		},
	}
}
