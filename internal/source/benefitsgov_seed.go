package source

import "github.com/thingvallatech/community-assist/internal/catalog"

// federalSeedPrograms returns the curated federal programs available in
// Florida.
func federalSeedPrograms() []catalog.ProgramRecord {
	return []catalog.ProgramRecord{
		{
			Code:             "SSI",
			Name:             "Supplemental Security Income (SSI)",
			NameES:           catalog.Ptr("Ingreso de Seguridad Suplementario (SSI)"),
			Category:         catalog.Ptr(catalog.CategoryDisability),
			Description:      catalog.Ptr("SSI provides monthly cash payments to people with limited income and resources who are 65 or older, blind, or disabled. SSI is designed to meet basic needs for food, clothing, and shelter."),
			DescriptionES:    catalog.Ptr("SSI proporciona pagos mensuales en efectivo a personas con ingresos y recursos limitados que tienen 65 años o más, son ciegos o están discapacitados."),
			BenefitsSummary:  catalog.Ptr("Maximum federal SSI payment (2024): $943/month for individuals, $1,415/month for couples. Florida does not provide a state supplement. Actual payment depends on income and living situation."),
			BenefitAmountMin: catalog.Ptr(0.0),
			BenefitAmountMax: catalog.Ptr(943.0),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Must be 65 or older, blind, or disabled. Must have limited income (generally under $1,971/month for individuals). Must have limited resources (under $2,000 for individuals, $3,000 for couples). Must be a U.S. citizen or qualifying non-citizen."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_seniors":       true,
				"serves_disabled":      true,
				"citizenship_required": true,
				"asset_limit":          true,
			},
			HowToApply:     catalog.Ptr("Apply at your local Social Security office, call 1-800-772-1213 (TTY 1-800-325-0778), or start your application online at ssa.gov."),
			ApplicationURL: catalog.Ptr("https://www.ssa.gov/benefits/ssi/"),
			ProcessingTime: catalog.Ptr("3-6 months (can take longer for disability determination)"),
			SourceURL:      catalog.Ptr("https://www.ssa.gov/ssi/"),
			SourceName:     catalog.Ptr("Social Security Administration"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-772-1213"),
			ContactWebsite: catalog.Ptr("https://www.ssa.gov/ssi/"),
		},
		{
			Code:             "SSDI",
			Name:             "Social Security Disability Insurance (SSDI)",
			NameES:           catalog.Ptr("Seguro de Incapacidad del Seguro Social (SSDI)"),
			Category:         catalog.Ptr(catalog.CategoryDisability),
			Description:      catalog.Ptr("SSDI pays benefits to you and certain family members if you worked long enough and paid Social Security taxes, and now have a medical condition that prevents you from working for at least 12 months or is expected to result in death."),
			DescriptionES:    catalog.Ptr("SSDI paga beneficios a usted y ciertos miembros de su familia si trabajó suficiente tiempo y pagó impuestos del Seguro Social, y ahora tiene una condición médica que le impide trabajar por al menos 12 meses."),
			BenefitsSummary:  catalog.Ptr("Monthly payment based on your lifetime earnings. Average SSDI payment (2024): approximately $1,537/month. Maximum payment: $3,822/month. You may also receive Medicare after 24 months of SSDI eligibility."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Must have worked and paid into Social Security (earned enough work credits). Must have a qualifying disability that prevents substantial work. Disability must be expected to last at least 12 months or result in death."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":      false,
				"serves_disabled":       true,
				"work_history_required": true,
			},
			HowToApply:     catalog.Ptr("Apply online at ssa.gov, call 1-800-772-1213, or visit your local Social Security office. Have medical records and work history ready."),
			ApplicationURL: catalog.Ptr("https://www.ssa.gov/applyfordisability/"),
			ProcessingTime: catalog.Ptr("3-5 months (may be longer, appeals can take 1-2 years)"),
			SourceURL:      catalog.Ptr("https://www.ssa.gov/benefits/disability/"),
			SourceName:     catalog.Ptr("Social Security Administration"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-772-1213"),
			ContactWebsite: catalog.Ptr("https://www.ssa.gov/benefits/disability/"),
		},
		{
			Code:             "SECTION8-HCV",
			Name:             "Section 8 Housing Choice Voucher",
			NameES:           catalog.Ptr("Vales de Elección de Vivienda Sección 8"),
			Category:         catalog.Ptr(catalog.CategoryHousing),
			Description:      catalog.Ptr("The Housing Choice Voucher program helps very low-income families, the elderly, and the disabled afford decent, safe, and sanitary housing. You can use the voucher to rent a house, apartment, or townhome in the private market."),
			DescriptionES:    catalog.Ptr("El programa de Vales de Elección de Vivienda ayuda a familias de muy bajos ingresos, ancianos y discapacitados a pagar una vivienda decente, segura y sanitaria."),
			BenefitsSummary:  catalog.Ptr("Voucher pays the difference between 30% of your income and the fair market rent. You typically pay about 30% of your monthly income toward rent. The voucher covers the rest, up to a payment standard set by your housing authority."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyMonthly),
			EligibilitySummary: catalog.Ptr("Income must be below 50% of area median income (very low income). Priority often given to extremely low income (below 30% AMI). Must pass background check. Must be a U.S. citizen or eligible immigrant."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     true,
				"serves_families":      true,
				"serves_seniors":       true,
				"serves_disabled":      true,
				"citizenship_required": true,
				"background_check":     true,
			},
			HowToApply:     catalog.Ptr("Apply through your local Public Housing Authority (PHA). In Brevard County, contact Brevard County Housing Authority at (321) 631-5620. Note: Wait lists are often long (years) and may be closed."),
			ProcessingTime: catalog.Ptr("Wait list varies by location (often 2-5+ years)"),
			SourceURL:      catalog.Ptr("https://www.hud.gov/topics/housing_choice_voucher_program_section_8"),
			SourceName:     catalog.Ptr("HUD"),
			Confidence:     catalog.Ptr(0.90),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("(321) 631-5620"),
			ContactWebsite: catalog.Ptr("https://www.hud.gov/topics/housing_choice_voucher_program_section_8"),
		},
		{
			Code:             "MEDICARE",
			Name:             "Medicare",
			NameES:           catalog.Ptr("Medicare"),
			Category:         catalog.Ptr(catalog.CategoryHealthcare),
			Description:      catalog.Ptr("Medicare is federal health insurance for people 65 and older, and for some younger people with disabilities or specific conditions like End-Stage Renal Disease. It has four parts: Part A (hospital), Part B (medical), Part C (Medicare Advantage), and Part D (prescription drugs)."),
			DescriptionES:    catalog.Ptr("Medicare es un seguro de salud federal para personas de 65 años o más, y para algunas personas más jóvenes con discapacidades o condiciones específicas."),
			BenefitsSummary:  catalog.Ptr("Part A: Hospital stays, skilled nursing, hospice (usually premium-free if you paid Medicare taxes). Part B: Doctor visits, outpatient care, preventive services (standard premium $174.70/month in 2024). Part D: Prescription drug coverage (premiums vary)."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyOngoing),
			EligibilitySummary: catalog.Ptr("Age 65 or older, or under 65 with a qualifying disability (after 24 months of SSDI), or any age with End-Stage Renal Disease or ALS. Must be a U.S. citizen or permanent resident for 5+ years."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":     false,
				"serves_seniors":       true,
				"serves_disabled":      true,
				"citizenship_required": true,
			},
			HowToApply:     catalog.Ptr("Enroll online at ssa.gov/medicare, call 1-800-772-1213, or visit your local Social Security office. Initial enrollment period is 3 months before to 3 months after your 65th birthday."),
			ApplicationURL: catalog.Ptr("https://www.ssa.gov/medicare/"),
			SourceURL:      catalog.Ptr("https://www.medicare.gov/"),
			SourceName:     catalog.Ptr("CMS / Medicare"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-MEDICARE (1-800-633-4227)"),
			ContactWebsite: catalog.Ptr("https://www.medicare.gov/"),
		},
		{
			Code:             "PELL-GRANT",
			Name:             "Federal Pell Grant",
			NameES:           catalog.Ptr("Beca Federal Pell"),
			Category:         catalog.Ptr(catalog.CategoryEducation),
			Description:      catalog.Ptr("Pell Grants provide need-based financial aid to low-income undergraduate students to help pay for college or career school. Unlike loans, Pell Grants do not have to be repaid (unless you withdraw from school)."),
			DescriptionES:    catalog.Ptr("Las Becas Pell proporcionan ayuda financiera basada en necesidad a estudiantes universitarios de bajos ingresos para ayudar a pagar la universidad o escuela vocacional."),
			BenefitsSummary:  catalog.Ptr("Maximum award for 2024-25: $7,395 per year. Actual amount depends on your Expected Family Contribution (EFC), cost of attendance, enrollment status (full/part-time), and whether you attend for a full academic year."),
			BenefitAmountMax: catalog.Ptr(7395.0),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyAnnual),
			EligibilitySummary: catalog.Ptr("Must demonstrate financial need (determined by FAFSA). Must be an undergraduate student without a bachelor's degree. Must be enrolled in an eligible program. Must be a U.S. citizen or eligible noncitizen. Must have a high school diploma or GED."),
			Eligibility: catalog.Eligibility{
				"has_income_limit":      true,
				"citizenship_required":  true,
				"education_requirement": true,
			},
			HowToApply:     catalog.Ptr("Complete the Free Application for Federal Student Aid (FAFSA) at studentaid.gov. The FAFSA opens October 1 each year for the following school year."),
			ApplicationURL: catalog.Ptr("https://studentaid.gov/h/apply-for-aid/fafsa"),
			SourceURL:      catalog.Ptr("https://studentaid.gov/understand-aid/types/grants/pell"),
			SourceName:     catalog.Ptr("Federal Student Aid"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-433-3243"),
			ContactWebsite: catalog.Ptr("https://studentaid.gov/"),
		},
		{
			Code:             "UI-FL",
			Name:             "Unemployment Insurance",
			NameES:           catalog.Ptr("Seguro de Desempleo"),
			Category:         catalog.Ptr(catalog.CategoryEmployment),
			Description:      catalog.Ptr("Unemployment Insurance provides temporary financial assistance to workers who lose their jobs through no fault of their own. Benefits help you meet basic needs while you look for new employment."),
			DescriptionES:    catalog.Ptr("El Seguro de Desempleo proporciona asistencia financiera temporal a trabajadores que pierden sus empleos sin culpa propia."),
			BenefitsSummary:  catalog.Ptr("Florida weekly benefit: $125-$275 per week for up to 12 weeks. One of the lowest in the nation. Benefits are based on your earnings during the base period (typically the first four of the last five completed calendar quarters)."),
			BenefitAmountMin: catalog.Ptr(125.0),
			BenefitAmountMax: catalog.Ptr(275.0),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyWeekly),
			EligibilitySummary: catalog.Ptr("Must have lost your job through no fault of your own. Must have earned enough wages during the base period. Must be able and available to work. Must be actively seeking work. Must register with CareerSource Florida."),
			Eligibility: catalog.Eligibility{
				"work_history_required": true,
				"active_job_search":     true,
			},
			HowToApply:     catalog.Ptr("Apply online at FloridaJobs.org/Reemployment-Assistance-Service-Center or call 1-800-204-2418. Apply within 14 days of losing your job."),
			ApplicationURL: catalog.Ptr("https://www.floridajobs.org/Reemployment-Assistance-Service-Center/reemployment-assistance/claimants"),
			ProcessingTime: catalog.Ptr("2-4 weeks"),
			SourceURL:      catalog.Ptr("https://www.floridajobs.org/"),
			SourceName:     catalog.Ptr("Florida DEO"),
			Confidence:     catalog.Ptr(0.90),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactPhone:   catalog.Ptr("1-800-204-2418"),
			ContactWebsite: catalog.Ptr("https://www.floridajobs.org/"),
		},
		{
			Code:             "FREE-LUNCH",
			Name:             "National School Lunch Program (Free/Reduced Lunch)",
			NameES:           catalog.Ptr("Programa Nacional de Almuerzo Escolar (Almuerzo Gratis/Reducido)"),
			Category:         catalog.Ptr(catalog.CategoryFood),
			Description:      catalog.Ptr("The National School Lunch Program provides nutritionally balanced, low-cost or free lunches to children at school. Children from families with incomes at or below 130% of poverty get free meals; those between 130-185% get reduced-price meals."),
			DescriptionES:    catalog.Ptr("El Programa Nacional de Almuerzo Escolar proporciona almuerzos nutritivos y balanceados, de bajo costo o gratis, a niños en la escuela."),
			BenefitsSummary:  catalog.Ptr("Free meals for children in households at or below 130% FPL. Reduced-price meals (40 cents for lunch, 30 cents for breakfast) for households between 130-185% FPL. Many Florida schools now offer free meals to all students through Community Eligibility."),
			BenefitFrequency: catalog.Ptr(catalog.FrequencyDaily),
			EligibilitySummary: catalog.Ptr("Child must attend a participating school. Household income at or below 185% FPL for reduced price, 130% FPL for free. Children in households receiving SNAP, TANF, or FDPIR automatically qualify for free meals."),
			Eligibility: catalog.Eligibility{
				"has_income_limit": true,
				"fpl_percentage":   185,
				"serves_children":  true,
				"serves_families":  true,
			},
			HowToApply:     catalog.Ptr("Complete the free/reduced meal application through your child's school. Forms are typically sent home at the start of the school year. Many schools allow online applications."),
			SourceName:     catalog.Ptr("USDA Food and Nutrition Service"),
			Confidence:     catalog.Ptr(0.95),
			IsActive:       catalog.Ptr(true),
			ServesState:    []string{"FL"},
			ContactWebsite: catalog.Ptr("https://www.fns.usda.gov/nslp"),
		},
	}
}
