package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

const programColumns = `
	id, program_code, program_name, program_name_es, category, subcategory,
	description, description_es, benefits_summary, benefits_summary_es,
	benefit_amount_min, benefit_amount_max, benefit_frequency,
	eligibility_summary, eligibility_summary_es, eligibility_parsed,
	how_to_apply, how_to_apply_es, application_url, processing_time,
	source_url, source_name, last_verified,
	confidence_score, is_active, is_emergency,
	serves_county, serves_state, contact_phone, contact_email, contact_website
`

const providerColumns = `
	id, provider_name, provider_name_es, provider_type,
	address_street, address_city, address_state, address_zip, address_county,
	phone, website, hours_of_operation, services_offered, languages_spoken, is_active
`

// GetAllPrograms lists programs ordered by confidence then name, optionally
// restricted to active rows and a single category.
func (s *Store) GetAllPrograms(ctx context.Context, activeOnly bool, category string) ([]catalog.ProgramRecord, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE 1=1`
	var args []any

	if activeOnly {
		query += ` AND is_active = true`
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	query += ` ORDER BY confidence_score DESC, program_name`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()
	return collectPrograms(rows)
}

// GetProgramByID loads one program or returns ErrNotFound.
func (s *Store) GetProgramByID(ctx context.Context, id int64) (catalog.ProgramRecord, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id)
	rec, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ProgramRecord{}, ErrNotFound
		}
		return catalog.ProgramRecord{}, fmt.Errorf("failed to get program %d: %w", id, err)
	}
	return rec, nil
}

// SearchPrograms matches term against names and descriptions. Spanish
// searches also check the English columns so untranslated rows still
// surface.
func (s *Store) SearchPrograms(ctx context.Context, term, lang string) ([]catalog.ProgramRecord, error) {
	nameCol, descCol := "program_name", "description"
	if lang == "es" {
		nameCol, descCol = "program_name_es", "description_es"
	}

	query := `
		SELECT ` + programColumns + `
		FROM programs
		WHERE is_active = true
		  AND (
			` + nameCol + ` ILIKE $1
			OR ` + descCol + ` ILIKE $1
			OR program_name ILIKE $1
			OR description ILIKE $1
		  )
		ORDER BY confidence_score DESC
	`
	rows, err := s.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search programs: %w", err)
	}
	defer rows.Close()
	return collectPrograms(rows)
}

// GetEmergencyPrograms lists active crisis programs.
func (s *Store) GetEmergencyPrograms(ctx context.Context) ([]catalog.ProgramRecord, error) {
	query := `
		SELECT ` + programColumns + `
		FROM programs
		WHERE is_active = true AND is_emergency = true
		ORDER BY category, program_name
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency programs: %w", err)
	}
	defer rows.Close()
	return collectPrograms(rows)
}

// GetIncomeLimits lists a program's income-limit rows by household size.
func (s *Store) GetIncomeLimits(ctx context.Context, programID int64) ([]catalog.IncomeLimit, error) {
	query := `
		SELECT program_id, household_size, monthly_limit, fpl_percentage, effective_date
		FROM income_limits
		WHERE program_id = $1
		ORDER BY household_size
	`
	rows, err := s.db.Query(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income limits: %w", err)
	}
	defer rows.Close()

	var limits []catalog.IncomeLimit
	for rows.Next() {
		var l catalog.IncomeLimit
		if err := rows.Scan(&l.ProgramID, &l.HouseholdSize, &l.MonthlyLimit, &l.FPLPercentage, &l.EffectiveDate); err != nil {
			return nil, fmt.Errorf("failed to scan income limit: %w", err)
		}
		limits = append(limits, l)
	}
	return limits, rows.Err()
}

// GetIncomeLimit returns the most recent monthly limit for a household
// size, or ErrNotFound.
func (s *Store) GetIncomeLimit(ctx context.Context, programID int64, householdSize int) (float64, error) {
	query := `
		SELECT monthly_limit
		FROM income_limits
		WHERE program_id = $1 AND household_size = $2
		ORDER BY effective_date DESC
		LIMIT 1
	`
	var limit float64
	err := s.db.QueryRow(ctx, query, programID, householdSize).Scan(&limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get income limit: %w", err)
	}
	return limit, nil
}

// GetProvidersByCounty lists active providers in a county.
func (s *Store) GetProvidersByCounty(ctx context.Context, county string) ([]catalog.ProviderRecord, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE address_county ILIKE $1 AND is_active = true
		ORDER BY provider_name
	`
	rows, err := s.db.Query(ctx, query, "%"+county+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer rows.Close()
	return collectProviders(rows)
}

// GetProvidersForProgram lists providers linked to a program, primary
// locations first.
func (s *Store) GetProvidersForProgram(ctx context.Context, programID int64) ([]catalog.ProviderRecord, error) {
	query := `
		SELECT p.id, p.provider_name, p.provider_name_es, p.provider_type,
			p.address_street, p.address_city, p.address_state, p.address_zip, p.address_county,
			p.phone, p.website, p.hours_of_operation, p.services_offered, p.languages_spoken, p.is_active
		FROM providers p
		JOIN program_providers pp ON p.id = pp.provider_id
		WHERE pp.program_id = $1 AND p.is_active = true
		ORDER BY pp.is_primary DESC, p.provider_name
	`
	rows, err := s.db.Query(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list program providers: %w", err)
	}
	defer rows.Close()
	return collectProviders(rows)
}

// Stats summarizes the active catalog for dashboards.
type Stats struct {
	TotalPrograms     int64 `json:"total_programs"`
	EmergencyPrograms int64 `json:"emergency_programs"`
	HighConfidence    int64 `json:"high_confidence"`
	Categories        int64 `json:"categories"`
}

// GetProgramStats aggregates counts over active programs.
func (s *Store) GetProgramStats(ctx context.Context) (Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_programs,
			COUNT(*) FILTER (WHERE is_emergency) AS emergency_programs,
			COUNT(*) FILTER (WHERE confidence_score >= 0.7) AS high_confidence,
			COUNT(DISTINCT category) AS categories
		FROM programs
		WHERE is_active = true
	`
	var st Stats
	err := s.db.QueryRow(ctx, query).Scan(
		&st.TotalPrograms, &st.EmergencyPrograms, &st.HighConfidence, &st.Categories)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get program stats: %w", err)
	}
	return st, nil
}

// CategoryCount is one category's active-program count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// GetCategoryCounts lists active-program counts per category, largest
// first.
func (s *Store) GetCategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) AS count
		FROM programs
		WHERE is_active = true AND category IS NOT NULL
		GROUP BY category
		ORDER BY count DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get category counts: %w", err)
	}
	defer rows.Close()

	var counts []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// GetAllTranslations returns the UI string table for a language, falling
// back to English for missing entries.
func (s *Store) GetAllTranslations(ctx context.Context, lang string) (map[string]string, error) {
	field := "text_en"
	if lang == "es" {
		field = "text_es"
	}
	query := `SELECT translation_key, COALESCE(` + field + `, text_en) AS text FROM translations`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get translations: %w", err)
	}
	defer rows.Close()

	translations := make(map[string]string)
	for rows.Next() {
		var key, text string
		if err := rows.Scan(&key, &text); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		translations[key] = text
	}
	return translations, rows.Err()
}

// FPLEntry holds one household size's poverty-level amounts.
type FPLEntry struct {
	Annual  float64 `json:"annual"`
	Monthly float64 `json:"monthly"`
}

// GetFPLTable returns federal poverty level amounts keyed by household
// size.
func (s *Store) GetFPLTable(ctx context.Context, year int, state string) (map[int]FPLEntry, error) {
	query := `
		SELECT household_size, annual_amount, monthly_amount
		FROM fpl_tables
		WHERE year = $1 AND state = $2
		ORDER BY household_size
	`
	rows, err := s.db.Query(ctx, query, year, state)
	if err != nil {
		return nil, fmt.Errorf("failed to get fpl table: %w", err)
	}
	defer rows.Close()

	table := make(map[int]FPLEntry)
	for rows.Next() {
		var size int
		var entry FPLEntry
		if err := rows.Scan(&size, &entry.Annual, &entry.Monthly); err != nil {
			return nil, fmt.Errorf("failed to scan fpl row: %w", err)
		}
		table[size] = entry
	}
	return table, rows.Err()
}

func collectPrograms(rows pgx.Rows) ([]catalog.ProgramRecord, error) {
	var programs []catalog.ProgramRecord
	for rows.Next() {
		rec, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, rec)
	}
	return programs, rows.Err()
}

func scanProgram(row pgx.Row) (catalog.ProgramRecord, error) {
	var (
		rec         catalog.ProgramRecord
		code        *string
		category    *string
		frequency   *string
		eligibility []byte
	)
	err := row.Scan(
		&rec.ID, &code, &rec.Name, &rec.NameES, &category, &rec.Subcategory,
		&rec.Description, &rec.DescriptionES,
		&rec.BenefitsSummary, &rec.BenefitsSummaryES,
		&rec.BenefitAmountMin, &rec.BenefitAmountMax, &frequency,
		&rec.EligibilitySummary, &rec.EligibilitySummaryES, &eligibility,
		&rec.HowToApply, &rec.HowToApplyES, &rec.ApplicationURL, &rec.ProcessingTime,
		&rec.SourceURL, &rec.SourceName, &rec.LastVerified,
		&rec.Confidence, &rec.IsActive, &rec.IsEmergency,
		&rec.ServesCounty, &rec.ServesState,
		&rec.ContactPhone, &rec.ContactEmail, &rec.ContactWebsite,
	)
	if err != nil {
		return catalog.ProgramRecord{}, err
	}

	if code != nil {
		rec.Code = *code
	}
	if category != nil {
		rec.Category = catalog.Ptr(catalog.Category(*category))
	}
	if frequency != nil {
		rec.BenefitFrequency = catalog.Ptr(catalog.Frequency(*frequency))
	}
	if len(eligibility) > 0 {
		if err := json.Unmarshal(eligibility, &rec.Eligibility); err != nil {
			return catalog.ProgramRecord{}, fmt.Errorf("failed to decode eligibility: %w", err)
		}
	}
	return rec, nil
}

func collectProviders(rows pgx.Rows) ([]catalog.ProviderRecord, error) {
	var providers []catalog.ProviderRecord
	for rows.Next() {
		var (
			rec   catalog.ProviderRecord
			hours []byte
		)
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.NameES, &rec.Type,
			&rec.Street, &rec.City, &rec.State, &rec.Zip, &rec.County,
			&rec.Phone, &rec.Website, &hours, &rec.Services, &rec.Languages, &rec.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		if len(hours) > 0 {
			if err := json.Unmarshal(hours, &rec.Hours); err != nil {
				return nil, fmt.Errorf("failed to decode hours: %w", err)
			}
		}
		providers = append(providers, rec)
	}
	return providers, rows.Err()
}
