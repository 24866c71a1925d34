// Package store is the Postgres-backed reconciliation layer. Writes merge
// incoming records into existing rows so that repeated pipeline runs refine
// the catalog instead of churning it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

// ErrNotFound signals that the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// DB is the subset of pgxpool.Pool the store needs. pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store persists and reads the program catalog.
type Store struct {
	db     DB
	logger *zap.Logger
}

// New connects a pool and verifies the connection.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return &Store{db: pool, logger: logger}, nil
}

// NewWithDB wraps an existing connection, mock or real.
func NewWithDB(db DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// UpsertProgram merges rec into the catalog. Records carrying a code are
// matched against existing rows; on a match only the non-nil fields
// overwrite, so a sparse scrape never erases curated data. Records without
// a code always insert. Returns true when a new row was created.
func (s *Store) UpsertProgram(ctx context.Context, rec catalog.ProgramRecord) (bool, error) {
	if rec.Code != "" {
		var id int64
		err := s.db.QueryRow(ctx,
			`SELECT id FROM programs WHERE program_code = $1`, rec.Code).Scan(&id)
		switch {
		case err == nil:
			return false, s.updateProgram(ctx, id, rec)
		case errors.Is(err, pgx.ErrNoRows):
			// fall through to insert
		default:
			return false, fmt.Errorf("failed to look up program %q: %w", rec.Code, err)
		}
	}
	return true, s.insertProgram(ctx, rec)
}

func (s *Store) updateProgram(ctx context.Context, id int64, rec catalog.ProgramRecord) error {
	eligibility, err := marshalJSON(rec.Eligibility)
	if err != nil {
		return fmt.Errorf("failed to marshal eligibility for %q: %w", rec.Name, err)
	}

	query := `
		UPDATE programs SET
			program_name = COALESCE($2, program_name),
			program_name_es = COALESCE($3, program_name_es),
			category = COALESCE($4, category),
			subcategory = COALESCE($5, subcategory),
			description = COALESCE($6, description),
			description_es = COALESCE($7, description_es),
			benefits_summary = COALESCE($8, benefits_summary),
			benefits_summary_es = COALESCE($9, benefits_summary_es),
			benefit_amount_min = COALESCE($10, benefit_amount_min),
			benefit_amount_max = COALESCE($11, benefit_amount_max),
			benefit_frequency = COALESCE($12, benefit_frequency),
			eligibility_summary = COALESCE($13, eligibility_summary),
			eligibility_summary_es = COALESCE($14, eligibility_summary_es),
			eligibility_parsed = COALESCE($15, eligibility_parsed),
			how_to_apply = COALESCE($16, how_to_apply),
			how_to_apply_es = COALESCE($17, how_to_apply_es),
			application_url = COALESCE($18, application_url),
			processing_time = COALESCE($19, processing_time),
			source_url = COALESCE($20, source_url),
			source_name = COALESCE($21, source_name),
			last_verified = COALESCE($22, last_verified),
			confidence_score = COALESCE($23, confidence_score),
			is_active = COALESCE($24, is_active),
			is_emergency = COALESCE($25, is_emergency),
			serves_county = COALESCE($26, serves_county),
			serves_state = COALESCE($27, serves_state),
			contact_phone = COALESCE($28, contact_phone),
			contact_email = COALESCE($29, contact_email),
			contact_website = COALESCE($30, contact_website),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`
	_, err = s.db.Exec(ctx, query, id,
		nonEmpty(rec.Name), rec.NameES, rec.Category, rec.Subcategory,
		rec.Description, rec.DescriptionES,
		rec.BenefitsSummary, rec.BenefitsSummaryES,
		rec.BenefitAmountMin, rec.BenefitAmountMax, rec.BenefitFrequency,
		rec.EligibilitySummary, rec.EligibilitySummaryES, eligibility,
		rec.HowToApply, rec.HowToApplyES, rec.ApplicationURL, rec.ProcessingTime,
		rec.SourceURL, rec.SourceName, rec.LastVerified,
		rec.Confidence, rec.IsActive, rec.IsEmergency,
		nilIfEmpty(rec.ServesCounty), nilIfEmpty(rec.ServesState),
		rec.ContactPhone, rec.ContactEmail, rec.ContactWebsite,
	)
	if err != nil {
		return fmt.Errorf("failed to update program %q: %w", rec.Name, err)
	}
	return nil
}

func (s *Store) insertProgram(ctx context.Context, rec catalog.ProgramRecord) error {
	eligibility, err := marshalJSON(rec.Eligibility)
	if err != nil {
		return fmt.Errorf("failed to marshal eligibility for %q: %w", rec.Name, err)
	}

	query := `
		INSERT INTO programs (
			program_code, program_name, program_name_es, category, subcategory,
			description, description_es, benefits_summary, benefits_summary_es,
			benefit_amount_min, benefit_amount_max, benefit_frequency,
			eligibility_summary, eligibility_summary_es, eligibility_parsed,
			how_to_apply, how_to_apply_es, application_url, processing_time,
			source_url, source_name, last_verified,
			confidence_score, is_active, is_emergency,
			serves_county, serves_state, contact_phone, contact_email, contact_website
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
	`
	_, err = s.db.Exec(ctx, query,
		nilIfBlank(rec.Code), rec.Name, rec.NameES, rec.Category, rec.Subcategory,
		rec.Description, rec.DescriptionES,
		rec.BenefitsSummary, rec.BenefitsSummaryES,
		rec.BenefitAmountMin, rec.BenefitAmountMax, rec.BenefitFrequency,
		rec.EligibilitySummary, rec.EligibilitySummaryES, eligibility,
		rec.HowToApply, rec.HowToApplyES, rec.ApplicationURL, rec.ProcessingTime,
		rec.SourceURL, rec.SourceName, rec.LastVerified,
		orDefault(rec.Confidence, 0.5), orDefault(rec.IsActive, true), orDefault(rec.IsEmergency, false),
		nilIfEmpty(rec.ServesCounty), nilIfEmpty(rec.ServesState),
		rec.ContactPhone, rec.ContactEmail, rec.ContactWebsite,
	)
	if err != nil {
		return fmt.Errorf("failed to insert program %q: %w", rec.Name, err)
	}
	return nil
}

// UpsertProvider saves rec, replacing any existing row sharing (name, city).
// Unlike programs, provider rows are fully replaced; the curated list is the
// single source of truth for provider details. Returns true on insert.
func (s *Store) UpsertProvider(ctx context.Context, rec catalog.ProviderRecord) (bool, error) {
	hours, err := marshalJSON(rec.Hours)
	if err != nil {
		return false, fmt.Errorf("failed to marshal hours for %q: %w", rec.Name, err)
	}

	var id int64
	err = s.db.QueryRow(ctx,
		`SELECT id FROM providers WHERE provider_name = $1 AND address_city = $2`,
		rec.Name, rec.City).Scan(&id)
	switch {
	case err == nil:
		query := `
			UPDATE providers SET
				provider_name_es = $2,
				provider_type = $3,
				address_street = $4,
				address_state = $5,
				address_zip = $6,
				address_county = $7,
				phone = $8,
				website = $9,
				hours_of_operation = $10,
				services_offered = $11,
				languages_spoken = $12,
				is_active = $13,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
		`
		_, err = s.db.Exec(ctx, query, id,
			rec.NameES, rec.Type, rec.Street, rec.State, rec.Zip, rec.County,
			rec.Phone, rec.Website, hours,
			nilIfEmpty(rec.Services), nilIfEmpty(rec.Languages), rec.IsActive,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update provider %q: %w", rec.Name, err)
		}
		return false, nil
	case errors.Is(err, pgx.ErrNoRows):
		query := `
			INSERT INTO providers (
				provider_name, provider_name_es, provider_type,
				address_street, address_city, address_state, address_zip, address_county,
				phone, website, hours_of_operation, services_offered, languages_spoken, is_active
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			)
		`
		_, err = s.db.Exec(ctx, query,
			rec.Name, rec.NameES, rec.Type,
			rec.Street, rec.City, rec.State, rec.Zip, rec.County,
			rec.Phone, rec.Website, hours,
			nilIfEmpty(rec.Services), nilIfEmpty(rec.Languages), rec.IsActive,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert provider %q: %w", rec.Name, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("failed to look up provider %q: %w", rec.Name, err)
	}
}

// ProgramIDByCode resolves a program code to its row id, or ErrNotFound.
func (s *Store) ProgramIDByCode(ctx context.Context, code string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`SELECT id FROM programs WHERE program_code = $1`, code).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve program code %q: %w", code, err)
	}
	return id, nil
}

// UpsertIncomeLimit writes one income-limit row, overwriting the limit and
// FPL percentage when the (program, size, effective date) triple already
// exists.
func (s *Store) UpsertIncomeLimit(ctx context.Context, limit catalog.IncomeLimit) error {
	query := `
		INSERT INTO income_limits (
			program_id, household_size, monthly_limit, fpl_percentage, effective_date
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (program_id, household_size, effective_date) DO UPDATE SET
			monthly_limit = EXCLUDED.monthly_limit,
			fpl_percentage = EXCLUDED.fpl_percentage
	`
	_, err := s.db.Exec(ctx, query,
		limit.ProgramID, limit.HouseholdSize, limit.MonthlyLimit,
		limit.FPLPercentage, limit.EffectiveDate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert income limit: %w", err)
	}
	return nil
}

func marshalJSON(v any) (any, error) {
	switch m := v.(type) {
	case catalog.Eligibility:
		if m == nil {
			return nil, nil
		}
	case map[string]string:
		if m == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nilIfBlank(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nilIfEmpty(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return ss
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
