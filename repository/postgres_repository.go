package repository

import (
	"context"
	"database/sql"

	"arrangement-service/domain"
)

// PostgresRepository implements the template, quote, acceptance and settings
// repositories over database/sql.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const templateColumns = `id, tenant_id, name, plan_type, min_balance_cents, max_balance_cents,
	monthly_payment_cents, term_months, total_amount_cents,
	payoff_amount_cents, payoff_percent, one_time_minimum_cents, custom_terms_text, created_at`

func (p *PostgresRepository) ListForBalance(ctx context.Context, tenantID string, balance domain.Money) ([]domain.Arrangement, error) {
	query := `SELECT ` + templateColumns + ` FROM arrangement_templates
	WHERE min_balance_cents <= $1 AND max_balance_cents >= $1`
	args := []any{int64(balance)}
	if tenantID != "" {
		query += ` AND tenant_id = $2`
		args = append(args, tenantID)
	}
	query += ` ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.Arrangement
	for rows.Next() {
		arr, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, arr)
	}
	return templates, rows.Err()
}

func (p *PostgresRepository) GetByID(ctx context.Context, id string) (domain.Arrangement, error) {
	query := `SELECT ` + templateColumns + ` FROM arrangement_templates WHERE id = $1`

	row := p.db.QueryRowContext(ctx, query, id)
	arr, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return domain.Arrangement{}, ErrNotFound
	}
	if err != nil {
		return domain.Arrangement{}, err
	}
	return arr, nil
}

func (p *PostgresRepository) SaveQuote(ctx context.Context, input domain.QuoteInput, quote domain.Quote) error {
	const query = `INSERT INTO quotes (id, tenant_id, balance_cents, term_months, custom_amount_cents,
		frequency, monthly_base_cents, periodic_amount_cents, floor_applied, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := p.db.ExecContext(ctx, query,
		quote.ID, input.TenantID, int64(input.BalanceCents),
		nullableInt(int64(input.TermMonths)), nullableInt(int64(input.CustomAmountCents)),
		string(quote.Frequency), int64(quote.MonthlyBase), int64(quote.PeriodicAmount),
		quote.FloorApplied, quote.CreatedAt)
	return err
}

func (p *PostgresRepository) SaveAcceptance(ctx context.Context, acc domain.Acceptance) error {
	const query = `INSERT INTO acceptances (id, tenant_id, account_id, arrangement_id,
		monthly_base_cents, frequency, periodic_amount_cents, accepted_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err := p.db.ExecContext(ctx, query,
		acc.ID, acc.TenantID, acc.AccountID, acc.ArrangementID,
		int64(acc.MonthlyBase), string(acc.Frequency), int64(acc.PeriodicAmount), acc.AcceptedAt)
	return err
}

func (p *PostgresRepository) MinimumMonthlyPayment(ctx context.Context, tenantID string) (domain.Money, error) {
	const query = `SELECT minimum_monthly_payment_cents FROM tenant_settings WHERE tenant_id = $1`

	var minimum int64
	err := p.db.QueryRowContext(ctx, query, tenantID).Scan(&minimum)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return domain.Money(minimum), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (domain.Arrangement, error) {
	var (
		arr        domain.Arrangement
		planType   string
		minBal     int64
		maxBal     int64
		monthly    sql.NullInt64
		termMonths sql.NullInt64
		total      sql.NullInt64
		payoff     sql.NullInt64
		percent    sql.NullInt64
		oneTimeMin sql.NullInt64
		customText sql.NullString
	)
	err := row.Scan(&arr.ID, &arr.TenantID, &arr.Name, &planType, &minBal, &maxBal,
		&monthly, &termMonths, &total, &payoff, &percent, &oneTimeMin, &customText,
		&arr.CreatedAt)
	if err != nil {
		return domain.Arrangement{}, err
	}

	arr.PlanType = domain.PlanType(planType)
	arr.MinBalance = domain.Money(minBal)
	arr.MaxBalance = domain.Money(maxBal)
	arr.Terms = termsFromColumns(arr.PlanType, monthly, termMonths, total, payoff, percent, oneTimeMin, customText)
	return arr, nil
}

// termsFromColumns maps nullable computed columns to the plan's Terms
// variant. An incomplete set of columns yields nil terms, which the summary
// resolver degrades gracefully.
func termsFromColumns(planType domain.PlanType, monthly, termMonths, total, payoff, percent, oneTimeMin sql.NullInt64, customText sql.NullString) domain.Terms {
	switch planType {
	case domain.PlanRange, domain.PlanFixedMonthly:
		if monthly.Valid && termMonths.Valid && total.Valid {
			return domain.InstallmentTerms{
				MonthlyPayment: domain.Money(monthly.Int64),
				TermMonths:     int(termMonths.Int64),
				TotalAmount:    domain.Money(total.Int64),
			}
		}
	case domain.PlanPayInFull:
		if payoff.Valid {
			return domain.PayInFullTerms{
				PayoffAmount:  domain.Money(payoff.Int64),
				PayoffPercent: int(percent.Int64),
			}
		}
	case domain.PlanSettlement:
		if payoff.Valid {
			return domain.SettlementTerms{
				PayoffAmount:  domain.Money(payoff.Int64),
				PayoffPercent: int(percent.Int64),
			}
		}
	case domain.PlanOneTimePayment:
		if oneTimeMin.Valid {
			return domain.OneTimeTerms{MinimumPayment: domain.Money(oneTimeMin.Int64)}
		}
	case domain.PlanCustomTerms:
		if customText.Valid {
			return domain.CustomTerms{Text: customText.String}
		}
	}
	return nil
}

func nullableInt(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

var (
	_ TemplateRepository   = (*PostgresRepository)(nil)
	_ QuoteRepository      = (*PostgresRepository)(nil)
	_ AcceptanceRepository = (*PostgresRepository)(nil)
	_ SettingsRepository   = (*PostgresRepository)(nil)
)
