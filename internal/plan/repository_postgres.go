package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const planColumns = `
	id, type, seats, atv, hours, area,
	turnover, daily_guests, monthly_sales, cogs_rate, cogs,
	gross_profit, labor_cost, fixed_cost, op_income, payback_months,
	concept, action, created_at
`

func (r *PostgresRepository) Insert(ctx context.Context, p *Plan) error {
	query := `
		INSERT INTO business_plans (
			type, seats, atv, hours, area,
			turnover, daily_guests, monthly_sales, cogs_rate, cogs,
			gross_profit, labor_cost, fixed_cost, op_income, payback_months,
			concept, action
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		p.Type, p.Seats, p.ATV, p.Hours, p.Area,
		p.Turnover, p.DailyGuests, p.MonthlySales, p.CogsRate, p.Cogs,
		p.GrossProfit, p.LaborCost, p.FixedCost, p.OpIncome, p.PaybackMonths,
		p.Concept, p.Action,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Plan, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+planColumns+` FROM business_plans WHERE id = $1`, id)

	p, err := scanPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]*Plan, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+planColumns+` FROM business_plans ORDER BY created_at DESC OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	err := row.Scan(
		&p.ID, &p.Type, &p.Seats, &p.ATV, &p.Hours, &p.Area,
		&p.Turnover, &p.DailyGuests, &p.MonthlySales, &p.CogsRate, &p.Cogs,
		&p.GrossProfit, &p.LaborCost, &p.FixedCost, &p.OpIncome, &p.PaybackMonths,
		&p.Concept, &p.Action, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
