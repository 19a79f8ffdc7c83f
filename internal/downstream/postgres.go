package downstream

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Postgres writes records through database/sql (pgx stdlib driver in
// production). A successful commit is the only "accepted" outcome.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Submit(ctx context.Context, kind dao.Kind, record any) (bool, error) {
	var err error
	switch r := record.(type) {
	case dao.Client:
		err = p.insertClient(ctx, r)
	case dao.Order:
		err = p.insertOrder(ctx, r)
	case dao.Feedback:
		err = p.insertFeedback(ctx, r)
	default:
		return false, fmt.Errorf("unsupported %s record %T", kind, record)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) IsRegistered(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE phone=$1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up client: %w", err)
	}
	return exists, nil
}

func (p *Postgres) insertClient(ctx context.Context, c dao.Client) error {
	prefs, err := json.Marshal(c.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO clients
		    (client_id, full_name, phone, email, favorite_drink, preferences, registration_date, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ClientID, c.FullName, c.Phone, c.Email, c.FavoriteDrink, string(prefs), c.RegistrationDate, c.Source)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

func (p *Postgres) insertOrder(ctx context.Context, o dao.Order) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Insert order
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		    (order_id, client_name, phone, tea_type, sugar_percentage, ice_level, size,
		     special_instructions, order_date, estimated_ready_time, status, total_price, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		o.OrderID,
		o.ClientName,
		o.Phone,
		o.TeaType,
		o.SugarPercentage,
		o.IceLevel,
		o.Size,
		o.SpecialInstructions,
		o.OrderDate,
		o.EstimatedReadyTime,
		o.Status,
		o.TotalPrice,
		o.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	// 2. Insert toppings
	for i, name := range o.Toppings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_toppings (order_id, position, name) VALUES ($1, $2, $3)
		`, o.OrderID, i, name)
		if err != nil {
			return fmt.Errorf("failed to insert topping %s: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (p *Postgres) insertFeedback(ctx context.Context, f dao.Feedback) error {
	var rating any
	if f.Rating != nil {
		b, err := json.Marshal(f.Rating)
		if err != nil {
			return fmt.Errorf("failed to encode rating: %w", err)
		}
		rating = string(b)
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO feedback
		    (id, client_name, feedback, email, phone, rating, category, date, status, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, f.ID, f.ClientName, f.Feedback, f.Email, f.Phone, rating, f.Category, f.Date, f.Status, f.Source)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}
