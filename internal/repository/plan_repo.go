// Package repository persists saved plans in SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/domain"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrAmbiguousID  = errors.New("plan id prefix matches more than one plan")
)

type PlanRepo interface {
	Create(ctx context.Context, p *domain.SavedPlan) error
	// GetByID accepts a full id or a unique prefix of one.
	GetByID(ctx context.Context, id string) (*domain.SavedPlan, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (*domain.SavedPlan, error)
	// List returns the newest plans first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.SavedPlan, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	SetRenderPath(ctx context.Context, id, path string, at time.Time) error
}

// SQLitePlanRepo implements PlanRepo over a database handle or an open
// transaction.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

const planColumns = `id, name, fingerprint, land_cents, family_size, budget, orientation, preferences,
	house_type, tier, budget_fit, total_cost, built_up_sqft, modifiers, render_path, rendered_at, created_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, s *domain.SavedPlan) error {
	p := &s.Plan
	_, err := r.db.ExecContext(ctx, `INSERT INTO plans (`+planColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.Name,
		s.Fingerprint,
		p.Request.LandCents,
		p.Request.FamilySize,
		p.Request.Budget,
		string(p.Request.Orientation),
		p.Request.Preferences,
		string(p.HouseType),
		string(p.Tier),
		string(p.BudgetFit),
		p.TotalCost,
		p.BuiltUpArea,
		joinModifiers(p.Modifiers),
		nullableString(s.RenderPath),
		nullableTimeToString(s.RenderedAt),
		s.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for _, f := range p.Floors {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_floors (plan_id, floor_index, usable_sqft, allocated_sqft) VALUES (?, ?, ?, ?)`,
			s.ID, f.Index, f.UsableArea, f.AllocatedArea); err != nil {
			return fmt.Errorf("inserting floor %d: %w", f.Index, err)
		}
	}
	for i, room := range p.Rooms {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_rooms (plan_id, seq, name, kind, floor_index, width_ft, length_ft) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.ID, i, room.Name, string(room.Kind), room.Floor, room.Width, room.Length); err != nil {
			return fmt.Errorf("inserting room %q: %w", room.Name, err)
		}
	}
	for i, line := range p.CostLines {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_cost_lines (plan_id, seq, category, amount) VALUES (?, ?, ?, ?)`,
			s.ID, i, string(line.Category), line.Amount); err != nil {
			return fmt.Errorf("inserting cost line %s: %w", line.Category, err)
		}
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.SavedPlan, error) {
	if id == "" {
		return nil, ErrPlanNotFound
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+planColumns+` FROM plans WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY id = ? DESC LIMIT 2`,
		id, likePrefix(id), id)
	if err != nil {
		return nil, fmt.Errorf("querying plan %s: %w", id, err)
	}
	plans, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	switch {
	case len(plans) == 0:
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	case len(plans) > 1 && plans[0].ID != id:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
	if err := r.loadChildren(ctx, plans[0]); err != nil {
		return nil, err
	}
	return plans[0], nil
}

func (r *SQLitePlanRepo) GetByFingerprint(ctx context.Context, fingerprint string) (*domain.SavedPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+planColumns+` FROM plans WHERE fingerprint = ? ORDER BY created_at LIMIT 1`, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("querying plan by fingerprint: %w", err)
	}
	plans, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("%w: fingerprint %s", ErrPlanNotFound, fingerprint)
	}
	if err := r.loadChildren(ctx, plans[0]); err != nil {
		return nil, err
	}
	return plans[0], nil
}

func (r *SQLitePlanRepo) List(ctx context.Context, limit int) ([]*domain.SavedPlan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	plans, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	// Children load after the parent cursor is closed; an in-memory
	// database has a single connection.
	for _, p := range plans {
		if err := r.loadChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plans: %w", err)
	}
	return n, nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return requireOneRow(res, id)
}

func (r *SQLitePlanRepo) SetRenderPath(ctx context.Context, id, path string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE plans SET render_path = ?, rendered_at = ? WHERE id = ?`,
		path, at.UTC().Format(timeLayout), id)
	if err != nil {
		return fmt.Errorf("recording render path: %w", err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	return nil
}

// collect scans and closes rows.
func (r *SQLitePlanRepo) collect(rows *sql.Rows) ([]*domain.SavedPlan, error) {
	defer rows.Close()
	var plans []*domain.SavedPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func scanPlan(rows *sql.Rows) (*domain.SavedPlan, error) {
	var s domain.SavedPlan
	var orientation, houseType, tier, fit, mods, createdAt string
	var renderPath, renderedAt sql.NullString

	err := rows.Scan(
		&s.ID, &s.Name, &s.Fingerprint,
		&s.Plan.Request.LandCents, &s.Plan.Request.FamilySize, &s.Plan.Request.Budget,
		&orientation, &s.Plan.Request.Preferences,
		&houseType, &tier, &fit,
		&s.Plan.TotalCost, &s.Plan.BuiltUpArea, &mods,
		&renderPath, &renderedAt, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	s.Plan.Request.Orientation = domain.Orientation(orientation)
	s.Plan.HouseType = domain.HouseType(houseType)
	s.Plan.Tier = domain.MaterialTier(tier)
	s.Plan.BudgetFit = domain.BudgetFit(fit)
	s.Plan.Modifiers = splitModifiers(mods)
	s.RenderPath = renderPath.String
	s.RenderedAt = parseNullableTime(renderedAt)
	s.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at for plan %s: %w", s.ID, err)
	}
	return &s, nil
}

func (r *SQLitePlanRepo) loadChildren(ctx context.Context, s *domain.SavedPlan) error {
	floors, err := r.db.QueryContext(ctx,
		`SELECT floor_index, usable_sqft, allocated_sqft FROM plan_floors WHERE plan_id = ? ORDER BY floor_index`, s.ID)
	if err != nil {
		return fmt.Errorf("loading floors: %w", err)
	}
	s.Plan.Floors = []domain.FloorSummary{}
	err = eachRow(floors, func(rows *sql.Rows) error {
		var f domain.FloorSummary
		if err := rows.Scan(&f.Index, &f.UsableArea, &f.AllocatedArea); err != nil {
			return err
		}
		s.Plan.Floors = append(s.Plan.Floors, f)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning floors: %w", err)
	}

	rooms, err := r.db.QueryContext(ctx,
		`SELECT name, kind, floor_index, width_ft, length_ft FROM plan_rooms WHERE plan_id = ? ORDER BY seq`, s.ID)
	if err != nil {
		return fmt.Errorf("loading rooms: %w", err)
	}
	s.Plan.Rooms = []domain.RoomAllocation{}
	err = eachRow(rooms, func(rows *sql.Rows) error {
		var room domain.RoomAllocation
		var kind string
		if err := rows.Scan(&room.Name, &kind, &room.Floor, &room.Width, &room.Length); err != nil {
			return err
		}
		room.Kind = domain.RoomKind(kind)
		s.Plan.Rooms = append(s.Plan.Rooms, room)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning rooms: %w", err)
	}

	lines, err := r.db.QueryContext(ctx,
		`SELECT category, amount FROM plan_cost_lines WHERE plan_id = ? ORDER BY seq`, s.ID)
	if err != nil {
		return fmt.Errorf("loading cost lines: %w", err)
	}
	s.Plan.CostLines = []domain.CostLine{}
	err = eachRow(lines, func(rows *sql.Rows) error {
		var line domain.CostLine
		var category string
		if err := rows.Scan(&category, &line.Amount); err != nil {
			return err
		}
		line.Category = domain.CostCategory(category)
		s.Plan.CostLines = append(s.Plan.CostLines, line)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning cost lines: %w", err)
	}
	return nil
}

func eachRow(rows *sql.Rows, fn func(*sql.Rows) error) error {
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
