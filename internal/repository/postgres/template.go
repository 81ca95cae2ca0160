package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/freelanceshield/api/internal/domain/template"
	"github.com/freelanceshield/api/internal/pkg/errors"
)

// TemplateRepository implements template.Repository
type TemplateRepository struct {
	db *DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *DB) template.Repository {
	return &TemplateRepository{db: db}
}

const templateColumns = `id, name, description, freelancer_type, us_state, content, is_active, created_at, updated_at`

// Create creates a new template
func (r *TemplateRepository) Create(ctx context.Context, t *template.Template) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := r.db.Rebind(`
		INSERT INTO templates (name, description, freelancer_type, us_state, content, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.Description, t.FreelancerType, t.USState, t.Content, t.IsActive,
		now.Unix(), now.Unix(),
	).Scan(&t.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create template", err)
	}
	return nil
}

func scanTemplateRow(scan func(dest ...interface{}) error) (*template.Template, error) {
	var t template.Template
	var description, freelancerType, usState sql.NullString
	var createdAt, updatedAt int64

	err := scan(
		&t.ID, &t.Name, &description, &freelancerType, &usState,
		&t.Content, &t.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	t.FreelancerType = freelancerType.String
	t.USState = usState.String
	t.CreatedAt = time.Unix(createdAt, 0)
	t.UpdatedAt = time.Unix(updatedAt, 0)
	return &t, nil
}

// GetByID retrieves a template by ID
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*template.Template, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM templates WHERE id = ?", templateColumns))
	t, err := scanTemplateRow(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Template")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get template", err)
	}
	return t, nil
}

// Update updates a template
func (r *TemplateRepository) Update(ctx context.Context, t *template.Template) error {
	t.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		UPDATE templates
		SET name = ?, description = ?, freelancer_type = ?, us_state = ?, content = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.Description, t.FreelancerType, t.USState, t.Content, t.IsActive,
		t.UpdatedAt.Unix(), t.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update template", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Template")
	}
	return nil
}

// Delete deletes a template
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM templates WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete template", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Template")
	}
	return nil
}

// List retrieves templates; activeOnly hides inactive ones
func (r *TemplateRepository) List(ctx context.Context, activeOnly bool) ([]*template.Template, error) {
	query := fmt.Sprintf("SELECT %s FROM templates", templateColumns)
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list templates", err)
	}
	defer rows.Close()

	var templates []*template.Template
	for rows.Next() {
		t, err := scanTemplateRow(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan template", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Count returns the total number of templates
func (r *TemplateRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM templates").Scan(&total); err != nil {
		return 0, errors.DatabaseError("Failed to count templates", err)
	}
	return total, nil
}
