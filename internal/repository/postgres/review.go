package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/freelanceshield/api/internal/domain/review"
	"github.com/freelanceshield/api/internal/pkg/errors"
)

// ReviewRepository implements review.Repository
type ReviewRepository struct {
	db *DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *DB) review.Repository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, user_id, file_name, raw_text, freelancer_type, us_state, status,
	overall_risk_score, risk_summary, error_message, share_token, created_at`

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	rev.CreatedAt = time.Now()

	query := r.db.Rebind(`
		INSERT INTO reviews (user_id, file_name, raw_text, freelancer_type, us_state, status,
			overall_risk_score, risk_summary, error_message, share_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		rev.UserID, rev.FileName, rev.RawText, rev.FreelancerType, rev.USState, string(rev.Status),
		rev.OverallRiskScore, rev.RiskSummary, rev.ErrorMessage, rev.ShareToken,
		rev.CreatedAt.Unix(),
	).Scan(&rev.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create review", err)
	}
	return nil
}

func scanReviewRow(scan func(dest ...interface{}) error) (*review.Review, error) {
	var rev review.Review
	var status string
	var riskScore sql.NullInt64
	var riskSummary, errorMessage, shareToken sql.NullString
	var createdAt int64

	err := scan(
		&rev.ID, &rev.UserID, &rev.FileName, &rev.RawText, &rev.FreelancerType,
		&rev.USState, &status, &riskScore, &riskSummary, &errorMessage, &shareToken,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rev.Status = review.Status(status)
	if riskScore.Valid {
		score := int(riskScore.Int64)
		rev.OverallRiskScore = &score
	}
	if riskSummary.Valid {
		rev.RiskSummary = &riskSummary.String
	}
	if errorMessage.Valid {
		rev.ErrorMessage = &errorMessage.String
	}
	if shareToken.Valid {
		rev.ShareToken = &shareToken.String
	}
	rev.CreatedAt = time.Unix(createdAt, 0)

	return &rev, nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*review.Review, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM reviews WHERE id = ?", reviewColumns))
	rev, err := scanReviewRow(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Review")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get review", err)
	}
	return rev, nil
}

// GetByShareToken retrieves a review by its share token
func (r *ReviewRepository) GetByShareToken(ctx context.Context, token string) (*review.Review, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM reviews WHERE share_token = ?", reviewColumns))
	rev, err := scanReviewRow(r.db.QueryRowContext(ctx, query, token).Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Review")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get review", err)
	}
	return rev, nil
}

// Update updates a review
func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	query := r.db.Rebind(`
		UPDATE reviews
		SET status = ?, overall_risk_score = ?, risk_summary = ?, error_message = ?, share_token = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		string(rev.Status), rev.OverallRiskScore, rev.RiskSummary, rev.ErrorMessage,
		rev.ShareToken, rev.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update review", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Review")
	}
	return nil
}

// Delete removes a review and its clauses
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM clauses WHERE review_id = ?"), id); err != nil {
		return errors.DatabaseError("Failed to delete clauses", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM reviews WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("Failed to delete review", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Review")
	}
	return nil
}

// List retrieves reviews matching the filter with a total count
func (r *ReviewRepository) List(ctx context.Context, filter review.ListFilter) ([]*review.Review, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}

	if filter.UserID != 0 {
		where += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.FileNameSearch != "" {
		where += " AND file_name LIKE ?"
		args = append(args, "%"+filter.FileNameSearch+"%")
	}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, string(filter.Status))
	}

	var total int64
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM reviews " + where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count reviews", err)
	}

	query := r.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM reviews %s ORDER BY created_at DESC LIMIT ? OFFSET ?",
		reviewColumns, where,
	))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list reviews", err)
	}
	defer rows.Close()

	var reviews []*review.Review
	for rows.Next() {
		rev, err := scanReviewRow(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan review", err)
		}
		reviews = append(reviews, rev)
	}

	return reviews, total, rows.Err()
}

// CountCreatedSince counts a user's reviews created after the given time
func (r *ReviewRepository) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	var total int64
	query := r.db.Rebind("SELECT COUNT(*) FROM reviews WHERE user_id = ? AND created_at > ?")
	if err := r.db.QueryRowContext(ctx, query, userID, since.Unix()).Scan(&total); err != nil {
		return 0, errors.DatabaseError("Failed to count recent reviews", err)
	}
	return total, nil
}

// Count returns the total number of reviews
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews").Scan(&total); err != nil {
		return 0, errors.DatabaseError("Failed to count reviews", err)
	}
	return total, nil
}

// CreateClauses bulk-inserts clauses for a review
func (r *ReviewRepository) CreateClauses(ctx context.Context, clauses []*review.Clause) error {
	if len(clauses) == 0 {
		return nil
	}

	now := time.Now()
	var b strings.Builder
	b.WriteString(`INSERT INTO clauses (review_id, clause_type, original_text, risk_level,
		plain_english, specific_concern, suggested_edit, sort_order, created_at) VALUES `)

	args := make([]interface{}, 0, len(clauses)*9)
	for i, c := range clauses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		c.CreatedAt = now
		args = append(args,
			c.ReviewID, c.ClauseType, c.OriginalText, c.RiskLevel,
			c.PlainEnglish, c.SpecificConcern, c.SuggestedEdit, c.SortOrder, now.Unix(),
		)
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(b.String()), args...); err != nil {
		return errors.DatabaseError("Failed to create clauses", err)
	}
	return nil
}

// GetClauses retrieves a review's clauses in report order
func (r *ReviewRepository) GetClauses(ctx context.Context, reviewID int64) ([]*review.Clause, error) {
	query := r.db.Rebind(`
		SELECT id, review_id, clause_type, original_text, risk_level,
			plain_english, specific_concern, suggested_edit, sort_order, created_at
		FROM clauses WHERE review_id = ?
	`)

	rows, err := r.db.QueryContext(ctx, query, reviewID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to get clauses", err)
	}
	defer rows.Close()

	var clauses []*review.Clause
	for rows.Next() {
		c, err := scanClauseRow(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan clause", err)
		}
		clauses = append(clauses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to read clauses", err)
	}

	// Risk ordering is applied in code so both drivers agree
	review.SortClauses(clauses)
	return clauses, nil
}

// GetClause retrieves a single clause
func (r *ReviewRepository) GetClause(ctx context.Context, id int64) (*review.Clause, error) {
	query := r.db.Rebind(`
		SELECT id, review_id, clause_type, original_text, risk_level,
			plain_english, specific_concern, suggested_edit, sort_order, created_at
		FROM clauses WHERE id = ?
	`)

	c, err := scanClauseRow(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Clause")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get clause", err)
	}
	return c, nil
}

func scanClauseRow(scan func(dest ...interface{}) error) (*review.Clause, error) {
	var c review.Clause
	var suggestedEdit sql.NullString
	var createdAt int64

	err := scan(
		&c.ID, &c.ReviewID, &c.ClauseType, &c.OriginalText, &c.RiskLevel,
		&c.PlainEnglish, &c.SpecificConcern, &suggestedEdit, &c.SortOrder, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if suggestedEdit.Valid {
		c.SuggestedEdit = &suggestedEdit.String
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	return &c, nil
}
