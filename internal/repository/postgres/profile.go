package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/freelanceshield/api/internal/domain/profile"
	"github.com/freelanceshield/api/internal/pkg/errors"
)

// ProfileRepository implements profile.Repository
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *DB) profile.Repository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, email, password_hash, freelancer_type, us_state, plan, role,
	stripe_customer_id, stripe_subscription_id, reviews_used_this_month,
	reviews_reset_date, created_at, updated_at`

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.ReviewsResetDate.IsZero() {
		p.ReviewsResetDate = now
	}

	query := r.db.Rebind(`
		INSERT INTO profiles (email, password_hash, freelancer_type, us_state, plan, role,
			stripe_customer_id, stripe_subscription_id, reviews_used_this_month,
			reviews_reset_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		p.Email, p.PasswordHash, p.FreelancerType, p.USState, p.Plan, p.Role,
		p.StripeCustomerID, p.StripeSubscriptionID, p.ReviewsUsedThisMonth,
		p.ReviewsResetDate.Unix(), now.Unix(), now.Unix(),
	).Scan(&p.ID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate key") {
			return errors.Conflict("Email already registered")
		}
		return errors.DatabaseError("Failed to create profile", err)
	}

	return nil
}

func (r *ProfileRepository) scanProfile(row *sql.Row) (*profile.Profile, error) {
	var p profile.Profile
	var freelancerType, usState, customerID, subscriptionID sql.NullString
	var resetDate, createdAt, updatedAt int64

	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &freelancerType, &usState, &p.Plan, &p.Role,
		&customerID, &subscriptionID, &p.ReviewsUsedThisMonth,
		&resetDate, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Profile")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get profile", err)
	}

	p.FreelancerType = freelancerType.String
	p.USState = usState.String
	if customerID.Valid {
		p.StripeCustomerID = &customerID.String
	}
	if subscriptionID.Valid {
		p.StripeSubscriptionID = &subscriptionID.String
	}
	p.ReviewsResetDate = time.Unix(resetDate, 0)
	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)

	return &p, nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*profile.Profile, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM profiles WHERE id = ?", profileColumns))
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM profiles WHERE email = ?", profileColumns))
	return r.scanProfile(r.db.QueryRowContext(ctx, query, email))
}

// GetByStripeCustomerID retrieves a profile by its Stripe customer id
func (r *ProfileRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*profile.Profile, error) {
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM profiles WHERE stripe_customer_id = ?", profileColumns))
	return r.scanProfile(r.db.QueryRowContext(ctx, query, customerID))
}

// Update updates a profile
func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	p.UpdatedAt = time.Now()

	query := r.db.Rebind(`
		UPDATE profiles
		SET email = ?, freelancer_type = ?, us_state = ?, plan = ?, role = ?,
			stripe_customer_id = ?, stripe_subscription_id = ?,
			reviews_used_this_month = ?, reviews_reset_date = ?, updated_at = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		p.Email, p.FreelancerType, p.USState, p.Plan, p.Role,
		p.StripeCustomerID, p.StripeSubscriptionID,
		p.ReviewsUsedThisMonth, p.ReviewsResetDate.Unix(), p.UpdatedAt.Unix(),
		p.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update profile", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Profile")
	}
	return nil
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM profiles WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete profile", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound("Profile")
	}
	return nil
}

// List retrieves profiles matching the filter with a total count
func (r *ProfileRepository) List(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, int64, error) {
	where := "WHERE 1=1"
	args := []interface{}{}

	if filter.EmailSearch != "" {
		where += " AND email LIKE ?"
		args = append(args, "%"+filter.EmailSearch+"%")
	}
	if filter.Plan != "" {
		where += " AND plan = ?"
		args = append(args, filter.Plan)
	}

	var total int64
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM profiles " + where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count profiles", err)
	}

	query := r.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM profiles %s ORDER BY created_at DESC LIMIT ? OFFSET ?",
		profileColumns, where,
	))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		var p profile.Profile
		var freelancerType, usState, customerID, subscriptionID sql.NullString
		var resetDate, createdAt, updatedAt int64

		if err := rows.Scan(
			&p.ID, &p.Email, &p.PasswordHash, &freelancerType, &usState, &p.Plan, &p.Role,
			&customerID, &subscriptionID, &p.ReviewsUsedThisMonth,
			&resetDate, &createdAt, &updatedAt,
		); err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan profile", err)
		}

		p.FreelancerType = freelancerType.String
		p.USState = usState.String
		if customerID.Valid {
			p.StripeCustomerID = &customerID.String
		}
		if subscriptionID.Valid {
			p.StripeSubscriptionID = &subscriptionID.String
		}
		p.ReviewsResetDate = time.Unix(resetDate, 0)
		p.CreatedAt = time.Unix(createdAt, 0)
		p.UpdatedAt = time.Unix(updatedAt, 0)

		profiles = append(profiles, &p)
	}

	return profiles, total, rows.Err()
}

// IncrementReviewsUsed bumps the monthly usage counter
func (r *ProfileRepository) IncrementReviewsUsed(ctx context.Context, id int64) error {
	query := r.db.Rebind(`
		UPDATE profiles
		SET reviews_used_this_month = reviews_used_this_month + 1, updated_at = ?
		WHERE id = ?
	`)
	if _, err := r.db.ExecContext(ctx, query, time.Now().Unix(), id); err != nil {
		return errors.DatabaseError("Failed to increment usage", err)
	}
	return nil
}

// ResetMonthlyUsage zeroes the counter and stamps a new reset date
func (r *ProfileRepository) ResetMonthlyUsage(ctx context.Context, id int64) error {
	now := time.Now()
	query := r.db.Rebind(`
		UPDATE profiles
		SET reviews_used_this_month = 0, reviews_reset_date = ?, updated_at = ?
		WHERE id = ?
	`)
	if _, err := r.db.ExecContext(ctx, query, now.Unix(), now.Unix(), id); err != nil {
		return errors.DatabaseError("Failed to reset monthly usage", err)
	}
	return nil
}

// Count returns the total number of profiles
func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&total); err != nil {
		return 0, errors.DatabaseError("Failed to count profiles", err)
	}
	return total, nil
}

// CountCreatedSince returns profiles created after the given time
func (r *ProfileRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	query := r.db.Rebind("SELECT COUNT(*) FROM profiles WHERE created_at > ?")
	if err := r.db.QueryRowContext(ctx, query, since.Unix()).Scan(&total); err != nil {
		return 0, errors.DatabaseError("Failed to count profiles", err)
	}
	return total, nil
}
