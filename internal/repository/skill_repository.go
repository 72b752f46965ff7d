package repository

import (
	"context"
	"errors"

	"skill-trade/internal/database"
	"skill-trade/internal/domain/skill"

	"github.com/jackc/pgx/v5"
)

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) Create(ctx context.Context, userID int64, offer, want string) (skill.Listing, error) {
	var l skill.Listing
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO skills (user_id, offer, want) VALUES ($1, $2, $3)
		 RETURNING id, user_id, offer, want, created_at`,
		userID, offer, want,
	).Scan(&l.ID, &l.UserID, &l.Offer, &l.Want, &l.CreatedAt)
	if err != nil {
		return skill.Listing{}, err
	}
	return l, nil
}

func (r *PostgresSkillRepository) ListAll(ctx context.Context) ([]skill.ListingWithOwner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, u.username, s.offer, s.want
		FROM skills s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.ListingWithOwner, 0)
	for rows.Next() {
		var l skill.ListingWithOwner
		if err := rows.Scan(&l.ID, &l.Username, &l.Offer, &l.Want); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id int64) (skill.Listing, error) {
	var l skill.Listing
	err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, offer, want, created_at FROM skills WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.UserID, &l.Offer, &l.Want, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Listing{}, skill.ErrNotFound
		}
		return skill.Listing{}, err
	}
	return l, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, id int64, offer, want string) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE skills SET offer = $1, want = $2 WHERE id = $3`,
		offer, want, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return skill.ErrNotFound
	}
	return nil
}
