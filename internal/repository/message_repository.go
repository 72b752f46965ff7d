package repository

import (
	"context"

	"skill-trade/internal/database"
	"skill-trade/internal/domain/message"
)

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, fromUserID, toUserID int64, body string) (message.Message, error) {
	var m message.Message
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO messages (from_user_id, to_user_id, body) VALUES ($1, $2, $3)
		 RETURNING id, from_user_id, to_user_id, body, created_at`,
		fromUserID, toUserID, body,
	).Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Body, &m.CreatedAt)
	if err != nil {
		return message.Message{}, err
	}
	return m, nil
}

func (r *PostgresMessageRepository) ListForUser(ctx context.Context, userID int64) ([]message.Enriched, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, uf.username, ut.username, m.body, m.created_at
		FROM messages m
		JOIN users uf ON uf.id = m.from_user_id
		JOIN users ut ON ut.id = m.to_user_id
		WHERE m.from_user_id = $1 OR m.to_user_id = $1
		ORDER BY m.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Enriched, 0)
	for rows.Next() {
		var m message.Enriched
		if err := rows.Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
