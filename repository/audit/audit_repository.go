package audit

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ev-admin/model"
)

type SQL struct {
	conn *sqlx.DB
}

// AuditRepository keeps the trail of moderation actions taken through the console.
type AuditRepository interface {
	Insert(ctx context.Context, entry *model.AuditEntry) (int64, error)
	List(ctx context.Context, filter *model.AuditFilter) ([]model.AuditEntry, error)
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const (
	// Schema is the MySQL DDL applied at startup.
	Schema = `CREATE TABLE IF NOT EXISTS moderation_log (
	id INTEGER PRIMARY KEY AUTO_INCREMENT,
	actor_id BIGINT NOT NULL,
	actor_email VARCHAR(255) NOT NULL DEFAULT '',
	action VARCHAR(64) NOT NULL,
	target_type VARCHAR(32) NOT NULL,
	target_id BIGINT NOT NULL,
	detail TEXT,
	created_at BIGINT NOT NULL
)`

	insertEntry = `INSERT INTO moderation_log (actor_id, actor_email, action, target_type, target_id, detail, created_at)
VALUES (:actor_id, :actor_email, :action, :target_type, :target_id, :detail, :created_at)`

	listEntries = `SELECT id, actor_id, actor_email, action, target_type, target_id, COALESCE(detail, '') AS detail, created_at
FROM moderation_log`
)

func (s *SQL) Insert(ctx context.Context, entry *model.AuditEntry) (int64, error) {
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	res, err := s.conn.NamedExecContext(ctx, insertEntry, entry)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	entry.ID = id
	return id, nil
}

func (s *SQL) List(ctx context.Context, filter *model.AuditFilter) ([]model.AuditEntry, error) {
	query := listEntries
	args := []interface{}{}
	if filter.TargetType != "" {
		query += " WHERE target_type = ?"
		args = append(args, filter.TargetType)
		if filter.TargetID != 0 {
			query += " AND target_id = ?"
			args = append(args, filter.TargetID)
		}
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	items := make([]model.AuditEntry, 0)
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}
