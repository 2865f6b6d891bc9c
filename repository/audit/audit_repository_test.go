package audit_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/repository/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema := `CREATE TABLE moderation_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		actor_id BIGINT NOT NULL,
		actor_email TEXT NOT NULL DEFAULT '',
		action TEXT NOT NULL,
		target_type TEXT NOT NULL,
		target_id BIGINT NOT NULL,
		detail TEXT,
		created_at BIGINT NOT NULL
	)`
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func TestAuditRepository_InsertAndList(t *testing.T) {
	repo := audit.NewAuditRepository(memdb(t))
	ctx := context.Background()

	entries := []*model.AuditEntry{
		{ActorID: 1, ActorEmail: "admin@example.vn", Action: "approve", TargetType: "product", TargetID: 10, CreatedAt: 100},
		{ActorID: 1, ActorEmail: "admin@example.vn", Action: "reject", TargetType: "product", TargetID: 11, Detail: "ảnh mờ", CreatedAt: 200},
		{ActorID: 2, Action: "change_status", TargetType: "user", TargetID: 10},
	}
	for i, e := range entries {
		id, err := repo.Insert(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
		assert.Equal(t, id, e.ID)
	}
	assert.NotZero(t, entries[2].CreatedAt)

	all, err := repo.List(ctx, &model.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "change_status", all[0].Action, "newest first")
	assert.Equal(t, "ảnh mờ", all[1].Detail)

	products, err := repo.List(ctx, &model.AuditFilter{TargetType: "product"})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	one, err := repo.List(ctx, &model.AuditFilter{TargetType: "product", TargetID: 10})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, model.AuditEntry{
		ID: 1, ActorID: 1, ActorEmail: "admin@example.vn", Action: "approve",
		TargetType: "product", TargetID: 10, CreatedAt: 100,
	}, one[0])

	limited, err := repo.List(ctx, &model.AuditFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
