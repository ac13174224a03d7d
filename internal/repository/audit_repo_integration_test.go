package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studydesk/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "migrations")
	files, err := os.ReadDir(migDir)
	require.NoError(t, err)
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		require.NoError(t, err)
		_, err = db.Exec(context.Background(), string(b))
		require.NoError(t, err, "apply migration %s", f.Name())
	}
}

func TestAuditRepository_Create(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	defer db.Close()

	applyMigrations(t, db)

	repo := NewAuditRepository(db)
	sid := uuid.NewString()

	entry := &domain.AuditLog{
		SessionID: sid,
		Action:    domain.AuditActionNavigate,
		Category:  domain.AuditCategoryPage,
		Details:   map[string]interface{}{"page": "index"},
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NotZero(t, entry.ID)

	var (
		action  string
		details map[string]interface{}
	)
	err = db.QueryRow(context.Background(),
		`SELECT action, details FROM audit_logs WHERE id = $1 AND session_id = $2`,
		entry.ID, sid).Scan(&action, &details)
	require.NoError(t, err)
	assert.Equal(t, domain.AuditActionNavigate, action)
	assert.Equal(t, "index", details["page"])
}
