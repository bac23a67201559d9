package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// dryRunDB opens a GORM session that renders SQL without touching a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "dryrun:dryrun@tcp(127.0.0.1:3306)/taskhub",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func buildListSQL(t *testing.T, ownerID uuid.UUID, filter model.TaskFilter) (string, []interface{}) {
	t.Helper()
	var tasks []model.Task
	tx := taskQuery(dryRunDB(t), ownerID, filter).Find(&tasks)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestTaskQuery_OwnerScopeComesFirst(t *testing.T) {
	ownerID := uuid.New()
	sql, vars := buildListSQL(t, ownerID, model.TaskFilter{})

	assert.Contains(t, sql, "WHERE owner_id = ?")
	require.NotEmpty(t, vars)
	assert.Equal(t, ownerID, vars[0])
}

func TestTaskQuery_FiltersAreConjoined(t *testing.T) {
	sql, vars := buildListSQL(t, uuid.New(), model.TaskFilter{
		Status:   string(model.TaskStatusPending),
		Priority: string(model.TaskPriorityHigh),
		Search:   "Report",
	})

	assert.Contains(t, sql, "owner_id = ? AND status = ? AND priority = ?")
	assert.Contains(t, sql, "AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
	assert.Equal(t, 1, strings.Count(sql, " OR "), "OR must stay inside the search group")
	assert.Len(t, vars, 5)
}

func TestTaskQuery_SearchPatternIsLowercased(t *testing.T) {
	_, vars := buildListSQL(t, uuid.New(), model.TaskFilter{Search: "MiXeD Case"})

	require.Len(t, vars, 3)
	assert.Equal(t, "%mixed case%", vars[1])
	assert.Equal(t, "%mixed case%", vars[2])
}

func TestTaskQuery_SearchEscapesWildcards(t *testing.T) {
	_, vars := buildListSQL(t, uuid.New(), model.TaskFilter{Search: "100%_done"})

	require.Len(t, vars, 3)
	assert.Equal(t, `%100\%\_done%`, vars[1])
}

func TestTaskQuery_AbsentFiltersImposeNoConstraint(t *testing.T) {
	sql, vars := buildListSQL(t, uuid.New(), model.TaskFilter{})

	assert.NotContains(t, sql, "status")
	assert.NotContains(t, sql, "priority")
	assert.NotContains(t, sql, "LIKE")
	assert.Len(t, vars, 1)
}

func TestTaskQuery_OrdersNewestFirstWithStableTieBreak(t *testing.T) {
	sql, _ := buildListSQL(t, uuid.New(), model.TaskFilter{})

	assert.Contains(t, sql, "ORDER BY created_at DESC, id")
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"under_score", `under\_score`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in))
	}
}
