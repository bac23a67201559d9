package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskhub/internal/errors"
)

func evaluate(t *testing.T, rules []Rule, values map[string]string) *errors.ValidationError {
	t.Helper()
	err := Evaluate(rules, values)
	if err == nil {
		return nil
	}
	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	return verr
}

func TestEvaluate_CreateTaskRules(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantFields []string
	}{
		{
			name:   "minimal valid payload",
			values: map[string]string{"title": "Buy milk"},
		},
		{
			name: "full valid payload",
			values: map[string]string{
				"title":       "Buy milk",
				"description": "From the corner shop",
				"status":      "in-progress",
				"priority":    "high",
			},
		},
		{
			name:       "missing title",
			values:     map[string]string{},
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			values:     map[string]string{"title": "   "},
			wantFields: []string{"title"},
		},
		{
			name:   "title of exactly 100 characters",
			values: map[string]string{"title": strings.Repeat("x", 100)},
		},
		{
			name:       "title of 101 characters",
			values:     map[string]string{"title": strings.Repeat("x", 101)},
			wantFields: []string{"title"},
		},
		{
			name:   "title trimmed before length check",
			values: map[string]string{"title": "  " + strings.Repeat("x", 100) + "  "},
		},
		{
			name:   "description of exactly 500 characters",
			values: map[string]string{"title": "ok", "description": strings.Repeat("d", 500)},
		},
		{
			name:       "description of 501 characters",
			values:     map[string]string{"title": "ok", "description": strings.Repeat("d", 501)},
			wantFields: []string{"description"},
		},
		{
			name:       "unknown status",
			values:     map[string]string{"title": "ok", "status": "done"},
			wantFields: []string{"status"},
		},
		{
			name:       "unknown priority",
			values:     map[string]string{"title": "ok", "priority": "urgent"},
			wantFields: []string{"priority"},
		},
		{
			name: "failures aggregated across fields",
			values: map[string]string{
				"title":    strings.Repeat("x", 101),
				"status":   "done",
				"priority": "urgent",
			},
			wantFields: []string{"title", "status", "priority"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := evaluate(t, CreateTaskRules(), tt.values)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, verr)
				return
			}
			assert.NotNil(t, verr)
			assert.Len(t, verr.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestEvaluate_UpdateTaskRules(t *testing.T) {
	t.Run("empty payload is valid", func(t *testing.T) {
		assert.Nil(t, evaluate(t, UpdateTaskRules(), map[string]string{}))
	})

	t.Run("empty title skipped, not rejected", func(t *testing.T) {
		assert.Nil(t, evaluate(t, UpdateTaskRules(), map[string]string{"title": ""}))
	})

	t.Run("overlong title still rejected", func(t *testing.T) {
		verr := evaluate(t, UpdateTaskRules(), map[string]string{"title": strings.Repeat("x", 101)})
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "title")
	})
}

func TestEvaluate_UpdateProfileRules(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		verr := evaluate(t, UpdateProfileRules(), map[string]string{
			"name":   "Test User",
			"email":  "test@example.com",
			"avatar": "https://example.com/a.png",
		})
		assert.Nil(t, verr)
	})

	t.Run("avatar optional", func(t *testing.T) {
		verr := evaluate(t, UpdateProfileRules(), map[string]string{
			"name":  "Test User",
			"email": "test@example.com",
		})
		assert.Nil(t, verr)
	})

	t.Run("malformed email", func(t *testing.T) {
		verr := evaluate(t, UpdateProfileRules(), map[string]string{
			"name":  "Test User",
			"email": "nope",
		})
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "email")
	})

	t.Run("missing name and email", func(t *testing.T) {
		verr := evaluate(t, UpdateProfileRules(), map[string]string{})
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "email")
	})
}

func TestEvaluate_FirstFailurePerField(t *testing.T) {
	// A field reports the first broken check in its chain only.
	verr := evaluate(t, CreateTaskRules(), map[string]string{"title": ""})
	assert.NotNil(t, verr)
	assert.Equal(t, "Title is required", verr.Fields["title"])
}
