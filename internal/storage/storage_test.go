package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingTables(t *testing.T) {
	assert.Empty(t, missingTables([]string{
		"schema_migrations", "users", "accounts", "categories", "transactions", "budgets", "notifications",
	}))

	assert.Equal(t,
		[]string{"budgets", "notifications"},
		missingTables([]string{"users", "accounts", "categories", "transactions"}),
	)

	assert.Equal(t, requiredTables, missingTables(nil))
}
