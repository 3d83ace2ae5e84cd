package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgresRunStoreRequiresDSN(t *testing.T) {
	t.Setenv("COMMUNITY_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")

	_, err := NewPostgresRunStore()
	assert.Error(t, err)
}

func TestNewPostgresRunStoreFromDBRejectsNilDB(t *testing.T) {
	_, err := NewPostgresRunStoreFromDB(nil)
	assert.Error(t, err)
}
