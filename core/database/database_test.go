package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "127.0.0.1",
			Port:           1, // nothing listens here
			User:           "root",
			Password:       "secret",
			Name:           "erp",
			Driver:         "mysql",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Sqlite In Memory", func(t *testing.T) {
		cfg := Config{Driver: "sqlite", Name: ":memory:"}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}
