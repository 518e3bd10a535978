package main

import (
	"context"
	"testing"

	"dealership-backoffice/internal/activity"
	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("API_KEY", "")

	err := run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestOpenActivityStoreFallsBackToMemory(t *testing.T) {
	store, closeStore, err := openActivityStore(context.Background(), config.MysqlConfig{}, logging.Nop{})

	require.NoError(t, err)
	assert.IsType(t, &activity.MemoryStore{}, store)
	require.NotNil(t, closeStore)
	closeStore()
}

func TestOpenActivityStoreReportsUnreachableMysql(t *testing.T) {
	cfg := config.MysqlConfig{Host: "127.0.0.1", Port: 1, Username: "root", Database: "backoffice"}

	store, _, err := openActivityStore(context.Background(), cfg, logging.Nop{})

	require.Error(t, err)
	assert.Nil(t, store)
}
