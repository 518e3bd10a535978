package mysql

import (
	"testing"

	"dealership-backoffice/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn, err := DSN(config.MysqlConfig{Host: "db", Username: "root", Password: "pw", Database: "backoffice"})
	require.NoError(t, err)
	assert.Equal(t, "root:pw@tcp(db:3306)/backoffice?parseTime=true&charset=utf8mb4", dsn)

	_, err = DSN(config.MysqlConfig{Host: "db"})
	assert.Error(t, err)
}
