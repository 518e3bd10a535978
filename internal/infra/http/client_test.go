package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientTimeout(t *testing.T) {
	assert.Equal(t, defaultTimeout, NewClient(0).Timeout)
	assert.Equal(t, 3*time.Second, NewClient(3*time.Second).Timeout)
}
