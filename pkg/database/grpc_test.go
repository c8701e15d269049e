package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthServer(t *testing.T) {
	hs, err := NewHealthServer("127.0.0.1:0")
	assert.NoError(t, err)
	go hs.Serve()
	defer hs.Stop()

	hs.SetServing("gamerflow", true)
	ok, err := CheckHealth(context.Background(), hs.Addr(), "gamerflow")
	assert.NoError(t, err)
	assert.True(t, ok)

	hs.SetServing("gamerflow", false)
	ok, err = CheckHealth(context.Background(), hs.Addr(), "gamerflow")
	assert.NoError(t, err)
	assert.False(t, ok)
}
