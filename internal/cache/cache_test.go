package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A nil or unconnected client must degrade to misses and no-ops, never panic.
func TestClientFailSafe(t *testing.T) {
	ctx := context.Background()

	var nilClient *Client
	assert.Nil(t, nilClient.Get(ctx, "key"))
	nilClient.Set(ctx, "key", []byte("value"), time.Minute)

	empty := &Client{}
	assert.Nil(t, empty.Get(ctx, "key"))
	empty.Set(ctx, "key", []byte("value"), time.Minute)
}
