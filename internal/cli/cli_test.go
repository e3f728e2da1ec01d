package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shsenroll/internal/config"
)

type closeRecorder struct {
	name  string
	order *[]string
	err   error
}

func (c closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestContext_RoundTrip(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	require.Error(t, err)

	c := &CLI{}
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestClose_ReverseOrderAndJoinedErrors(t *testing.T) {
	var order []string
	boom := errors.New("boom")
	c := New(nil, nil, config.DefaultColorScheme(),
		closeRecorder{name: "log", order: &order},
		closeRecorder{name: "db", order: &order, err: boom})

	err := c.Close()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"db", "log"}, order)

	// Second close is a no-op
	require.NoError(t, c.Close())
	assert.Len(t, order, 2)
}
