package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	maxSize int
	header  bool
	calls   []string
}

func withMaxSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("max size must be positive")
		}
		c.maxSize = n
		c.calls = append(c.calls, "maxSize")

		return nil
	})
}

func withoutHeader() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.header = false
		c.calls = append(c.calls, "header")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{header: true}

	err := Apply(cfg, withMaxSize(64), withoutHeader())
	require.NoError(t, err)
	require.Equal(t, 64, cfg.maxSize)
	require.False(t, cfg.header)
	require.Equal(t, []string{"maxSize", "header"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{header: true}

	err := Apply(cfg, withMaxSize(0), withoutHeader())
	require.Error(t, err)
	require.Contains(t, err.Error(), "max size must be positive")
	require.True(t, cfg.header, "options after the failing one must not run")
	require.Empty(t, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, nil, withMaxSize(8), Option[*testConfig](Func[*testConfig](nil)))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.maxSize)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{maxSize: 3}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 3, cfg.maxSize)
}
