package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("authtokens")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
	assert.NotNil(t, provider.exporter)
	assert.NotNil(t, provider.registry)
}

func TestProvider_TargetInfoCarriesNamespace(t *testing.T) {
	provider, err := NewProvider("authtokens")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "authtokens")
	require.NoError(t, err)
	bm.RecordOperation(context.Background(), "authtoken", "generate", "success")

	assert.Regexp(t, `target_info\{[^}]*service_name="authtokens"`, scrape(t, provider))
}

func TestProvider_RuntimeCollectors(t *testing.T) {
	provider, err := NewProvider("authtokens")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	output := scrape(t, provider)
	assert.Contains(t, output, "go_goroutines")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("initialized provider", func(t *testing.T) {
		provider, err := NewProvider("authtokens")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("zero provider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
