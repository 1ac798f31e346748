package catalogadapter

import (
	"context"
	"testing"

	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	reader := NewReader(catalog.Default())

	gpus, err := reader.Catalog(context.Background(), "gpus")
	require.NoError(t, err)
	assert.Equal(t, "GPUs", gpus.Class)
	require.Len(t, gpus.Components, 13)
	assert.Equal(t, "GTX 1050", gpus.Components[0].Name)
	assert.Equal(t, 3473.0, gpus.Components[0].Score)

	_, err = reader.Catalog(context.Background(), "psu")
	assert.ErrorIs(t, err, catalog.ErrUnknownClass)
}

func TestCatalogCanonicalClass(t *testing.T) {
	reader := NewReader(catalog.Default())

	for input, want := range map[string]string{
		"cpu":   "CPUs",
		"CPUs":  "CPUs",
		" Gpu ": "GPUs",
		"GPUS":  "GPUs",
	} {
		cat, err := reader.Catalog(context.Background(), input)
		require.NoError(t, err, input)
		assert.Equal(t, want, cat.Class, input)
	}
}

func TestBottleneck(t *testing.T) {
	reader := NewReader(catalog.Default())

	result, err := reader.Bottleneck(context.Background(), "Intel i9-13900K", "RTX 4090")
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, 14.72, result.Percentage)
	assert.Equal(t, "GPU", result.LimitingSide)
	assert.Equal(t, bottleneck.AdvisoryBalanced, result.Advisory)

	result, err = reader.Bottleneck(context.Background(), "", "RTX 3060")
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Equal(t, bottleneck.AdvisoryIncomplete, result.Advisory)

	_, err = reader.Bottleneck(context.Background(), "Unknown Model", "RTX 3060")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBottleneckTieBreakOption(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Entry{{Name: "cpu", Score: 100}},
		[]catalog.Entry{{Name: "gpu", Score: 100}},
	)
	require.NoError(t, err)

	result, err := NewReader(cat, bottleneck.WithTieBreak(bottleneck.TieBreakBalanced)).
		Bottleneck(context.Background(), "cpu", "gpu")
	require.NoError(t, err)
	assert.Equal(t, "balanced", result.LimitingSide)
}

func TestCanceledContext(t *testing.T) {
	reader := NewReader(catalog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.Catalog(ctx, "cpus")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = reader.Bottleneck(ctx, "Intel i5-8400", "RTX 3060")
	assert.ErrorIs(t, err, context.Canceled)
}
