package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/polymorph/internal/catalog"
	"github.com/alexisbeaulieu97/polymorph/internal/component"
	"github.com/alexisbeaulieu97/polymorph/internal/config"
)

func defaultShells(t *testing.T) []*component.Shell {
	t.Helper()
	lib, err := config.Default(config.BuildOptions{})
	require.NoError(t, err)
	return lib.Components()
}

func TestNewModelSelectsDefaultVariant(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))
	require.Equal(t, "text", m.Selected().Name())
	require.Equal(t, catalog.Span, m.Variant())
	require.Equal(t, catalog.Span, m.Effective().Variant)
	require.True(t, m.Effective().Schema.Has("color"))
	require.NoError(t, m.err)
}

func TestNewModelWithoutComponents(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	require.Nil(t, m.Selected())
	require.Equal(t, catalog.PrimitiveID(""), m.Variant())
	require.Contains(t, m.View(), "No components declared")
}

func TestSelectVariantWraps(t *testing.T) {
	t.Parallel()

	m := NewModel(defaultShells(t))
	ids := m.Selected().Catalog().IDs()

	m.selectVariant(len(ids))
	require.Equal(t, ids[0], m.Variant())

	m.selectVariant(-1)
	require.Equal(t, ids[len(ids)-1], m.Variant())
}
