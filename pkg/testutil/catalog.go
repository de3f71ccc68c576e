package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
)

// DefaultCatalog builds the built-in stage catalog, failing the test if it is incomplete.
func DefaultCatalog(t testing.TB) *service.Catalog {
	t.Helper()
	c, err := service.NewCatalog(service.DefaultStageMetadata())
	require.NoError(t, err)
	return c
}
