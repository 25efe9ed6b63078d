package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wdabuild/internal/app"
	_ "go.trai.ch/wdabuild/internal/wiring"
)

func TestExecuteForComponents(t *testing.T) {
	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotNil(t, c.App)
	require.NotNil(t, c.Logger)
}
