package npm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wdabuild/internal/adapters/npm"
	"go.trai.ch/wdabuild/internal/core/domain"
	"go.trai.ch/wdabuild/internal/core/ports"
	"go.trai.ch/wdabuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestFetcher_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	env := map[string]string{"NPM_CONFIG_LOGLEVEL": "error"}

	gomock.InOrder(
		executor.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "npm",
			Args: []string{"init", "--yes", "--force"},
			Dir:  "/stage",
			Env:  env,
		}).Return(domain.ProcessResult{Stdout: "Wrote to package.json\n"}, nil),
		executor.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "npm",
			Args: []string{"i", "appium-webdriveragent@4.13.1", "--save"},
			Dir:  "/stage",
			Env:  env,
		}).Return(domain.ProcessResult{Stdout: "added 1 package\n"}, nil),
	)

	result, err := npm.NewFetcher(executor).Fetch(context.Background(), ports.FetchRequest{
		Tool:    "npm",
		Dir:     "/stage",
		Package: "appium-webdriveragent",
		Version: "4.13.1",
		Env:     env,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wrote to package.json\nadded 1 package\n", result.Stdout)
}

func TestFetcher_Fetch_InitFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	initErr := &domain.ProcessError{Command: "npm init", ExitCode: 1}
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "EACCES"}, initErr).Times(1)

	result, err := npm.NewFetcher(executor).Fetch(context.Background(), ports.FetchRequest{
		Tool: "npm", Dir: "/stage", Package: "appium-webdriveragent", Version: "latest",
	})
	require.ErrorIs(t, err, initErr)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "EACCES", result.Stderr)
}

func TestFetcher_Fetch_InstallFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	installErr := &domain.ProcessError{Command: "npm i", ExitCode: 254, Stderr: "E404"}
	gomock.InOrder(
		executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil),
		executor.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(domain.ProcessResult{ExitCode: 254, Stderr: "E404"}, installErr),
	)

	_, err := npm.NewFetcher(executor).Fetch(context.Background(), ports.FetchRequest{
		Tool: "npm", Dir: "/stage", Package: "appium-webdriveragent", Version: "0.0.0",
	})
	require.Error(t, err)
	assert.Equal(t, 254, domain.ExitCode(err))
}
