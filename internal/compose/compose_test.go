package compose

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	return f.err
}

func (f *fakeRunner) RunInput(ctx context.Context, input string, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

func writeStackFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "docker-compose.yml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

const basicStack = `services:
  ia_deployment_tool_backend:
    image: ia_deployment_tool_backend:latest
    container_name: ia_deployment_tool_backend
`

func TestLoadStack(t *testing.T) {
	dir := writeStackFile(t, basicStack)

	stack, err := LoadStack(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"ia_deployment_tool_backend"}, stack.ServiceNames())
	assert.Equal(t, "ia_deployment_tool_backend:latest", stack.Services["ia_deployment_tool_backend"].Image)
}

func TestLoadStack_MissingFile(t *testing.T) {
	_, err := LoadStack(t.TempDir())
	assert.ErrorContains(t, err, "docker-compose.yml")
}

func TestLoadStack_NoServices(t *testing.T) {
	dir := writeStackFile(t, "services: {}\n")

	_, err := LoadStack(dir)
	assert.ErrorContains(t, err, "no services")
}

func TestServiceNames_Sorted(t *testing.T) {
	dir := writeStackFile(t, `services:
  zeta:
    image: zeta:1
  alpha:
    image: alpha:1
`)

	stack, err := LoadStack(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, stack.ServiceNames())
}

func TestBuild_ForwardsExtraArgs(t *testing.T) {
	dir := writeStackFile(t, basicStack)
	runner := &fakeRunner{}
	engine := NewCompose(dir, runner)

	err := engine.Build(context.Background(), "--no-cache")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, dir, runner.calls[0].dir)
	assert.Equal(t, "docker", runner.calls[0].name)
	assert.Equal(t, []string{"compose", "build", "--no-cache"}, runner.calls[0].args)
}

func TestBuild_NoExtraArgs(t *testing.T) {
	dir := writeStackFile(t, basicStack)
	runner := &fakeRunner{}
	engine := NewCompose(dir, runner)

	err := engine.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"compose", "build"}, runner.calls[0].args)
}

func TestBuild_MissingStackFileSkipsRuntime(t *testing.T) {
	runner := &fakeRunner{}
	engine := NewCompose(t.TempDir(), runner)

	err := engine.Build(context.Background())
	require.Error(t, err)
	assert.Empty(t, runner.calls)
}

func TestUpAndDown(t *testing.T) {
	dir := writeStackFile(t, basicStack)
	runner := &fakeRunner{}
	engine := NewCompose(dir, runner)

	require.NoError(t, engine.Up(context.Background()))
	require.NoError(t, engine.Down(context.Background()))

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"compose", "up", "-d"}, runner.calls[0].args)
	assert.Equal(t, []string{"compose", "down"}, runner.calls[1].args)
}
