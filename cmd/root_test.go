package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kmacinski/gridos/internal/config"
	"github.com/kmacinski/gridos/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groundedBody = `{"candidates":[{"content":{"parts":[{"text":"42 days"}]},
"groundingMetadata":{"groundingChunks":[{"web":{"uri":"https://www.example.com/uptime","title":"Uptime"}}]}}]}`

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"ask", "search", "windows", "version"}

	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, found[name], "expected subcommand %q", name)
	}
}

func TestRootCommand_Version(t *testing.T) {
	assert.NotEmpty(t, rootCmd.Version)
}

// execute runs the root command with an isolated config file
func execute(t *testing.T, configBody string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GRIDOS_API_KEY", "secret")
	t.Setenv("GRIDOS_MODEL", "test-model")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configBody), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", path, "--pretty=false"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func newGatewayServer(t *testing.T, status int, body string, prompts *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && prompts != nil {
			*prompts = append(*prompts, req.Contents[0].Parts[0].Text)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func gatewayConfig(url string) string {
	return fmt.Sprintf("gateway:\n  base_url: %s\n  terminal_context: test context\n", url)
}

func TestAsk_Text(t *testing.T) {
	var prompts []string
	srv := newGatewayServer(t, http.StatusOK, groundedBody, &prompts)

	out, err := execute(t, gatewayConfig(srv.URL), "ask", "show", "uptime", "--format", "text")

	require.NoError(t, err)
	assert.Equal(t, "42 days\n\n[ SOURCES: www.example.com ]\n", out)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], `User entered command: "show uptime"`)
	assert.Contains(t, prompts[0], "System Context: test context.")
}

func TestAsk_JSON(t *testing.T) {
	srv := newGatewayServer(t, http.StatusOK, groundedBody, nil)

	out, err := execute(t, gatewayConfig(srv.URL), "ask", "uptime", "--format", "json")

	require.NoError(t, err)
	var resp gateway.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "42 days", resp.Text)
	assert.Equal(t, []gateway.Source{{Title: "Uptime", URI: "https://www.example.com/uptime"}}, resp.Sources)
}

func TestSearch_FallbackOnFailure(t *testing.T) {
	srv := newGatewayServer(t, http.StatusServiceUnavailable, "down", nil)

	out, err := execute(t, gatewayConfig(srv.URL), "search", "weather", "--format", "text")

	require.NoError(t, err)
	assert.Equal(t, gateway.FallbackSearch+"\n", out)
}

func TestSearch_ListsSources(t *testing.T) {
	srv := newGatewayServer(t, http.StatusOK, groundedBody, nil)

	out, err := execute(t, gatewayConfig(srv.URL), "search", "uptime", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "Sources:\n  [1] Uptime - https://www.example.com/uptime\n")
}

func TestWindows_YAML(t *testing.T) {
	out, err := execute(t, "", "windows", "--format", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "id: term-1")
	assert.Contains(t, out, "kind: terminal")
	assert.Contains(t, out, "left: 5")
}

func TestWindows_Table(t *testing.T) {
	out, err := execute(t, "", "windows", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "Kernel Terminal")
	assert.Contains(t, out, "logs-1")
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := execute(t, "", "windows", "--format", "xml")

	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "gateway: [", "windows", "--format", "text")

	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "gridos dev")
}

func TestStalledBootConfigIsRejected(t *testing.T) {
	_, err := execute(t, "boot:\n  step: 0\nmetrics:\n  interval: 0s\n", "windows", "--format", "text")

	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "boot.step")
}
