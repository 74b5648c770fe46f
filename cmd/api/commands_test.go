package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"buyit/internal/config"
	"buyit/internal/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env"), "intake", "Need 20 Figma licenses.", "Budget $8,000"})
	require.NoError(t, rootCmd.Execute())

	var fields intake.Fields
	require.NoError(t, json.Unmarshal(out.Bytes(), &fields))
	assert.Equal(t, 20, fields.Quantity)
	assert.Equal(t, "Figma", fields.VendorName)
	assert.Equal(t, "8000", fields.EstCost.String())
}

func TestRouterServesHealthAndMetrics(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "app.db"))
	cfg, err := config.Load("")
	require.NoError(t, err)

	a, err := newApp(cfg, cfg.NewLogger())
	require.NoError(t, err)
	defer a.close()
	router := a.router()

	for _, path := range []string{"/health", "/metrics", "/api/statistics/summary"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
