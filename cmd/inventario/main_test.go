package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	send := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}
	mux.HandleFunc("/api/projects/1", func(w http.ResponseWriter, r *http.Request) {
		send(w, dto.ProjectResponse{ID: 1, ProjectName: "Gabinete"})
	})
	mux.HandleFunc("/api/projects/1/items", func(w http.ResponseWriter, r *http.Request) {
		send(w, []dto.ProjectItemResponse{{ItemID: 10, RequiredQuantity: 10}})
	})
	mux.HandleFunc("/api/inventory", func(w http.ResponseWriter, r *http.Request) {
		send(w, []dto.ItemResponse{{ID: 10, ItemCode: "A", ItemName: "Ítem A", CurrentStock: 4}})
	})
	mux.HandleFunc("/api/inventory/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cable utp", r.URL.Query().Get("keyword"))
		send(w, []dto.ItemResponse{{ID: 3, ItemCode: "CAB", ItemName: "Cable UTP", CurrentStock: 1, MinStock: 5, LowStock: true}})
	})
	return httptest.NewServer(mux)
}

func TestRun_Availability(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	var out, errOut bytes.Buffer
	code := run([]string{"--base-url", srv.URL, "availability", "1"}, &out, &errOut)

	assert.Equal(t, 3, code, "faltan componentes: código de salida 3")
	assert.Contains(t, out.String(), "Gabinete")
	assert.Contains(t, out.String(), "FALTA")
	assert.Contains(t, out.String(), "1 de 1")
}

func TestRun_AvailabilityJSON(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	var out, errOut bytes.Buffer
	run([]string{"--base-url", srv.URL, "--json", "availability", "1"}, &out, &errOut)

	var res dto.ProjectAvailabilityResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.False(t, res.AllItemsAvailable)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 6, res.Items[0].Shortfall)
}

func TestRun_AvailabilityProyectoInexistente(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	var out, errOut bytes.Buffer
	code := run([]string{"--base-url", srv.URL, "availability", "2"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "no encontrado")
}

func TestRun_Search(t *testing.T) {
	srv := fakeAPI(t)
	defer srv.Close()

	var out, errOut bytes.Buffer
	code := run([]string{"--base-url", srv.URL, "search", "cable utp"}, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "(bajo)")
}

func TestRun_ArgumentosInvalidos(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(nil, &out, &errOut))
	assert.Equal(t, 2, run([]string{"availability", "x"}, &out, &errOut))
	assert.Equal(t, 2, run([]string{"otro"}, &out, &errOut))
}
