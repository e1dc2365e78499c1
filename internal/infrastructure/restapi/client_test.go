package restapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/restapi"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/projects/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, 200, dto.ProjectResponse{ID: 1, ProjectCode: "P1", ProjectName: "Gabinete", Status: "IN_PROGRESS"})
	})
	mux.HandleFunc("/api/projects/1/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, []map[string]any{
			{"itemId": 10, "requiredQuantity": 10},
			{"inventory": map[string]any{"id": 11}, "requiredQuantity": 2},
		})
	})
	mux.HandleFunc("/api/inventory", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, []dto.ItemResponse{
			{ID: 10, ItemCode: "A", ItemName: "Ítem A", CurrentStock: 4},
			{ID: 11, ItemCode: "B", ItemName: "Ítem B", CurrentStock: 5},
		})
	})
	mux.HandleFunc("/api/projects/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
	})
	mux.HandleFunc("/api/projects/3", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, dto.ProjectResponse{ID: 3, ProjectCode: "P3", ProjectName: "Rack", Status: "PENDING"})
	})
	mux.HandleFunc("/api/projects/3/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, []map[string]any{
			{"itemId": 10, "requiredQuantity": 1},
			{"itemId": 99, "requiredQuantity": 1},
		})
	})
	return httptest.NewServer(mux)
}

func TestClient_DisponibilidadDesdeLaAPI(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	client := restapi.NewClient(srv.URL+"/", "tok", time.Second)

	uc := appavailability.NewUseCase(client, nil, zerolog.Nop())
	res, err := uc.Check(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Gabinete", res.ProjectName)
	assert.False(t, res.AllItemsAvailable)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(10), res.Items[0].ItemID)
	assert.Equal(t, 6, res.Items[0].Shortfall)
	assert.Equal(t, int64(11), res.Items[1].ItemID)
	assert.True(t, res.Items[1].IsAvailable)
}

func TestClient_RequerimientoSobreItemInexistente(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	client := restapi.NewClient(srv.URL, "tok", time.Second)

	uc := appavailability.NewUseCase(client, nil, zerolog.Nop())
	res, err := uc.Check(context.Background(), 3)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	var unknown *domain.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, int64(99), unknown.ItemID)
}

func TestClient_404EsNotFound(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	client := restapi.NewClient(srv.URL, "tok", time.Second)

	_, err := client.GetProject(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, restapi.IsNotFound(err))

	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestClient_UnreadCountAmbosFormatos(t *testing.T) {
	for name, body := range map[string]string{
		"numero": `7`,
		"objeto": `{"unreadCount":7}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/notifications/unread-count", r.URL.Path)
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			n, err := restapi.NewClient(srv.URL, "", time.Second).UnreadCount(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(7), n)
		})
	}
}

func TestClient_ErrorDelServidorSinCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := restapi.NewClient(srv.URL, "", time.Second).ListStock(context.Background())
	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestClient_CancelacionDelContexto(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := restapi.NewClient(srv.URL, "", 5*time.Second).ListStock(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
