package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/remote"
	"github.com/weckerleben/bday-guests/internal/store"
)

func TestClient_IsConfigured(t *testing.T) {
	require.False(t, remote.NewClient("", "", "").IsConfigured())
	require.False(t, remote.NewClient("", "bin", "").IsConfigured())
	require.False(t, remote.NewClient("", "", "key").IsConfigured())
	require.True(t, remote.NewClient("", "bin", "key").IsConfigured())
}

func TestClient_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/bin1/latest", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("X-Master-Key"))

		json.NewEncoder(w).Encode(map[string]any{
			"record": store.Document{
				GuestStatuses: []guest.StatusEntry{{ID: "1", Status: guest.StatusDeclined}},
				LastUpdated:   77,
			},
		})
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL, "bin1", "secret")
	doc, err := client.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(77), doc.LastUpdated)
	require.Len(t, doc.GuestStatuses, 1)
}

func TestClient_LoadErrors(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL, "bin1", "bad")

	_, err := client.Load(context.Background())
	require.ErrorIs(t, err, remote.ErrUnauthorized)

	status = http.StatusNotFound
	_, err = client.Load(context.Background())
	require.ErrorIs(t, err, remote.ErrBinNotFound)

	_, err = remote.NewClient(srv.URL, "", "").Load(context.Background())
	require.ErrorIs(t, err, remote.ErrNotConfigured)
}

func TestClient_Save(t *testing.T) {
	var received store.Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/bin1", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("X-Master-Key"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL, "bin1", "secret")
	err := client.Save(context.Background(), store.Document{LastUpdated: 99})
	require.NoError(t, err)
	require.Equal(t, int64(99), received.LastUpdated)
}

func TestClient_SaveUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := remote.NewClient(srv.URL, "bin1", "bad")
	err := client.Save(context.Background(), store.Document{})
	require.ErrorIs(t, err, remote.ErrUnauthorized)
}
