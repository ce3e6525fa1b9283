package testserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
	"github.com/weckerleben/bday-guests/internal/remote"
	"github.com/weckerleben/bday-guests/internal/store"
	"github.com/weckerleben/bday-guests/internal/transport"
)

// TestServer hosts the full HTTP API over a throwaway data file.
type TestServer struct {
	Server   *httptest.Server
	Store    *store.Store
	Guests   *guest.Service
	Pricing  *pricing.Service
	Sync     *remote.Coordinator
	DataPath string
}

// Options tunes the server under test.
type Options struct {
	// DataPath overrides the data file location so a test can restart a
	// server over the same document.
	DataPath string
	// Sync credentials point the coordinator at a blob store stand-in.
	// Sync stays disabled when BinID or APIKey is empty.
	SyncAPIURL string
	SyncBinID  string
	SyncAPIKey string
	// Payment overrides the default payer setup.
	Payment *transport.Payment
}

// DefaultRoster is a small fixed roster for tests that do not care about
// the exact families.
func DefaultRoster() []guest.BaseGuest {
	return []guest.BaseGuest{
		{ID: "1", FamilyName: "Smith", Adults: 2, Children: 1},
		{ID: "2", FamilyName: "Jones", Adults: 3, Children: 2, Babies: 1},
		{ID: "3", FamilyName: "Brown", Adults: 1},
	}
}

func New(t *testing.T, base []guest.BaseGuest, opts Options) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = filepath.Join(t.TempDir(), "data.json")
	}
	st, err := store.New(dataPath, nil)
	require.NoError(t, err)

	client := remote.NewClient(opts.SyncAPIURL, opts.SyncBinID, opts.SyncAPIKey)
	coordinator := remote.NewCoordinator(st, client, remote.Config{}, nil)

	guestSvc := guest.NewService(base, st, coordinator, nil)
	pricingSvc := pricing.NewService(st, coordinator, nil)

	payment := transport.Payment{PayerOneName: "Host", PayerTwoName: "Co-host", Contribution: 3000000}
	if opts.Payment != nil {
		payment = *opts.Payment
	}

	handler := transport.NewHandler(guestSvc, pricingSvc, st, coordinator, payment, nil)
	server := httptest.NewServer(transport.NewRouter(handler))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		Store:    st,
		Guests:   guestSvc,
		Pricing:  pricingSvc,
		Sync:     coordinator,
		DataPath: dataPath,
	}
}

// DoJSON issues a request against the server and decodes the JSON response
// into out when out is non-nil. It returns the response status code.
func (ts *TestServer) DoJSON(t *testing.T, method, path, body string, out any) int {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, out))
	}
	return resp.StatusCode
}
