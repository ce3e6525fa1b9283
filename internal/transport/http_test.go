package transport_test

import (
	"encoding/json"
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

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "data.json"), nil)
	require.NoError(t, err)

	base := []guest.BaseGuest{
		{ID: "1", FamilyName: "Smith", Adults: 2, Children: 1, Babies: 0},
		{ID: "2", FamilyName: "Jones", Adults: 3, Children: 2, Babies: 1},
	}
	coordinator := remote.NewCoordinator(st, remote.NewClient("", "", ""), remote.Config{}, nil)

	handler := transport.NewHandler(
		guest.NewService(base, st, coordinator, nil),
		pricing.NewService(st, coordinator, nil),
		st,
		coordinator,
		transport.Payment{PayerOneName: "Host", PayerTwoName: "Co-host", Contribution: 3000000},
		nil,
	)
	return transport.NewRouter(handler)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHTTP_Health(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHTTP_GuestLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/guests", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Guests []guest.Guest `json:"guests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Guests, 2)
	require.Equal(t, guest.StatusInvited, list.Guests[0].Status)

	w = doJSON(t, router, http.MethodPost, "/api/guests/1/confirm", `{"adults": 1, "children": 1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var g guest.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	require.Equal(t, guest.StatusConfirmed, g.Status)
	require.Equal(t, 1, *g.ConfirmedAdults)

	w = doJSON(t, router, http.MethodPost, "/api/guests/2/decline", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/spots", "")
	require.Equal(t, http.StatusOK, w.Code)
	var spots struct {
		Available guest.AvailableSpots `json:"available"`
		Summary   guest.SpotsSummary   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spots))
	require.Equal(t, 4, spots.Available.Adults) // 1 partial + 3 declined
	require.Equal(t, 2, spots.Available.Children)

	w = doJSON(t, router, http.MethodPost, "/api/guests/2/reinvite", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/guests/1/cancel-confirmation", "")
	require.Equal(t, http.StatusOK, w.Code)
	g = guest.Guest{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	require.Equal(t, guest.StatusInvited, g.Status)
	require.Nil(t, g.ConfirmedAdults)
}

func TestHTTP_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	// Confirming more than invited.
	w := doJSON(t, router, http.MethodPost, "/api/guests/1/confirm", `{"adults": 5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown guest.
	w = doJSON(t, router, http.MethodPost, "/api/guests/nope/confirm", `{"adults": 1}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Malformed body.
	w = doJSON(t, router, http.MethodPost, "/api/guests/1/confirm", `{"adults": `)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Base guests cannot be removed.
	w = doJSON(t, router, http.MethodDelete, "/api/guests/1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// No free spots for a new family yet.
	w = doJSON(t, router, http.MethodPost, "/api/guests", `{"familyName": "Late", "adults": 1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTP_AddAndRemoveFamily(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/guests/2/decline", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/guests", `{"familyName": "Late", "adults": 2, "children": 1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var added guest.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.NotEmpty(t, added.ID)

	w = doJSON(t, router, http.MethodDelete, "/api/guests/"+added.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/guests", "")
	var list struct {
		Guests []guest.Guest `json:"guests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Guests, 2)
}

func TestHTTP_PricingAndSummary(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/pricing", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"pricing": null}`, w.Body.String())

	w = doJSON(t, router, http.MethodPut, "/api/pricing", `{"items": [
		{"name": "Venue rental", "price": 2700000, "type": "fixed"},
		{"name": "Adult combo", "price": 33000, "type": "perPerson", "personType": "adult"}
	]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		PayerOne string `json:"payerOne"`
		PayerTwo string `json:"payerTwo"`
		Invited  struct {
			Stats guest.Stats       `json:"stats"`
			Costs pricing.Breakdown `json:"costs"`
			Split pricing.Split     `json:"split"`
		} `json:"invited"`
		Confirmed struct {
			Costs pricing.Breakdown `json:"costs"`
			Split pricing.Split     `json:"split"`
		} `json:"confirmed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, "Host", summary.PayerOne)
	require.Equal(t, 5, summary.Invited.Stats.TotalAdults)
	require.Equal(t, int64(2700000+5*33000), summary.Invited.Costs.Total)
	require.Equal(t, int64(3000000), summary.Invited.Split.PayerOne)
	// 2,865,000 < 3,000,000: the first payer still covers the full contribution.
	require.Equal(t, int64(0), summary.Invited.Split.PayerTwo)
	// Nobody confirmed: only the fixed line bills.
	require.Equal(t, int64(2700000), summary.Confirmed.Costs.Total)

	w = doJSON(t, router, http.MethodPut, "/api/pricing", `{"items": [{"name": "", "price": 1, "type": "fixed"}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTP_Export(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	var export map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	require.Contains(t, export, "guestStatuses")
	require.Contains(t, export, "exportedAt")
}

func TestHTTP_SyncUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/sync/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	var status remote.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.False(t, status.Configured)

	w = doJSON(t, router, http.MethodPost, "/api/sync/pull", "")
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/sync/push", "")
	require.Equal(t, http.StatusConflict, w.Code)
}
