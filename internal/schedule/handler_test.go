// AngelaMos | 2026
// handler_test.go

package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook-dev/courtbook/internal/core"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(svc *Service) chi.Router {
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router, passthrough, passthrough)
	return router
}

func postJSON(
	t *testing.T,
	router chi.Router,
	path, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(
		http.MethodPost,
		path,
		strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSlotEndpoint(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	router := newTestRouter(NewService(newFakeSlotRepo(), courts))

	body := `{
		"court_id": "` + courtID + `",
		"day_of_week": 1,
		"start_time": "10:00",
		"end_time": "11:00"
	}`

	rec := postJSON(t, router, "/horarios", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestCreateSlotEndpoint_OverlapConflict(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	existing := testSlot(courtID, 1, "10:00", "11:00")
	router := newTestRouter(NewService(newFakeSlotRepo(existing), courts))

	body := `{
		"court_id": "` + courtID + `",
		"day_of_week": 1,
		"start_time": "10:30",
		"end_time": "11:30"
	}`

	rec := postJSON(t, router, "/horarios", body)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestCreateSlotEndpoint_ValidationError(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	router := newTestRouter(NewService(newFakeSlotRepo(), courts))

	body := `{
		"court_id": "` + courtID + `",
		"day_of_week": 9,
		"start_time": "10:00",
		"end_time": "11:00"
	}`

	rec := postJSON(t, router, "/horarios", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListByCourtEndpoint(t *testing.T) {
	courtID := uuid.New().String()
	courts := &fakeCourts{active: map[string]bool{courtID: true}}
	slots := []*Slot{
		testSlot(courtID, 1, "10:00", "11:00"),
		testSlot(courtID, 2, "10:00", "11:00"),
		testSlot(uuid.New().String(), 1, "10:00", "11:00"),
	}
	router := newTestRouter(NewService(newFakeSlotRepo(slots...), courts))

	req := httptest.NewRequest(
		http.MethodGet,
		"/horarios/cancha/"+courtID,
		nil,
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}
