package router_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	mem "shelter-admin/internal/adapters/storage/memory"
	"shelter-admin/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: mem.NewSeededStore()}))
	t.Cleanup(ts.Close)
	return ts
}

type successBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type applicationRow struct {
	BranchID          int64  `json:"branchID"`
	AdopterID         int64  `json:"adopterID"`
	AnimalID          int64  `json:"animalID"`
	ApplicationStatus string `json:"applicationStatus"`
	ApplicationDate   string `json:"applicationDate"`
}

func TestHTTP_EndToEnd_SubmitThenList(t *testing.T) {
	ts := newServer(t)

	// 1) Crear solicitud
	st, body := doReq(t, ts.URL, "POST", "/applications-submit", map[string]any{
		"branchID":          1,
		"adopterID":         2,
		"animalID":          3,
		"applicationStatus": "pending",
		"applicationDate":   "2024-01-15",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 submitting, got %d body=%s", st, string(body))
	}
	if s := decodeSuccess(t, body); !s.Success {
		t.Fatalf("expected success=true, got %s", string(body))
	}

	// 2) Aparece en el listado
	want := applicationRow{BranchID: 1, AdopterID: 2, AnimalID: 3, ApplicationStatus: "Pending", ApplicationDate: "2024-01-15"}
	if !containsApplication(t, ts.URL, want) {
		t.Fatalf("expected %+v in /applications", want)
	}

	// 3) Update cambia estado y fecha
	st, body = doReq(t, ts.URL, "PUT", "/applications-update", map[string]any{
		"branchID":          "1",
		"adopterID":         "2",
		"animalID":          "3",
		"applicationStatus": "Accepted",
		"applicationDate":   "2024-02-01",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 updating, got %d body=%s", st, string(body))
	}
	want.ApplicationStatus, want.ApplicationDate = "Accepted", "2024-02-01"
	if !containsApplication(t, ts.URL, want) {
		t.Fatalf("expected %+v after update", want)
	}

	// 4) Animal 3 ya no está disponible
	_, body = doReq(t, ts.URL, "GET", "/available-animals", nil)
	if strings.Contains(string(body), `"animalID":3,`) {
		t.Fatalf("adopted animal still listed as available: %s", string(body))
	}

	// 5) Withdraw y el segundo intento es 404
	key := map[string]any{"branchID": 1, "adopterID": 2, "animalID": 3}
	if st, body := doReq(t, ts.URL, "DELETE", "/applications-withdraw", key); st != http.StatusOK {
		t.Fatalf("expected 200 withdrawing, got %d body=%s", st, string(body))
	}
	st, body = doReq(t, ts.URL, "DELETE", "/applications-withdraw", key)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 on second withdraw, got %d body=%s", st, string(body))
	}
	if s := decodeSuccess(t, body); s.Success || s.Error != "application not found" {
		t.Fatalf("unexpected body: %s", string(body))
	}
}

func TestHTTP_SubmitApplication_RejectsBadInput(t *testing.T) {
	ts := newServer(t)

	cases := map[string]map[string]any{
		"slash date":   {"branchID": 1, "adopterID": 2, "animalID": 3, "applicationStatus": "pending", "applicationDate": "2024/01/15"},
		"bad status":   {"branchID": 1, "adopterID": 2, "animalID": 3, "applicationStatus": "approved", "applicationDate": "2024-01-15"},
		"zero id":      {"branchID": 0, "adopterID": 2, "animalID": 3, "applicationStatus": "pending", "applicationDate": "2024-01-15"},
		"non numeric":  {"branchID": "one", "adopterID": 2, "animalID": 3, "applicationStatus": "pending", "applicationDate": "2024-01-15"},
		"missing date": {"branchID": 1, "adopterID": 2, "animalID": 3, "applicationStatus": "pending"},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/applications-submit", payload)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", st, string(body))
			}
			if s := decodeSuccess(t, body); s.Success || s.Error == "" {
				t.Fatalf("expected {success:false,error}, got %s", string(body))
			}
		})
	}

	_, body := doReq(t, ts.URL, "GET", "/applications", nil)
	if strings.Contains(string(body), `"adopterID":2,"animalID":3`) {
		t.Fatalf("invalid submit reached the store: %s", string(body))
	}
}

func TestHTTP_SubmitApplication_DuplicateIsConflict(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/applications-submit", map[string]any{
		"branchID": 1, "adopterID": 1, "animalID": 1, "applicationStatus": "pending", "applicationDate": "2024-01-15",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", st, string(body))
	}
}

func TestHTTP_UpdateShelter(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "PUT", "/shelters-update", map[string]any{
		"branchID": 1, "phoneNum": "12345", "shelterAddress": "1 Main St, Vancouver",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for short phone, got %d body=%s", st, string(body))
	}
	_, body = doReq(t, ts.URL, "GET", "/shelters", nil)
	if !strings.Contains(string(body), `"phoneNum":"6045550101"`) {
		t.Fatalf("shelter modified by invalid update: %s", string(body))
	}

	st, body = doReq(t, ts.URL, "PUT", "/shelters-update", map[string]any{
		"branchID": 1, "phoneNum": "6041112222", "shelterAddress": "9 Oak St, Burnaby",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	_, body = doReq(t, ts.URL, "GET", "/shelters", nil)
	if !strings.Contains(string(body), `"phoneNum":"6041112222"`) {
		t.Fatalf("expected updated phone: %s", string(body))
	}
}

func TestHTTP_DeleteAdopter(t *testing.T) {
	ts := newServer(t)

	if st, body := doReq(t, ts.URL, "DELETE", "/adopters-delete", map[string]any{"adopterID": 3}); st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/adopters-delete", map[string]any{"adopterID": 3}); st != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", st)
	}
}

func TestHTTP_EventsFilter(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/events", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var all []map[string]any
	if err := json.Unmarshal(body, &all); err != nil || len(all) != 3 {
		t.Fatalf("expected 3 events, got %s (%v)", string(body), err)
	}

	st, body = doReq(t, ts.URL, "PUT", "/events", map[string]any{
		"where": []map[string]any{
			{"attribute": "eventLocation", "value": "Vancouver"},
			{"attribute": "eventDate", "value": "2024-07-20", "connective": "and"},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var filtered []map[string]any
	if err := json.Unmarshal(body, &filtered); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["title"] != "Vaccine Clinic" || filtered[0]["eventDate"] != "2024-07-20" {
		t.Fatalf("unexpected filter result: %s", string(body))
	}
}

func TestHTTP_EventsFilter_RejectsDenylistedValues(t *testing.T) {
	ts := newServer(t)

	for _, v := range []string{"x'; DROP TABLE Events; --", "a(b)", "drop table events", "50%"} {
		st, body := doReq(t, ts.URL, "PUT", "/events", map[string]any{
			"where": []map[string]any{{"attribute": "title", "value": v}},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d body=%s", v, st, string(body))
		}
	}
}

func TestHTTP_Projection(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "PUT", "/projection", map[string]any{
		"table_name": "Adopter",
		"attributes": []string{"email", "adopterName"},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var res struct {
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(res.Columns) != 2 || res.Columns[0] != "email" || len(res.Rows) != 4 {
		t.Fatalf("unexpected projection: %s", string(body))
	}
	for _, row := range res.Rows {
		if len(row) != 2 {
			t.Fatalf("row has %d fields: %v", len(row), row)
		}
	}

	st, body = doReq(t, ts.URL, "PUT", "/projection", map[string]any{
		"table_name": "Adopter; DROP TABLE Adopter",
		"attributes": []string{"email"},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown table, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/projection/tables", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"AnimalAdmits"`) {
		t.Fatalf("unexpected catalog: %d %s", st, string(body))
	}
}

func TestHTTP_DemoTable(t *testing.T) {
	ts := newServer(t)

	// Dos inicializaciones seguidas funcionan
	for i := 0; i < 2; i++ {
		if st, body := doReq(t, ts.URL, "POST", "/initiate-demotable", nil); st != http.StatusOK {
			t.Fatalf("initiate #%d: expected 200, got %d body=%s", i+1, st, string(body))
		}
	}

	if st, body := doReq(t, ts.URL, "POST", "/insert-demotable", map[string]any{"id": "1", "name": "rex"}); st != http.StatusOK {
		t.Fatalf("insert: %d %s", st, string(body))
	}
	if st, body := doReq(t, ts.URL, "POST", "/update-name-demotable", map[string]any{"oldName": "rex", "newName": "max"}); st != http.StatusOK {
		t.Fatalf("update name: %d %s", st, string(body))
	}

	_, body := doReq(t, ts.URL, "GET", "/demotable", nil)
	if !strings.Contains(string(body), `{"data":[{"id":1,"name":"max"}]}`) {
		t.Fatalf("unexpected demotable: %s", string(body))
	}

	_, body = doReq(t, ts.URL, "GET", "/count-demotable", nil)
	if !strings.Contains(string(body), `"count":1`) {
		t.Fatalf("unexpected count: %s", string(body))
	}
}

func TestHTTP_ReportsAndHealth(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/available-animals", "/animals", "/vaccinations", "/top-donors", "/donors-attend-all-events", "/adopters", "/shelters"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK || !strings.HasPrefix(string(body), `{"rows":[`) {
			t.Fatalf("%s: unexpected %d %s", path, st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/check-db-connection", nil)
	if st != http.StatusOK || string(body) != "connected" {
		t.Fatalf("unexpected check-db: %d %s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Shelter Admin") {
		t.Fatalf("expected frontend, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "shelter_http_requests_total") {
		t.Fatalf("expected metrics exposition, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func containsApplication(t *testing.T, baseURL string, want applicationRow) bool {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/applications", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing applications, got %d body=%s", st, string(body))
	}
	var out struct {
		Rows []applicationRow `json:"rows"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal applications: %v body=%s", err, string(body))
	}
	for _, r := range out.Rows {
		if r == want {
			return true
		}
	}
	return false
}

func decodeSuccess(t *testing.T, body []byte) successBody {
	t.Helper()

	var s successBody
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatalf("unmarshal success body: %v body=%s", err, string(body))
	}
	return s
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
