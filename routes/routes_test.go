package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"backoffice-backend/config"
	"backoffice-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "routes-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.BusinessConfiguration{},
		&models.Product{},
		&models.FinanceRecord{},
		&models.Reservation{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:          testSecret,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	return SetupRouter(cfg, db), db
}

func tokenFor(t *testing.T, businessID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": businessID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestRequestsWithoutValidTokenAreRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, path := range []string{"/configuration", "/products", "/finances", "/reservations", "/finances/anual_finances/2024"} {
				if w := doRequest(t, r, http.MethodGet, path, tc.token, nil); w.Code != http.StatusUnauthorized {
					t.Errorf("GET %s: expected 401, got %d", path, w.Code)
				}
			}
		})
	}

	// Expired tokens are rejected with the same status.
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "t1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if w := doRequest(t, r, http.MethodGet, "/products", expired, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: expected 401, got %d", w.Code)
	}
}

func TestHealthNeedsNoToken(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := doRequest(t, r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestEmptyListIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "t1")

	for _, path := range []string{"/configuration", "/products", "/finances", "/reservations"} {
		if w := doRequest(t, r, http.MethodGet, path, token, nil); w.Code != http.StatusNotFound {
			t.Errorf("GET %s with no records: expected 404, got %d", path, w.Code)
		}
	}
}

func TestProductLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "t1")

	w := doRequest(t, r, http.MethodPost, "/products", token, gin.H{"name": "Shampoo", "price": 9.5})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.Product
	decodeBody(t, w, &created)
	if created.ID == 0 {
		t.Fatal("create: expected a generated id")
	}

	path := fmt.Sprintf("/products/%d", created.ID)

	if w := doRequest(t, r, http.MethodGet, path, token, nil); w.Code != http.StatusOK {
		t.Errorf("get: expected 200, got %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/products", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listed []models.Product
	decodeBody(t, w, &listed)
	if len(listed) != 1 {
		t.Errorf("list: expected 1 product, got %d", len(listed))
	}

	// Partial update touches only the provided field.
	w = doRequest(t, r, http.MethodPatch, path, token, gin.H{"name": "Shampoo XL"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var patched models.Product
	decodeBody(t, w, &patched)
	if patched.Name != "Shampoo XL" || patched.Price != 9.5 {
		t.Errorf("patch: expected name change only, got %+v", patched)
	}

	// An empty partial payload succeeds and changes nothing.
	w = doRequest(t, r, http.MethodPatch, path, token, gin.H{})
	if w.Code != http.StatusOK {
		t.Fatalf("empty patch: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	decodeBody(t, w, &patched)
	if patched.Name != "Shampoo XL" || patched.Price != 9.5 {
		t.Errorf("empty patch must change nothing, got %+v", patched)
	}

	w = doRequest(t, r, http.MethodDelete, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	var confirmation map[string]bool
	decodeBody(t, w, &confirmation)
	if !confirmation["deleted"] {
		t.Errorf("delete: expected a confirmation flag, got %v", confirmation)
	}

	if w := doRequest(t, r, http.MethodGet, path, token, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestCreateIgnoresClientBusinessID(t *testing.T) {
	r, db := newTestRouter(t)
	token := tokenFor(t, "t1")

	w := doRequest(t, r, http.MethodPost, "/products", token, gin.H{
		"name":        "Wax",
		"price":       4.0,
		"business_id": "intruder",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.Product
	decodeBody(t, w, &created)

	var stored models.Product
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("failed to load stored product: %v", err)
	}
	if stored.BusinessID != "t1" {
		t.Errorf("business id must come from the token, got %q", stored.BusinessID)
	}

	// And the tenant key never leaks into responses.
	if bytes.Contains(w.Body.Bytes(), []byte("business_id")) {
		t.Errorf("response must not expose business_id: %s", w.Body.String())
	}
}

func TestTenantIsolation(t *testing.T) {
	r, _ := newTestRouter(t)
	ownerToken := tokenFor(t, "tenant-a")
	otherToken := tokenFor(t, "tenant-b")

	w := doRequest(t, r, http.MethodPost, "/configuration", ownerToken, gin.H{
		"business_name": "Corner Barbershop",
		"staff":         "Ana,Luis",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.BusinessConfiguration
	decodeBody(t, w, &created)

	path := fmt.Sprintf("/configuration/%d", created.ID)

	if w := doRequest(t, r, http.MethodGet, path, otherToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("cross-tenant get: expected 404, got %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodPatch, path, otherToken, gin.H{"staff": "Mallory"}); w.Code != http.StatusNotFound {
		t.Errorf("cross-tenant patch: expected 404, got %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodDelete, path, otherToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("cross-tenant delete: expected 404, got %d", w.Code)
	}

	// The owner still sees the untouched record.
	w = doRequest(t, r, http.MethodGet, path, ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner get: expected 200, got %d", w.Code)
	}
	var got models.BusinessConfiguration
	decodeBody(t, w, &got)
	if got.Staff != "Ana,Luis" {
		t.Errorf("record must be untouched, got %+v", got)
	}
}

func TestReservationPagination(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "t1")

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(25 * time.Hour).UTC().Format(time.RFC3339)
	for i := 0; i < 3; i++ {
		w := doRequest(t, r, http.MethodPost, "/reservations", token, gin.H{
			"customer_name":          fmt.Sprintf("customer-%d", i),
			"reservation_start_date": start,
			"reservation_end_date":   end,
			"time_per_reservation":   30,
			"status":                 "PENDING",
			"service":                "Haircut",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d (%s)", i, w.Code, w.Body.String())
		}
	}

	w := doRequest(t, r, http.MethodGet, "/reservations?limit=2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("limit=2: expected 200, got %d", w.Code)
	}
	var page []models.Reservation
	decodeBody(t, w, &page)
	if len(page) != 2 {
		t.Errorf("limit=2: expected 2 reservations, got %d", len(page))
	}

	w = doRequest(t, r, http.MethodGet, "/reservations?offset=2", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("offset=2: expected 200, got %d", w.Code)
	}
	decodeBody(t, w, &page)
	if len(page) != 1 || page[0].CustomerName != "customer-2" {
		t.Errorf("offset=2: expected the last reservation, got %v", page)
	}

	if w := doRequest(t, r, http.MethodGet, "/reservations?limit=101", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("limit=101: expected 400, got %d", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/reservations?offset=-1", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("offset=-1: expected 400, got %d", w.Code)
	}
}

func TestAnnualFinances(t *testing.T) {
	r, db := newTestRouter(t)
	token := tokenFor(t, "t1")

	records := []models.FinanceRecord{
		{Concept: "sale", Amount: 100, Type: models.FinanceTypeIncome, Creator: "owner"},
		{Concept: "supplies", Amount: 30, Type: models.FinanceTypeExpense, Creator: "owner"},
	}
	records[0].BusinessID = "t1"
	records[0].CreatedAt = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	records[1].BusinessID = "t1"
	records[1].CreatedAt = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			t.Fatalf("failed to seed finance record: %v", err)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/finances/anual_finances/2024", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var balances []struct {
		Month   int     `json:"month"`
		Balance float64 `json:"balance"`
	}
	decodeBody(t, w, &balances)
	if len(balances) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(balances))
	}
	if balances[0].Month != 1 || balances[0].Balance != 70 {
		t.Errorf("January: expected balance 70, got %+v", balances[0])
	}
	for _, balance := range balances[1:] {
		if balance.Balance != 0 {
			t.Errorf("month %d: expected 0, got %v", balance.Month, balance.Balance)
		}
	}

	if w := doRequest(t, r, http.MethodGet, "/finances/anual_finances/abc", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric year: expected 400, got %d", w.Code)
	}
}

func TestFinanceReservationReference(t *testing.T) {
	r, _ := newTestRouter(t)
	ownerToken := tokenFor(t, "tenant-a")
	otherToken := tokenFor(t, "tenant-b")

	start := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(25 * time.Hour).UTC().Format(time.RFC3339)
	w := doRequest(t, r, http.MethodPost, "/reservations", ownerToken, gin.H{
		"customer_name":          "customer",
		"reservation_start_date": start,
		"reservation_end_date":   end,
		"time_per_reservation":   45,
		"status":                 "CONFIRMED",
		"service":                "Color",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create reservation: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var reservation models.Reservation
	decodeBody(t, w, &reservation)

	payload := gin.H{
		"concept":        "color service",
		"amount":         55.0,
		"type":           "INCOME",
		"creator":        "owner",
		"reservation_id": reservation.ID,
	}

	if w := doRequest(t, r, http.MethodPost, "/finances", ownerToken, payload); w.Code != http.StatusCreated {
		t.Errorf("same-tenant reference: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if w := doRequest(t, r, http.MethodPost, "/finances", otherToken, payload); w.Code != http.StatusNotFound {
		t.Errorf("cross-tenant reference: expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestInvalidFinanceTypeRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "t1")

	w := doRequest(t, r, http.MethodPost, "/finances", token, gin.H{
		"concept": "mystery",
		"amount":  10.0,
		"type":    "TRANSFER",
		"creator": "owner",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown ledger type, got %d", w.Code)
	}
}
