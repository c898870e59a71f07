package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/realty-portal/applications-service/internal/repository"
	"github.com/realty-portal/applications-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var _ service.ApplicationService = (*mockApplicationService)(nil)

type mockApplicationService struct {
	apps      []*repository.Application
	listErr   error
	updateErr error

	listCalls   int
	updateCalls int
	lastEmail   string
	lastID      int64
	lastStatus  string
}

func (m *mockApplicationService) ListByEmail(ctx context.Context, email string) ([]*repository.Application, error) {
	m.listCalls++
	m.lastEmail = email
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.apps, nil
}

func (m *mockApplicationService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	m.updateCalls++
	m.lastID = id
	m.lastStatus = status
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	return id, nil
}

func newTestEngine(svc service.ApplicationService) *gin.Engine {
	h := NewApplicationHandler(svc)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed)
	r.OPTIONS("/applications", h.Preflight)
	r.GET("/applications", h.List)
	r.PUT("/applications", h.UpdateStatus)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func assertJSONHeaders(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func strPtr(s string) *string { return &s }

func TestPreflight(t *testing.T) {
	svc := &mockApplicationService{}
	rec := do(t, newTestEngine(svc), http.MethodOptions, "/applications", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, PUT, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	assert.Zero(t, svc.listCalls)
	assert.Zero(t, svc.updateCalls)
}

func TestList_EmailRequired(t *testing.T) {
	for _, target := range []string{"/applications", "/applications?email=", "/applications?other=1"} {
		t.Run(target, func(t *testing.T) {
			svc := &mockApplicationService{listErr: service.ErrInvalidInput}
			rec := do(t, newTestEngine(svc), http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assertJSONHeaders(t, rec)
			assert.JSONEq(t, `{"error":"Email обязателен"}`, rec.Body.String())
		})
	}
}

func TestList_Success(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &mockApplicationService{apps: []*repository.Application{
		{
			ID:             1,
			Name:           strPtr("Ivan"),
			Email:          strPtr("a@x.com"),
			Phone:          strPtr("+79000000000"),
			OperationType:  strPtr("sale"),
			PropertyType:   strPtr("house"),
			Area:           decimal.NewNullDecimal(decimal.RequireFromString("120.5")),
			Location:       strPtr("Kazan"),
			Description:    strPtr("with garden"),
			EstimatedValue: decimal.NewNullDecimal(decimal.RequireFromString("9000000")),
			Status:         strPtr("new"),
			CreatedAt:      &created,
		},
		{
			ID:     2,
			Email:  strPtr("a@x.com"),
			Status: strPtr("archived"),
		},
	}}

	rec := do(t, newTestEngine(svc), http.MethodGet, "/applications?email=a%40x.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assertJSONHeaders(t, rec)
	assert.Equal(t, "a@x.com", svc.lastEmail)
	assert.JSONEq(t, `{"applications":[
		{"id":1,"name":"Ivan","email":"a@x.com","phone":"+79000000000","operation_type":"sale",
		 "property_type":"house","area":120.5,"location":"Kazan","description":"with garden",
		 "estimated_value":9000000,"status":"new","created_at":"2024-05-01T12:00:00Z"},
		{"id":2,"name":null,"email":"a@x.com","phone":null,"operation_type":null,
		 "property_type":null,"area":null,"location":null,"description":null,
		 "estimated_value":null,"status":"archived","created_at":null}
	]}`, rec.Body.String())
}

func TestList_NoMatchesIsEmptyArray(t *testing.T) {
	svc := &mockApplicationService{apps: []*repository.Application{}}
	rec := do(t, newTestEngine(svc), http.MethodGet, "/applications?email=nobody@x.com", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"applications":[]}`, rec.Body.String())
}

func TestList_StorageFailureIsGeneric(t *testing.T) {
	svc := &mockApplicationService{listErr: errors.New(`pq: relation "applications" does not exist`)}
	rec := do(t, newTestEngine(svc), http.MethodGet, "/applications?email=a@x.com", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertJSONHeaders(t, rec)
	assert.JSONEq(t, `{"error":"Внутренняя ошибка сервера"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestUpdateStatus_Success(t *testing.T) {
	svc := &mockApplicationService{}
	rec := do(t, newTestEngine(svc), http.MethodPut, "/applications",
		`{"application_id":1,"status":"in_progress"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assertJSONHeaders(t, rec)
	assert.JSONEq(t, `{"success":true,"message":"Статус обновлен","application_id":1}`, rec.Body.String())
	assert.EqualValues(t, 1, svc.lastID)
	assert.Equal(t, "in_progress", svc.lastStatus)
}

func TestUpdateStatus_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"empty body":     "",
		"empty object":   `{}`,
		"missing status": `{"application_id":1}`,
		"missing id":     `{"status":"new"}`,
		"null id":        `{"application_id":null,"status":"new"}`,
		"empty status":   `{"application_id":1,"status":""}`,
		"zero id":        `{"application_id":0,"status":"new"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			svc := &mockApplicationService{updateErr: service.ErrInvalidInput}
			rec := do(t, newTestEngine(svc), http.MethodPut, "/applications", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assertJSONHeaders(t, rec)
			assert.JSONEq(t, `{"error":"ID заявки и статус обязательны"}`, rec.Body.String())
		})
	}
}

func TestUpdateStatus_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{"application_id":`, `{"application_id":"one","status":"new"}`} {
		svc := &mockApplicationService{}
		rec := do(t, newTestEngine(svc), http.MethodPut, "/applications", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Некорректный JSON"}`, rec.Body.String())
		assert.Zero(t, svc.updateCalls)
	}
}

func TestUpdateStatus_InvalidStatusListsAllowedValues(t *testing.T) {
	svc := &mockApplicationService{updateErr: service.ErrInvalidStatus}
	rec := do(t, newTestEngine(svc), http.MethodPut, "/applications",
		`{"application_id":1,"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":"Недопустимый статус. Разрешены: new, in_progress, completed, cancelled"}`,
		rec.Body.String())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := &mockApplicationService{updateErr: service.ErrNotFound}
	rec := do(t, newTestEngine(svc), http.MethodPut, "/applications",
		`{"application_id":999,"status":"completed"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assertJSONHeaders(t, rec)
	assert.JSONEq(t, `{"error":"Заявка не найдена"}`, rec.Body.String())
}

func TestUpdateStatus_StorageFailureIsGeneric(t *testing.T) {
	svc := &mockApplicationService{updateErr: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")}
	rec := do(t, newTestEngine(svc), http.MethodPut, "/applications",
		`{"application_id":1,"status":"completed"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Внутренняя ошибка сервера"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestMethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			svc := &mockApplicationService{}
			rec := do(t, newTestEngine(svc), method, "/applications", `{}`)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
			assert.Zero(t, svc.listCalls)
			assert.Zero(t, svc.updateCalls)
		})
	}
}
