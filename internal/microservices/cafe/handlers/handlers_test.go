package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-bot/internal/common/idgen"
	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/middleware"
	"cafe-bot/internal/config"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
	"cafe-bot/internal/microservices/cafe/domain/dto"
	"cafe-bot/internal/microservices/cafe/narrative"
	"cafe-bot/internal/microservices/cafe/repository"
	"cafe-bot/internal/microservices/cafe/service"
)

var now = func() time.Time { return time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC) }

type env struct {
	router http.Handler
	store  *repository.MemoryStore
}

func setup(t *testing.T, backend downstream.Backend) *env {
	t.Helper()
	lg := logger.NewWithOutput("test", io.Discard)
	store := repository.NewMemoryStore()
	ids := idgen.NewWith(now, rand.New(rand.NewSource(1)))
	svc := service.New(store, backend, ids, now, idgen.PrefixCafe, lg)
	h := New(svc, narrative.New("", nil), now, lg)
	return &env{
		router: Router(h, middleware.Recover(lg, Internal), middleware.WithRequestID(lg), middleware.Metrics),
		store:  store,
	}
}

func (e *env) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestRegisterEmptyBodyIs400(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	for _, body := range []string{`{}`, ``, `{"fullName":"  ","phone":"555"}`} {
		rec, out := e.do(t, http.MethodPost, "/register-client", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields: fullName and phone are required", out["error"])
		assert.NotEmpty(t, out["details"])
	}
	assert.Zero(t, e.store.Count(dao.KindClient))
}

func TestRegisterSuccess(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	rec, out := e.do(t, http.MethodPost, "/register-client", `{"fullName":"Ana","phone":"555","email":"ana@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "markdown", out["type"])
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	raw := out["raw"].(map[string]any)
	assert.Equal(t, "success", raw["registration_status"])
	assert.Regexp(t, regexp.MustCompile(`^CAFE\d{9}$`), raw["client_id"])
	assert.Contains(t, out["desc"], "📧 Email: ana@example.com")
	assert.Equal(t, 1, e.store.Count(dao.KindClient))
}

func TestRegisterDeclinedIsFailureNarrative(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: false})

	rec, out := e.do(t, http.MethodPost, "/register-client", `{"fullName":"Ana","phone":"555"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	raw := out["raw"].(map[string]any)
	assert.Equal(t, "failed", raw["registration_status"])
	assert.Equal(t, "Database registration failed", raw["error"])
	assert.Contains(t, out["desc"], "Registro Incompleto")
	assert.Zero(t, e.store.Count(dao.KindClient))
}

func TestMalformedJSONIs400(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})
	rec, out := e.do(t, http.MethodPost, "/place-order", `{"clientName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", out["error"])
}

func TestPlaceOrderExample(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	rec, out := e.do(t, http.MethodPost, "/place-order",
		`{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":50,"size":"large","toppings":["boba","jelly"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	raw := out["raw"].(map[string]any)
	assert.Equal(t, 8.00, raw["total_price"])
	assert.Equal(t, "received", raw["order_status"])
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{9}$`), raw["order_id"])

	_, list := e.do(t, http.MethodGet, "/admin/orders", "")
	assert.Equal(t, float64(1), list["total_orders"])
	orders := list["orders"].([]any)
	assert.Equal(t, "Jasmine", orders[0].(map[string]any)["teaType"])
	assert.Equal(t, "2025-05-01T10:15:00Z", orders[0].(map[string]any)["estimatedReadyTime"])
}

func TestPlaceOrderMissingSugar(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	for _, sugar := range []string{``, `,"sugarPercentage":null`, `,"sugarPercentage":""`, `,"sugarPercentage":"  "`} {
		rec, out := e.do(t, http.MethodPost, "/place-order", `{"clientName":"Ana","teaType":"Jasmine"`+sugar+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, sugar)
		assert.Equal(t, dto.MsgOrderMissing, out["error"], sugar)
		assert.Equal(t, dto.DetailsOrderMissing, out["details"], sugar)
	}
	assert.Zero(t, e.store.Count(dao.KindOrder))
}

func TestPlaceOrderRejectsOutOfRangeSugar(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	for _, sugar := range []string{`"NaN"`, `"Inf"`, `"Infinity"`, `150`} {
		rec, out := e.do(t, http.MethodPost, "/place-order", `{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":`+sugar+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, sugar)
		assert.Equal(t, "Invalid JSON body", out["error"], sugar)
		assert.Contains(t, out["details"], "between 0 and 100", sugar)
	}
	assert.Zero(t, e.store.Count(dao.KindOrder))

	rec, list := e.do(t, http.MethodGet, "/admin/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), list["total_orders"])
}

func TestTrailingDataIsMalformed(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	for _, body := range []string{`{"phone":"1"}garbage`, `{"phone":"1"}{"phone":"2"}`} {
		rec, out := e.do(t, http.MethodPost, "/check-client", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid JSON body", out["error"], body)
	}

	rec, _ := e.do(t, http.MethodPost, "/check-client", "{\"phone\":\"1\"}\n  ")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnencodableReplyIs500AndLogged(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput("test", &buf)

	rec := httptest.NewRecorder()
	reply(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil), lg, map[string]any{"sugar": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Internal server error", out["error"])
	assert.Contains(t, buf.String(), `"action":"write_response_failed"`)
}

func TestNegativeFeedback(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	rec, _ := e.do(t, http.MethodPost, "/negative-feedback", `{"clientName":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, e.store.Count(dao.KindFeedback))

	rec, out := e.do(t, http.MethodPost, "/negative-feedback", `{"clientName":"Ana","feedback":"tea was cold","rating":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", out["raw"].(map[string]any)["feedback_status"])

	_, list := e.do(t, http.MethodGet, "/admin/feedback", "")
	assert.Equal(t, float64(1), list["total_feedback"])
}

func TestCheckClientStatusIsConfined(t *testing.T) {
	sim := downstream.NewSimulatorWithRand(config.Default().Downstream, rand.New(rand.NewSource(9)), logger.NewWithOutput("test", io.Discard))
	e := setup(t, sim)

	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		rec, out := e.do(t, http.MethodPost, "/check-client", `{"phone":"555"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		status := out["status"].(string)
		assert.Contains(t, []string{"registered", "not_registered"}, status)
		assert.NotEmpty(t, out["desc"])
		assert.Equal(t, "555", out["phone"])
		seen[status] = true
	}
	assert.Len(t, seen, 2)

	rec, out := e.do(t, http.MethodPost, "/check-client", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number is required", out["error"])
	assert.NotContains(t, out, "details")
}

func TestLookupErrorIs500WithNarrative(t *testing.T) {
	e := setup(t, &downstream.Fixed{Err: errors.New("db down")})
	rec, out := e.do(t, http.MethodPost, "/check-client", `{"phone":"555"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", out["error"])
	assert.Equal(t, narrative.SystemError(), out["desc"])
	assert.NotContains(t, rec.Body.String(), "db down")
}

type exploding struct{}

func (exploding) PlaceOrder(context.Context, dto.PlaceOrderRequest) (dao.Order, bool, error) {
	panic("boom")
}

func TestPanicIsRecovered(t *testing.T) {
	lg := logger.NewWithOutput("test", io.Discard)
	h := &Handler{
		ClientHandler:   &ClientHandler{},
		OrderHandler:    NewOrderHandler(exploding{}, narrative.New("", nil), lg),
		FeedbackHandler: &FeedbackHandler{},
		AdminHandler:    &AdminHandler{},
		SystemHandler:   &SystemHandler{},
	}
	e := &env{router: Router(h, middleware.Recover(lg, Internal))}

	rec, out := e.do(t, http.MethodPost, "/place-order", `{"clientName":"Ana","teaType":"Jasmine","sugarPercentage":"50"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", out["error"])
	assert.Contains(t, out["desc"], "Error del Sistema")
}

func TestHealthAndRoot(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})
	e.do(t, http.MethodPost, "/register-client", `{"fullName":"Ana","phone":"555"}`)

	rec, out := e.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", out["status"])
	assert.Equal(t, "2025-05-01T10:00:00.000Z", out["timestamp"])
	assert.Equal(t, map[string]any{"clients": float64(1), "orders": float64(0), "feedback": float64(0)}, out["stats"])
	assert.Contains(t, out["endpoints"], "POST /place-order")
	assert.Equal(t, downstream.StatusOK, out["downstream"])

	rec, out = e.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The Coffee Shop API", out["service"])
	assert.Equal(t, Version, out["version"])
	assert.Contains(t, out["endpoints"], "POST /check-client")
}

type unreachable struct{ downstream.Fixed }

func (*unreachable) Ping(context.Context) error { return errors.New("rabbitmq connection is closed") }

func TestHealthReportsDownstreamConnection(t *testing.T) {
	e := setup(t, &unreachable{})

	rec, out := e.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", out["status"])
	assert.Equal(t, "unavailable: rabbitmq connection is closed", out["downstream"])
}

func TestUnknownRouteAndMethod(t *testing.T) {
	e := setup(t, &downstream.Fixed{Accept: true})

	rec, _ := e.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = e.do(t, http.MethodGet, "/place-order", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
