package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedtimecalc/internal/bedtime"
	"bedtimecalc/internal/model"
)

func goalServer() *Server {
	est := bedtime.New(model.Static(model.PredictorFunc(func(_, sleep, _ float64) (float64, error) {
		return sleep * 3600, nil
	})))
	return New(est, bedtime.StandardDefaults(), "test", nil)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexShowsDefaultBedtime(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, bedtime.TitleSuccess)
	assert.Contains(t, body, "23:00")
	assert.Contains(t, body, "8 hours")
	assert.Contains(t, body, `<option value="1" selected>1 cup</option>`)
	assert.Contains(t, body, "bedtimecalc vtest")
}

func TestIndexUsesQuery(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/?wake=00:30&sleep=9.5&coffee=3")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "15:00")
	assert.Contains(t, body, "the night before")
	assert.Contains(t, body, "9.5 hours")
	assert.Contains(t, body, `<option value="3" selected>3 cups</option>`)
}

func TestIndexBadQueryFallsBack(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/?wake=25:00")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "invalid time")
	assert.Contains(t, body, "23:00")
}

func TestIndexUnknownPath(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/favicon.ico")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndexMaxSleepDisablesIncrement(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/?sleep=12")
	body := rec.Body.String()
	assert.Contains(t, body, `value="sleep+" aria-label="More sleep" disabled`)
	assert.NotContains(t, body, `value="sleep-" aria-label="Less sleep" disabled`)
}

func TestCalcRedirectsWithNonDefaults(t *testing.T) {
	h := goalServer().Handler()

	rec := post(t, h, url.Values{"wake": {"06:30"}, "sleep": {"8"}, "coffee": {"1"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?wake=06%3A30", rec.Header().Get("Location"))

	rec = post(t, h, url.Values{"wake": {"07:00"}, "sleep": {"8"}, "coffee": {"1"}})
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCalcStepper(t *testing.T) {
	h := goalServer().Handler()

	rec := post(t, h, url.Values{"wake": {"07:00"}, "sleep": {"8"}, "coffee": {"2"}, "step": {"sleep+"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?coffee=2&sleep=8.25", rec.Header().Get("Location"))

	rec = post(t, h, url.Values{"sleep": {"4"}, "step": {"sleep-"}})
	assert.Equal(t, "/?sleep=4", rec.Header().Get("Location"))

	rec = post(t, h, url.Values{"sleep": {"12"}, "step": {"sleep+"}})
	assert.Equal(t, "/?sleep=12", rec.Header().Get("Location"))
}

func TestCalcClampsCoffee(t *testing.T) {
	rec := post(t, goalServer().Handler(), url.Values{"coffee": {"40"}})
	assert.Equal(t, "/?coffee=20", rec.Header().Get("Location"))
}

func TestCalcRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{name: "wake", form: url.Values{"wake": {"noon"}}, want: "invalid time"},
		{name: "sleep", form: url.Values{"sleep": {"lots"}}, want: "sleep must be a number"},
		{name: "coffee", form: url.Values{"coffee": {"1.5"}}, want: "coffee must be a whole number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, goalServer().Handler(), tt.form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestCalcMethod(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/calc")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEstimateJSON(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/estimate?wake=07:00&sleep=8&coffee=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body EstimateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, "23:00", body.Bedtime)
	assert.Equal(t, "23:00", body.Message)
	assert.True(t, body.PreviousDay)
	assert.Equal(t, 8.0*3600, body.PredictedSleepSeconds)
}

func TestEstimateJSONBadInput(t *testing.T) {
	rec := get(t, goalServer().Handler(), "/estimate?wake=x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid time")
}

func TestEstimateJSONModelFailure(t *testing.T) {
	est := bedtime.New(func() (model.Predictor, error) { return nil, errors.New("no asset") })
	h := New(est, bedtime.StandardDefaults(), "test", nil).Handler()

	rec := get(t, h, "/estimate")
	require.Equal(t, http.StatusOK, rec.Code)
	var body EstimateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.OK)
	assert.Equal(t, bedtime.TitleError, body.Title)
	assert.Equal(t, bedtime.ErrorMessage, body.Message)
	assert.Empty(t, body.Bedtime)

	page := get(t, h, "/").Body.String()
	assert.Contains(t, page, bedtime.ErrorMessage)
}

func TestPrintListenAddrs(t *testing.T) {
	var buf bytes.Buffer
	PrintListenAddrs(&buf, 8585)
	assert.Contains(t, buf.String(), "http://127.0.0.1:8585/")
}
