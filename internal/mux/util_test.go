package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"truco-server/internal/config"
	"truco-server/pkg/history"
	"truco-server/pkg/room"
)

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=25"))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), start)
	assert.Equal(t, 25, rows)

	_, _, err = parsePaginationOptions(req("?start=-1&rows=25"))
	assert.EqualError(t, err, "start cannot be less than zero")

	_, _, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")

	_, _, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
}

func Test_writeJSONError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad input"))
	a.Equal(http.StatusBadRequest, w.Code)
	a.Equal("application/json", w.Header().Get("Content-Type"))
	a.JSONEq(`{"message":"bad input","statusCode":400}`, w.Body.String())

	// server errors never leak the cause
	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("connection refused"))
	a.JSONEq(`{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func newTestServer(t *testing.T, m *Mux) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(m)
	t.Cleanup(ts.Close)

	return ts
}

func newTestMux(t *testing.T, matches history.Reader) *Mux {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Timing.BotDelay = time.Millisecond
	cfg.Timing.BotResponseDelay = time.Millisecond

	sb := room.NewSwitchboard()
	pitBoss := room.NewPitBoss(sb, cfg)
	pitBoss.StartShift()
	t.Cleanup(pitBoss.EndShift)

	return NewMux("v1.2.3", pitBoss, sb, matches)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}
