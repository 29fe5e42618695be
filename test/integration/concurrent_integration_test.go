//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhlegal/intake-service/internal/adapters/clients"
	"github.com/mhlegal/intake-service/internal/platform/config"
)

// mirrorClientConfig returns a workspace client config with a failure
// threshold loose enough that healthy bursts never trip the breaker.
func mirrorClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "workspace",
		BaseURL:     baseURL,
		Timeout:     10 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 3,
		},
	}
}

// consultPageBody builds the mirror payload for one synthetic consult.
func consultPageBody(i int) io.Reader {
	payload, _ := json.Marshal(map[string]any{
		"parent": map[string]string{"database_id": "db-consult"},
		"properties": map[string]any{
			"name":  fmt.Sprintf("의뢰인-%03d", i),
			"phone": fmt.Sprintf("010-0000-%04d", i),
		},
	})

	return bytes.NewReader(payload)
}

// TestConcurrent_MirrorBurst drives a burst of consult mirrors through one
// shared client and verifies every page lands without races.
func TestConcurrent_MirrorBurst(t *testing.T) {
	var pagesCreated int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)

		var body map[string]any
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			assert.Contains(t, body, "properties")
		}

		n := atomic.AddInt32(&pagesCreated, 1)
		time.Sleep(time.Duration(5+n%10) * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"object":"page"}`))
	}))
	defer server.Close()

	client, err := clients.New(mirrorClientConfig(server.URL))
	require.NoError(t, err)

	const submissions = 50
	var wg sync.WaitGroup
	var okCount, errCount int32

	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Post(context.Background(), "/v1/pages", consultPageBody(i))
			if err != nil {
				atomic.AddInt32(&errCount, 1)
				return
			}
			resp.Body.Close()
			atomic.AddInt32(&okCount, 1)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(submissions), atomic.LoadInt32(&okCount), "every mirror should land")
	assert.Equal(t, int32(0), atomic.LoadInt32(&errCount))
	assert.Equal(t, int32(submissions), atomic.LoadInt32(&pagesCreated))
}

// TestConcurrent_ShutdownCancelsInFlightMirrors verifies that cancelling the
// shared context aborts mirrors that are still waiting on the workspace.
func TestConcurrent_ShutdownCancelsInFlightMirrors(t *testing.T) {
	var started, completed int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&started, 1)
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
			atomic.AddInt32(&completed, 1)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client, err := clients.New(mirrorClientConfig(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var aborted int32

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := client.Post(ctx, "/v1/pages", consultPageBody(i))
			if err != nil {
				atomic.AddInt32(&aborted, 1)
			}
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.Greater(t, atomic.LoadInt32(&aborted), int32(0), "in-flight mirrors should abort")
	assert.Equal(t, int32(0), atomic.LoadInt32(&completed), "nothing should finish after shutdown")
}

// TestConcurrent_BreakerShedsLoadThenRecovers pushes a failing workspace
// under concurrent mirror traffic: the breaker should shed requests while
// open and let traffic through again once the workspace heals.
func TestConcurrent_BreakerShedsLoadThenRecovers(t *testing.T) {
	var serverCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&serverCalls, 1) <= 5 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := mirrorClientConfig(server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 3
	cfg.Circuit.Timeout = 50 * time.Millisecond

	client, err := clients.New(cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var shed int32

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := client.Post(context.Background(), "/v1/pages", consultPageBody(i))
			if err == clients.ErrCircuitOpen {
				atomic.AddInt32(&shed, 1)
			}
		}(i)
		time.Sleep(5 * time.Millisecond)
	}
	wg.Wait()

	assert.Greater(t, atomic.LoadInt32(&shed), int32(0), "open breaker should shed mirrors")

	time.Sleep(60 * time.Millisecond)

	var recovered int32
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := client.Post(context.Background(), "/v1/pages", consultPageBody(i))
			if err == nil {
				resp.Body.Close()
				atomic.AddInt32(&recovered, 1)
			}
		}(i)
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	assert.Greater(t, atomic.LoadInt32(&recovered), int32(0), "breaker should close again")
}

// TestConcurrent_MixedMirrorAndHealthTraffic interleaves page creation with
// the token check the readiness probe performs, all on one shared client.
func TestConcurrent_MixedMirrorAndHealthTraffic(t *testing.T) {
	var pageCalls, healthCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/pages":
			atomic.AddInt32(&pageCalls, 1)
			_, _ = io.Copy(io.Discard, r.Body)
		case r.Method == http.MethodGet && r.URL.Path == "/v1/users/me":
			atomic.AddInt32(&healthCalls, 1)
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := clients.New(mirrorClientConfig(server.URL))
	require.NoError(t, err)

	var wg sync.WaitGroup
	const iterations = 10

	for i := 0; i < iterations; i++ {
		wg.Add(2)

		go func(i int) {
			defer wg.Done()
			resp, err := client.Post(context.Background(), "/v1/pages", consultPageBody(i))
			if err == nil {
				resp.Body.Close()
			}
		}(i)

		go func() {
			defer wg.Done()
			resp, err := client.Get(context.Background(), "/v1/users/me")
			if err == nil {
				resp.Body.Close()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(iterations), atomic.LoadInt32(&pageCalls), "page mirror calls mismatch")
	assert.Equal(t, int32(iterations), atomic.LoadInt32(&healthCalls), "health calls mismatch")
}
