package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhlegal/intake-service/internal/adapters/http/dto"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

// withContextLogger seeds the request context with a logger, standing in
// for what the platform wiring does in main. It must run before the ID
// middleware so their enrichment lands on this logger.
func withContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// intakeTestRouter builds a router shaped like the production chain with
// a consult endpoint behind it.
func intakeTestRouter(handler gin.HandlerFunc, mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.POST("/api/v1/consult", handler)
	return router
}

func postConsult(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	body := bytes.NewBufferString(`{"name":"김철수","phone":"010-9876-5432"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/consult", body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID_MintedForAnonymousSubmission(t *testing.T) {
	var seenInGin, seenInCtx string

	router := intakeTestRouter(func(c *gin.Context) {
		seenInGin = GetRequestID(c)
		seenInCtx = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	}, RequestID())

	w := postConsult(router, nil)

	echoed := w.Header().Get(HeaderRequestID)
	require.NotEmpty(t, echoed)

	// Browser form posts never carry an ID, so the middleware mints one
	// and every view of the request agrees on it.
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err)
	assert.Equal(t, echoed, seenInGin)
	assert.Equal(t, echoed, seenInCtx)
}

func TestRequestID_CallerValuePreserved(t *testing.T) {
	var seenInCtx string

	router := intakeTestRouter(func(c *gin.Context) {
		seenInCtx = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	}, RequestID())

	w := postConsult(router, map[string]string{HeaderRequestID: "edge-proxy-7c1"})

	assert.Equal(t, "edge-proxy-7c1", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "edge-proxy-7c1", seenInCtx)
}

func TestCorrelationID_PropagatedAcrossHops(t *testing.T) {
	var seenInGin, seenInCtx string

	router := intakeTestRouter(func(c *gin.Context) {
		seenInGin = GetCorrelationID(c)
		seenInCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	}, CorrelationID())

	w := postConsult(router, map[string]string{HeaderCorrelationID: "intake-txn-042"})

	assert.Equal(t, "intake-txn-042", w.Header().Get(HeaderCorrelationID))
	assert.Equal(t, "intake-txn-042", seenInGin)
	assert.Equal(t, "intake-txn-042", seenInCtx)
}

func TestCorrelationID_MintedAtOrigin(t *testing.T) {
	router := intakeTestRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
	}, CorrelationID())

	w := postConsult(router, nil)

	_, err := uuid.Parse(w.Header().Get(HeaderCorrelationID))
	assert.NoError(t, err)
}

func TestRequestAndCorrelationID_Independent(t *testing.T) {
	var reqID, corrID string

	router := intakeTestRouter(func(c *gin.Context) {
		reqID = RequestIDFromContext(c.Request.Context())
		corrID = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	}, RequestID(), CorrelationID())

	// Only the correlation ID arrives from upstream; the request ID is
	// fresh for this hop.
	postConsult(router, map[string]string{HeaderCorrelationID: "intake-txn-043"})

	assert.Equal(t, "intake-txn-043", corrID)
	require.NotEmpty(t, reqID)
	assert.NotEqual(t, corrID, reqID)
}

func TestRecovery_ConvertsPanicToFailureEnvelope(t *testing.T) {
	router := intakeTestRouter(func(c *gin.Context) {
		panic("nil record in fanout")
	}, withContextLogger(testLogger()), Recovery(testLogger()))

	w := postConsult(router, nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.IntakeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.OK)
	assert.Equal(t, dto.ErrorCodeServerError, resp.Error)
	assert.Empty(t, resp.ID)

	// The panic payload stays in the log, never in the response.
	assert.NotContains(t, w.Body.String(), "fanout")
}

func TestRecovery_LeavesHealthyRequestsAlone(t *testing.T) {
	router := intakeTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAcceptedResponse("consult-9"))
	}, Recovery(testLogger()))

	w := postConsult(router, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"consult-9"`)
}

func TestRecovery_PartialWriteAborts(t *testing.T) {
	router := intakeTestRouter(func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("after write")
	}, withContextLogger(testLogger()), Recovery(testLogger()))

	w := postConsult(router, nil)

	// Too late for the envelope; the body must not gain a second payload.
	assert.Equal(t, "partial", w.Body.String())
}

func TestSimpleTimeout_DeadlineVisibleToSinks(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool

	router := intakeTestRouter(func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	}, SimpleTimeout(5*time.Second))

	postConsult(router, nil)

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestSimpleTimeout_ExpiredContextReachesHandler(t *testing.T) {
	var ctxErr error

	router := intakeTestRouter(func(c *gin.Context) {
		// A stalled persistence call surfaces as context expiry, which
		// the handler maps to SERVER_ERROR itself.
		<-c.Request.Context().Done()
		ctxErr = c.Request.Context().Err()
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeServerError))
	}, SimpleTimeout(10*time.Millisecond))

	w := postConsult(router, nil)

	assert.ErrorIs(t, ctxErr, context.DeadlineExceeded)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogging_SkipsProbeEndpoints(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf)

	router := gin.New()
	router.Use(withContextLogger(logger), Logging(logger))
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/v1/consult", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/-/live", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, buf.String(), "probe traffic must not be logged")

	postConsult(router, nil)

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "/api/v1/consult")
}

func TestLogging_NeverLogsSubmissionBody(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf)

	router := gin.New()
	router.Use(withContextLogger(logger), Logging(logger))
	router.POST("/api/v1/consult", func(c *gin.Context) { c.Status(http.StatusOK) })

	postConsult(router, nil)

	// Names and phone numbers stay out of the access log.
	out := buf.String()
	assert.NotContains(t, out, "김철수")
	assert.NotContains(t, out, "010-9876-5432")
}

func TestLogging_LevelTracksStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"accepted intake logs info", http.StatusOK, "INFO"},
		{"rejected submission logs warn", http.StatusBadRequest, "WARN"},
		{"sink failure logs error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := bufferLogger(&buf)

			router := gin.New()
			router.Use(withContextLogger(logger), Logging(logger))
			router.POST("/api/v1/consult", func(c *gin.Context) {
				c.Status(tt.status)
			})

			postConsult(router, nil)

			completed := ""
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}

			require.NotEmpty(t, completed)
			assert.Contains(t, completed, tt.wantLevel)
		})
	}
}

func TestFullChain_ConsultRequestCarriesIDsEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf)
	var ctxReqID string

	router := gin.New()
	router.Use(
		withContextLogger(logger),
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		Logging(logger),
		SimpleTimeout(time.Second),
	)
	router.POST("/api/v1/consult", func(c *gin.Context) {
		ctxReqID = RequestIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, dto.NewAcceptedResponse("consult-11"))
	})

	w := postConsult(router, map[string]string{HeaderCorrelationID: "intake-txn-044"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.Equal(t, "intake-txn-044", w.Header().Get(HeaderCorrelationID))
	assert.Equal(t, w.Header().Get(HeaderRequestID), ctxReqID)

	// The access log lines carry both IDs via the enriched context logger.
	out := buf.String()
	assert.Contains(t, out, ctxReqID)
	assert.Contains(t, out, "intake-txn-044")
}
