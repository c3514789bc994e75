package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/homeledger/homeledger/internal/transport/middleware"
)

var _ = Describe("RecoveryMiddleware", func() {
	It("turns a handler panic into a generic 500 response", func() {
		handler := middleware.RecoveryMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("schedule blew up")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)

		Expect(func() { handler.ServeHTTP(rec, req) }).ToNot(Panic())
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))

		var body map[string]string
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("error", "internal server error"))
		Expect(rec.Body.String()).ToNot(ContainSubstring("schedule blew up"))
	})

	It("leaves a healthy handler untouched", func() {
		handler := middleware.RecoveryMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/incomes", nil))

		Expect(rec.Code).To(Equal(http.StatusNoContent))
	})
})

var _ = Describe("RequestID", func() {
	It("mints a trace ID and echoes it on the response", func() {
		var seenInHandler string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenInHandler = w.Header().Get("X-Trace-ID")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projection", nil))

		Expect(rec.Header().Get("X-Trace-ID")).ToNot(BeEmpty())
		Expect(seenInHandler).To(Equal(rec.Header().Get("X-Trace-ID")))
	})

	It("keeps a caller-supplied trace ID", func() {
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/projection", nil)
		req.Header.Set("X-Trace-ID", "trace-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Header().Get("X-Trace-ID")).To(Equal("trace-123"))
	})
})
