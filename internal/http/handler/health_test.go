package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"ledgerload/internal/http/handler"
	"ledgerload/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HealthHandler", func() {
	var (
		database *fake.HealthChecker
		cache    *fake.HealthChecker
		hh       *handler.HealthHandler
		w        *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		database = new(fake.HealthChecker)
		cache = new(fake.HealthChecker)
		hh = handler.NewHealthHandler(zap.NewNop().Sugar(), map[string]handler.HealthChecker{
			"postgres": database,
			"redis":    cache,
		})
		w = httptest.NewRecorder()
	})

	It("should report ok when every dependency is healthy", func() {
		hh.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"postgres":"ok","redis":"ok"}`))
	})

	It("should report 503 when a dependency fails", func() {
		cache.HealthReturns(errors.New("down"))

		hh.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(w.Body.String()).To(MatchJSON(`{"postgres":"ok","redis":"unavailable"}`))
	})
})
