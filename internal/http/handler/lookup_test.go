package handler_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"ledgerload/internal/core"
	"ledgerload/internal/http/handler"
	"ledgerload/internal/http/handler/fake"
	"ledgerload/internal/http/payload"

	"github.com/ethereum/go-ethereum/rlp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LookupHandler", func() {
	var (
		lh            *handler.LookupHandler
		fakeService   *fake.LookupService
		fakeValidator *fake.RequestValidator
		mux           *http.ServeMux
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.LookupService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		lh = handler.NewLookupHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
		mux = http.NewServeMux()
		lh.Register(mux)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
	})

	Describe("transactions by hash", func() {
		When("hashes are passed as query parameters", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions?hash=0xAB&hash=0xcd", nil)
				fakeService.TransactionsByHashReturns(map[string]json.RawMessage{
					"0xab": json.RawMessage(`{"hash":"0xAB"}`),
				}, nil)
			})

			It("should return the transactions keyed by hash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]map[string]json.RawMessage
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["transactions"]).To(HaveKey("0xab"))

				Expect(fakeService.TransactionsByHashCallCount()).To(Equal(1))
				_, keys := fakeService.TransactionsByHashArgsForCall(0)
				Expect(keys).To(Equal([]string{"0xAB", "0xcd"}))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(0))
			})
		})

		When("hashes are posted as JSON", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/lookup/transactions", strings.NewReader(`{"keys":["0x01","0x02"]}`))
				fakeService.TransactionsByHashReturns(map[string]json.RawMessage{}, nil)
			})

			It("should decode the body", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
				_, keys := fakeService.TransactionsByHashArgsForCall(0)
				Expect(keys).To(Equal([]string{"0x01", "0x02"}))
			})
		})

		When("the body cannot be decoded", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/lookup/transactions", strings.NewReader(`{"hashes":["0x01"]}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsByHashCallCount()).To(Equal(0))
			})
		})

		When("no hash is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsByHashCallCount()).To(Equal(0))
			})
		})

		When("a hash is not hex", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions?hash=0xZZ", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("must be 0x-prefixed hex"))
			})
		})

		When("too many hashes are given", func() {
			BeforeEach(func() {
				values := url.Values{}
				for i := 0; i <= payload.MaxKeys; i++ {
					values.Add("hash", "0x01")
				}
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions?"+values.Encode(), nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsByHashCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions?hash=0x01", nil)
				fakeService.TransactionsByHashReturns(nil, fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("transactions by RLP hash list", func() {
		When("the path holds a valid RLP list", func() {
			BeforeEach(func() {
				data, err := rlp.EncodeToBytes([][]byte{{0xaa}, {0xbb}})
				Expect(err).NotTo(HaveOccurred())
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions/rlp/"+hex.EncodeToString(data), nil)
				fakeService.TransactionsByHashReturns(map[string]json.RawMessage{}, nil)
			})

			It("should look up the decoded hashes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, keys := fakeService.TransactionsByHashArgsForCall(0)
				Expect(keys).To(Equal([]string{"0xaa", "0xbb"}))
			})
		})

		When("the path is not RLP", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/transactions/rlp/nothex", nil)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionsByHashCallCount()).To(Equal(0))
			})
		})
	})

	Describe("traces by hash", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/lookup/traces?hash=0x01", nil)
			fakeService.TracesByTransactionHashReturns(map[string][]json.RawMessage{
				"0x01": {json.RawMessage(`{"i":1}`), json.RawMessage(`{"i":2}`)},
			}, nil)
		})

		It("should return the traces", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var response map[string]map[string][]json.RawMessage
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["traces"]["0x01"]).To(HaveLen(2))
		})
	})

	Describe("activity by address", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/lookup/addresses/transactions?address=0x0a", nil)
			fakeService.TransactionsByAddressReturns(map[string]core.AddressActivity{
				"0x0a": {From: []json.RawMessage{json.RawMessage(`{"tx":1}`)}, To: []json.RawMessage{}},
			}, nil)
		})

		It("should return both roles", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"transactions":{"0x0a":{"from":[{"tx":1}],"to":[]}}}`))
		})

		When("traces are requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/addresses/traces?address=0x0a", nil)
				fakeService.TracesByAddressReturns(map[string]core.AddressActivity{
					"0x0a": {From: []json.RawMessage{}, To: []json.RawMessage{}},
				}, nil)
			})

			It("should call the trace lookup", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.TracesByAddressCallCount()).To(Equal(1))
				Expect(w.Body.String()).To(MatchJSON(`{"traces":{"0x0a":{"from":[],"to":[]}}}`))
			})
		})
	})

	Describe("contracts", func() {
		When("creations are requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/contracts/creations?address=0xc1", nil)
				fakeService.ContractCreationsReturns(map[string]string{"0xc1": "0xtx"}, nil)
			})

			It("should return the creation hashes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"creations":{"0xc1":"0xtx"}}`))
			})
		})

		When("code is requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/lookup/contracts/code", strings.NewReader(`{"keys":["0xc1"]}`))
				fakeService.ContractCodeReturns(map[string]string{"0xc1": "0x6080"}, nil)
			})

			It("should return the bytecode", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"code":{"0xc1":"0x6080"}}`))
			})
		})

		When("the request is cancelled", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/lookup/contracts/code?address=0xc1", nil)
				fakeService.ContractCodeReturns(nil, context.Canceled)
			})

			It("should return status 503", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})
	})
})
