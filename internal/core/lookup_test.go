package core_test

import (
	"context"
	"encoding/json"
	"errors"

	"ledgerload/internal/core"
	"ledgerload/internal/core/fake"
	"ledgerload/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func strPtr(s string) *string {
	return &s
}

var _ = Describe("LookupService", func() {
	var (
		fakeRepo  *fake.Repository
		fakeCache *fake.Cache
		service   *core.LookupService
		ctx       context.Context
		fakeErr   error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeCache = new(fake.Cache)
		service = core.NewLookupService(zap.NewNop().Sugar(), fakeRepo, nil, core.NewMetrics(nil))
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("TransactionsByHash", func() {
		var (
			hashes []string
			result map[string]json.RawMessage
			err    error
		)

		JustBeforeEach(func() {
			result, err = service.TransactionsByHash(ctx, hashes)
		})

		When("hashes are given in mixed case", func() {
			BeforeEach(func() {
				hashes = []string{"0xABC", "0xabc", "0xDef", "", "0x999"}
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{Hash: "0xAbC", RawData: datatypes.JSON(`{"hash":"0xAbC"}`)},
					{Hash: "0xDEF", RawData: datatypes.JSON(`{"hash":"0xDEF"}`)},
				}, nil)
			})

			It("should query lowercased unique keys and key the result by lowercase hash", func() {
				Expect(err).NotTo(HaveOccurred())

				_, keys := fakeRepo.GetTransactionsByHashArgsForCall(0)
				Expect(keys).To(Equal([]string{"0xabc", "0xdef", "0x999"}))

				Expect(result).To(HaveLen(2))
				Expect(result).To(HaveKeyWithValue("0xabc", json.RawMessage(`{"hash":"0xAbC"}`)))
				Expect(result).To(HaveKey("0xdef"))
				Expect(result).NotTo(HaveKey("0x999"))
			})
		})

		When("a hash carries surrounding whitespace", func() {
			BeforeEach(func() {
				hashes = []string{" 0xABC", "0xabc"}
				fakeRepo.GetTransactionsByHashReturns([]repository.Transaction{
					{Hash: "0xabc", RawData: datatypes.JSON(`{"hash":"0xabc"}`)},
				}, nil)
			})

			It("should look it up verbatim instead of trimming it", func() {
				Expect(err).NotTo(HaveOccurred())

				_, keys := fakeRepo.GetTransactionsByHashArgsForCall(0)
				Expect(keys).To(Equal([]string{" 0xabc", "0xabc"}))

				Expect(result).To(HaveLen(1))
				Expect(result).To(HaveKey("0xabc"))
				Expect(result).NotTo(HaveKey(" 0xabc"))
			})
		})

		When("no keys are given", func() {
			BeforeEach(func() {
				hashes = []string{"", "  "}
			})

			It("should return an empty result without querying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(BeEmpty())
				Expect(fakeRepo.GetTransactionsByHashCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				hashes = []string{"0x1"}
				fakeRepo.GetTransactionsByHashReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result).To(BeNil())
			})
		})
	})

	Describe("TracesByTransactionHash", func() {
		It("should group traces in retrieval order and omit hashes without traces", func() {
			fakeRepo.GetTracesByTransactionHashReturns([]repository.Trace{
				{ID: 1, TransactionHash: "0xAA", RawData: datatypes.JSON(`{"n":1}`)},
				{ID: 2, TransactionHash: "0xbb", RawData: datatypes.JSON(`{"n":2}`)},
				{ID: 3, TransactionHash: "0xaa", RawData: datatypes.JSON(`{"n":3}`)},
			}, nil)

			result, err := service.TracesByTransactionHash(ctx, []string{"0xaa", "0xBB", "0xcc"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result["0xaa"]).To(Equal([]json.RawMessage{json.RawMessage(`{"n":1}`), json.RawMessage(`{"n":3}`)}))
			Expect(result["0xbb"]).To(HaveLen(1))
			Expect(result).NotTo(HaveKey("0xcc"))
		})
	})

	Describe("TransactionsByAddress", func() {
		It("should return every requested address split by role", func() {
			fakeRepo.GetTransactionsByAddressReturns([]repository.Transaction{
				{Hash: "0x1", FromAddress: strPtr("0xA"), ToAddress: strPtr("0xb"), RawData: datatypes.JSON(`{"tx":1}`)},
				{Hash: "0x2", FromAddress: strPtr("0xa"), ToAddress: strPtr("0xA"), RawData: datatypes.JSON(`{"tx":2}`)},
				{Hash: "0x3", FromAddress: strPtr("0xZ"), ToAddress: nil, RawData: datatypes.JSON(`{"tx":3}`)},
			}, nil)

			result, err := service.TransactionsByAddress(ctx, []string{"0xa", "0xB", "0xC"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(3))

			Expect(result["0xa"].From).To(Equal([]json.RawMessage{json.RawMessage(`{"tx":1}`), json.RawMessage(`{"tx":2}`)}))
			Expect(result["0xa"].To).To(Equal([]json.RawMessage{json.RawMessage(`{"tx":2}`)}))
			Expect(result["0xb"].From).To(BeEmpty())
			Expect(result["0xb"].To).To(Equal([]json.RawMessage{json.RawMessage(`{"tx":1}`)}))
			Expect(result["0xc"].From).NotTo(BeNil())
			Expect(result["0xc"].From).To(BeEmpty())
			Expect(result["0xc"].To).To(BeEmpty())
		})

		It("should fail the whole call on store errors", func() {
			fakeRepo.GetTransactionsByAddressReturns(nil, fakeErr)

			_, err := service.TransactionsByAddress(ctx, []string{"0xa"})
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("TracesByAddress", func() {
		It("should split traces by role", func() {
			fakeRepo.GetTracesByAddressReturns([]repository.Trace{
				{ID: 1, FromAddress: strPtr("0xF"), ToAddress: strPtr("0xT"), RawData: datatypes.JSON(`{"t":1}`)},
			}, nil)

			result, err := service.TracesByAddress(ctx, []string{"0xf", "0xt"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result["0xf"].From).To(HaveLen(1))
			Expect(result["0xf"].To).To(BeEmpty())
			Expect(result["0xt"].To).To(HaveLen(1))
		})
	})

	Describe("ContractCreations", func() {
		BeforeEach(func() {
			fakeRepo.GetCreationTracesReturns([]repository.Trace{
				{ID: 4, TransactionHash: "0xfirst", ToAddress: strPtr("0xC1")},
				{ID: 9, TransactionHash: "0xsecond", ToAddress: strPtr("0xc1")},
				{ID: 12, TransactionHash: "0xother", ToAddress: strPtr("0xC2")},
			}, nil)
		})

		It("should keep the earliest creation per address", func() {
			result, err := service.ContractCreations(ctx, []string{"0xc1", "0xC2", "0xc3"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(map[string]string{
				"0xc1": "0xfirst",
				"0xc2": "0xother",
			}))
		})

		When("a cache is configured", func() {
			BeforeEach(func() {
				service = core.NewLookupService(zap.NewNop().Sugar(), fakeRepo, fakeCache, core.NewMetrics(nil))
				fakeCache.GetManyReturns(map[string]string{"0xc2": "0xcached"}, nil)
			})

			It("should only query the store for misses and cache what it found", func() {
				result, err := service.ContractCreations(ctx, []string{"0xC1", "0xc2", "0xc3"})

				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(HaveKeyWithValue("0xc2", "0xcached"))
				Expect(result).To(HaveKeyWithValue("0xc1", "0xfirst"))

				_, namespace, keys := fakeCache.GetManyArgsForCall(0)
				Expect(namespace).To(Equal("creation"))
				Expect(keys).To(Equal([]string{"0xc1", "0xc2", "0xc3"}))

				_, missing := fakeRepo.GetCreationTracesArgsForCall(0)
				Expect(missing).To(Equal([]string{"0xc1", "0xc3"}))

				Expect(fakeCache.SetManyCallCount()).To(Equal(1))
				_, _, stored := fakeCache.SetManyArgsForCall(0)
				Expect(stored).To(Equal(map[string]string{"0xc1": "0xfirst"}))
			})

			It("should only return and cache keys the store was asked for", func() {
				fakeRepo.GetCreationTracesStub = func(_ context.Context, addresses []string) ([]repository.Trace, error) {
					Expect(addresses).To(Equal([]string{"0xc1"}))
					return []repository.Trace{
						{ID: 4, TransactionHash: "0xfirst", ToAddress: strPtr("0xc1")},
						{ID: 12, TransactionHash: "0xstray", ToAddress: strPtr("0xc9")},
					}, nil
				}

				result, err := service.ContractCreations(ctx, []string{"0xc1", "0xc2"})

				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(map[string]string{
					"0xc1": "0xfirst",
					"0xc2": "0xcached",
				}))

				_, _, stored := fakeCache.SetManyArgsForCall(0)
				Expect(stored).To(Equal(map[string]string{"0xc1": "0xfirst"}))
			})

			It("should skip the store when everything is cached", func() {
				fakeCache.GetManyReturns(map[string]string{"0xc2": "0xcached"}, nil)

				result, err := service.ContractCreations(ctx, []string{"0xc2"})

				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(map[string]string{"0xc2": "0xcached"}))
				Expect(fakeRepo.GetCreationTracesCallCount()).To(Equal(0))
			})

			It("should fall back to the store when the cache fails", func() {
				fakeCache.GetManyReturns(nil, fakeErr)
				fakeCache.SetManyReturns(fakeErr)

				result, err := service.ContractCreations(ctx, []string{"0xc1"})

				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(HaveKeyWithValue("0xc1", "0xfirst"))
			})
		})
	})

	Describe("ContractCode", func() {
		It("should map found addresses to bytecode", func() {
			fakeRepo.GetContractsByAddressReturns([]repository.Contract{
				{Address: "0xC1", Bytecode: strPtr("0x6080")},
				{Address: "0xc2"},
			}, nil)

			result, err := service.ContractCode(ctx, []string{"0xc1", "0xC2", "0xc3"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(map[string]string{
				"0xc1": "0x6080",
				"0xc2": "",
			}))
		})

		It("should return the store error", func() {
			fakeRepo.GetContractsByAddressReturns(nil, fakeErr)

			_, err := service.ContractCode(ctx, []string{"0xc1"})
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
