package ingest_test

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"ledgerload/internal/ingest"
	"ledgerload/internal/ingest/fake"
	"ledgerload/internal/repository"
	"ledgerload/pkg/retry"

	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ingester", func() {
	var (
		ingester *ingest.Ingester
		fakeRepo *fake.Repository
		ctx      context.Context
		dir      string
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeRepo.SessionCalls(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
		ingester = ingest.NewIngester(zap.NewNop().Sugar(), fakeRepo, ingest.NewMetrics(nil), 2, retry.Config{
			MaxRetries:   3,
			InitialDelay: time.Millisecond,
			MaxDelay:     time.Millisecond,
			Multiplier:   1,
		})
		ctx = context.Background()
		dir = GinkgoT().TempDir()
		fakeErr = errors.New("fake error")
	})

	Describe("IngestTransactions", func() {
		var (
			path  string
			stats ingest.FileStats
			err   error
		)

		BeforeEach(func() {
			path = writeShard(dir, "txs.gz",
				`{"hash":"0xA1","block_number":1}`,
				`{"hash":"0xA2","block_number":2}`,
				`not json`,
				`{"block_number":3}`,
				`{"hash":"0xA3","block_number":4}`,
			)
			fakeRepo.SaveTransactionsReturnsOnCall(0, 2, nil)
			fakeRepo.SaveTransactionsReturnsOnCall(1, 0, nil)
		})

		JustBeforeEach(func() {
			stats, err = ingester.IngestTransactions(ctx, path)
		})

		It("should save accepted rows in batches inside one session", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.SessionCallCount()).To(Equal(1))
			Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(2))

			_, first := fakeRepo.SaveTransactionsArgsForCall(0)
			Expect(first).To(HaveLen(2))
			Expect(first[0].Hash).To(Equal("0xA1"))
			Expect(first[1].Hash).To(Equal("0xA2"))

			_, second := fakeRepo.SaveTransactionsArgsForCall(1)
			Expect(second).To(HaveLen(1))
			Expect(second[0].Hash).To(Equal("0xA3"))
		})

		It("should count every outcome", func() {
			Expect(stats).To(Equal(ingest.FileStats{
				Lines:     5,
				Malformed: 1,
				Rejected:  1,
				Accepted:  3,
				Inserted:  2,
			}))
			Expect(stats.Duplicates()).To(Equal(int64(1)))
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionsReturnsOnCall(0, 0, fakeErr)
			})

			It("should return the error without retrying", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SessionCallCount()).To(Equal(1))
			})
		})

		When("the store reports a deadlock", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionsReturnsOnCall(0, 0, &pgconn.PgError{Code: "40P01"})
				fakeRepo.SaveTransactionsReturnsOnCall(1, 2, nil)
				fakeRepo.SaveTransactionsReturnsOnCall(2, 1, nil)
			})

			It("should run the whole file again", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SessionCallCount()).To(Equal(2))
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(3))
				Expect(stats.Inserted).To(Equal(int64(3)))
				Expect(stats.Accepted).To(Equal(int64(3)))
			})
		})

		When("the store keeps reporting deadlocks", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionsReturns(0, &pgconn.PgError{Code: "40P01"})
			})

			It("should give up after the first run and every configured rerun", func() {
				Expect(err).To(MatchError(ContainSubstring("after 4 attempts")))
				Expect(fakeRepo.SessionCallCount()).To(Equal(4))
			})
		})

		When("the session cannot start", func() {
			BeforeEach(func() {
				fakeRepo.SessionReturns(fakeErr)
				fakeRepo.SessionCalls(nil)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("IngestTraces", func() {
		It("should save every trace including repeated ones", func() {
			line := `{"transaction_hash":"0xT1","trace_type":"call"}`
			path := writeShard(dir, "traces.gz", line, line)
			fakeRepo.SaveTracesReturns(2, nil)

			stats, err := ingester.IngestTraces(ctx, path)

			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Inserted).To(Equal(int64(2)))
			Expect(fakeRepo.SaveTracesCallCount()).To(Equal(1))
			_, traces := fakeRepo.SaveTracesArgsForCall(0)
			Expect(traces).To(HaveLen(2))
			Expect(traces[0].TraceType).To(HaveValue(Equal("call")))
		})
	})

	Describe("IngestContracts", func() {
		It("should save contracts", func() {
			path := writeShard(dir, "contracts.gz", `{"address":"0xC1","bytecode":"0x60"}`)
			fakeRepo.SaveContractsReturns(1, nil)

			stats, err := ingester.IngestContracts(ctx, path)

			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Inserted).To(Equal(int64(1)))
			_, contracts := fakeRepo.SaveContractsArgsForCall(0)
			Expect(contracts).To(ConsistOf(repository.Contract{Address: "0xC1", Bytecode: ptr("0x60")}))
		})
	})

	It("should fail when the file cannot be opened", func() {
		_, err := ingester.IngestContracts(ctx, filepath.Join(dir, "missing.gz"))
		Expect(err).To(HaveOccurred())
		Expect(fakeRepo.SaveContractsCallCount()).To(Equal(0))
	})

	Describe("Worker", func() {
		It("should return a worker for every kind", func() {
			for _, kind := range []ingest.Kind{ingest.KindTransactions, ingest.KindTraces, ingest.KindContracts} {
				worker, err := ingester.Worker(kind)
				Expect(err).NotTo(HaveOccurred())
				Expect(worker).NotTo(BeNil())
			}
		})

		It("should reject an unknown kind", func() {
			_, err := ingester.Worker("blocks")
			Expect(err).To(MatchError(ingest.ErrUnknownKind))
		})
	})
})
