package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"ledgerload/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"LEDGERLOAD_CONFIG",
	"DB_CONNECTION_URL",
	"TXN_GZ_FOLDER",
	"TRACES_GZ_FOLDER",
	"CONTRACTS_GZ_FOLDER",
	"INGEST_WORKERS",
	"INGEST_BATCH_SIZE",
	"INGEST_TIMEOUT",
	"INGEST_MAX_RETRIES",
	"API_PORT",
	"JWT_SECRET",
	"REDIS_URL",
	"CACHE_TTL",
	"LOG_LEVEL",
}

func setEnv(key, value string) {
	GinkgoT().Setenv(key, value)
}

var _ = Describe("NewApp", func() {
	BeforeEach(func() {
		for _, key := range envKeys {
			setEnv(key, "")
		}
	})

	When("only the database url is set", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/ledger")
		})

		It("should fill defaults", func() {
			app, err := config.NewApp()

			Expect(err).NotTo(HaveOccurred())
			Expect(app.DBConnectionURL).To(Equal("postgres://localhost/ledger"))
			Expect(app.TransactionsFolder).To(Equal("/tmp"))
			Expect(app.TracesFolder).To(Equal("/tmp"))
			Expect(app.ContractsFolder).To(Equal("/tmp"))
			Expect(app.Workers).To(Equal(runtime.NumCPU()))
			Expect(app.BatchSize).To(Equal(1000))
			Expect(app.MaxRetries).To(Equal(3))
			Expect(app.Timeout).To(BeZero())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.CacheTTL).To(Equal(24 * time.Hour))
			Expect(app.LogLevel).To(Equal("info"))
		})
	})

	When("the database url is missing", func() {
		It("should return an error", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("DB_CONNECTION_URL")))
		})
	})

	When("environment variables override values", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://db/ledger")
			setEnv("TXN_GZ_FOLDER", "/data/txs")
			setEnv("INGEST_WORKERS", "8")
			setEnv("INGEST_BATCH_SIZE", "250")
			setEnv("INGEST_TIMEOUT", "2h")
			setEnv("LOG_LEVEL", "debug")
		})

		It("should use them", func() {
			app, err := config.NewApp()

			Expect(err).NotTo(HaveOccurred())
			Expect(app.TransactionsFolder).To(Equal("/data/txs"))
			Expect(app.Workers).To(Equal(8))
			Expect(app.BatchSize).To(Equal(250))
			Expect(app.Timeout).To(Equal(2 * time.Hour))
			Expect(app.LogLevel).To(Equal("debug"))
		})
	})

	When("a yaml file is configured", func() {
		BeforeEach(func() {
			path := filepath.Join(GinkgoT().TempDir(), "ledgerload.yaml")
			Expect(os.WriteFile(path, []byte(`
db_connection_url: postgres://file/ledger
traces_folder: /data/traces
workers: 4
port: "9090"
`), 0o600)).To(Succeed())
			setEnv("LEDGERLOAD_CONFIG", path)
			setEnv("API_PORT", "7070")
		})

		It("should read the file and let the environment win", func() {
			app, err := config.NewApp()

			Expect(err).NotTo(HaveOccurred())
			Expect(app.DBConnectionURL).To(Equal("postgres://file/ledger"))
			Expect(app.TracesFolder).To(Equal("/data/traces"))
			Expect(app.Workers).To(Equal(4))
			Expect(app.Port).To(Equal("7070"))
		})
	})

	DescribeTable("invalid values",
		func(key, value, msg string) {
			setEnv("DB_CONNECTION_URL", "postgres://db/ledger")
			setEnv(key, value)

			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring(msg)))
		},
		Entry("non numeric workers", "INGEST_WORKERS", "many", "parse INGEST_WORKERS"),
		Entry("bad timeout", "INGEST_TIMEOUT", "soon", "parse INGEST_TIMEOUT"),
		Entry("batch too large", "INGEST_BATCH_SIZE", "20000", "validate config"),
		Entry("unknown log level", "LOG_LEVEL", "loud", "validate config"),
		Entry("negative workers", "INGEST_WORKERS", "-1", "validate config"),
	)

	It("should resolve the jwt secret without a database url", func() {
		setEnv("JWT_SECRET", "s3cret")

		secret, err := config.JWTSecret()
		Expect(err).NotTo(HaveOccurred())
		Expect(secret).To(Equal("s3cret"))
	})
})
