package ingest_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ledgerload/internal/ingest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	readAll := func(r *ingest.Reader) []ingest.Record {
		records := []ingest.Record{}
		for r.Next() {
			records = append(records, r.Record())
		}
		return records
	}

	It("should yield every JSON object and skip malformed lines", func() {
		path := writeShard(dir, "shard.gz",
			`{"hash":"0xA1","block_number":17}`,
			``,
			`{"hash": "0xA2"`,
			`[1,2,3]`,
			`null`,
			`{"hash":"0xA3"} trailing`,
			"{\"hash\":\"\xff\xfe\"}",
			`   {"hash":"0xA4"}   `,
		)

		r, err := ingest.OpenReader(path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		records := readAll(r)
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(string(records[0].Raw)).To(Equal(`{"hash":"0xA1","block_number":17}`))
		Expect(records[0].Fields).To(HaveKeyWithValue("block_number", json.Number("17")))
		Expect(string(records[1].Raw)).To(Equal(`{"hash":"0xA4"}`))

		Expect(r.Stats()).To(Equal(ingest.ReaderStats{Lines: 7, Malformed: 5}))
	})

	It("should read a final line without a trailing newline", func() {
		path := writeShard(dir, "shard.gz", `{"a":1}`, `{"b":2}`)

		r, err := ingest.OpenReader(path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		Expect(readAll(r)).To(HaveLen(2))
	})

	It("should read lines longer than any fixed buffer", func() {
		long := make([]byte, 3<<20)
		for i := range long {
			long[i] = 'f'
		}
		path := writeShard(dir, "shard.gz", `{"bytecode":"0x`+string(long)+`"}`)

		r, err := ingest.OpenReader(path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		records := readAll(r)
		Expect(r.Err()).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
	})

	It("should report a truncated stream as an error", func() {
		data := gzipLines(`{"a":1}`, `{"b":2}`)
		path := filepath.Join(dir, "truncated.gz")
		Expect(os.WriteFile(path, data[:len(data)-6], 0o600)).To(Succeed())

		r, err := ingest.OpenReader(path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		readAll(r)
		Expect(r.Err()).To(HaveOccurred())
	})

	It("should refuse a file that is not gzip", func() {
		path := filepath.Join(dir, "plain.gz")
		Expect(os.WriteFile(path, []byte(`{"a":1}`), 0o600)).To(Succeed())

		_, err := ingest.OpenReader(path)
		Expect(err).To(MatchError(ContainSubstring("open gzip stream")))
	})

	It("should fail on a missing file", func() {
		_, err := ingest.OpenReader(filepath.Join(dir, "missing.gz"))
		Expect(err).To(MatchError(ContainSubstring("open shard")))
	})
})
