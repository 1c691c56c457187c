package ingest_test

import (
	"encoding/json"
	"math"

	"ledgerload/internal/ingest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func record(raw string) ingest.Record {
	fields := map[string]any{}
	decoder := json.NewDecoder(stringsReader(raw))
	decoder.UseNumber()
	Expect(decoder.Decode(&fields)).To(Succeed())
	return ingest.Record{Raw: json.RawMessage(raw), Fields: fields}
}

var _ = Describe("Normalize", func() {
	Describe("NormalizeTransaction", func() {
		It("should map the indexed fields and keep the raw line", func() {
			raw := `{"hash":"0xAbC","from_address":"0x01","to_address":null,"block_number":"42","value":"1"}`
			tx, ok := ingest.NormalizeTransaction(record(raw))

			Expect(ok).To(BeTrue())
			Expect(tx.Hash).To(Equal("0xAbC"))
			Expect(*tx.FromAddress).To(Equal("0x01"))
			Expect(tx.ToAddress).To(BeNil())
			Expect(*tx.BlockNumber).To(Equal(int64(42)))
			Expect(string(tx.RawData)).To(Equal(raw))
		})

		DescribeTable("block_number",
			func(raw string, expected *int64) {
				tx, ok := ingest.NormalizeTransaction(record(raw))
				Expect(ok).To(BeTrue())
				if expected == nil {
					Expect(tx.BlockNumber).To(BeNil())
					return
				}
				Expect(tx.BlockNumber).To(HaveValue(Equal(*expected)))
			},
			Entry("integer", `{"hash":"0x1","block_number":17}`, ptr(int64(17))),
			Entry("decimal string", `{"hash":"0x1","block_number":"18"}`, ptr(int64(18))),
			Entry("integral float", `{"hash":"0x1","block_number":1.9e1}`, ptr(int64(19))),
			Entry("fraction", `{"hash":"0x1","block_number":1.5}`, nil),
			Entry("int64 minimum", `{"hash":"0x1","block_number":-9223372036854775808}`, ptr(int64(math.MinInt64))),
			Entry("int64 minimum as float", `{"hash":"0x1","block_number":-9.223372036854775808e18}`, ptr(int64(math.MinInt64))),
			Entry("just past int64 maximum", `{"hash":"0x1","block_number":9223372036854775808}`, nil),
			Entry("float past int64 maximum", `{"hash":"0x1","block_number":9.3e18}`, nil),
			Entry("float past int64 minimum", `{"hash":"0x1","block_number":-9.3e18}`, nil),
			Entry("hex string", `{"hash":"0x1","block_number":"0x10"}`, nil),
			Entry("null", `{"hash":"0x1","block_number":null}`, nil),
			Entry("absent", `{"hash":"0x1"}`, nil),
		)

		DescribeTable("rejected records",
			func(raw string) {
				_, ok := ingest.NormalizeTransaction(record(raw))
				Expect(ok).To(BeFalse())
			},
			Entry("missing hash", `{"from_address":"0x01"}`),
			Entry("empty hash", `{"hash":""}`),
			Entry("null hash", `{"hash":null}`),
			Entry("numeric hash", `{"hash":12}`),
		)
	})

	Describe("NormalizeTrace", func() {
		It("should map the indexed fields", func() {
			raw := `{"transaction_hash":"0xT","trace_type":"create","from_address":"0xF","to_address":"0xC"}`
			trace, ok := ingest.NormalizeTrace(record(raw))

			Expect(ok).To(BeTrue())
			Expect(trace.ID).To(BeZero())
			Expect(trace.TransactionHash).To(Equal("0xT"))
			Expect(trace.TraceType).To(HaveValue(Equal("create")))
			Expect(trace.FromAddress).To(HaveValue(Equal("0xF")))
			Expect(trace.ToAddress).To(HaveValue(Equal("0xC")))
			Expect(string(trace.RawData)).To(Equal(raw))
		})

		It("should reject a trace without transaction hash", func() {
			_, ok := ingest.NormalizeTrace(record(`{"trace_type":"call"}`))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("NormalizeContract", func() {
		It("should keep address and bytecode", func() {
			contract, ok := ingest.NormalizeContract(record(`{"address":"0xC0","bytecode":"0x6080","block_number":3}`))

			Expect(ok).To(BeTrue())
			Expect(contract.Address).To(Equal("0xC0"))
			Expect(contract.Bytecode).To(HaveValue(Equal("0x6080")))
		})

		It("should allow a missing bytecode", func() {
			contract, ok := ingest.NormalizeContract(record(`{"address":"0xC0"}`))

			Expect(ok).To(BeTrue())
			Expect(contract.Bytecode).To(BeNil())
		})

		It("should reject a contract without address", func() {
			_, ok := ingest.NormalizeContract(record(`{"bytecode":"0x00"}`))
			Expect(ok).To(BeFalse())
		})
	})
})
