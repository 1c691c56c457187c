package ingest

import (
	"encoding/json"
	"math"
	"strconv"

	"ledgerload/internal/repository"

	"gorm.io/datatypes"
)

// NormalizeTransaction keeps records with a non-empty hash.
func NormalizeTransaction(rec Record) (repository.Transaction, bool) {
	hash := requiredString(rec.Fields, "hash")
	if hash == "" {
		return repository.Transaction{}, false
	}

	return repository.Transaction{
		Hash:        hash,
		FromAddress: optionalString(rec.Fields, "from_address"),
		ToAddress:   optionalString(rec.Fields, "to_address"),
		BlockNumber: optionalInt64(rec.Fields, "block_number"),
		RawData:     datatypes.JSON(rec.Raw),
	}, true
}

// NormalizeTrace keeps records with a non-empty transaction_hash.
func NormalizeTrace(rec Record) (repository.Trace, bool) {
	txHash := requiredString(rec.Fields, "transaction_hash")
	if txHash == "" {
		return repository.Trace{}, false
	}

	return repository.Trace{
		TransactionHash: txHash,
		TraceType:       optionalString(rec.Fields, "trace_type"),
		FromAddress:     optionalString(rec.Fields, "from_address"),
		ToAddress:       optionalString(rec.Fields, "to_address"),
		RawData:         datatypes.JSON(rec.Raw),
	}, true
}

// NormalizeContract keeps records with a non-empty address.
func NormalizeContract(rec Record) (repository.Contract, bool) {
	address := requiredString(rec.Fields, "address")
	if address == "" {
		return repository.Contract{}, false
	}

	return repository.Contract{
		Address:  address,
		Bytecode: optionalString(rec.Fields, "bytecode"),
	}, true
}

func requiredString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func optionalString(fields map[string]any, key string) *string {
	s, ok := fields[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// optionalInt64 accepts integral JSON numbers and decimal strings.
func optionalInt64(fields map[string]any, key string) *int64 {
	var n int64

	switch v := fields[key].(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil || f != math.Trunc(f) || f >= 0x1p63 || f < -0x1p63 {
				return nil
			}
			i = int64(f)
		}
		n = i
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil
		}
		n = i
	default:
		return nil
	}

	return &n
}
