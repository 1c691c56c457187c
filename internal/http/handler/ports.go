package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"ledgerload/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LookupService . LookupService
type LookupService interface {
	TransactionsByHash(ctx context.Context, hashes []string) (map[string]json.RawMessage, error)
	TracesByTransactionHash(ctx context.Context, hashes []string) (map[string][]json.RawMessage, error)
	TransactionsByAddress(ctx context.Context, addresses []string) (map[string]core.AddressActivity, error)
	TracesByAddress(ctx context.Context, addresses []string) (map[string]core.AddressActivity, error)
	ContractCreations(ctx context.Context, addresses []string) (map[string]string, error)
	ContractCode(ctx context.Context, addresses []string) (map[string]string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name HealthChecker . HealthChecker
type HealthChecker interface {
	Health(ctx context.Context) error
}
