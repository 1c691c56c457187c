package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	namespaceCreation = "creation"
	namespaceCode     = "code"
)

// LookupService answers read queries over ingested data. Keys are matched
// case-insensitively and results are keyed by the lowercased key. It holds no
// per-call state and is safe for concurrent use.
type LookupService struct {
	logs    *zap.SugaredLogger
	repo    Repository
	cache   Cache
	metrics *Metrics
}

// NewLookupService builds a service; cache may be nil to read the store only.
func NewLookupService(logger *zap.SugaredLogger, repo Repository, cache Cache, metrics *Metrics) *LookupService {
	return &LookupService{
		logs:    logger,
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

// TransactionsByHash maps each found hash to its transaction payload.
func (s *LookupService) TransactionsByHash(ctx context.Context, hashes []string) (map[string]json.RawMessage, error) {
	defer s.metrics.since("transactions_by_hash", time.Now())

	keys := normalizeKeys(hashes)
	result := make(map[string]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	transactions, err := s.repo.GetTransactionsByHash(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	for _, tx := range transactions {
		result[strings.ToLower(tx.Hash)] = json.RawMessage(tx.RawData)
	}

	return result, nil
}

// TracesByTransactionHash maps each hash with at least one trace to its traces
// in insertion order.
func (s *LookupService) TracesByTransactionHash(ctx context.Context, hashes []string) (map[string][]json.RawMessage, error) {
	defer s.metrics.since("traces_by_transaction_hash", time.Now())

	keys := normalizeKeys(hashes)
	result := make(map[string][]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	traces, err := s.repo.GetTracesByTransactionHash(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get traces by transaction hash: %w", err)
	}

	for _, trace := range traces {
		key := strings.ToLower(trace.TransactionHash)
		result[key] = append(result[key], json.RawMessage(trace.RawData))
	}

	return result, nil
}

// TransactionsByAddress returns an entry for every requested address, with
// self-transfers listed under both roles.
func (s *LookupService) TransactionsByAddress(ctx context.Context, addresses []string) (map[string]AddressActivity, error) {
	defer s.metrics.since("transactions_by_address", time.Now())

	keys := normalizeKeys(addresses)
	result := newActivity(keys)
	if len(keys) == 0 {
		return result, nil
	}

	transactions, err := s.repo.GetTransactionsByAddress(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}

	for _, tx := range transactions {
		addActivity(result, tx.FromAddress, tx.ToAddress, json.RawMessage(tx.RawData))
	}

	return result, nil
}

// TracesByAddress is TransactionsByAddress for traces.
func (s *LookupService) TracesByAddress(ctx context.Context, addresses []string) (map[string]AddressActivity, error) {
	defer s.metrics.since("traces_by_address", time.Now())

	keys := normalizeKeys(addresses)
	result := newActivity(keys)
	if len(keys) == 0 {
		return result, nil
	}

	traces, err := s.repo.GetTracesByAddress(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get traces by address: %w", err)
	}

	for _, trace := range traces {
		addActivity(result, trace.FromAddress, trace.ToAddress, json.RawMessage(trace.RawData))
	}

	return result, nil
}

// ContractCreations maps each address to the transaction hash of its earliest
// stored creation trace. Addresses never created are absent.
func (s *LookupService) ContractCreations(ctx context.Context, addresses []string) (map[string]string, error) {
	defer s.metrics.since("contract_creations", time.Now())

	return s.readThrough(ctx, namespaceCreation, addresses, func(ctx context.Context, keys []string) (map[string]string, error) {
		traces, err := s.repo.GetCreationTraces(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("get creation traces: %w", err)
		}

		found := make(map[string]string, len(keys))
		for _, trace := range traces {
			if trace.ToAddress == nil {
				continue
			}
			address := strings.ToLower(*trace.ToAddress)
			if _, ok := found[address]; ok {
				continue
			}
			found[address] = trace.TransactionHash
		}
		return found, nil
	})
}

// ContractCode maps each stored address to its bytecode. A contract stored
// without bytecode maps to the empty string.
func (s *LookupService) ContractCode(ctx context.Context, addresses []string) (map[string]string, error) {
	defer s.metrics.since("contract_code", time.Now())

	return s.readThrough(ctx, namespaceCode, addresses, func(ctx context.Context, keys []string) (map[string]string, error) {
		contracts, err := s.repo.GetContractsByAddress(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("get contracts by address: %w", err)
		}

		found := make(map[string]string, len(keys))
		for _, contract := range contracts {
			code := ""
			if contract.Bytecode != nil {
				code = *contract.Bytecode
			}
			found[strings.ToLower(contract.Address)] = code
		}
		return found, nil
	})
}

// readThrough serves what it can from the cache and loads the rest from the
// store. Only found values are cached; cache failures fall back to the store.
func (s *LookupService) readThrough(
	ctx context.Context,
	namespace string,
	addresses []string,
	load func(ctx context.Context, keys []string) (map[string]string, error),
) (map[string]string, error) {
	keys := normalizeKeys(addresses)
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	missing := keys
	if s.cache != nil {
		cached, err := s.cache.GetMany(ctx, namespace, keys)
		if err != nil {
			s.logs.Warnw("lookup cache read failed",
				"namespace", namespace,
				"error", err)
		}

		missing = make([]string, 0, len(keys))
		for _, key := range keys {
			if value, ok := cached[key]; ok {
				result[key] = value
				continue
			}
			missing = append(missing, key)
		}
		s.metrics.cacheResult(namespace, len(keys)-len(missing), len(missing))

		if len(missing) == 0 {
			return result, nil
		}
	}

	loaded, err := load(ctx, missing)
	if err != nil {
		return nil, err
	}

	found := make(map[string]string, len(missing))
	for _, key := range missing {
		if value, ok := loaded[key]; ok {
			result[key] = value
			found[key] = value
		}
	}

	if s.cache != nil && len(found) > 0 {
		if err := s.cache.SetMany(ctx, namespace, found); err != nil {
			s.logs.Warnw("lookup cache write failed",
				"namespace", namespace,
				"error", err)
		}
	}

	return result, nil
}

// normalizeKeys lowercases keys, drops empty ones and duplicates, and keeps first-seen order.
func normalizeKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	normalized := make([]string, 0, len(keys))

	for _, key := range keys {
		key = strings.ToLower(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, key)
	}

	return normalized
}

func newActivity(keys []string) map[string]AddressActivity {
	result := make(map[string]AddressActivity, len(keys))
	for _, key := range keys {
		result[key] = AddressActivity{
			From: []json.RawMessage{},
			To:   []json.RawMessage{},
		}
	}
	return result
}

func addActivity(result map[string]AddressActivity, from, to *string, payload json.RawMessage) {
	if from != nil {
		if activity, ok := result[strings.ToLower(*from)]; ok {
			activity.From = append(activity.From, payload)
			result[strings.ToLower(*from)] = activity
		}
	}
	if to != nil {
		if activity, ok := result[strings.ToLower(*to)]; ok {
			activity.To = append(activity.To, payload)
			result[strings.ToLower(*to)] = activity
		}
	}
}
