package repository

import (
	"context"
	"fmt"

	"ledgerload/internal/db"
)

// LedgerRepository reads and writes the three ledger tables. Every lookup method
// expects its keys already lowercased.
type LedgerRepository struct {
	db        Storage
	batchSize int
}

func NewLedgerRepository(db Storage, batchSize int) *LedgerRepository {
	return &LedgerRepository{
		db:        db,
		batchSize: batchSize,
	}
}

// EnsureSchema creates the tables and indexes when missing. Safe to call repeatedly.
func (r *LedgerRepository) EnsureSchema(ctx context.Context) error {
	err := r.db.MigrateTable(ctx, &Transaction{}, &Trace{}, &Contract{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	for _, stmt := range indexStatements {
		if err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// Session runs fn on a dedicated connection inside one transaction; every Save call
// made with the context handed to fn commits or rolls back together.
func (r *LedgerRepository) Session(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Session(ctx, fn)
}

// SaveTransactions inserts transactions, skipping hashes already stored.
func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []Transaction) (int64, error) {
	inserted, err := r.db.Insert(ctx, &transactions, r.batchSize, true)
	if err != nil {
		return 0, fmt.Errorf("save transactions: %w", err)
	}

	return inserted, nil
}

// SaveTraces appends traces unconditionally.
func (r *LedgerRepository) SaveTraces(ctx context.Context, traces []Trace) (int64, error) {
	inserted, err := r.db.Insert(ctx, &traces, r.batchSize, false)
	if err != nil {
		return 0, fmt.Errorf("save traces: %w", err)
	}

	return inserted, nil
}

// SaveContracts inserts contracts, skipping addresses already stored.
func (r *LedgerRepository) SaveContracts(ctx context.Context, contracts []Contract) (int64, error) {
	inserted, err := r.db.Insert(ctx, &contracts, r.batchSize, true)
	if err != nil {
		return 0, fmt.Errorf("save contracts: %w", err)
	}

	return inserted, nil
}

func (r *LedgerRepository) GetTransactionsByHash(ctx context.Context, hashes []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllWhere(ctx, &transactions, db.Query{
		Where: "LOWER(hash) IN ?",
		Args:  []any{hashes},
	})
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	return transactions, nil
}

func (r *LedgerRepository) GetTransactionsByAddress(ctx context.Context, addresses []string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllWhere(ctx, &transactions, db.Query{
		Where: "LOWER(from_address) IN ? OR LOWER(to_address) IN ?",
		Args:  []any{addresses, addresses},
		Order: "block_number, hash",
	})
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}

	return transactions, nil
}

func (r *LedgerRepository) GetTracesByTransactionHash(ctx context.Context, hashes []string) ([]Trace, error) {
	traces := []Trace{}
	err := r.db.GetAllWhere(ctx, &traces, db.Query{
		Where: "LOWER(transaction_hash) IN ?",
		Args:  []any{hashes},
		Order: "id",
	})
	if err != nil {
		return nil, fmt.Errorf("get traces by transaction hash: %w", err)
	}

	return traces, nil
}

func (r *LedgerRepository) GetTracesByAddress(ctx context.Context, addresses []string) ([]Trace, error) {
	traces := []Trace{}
	err := r.db.GetAllWhere(ctx, &traces, db.Query{
		Where: "LOWER(from_address) IN ? OR LOWER(to_address) IN ?",
		Args:  []any{addresses, addresses},
		Order: "id",
	})
	if err != nil {
		return nil, fmt.Errorf("get traces by address: %w", err)
	}

	return traces, nil
}

// GetCreationTraces returns the create traces whose receiver is one of addresses,
// oldest first.
func (r *LedgerRepository) GetCreationTraces(ctx context.Context, addresses []string) ([]Trace, error) {
	traces := []Trace{}
	err := r.db.GetAllWhere(ctx, &traces, db.Query{
		Where: "trace_type = ? AND LOWER(to_address) IN ?",
		Args:  []any{TraceTypeCreate, addresses},
		Order: "id",
	})
	if err != nil {
		return nil, fmt.Errorf("get creation traces: %w", err)
	}

	return traces, nil
}

func (r *LedgerRepository) GetContractsByAddress(ctx context.Context, addresses []string) ([]Contract, error) {
	contracts := []Contract{}
	err := r.db.GetAllWhere(ctx, &contracts, db.Query{
		Where: "LOWER(address) IN ?",
		Args:  []any{addresses},
	})
	if err != nil {
		return nil, fmt.Errorf("get contracts by address: %w", err)
	}

	return contracts, nil
}
