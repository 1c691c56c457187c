package repository

// indexStatements complete what AutoMigrate cannot express: the case-insensitive
// uniqueness of keys and the LOWER() expression indexes the lookups filter on.
var indexStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_hash_lower ON transactions(LOWER(hash))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_contracts_address_lower ON contracts(LOWER(address))`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_from_address ON transactions(LOWER(from_address))`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_to_address ON transactions(LOWER(to_address))`,
	`CREATE INDEX IF NOT EXISTS idx_traces_transaction_hash ON traces(LOWER(transaction_hash))`,
	`CREATE INDEX IF NOT EXISTS idx_traces_from_address ON traces(LOWER(from_address))`,
	`CREATE INDEX IF NOT EXISTS idx_traces_to_address ON traces(LOWER(to_address))`,
	`CREATE INDEX IF NOT EXISTS idx_traces_type_and_to_address ON traces(trace_type, LOWER(to_address))`,
}
