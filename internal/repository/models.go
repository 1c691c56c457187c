package repository

import "gorm.io/datatypes"

// TraceTypeCreate marks the trace that deployed a contract at its to_address.
const TraceTypeCreate = "create"

// Transaction columns other than RawData are derived from RawData at write time.
type Transaction struct {
	Hash        string         `gorm:"primaryKey;type:text"`
	FromAddress *string        `gorm:"type:text"`
	ToAddress   *string        `gorm:"type:text"`
	BlockNumber *int64         `gorm:"index:idx_transactions_block_number"`
	RawData     datatypes.JSON `gorm:"type:text;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Trace has no natural key. ID only records insertion order and never dedupes.
type Trace struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement"`
	TransactionHash string         `gorm:"type:text;not null"`
	TraceType       *string        `gorm:"type:text"`
	FromAddress     *string        `gorm:"type:text"`
	ToAddress       *string        `gorm:"type:text"`
	RawData         datatypes.JSON `gorm:"type:text;not null"`
}

func (Trace) TableName() string {
	return "traces"
}

type Contract struct {
	Address  string  `gorm:"primaryKey;type:text"`
	Bytecode *string `gorm:"type:text"`
}

func (Contract) TableName() string {
	return "contracts"
}
