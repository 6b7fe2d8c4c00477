package vietqr

import "vietqr-system/domain/entities"

// BankResolver maps a NAPAS BIN to a bank name.
type BankResolver interface {
	BankName(bin string) (string, bool)
}

var staticBanks = map[string]string{
	"970418": "BIDV",
	"970436": "Vietcombank",
	"970405": "Techcombank",
}

// BankTable is an immutable BIN lookup.
type BankTable struct {
	names map[string]string
}

// NewBankTable builds the built-in table extended with extra banks.
// Built-in entries win when a BIN appears in both; inactive banks and banks
// without a BIN are ignored.
func NewBankTable(extra ...entities.Bank) *BankTable {
	names := make(map[string]string, len(staticBanks)+len(extra))
	for _, bank := range extra {
		if bank.Bin == "" || !bank.IsActive() {
			continue
		}
		if name := bank.DisplayName(); name != "" {
			names[bank.Bin] = name
		}
	}
	for bin, name := range staticBanks {
		names[bin] = name
	}
	return &BankTable{names: names}
}

func (t *BankTable) BankName(bin string) (string, bool) {
	name, ok := t.names[bin]
	return name, ok
}

// Len -
func (t *BankTable) Len() int {
	return len(t.names)
}
