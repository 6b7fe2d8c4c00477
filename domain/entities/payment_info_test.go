package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentInfo_FillMissing(t *testing.T) {
	tests := []struct {
		name string
		dst  PaymentInfo
		src  PaymentInfo
		want PaymentInfo
	}{
		{
			name: "empty fields are filled",
			dst:  PaymentInfo{Currency: "704"},
			src:  PaymentInfo{Currency: "840", Amount: "1000", CRC: "ABCD"},
			want: PaymentInfo{Currency: "704", Amount: "1000", CRC: "ABCD"},
		},
		{
			name: "raw text is untouched",
			dst:  PaymentInfo{RawText: "a"},
			src:  PaymentInfo{RawText: "b", BankBin: "970436"},
			want: PaymentInfo{RawText: "a", BankBin: "970436"},
		},
		{
			name: "empty source",
			dst:  PaymentInfo{Method: "QRIBFTTA"},
			want: PaymentInfo{Method: "QRIBFTTA"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.dst.FillMissing(tt.src)
			assert.Equal(t, tt.want, tt.dst)
		})
	}
}

func TestPaymentInfo_HasBankAccount(t *testing.T) {
	assert.False(t, PaymentInfo{}.HasBankAccount())
	assert.False(t, PaymentInfo{BankBin: "970436"}.HasBankAccount())
	assert.True(t, PaymentInfo{BankBin: "970436", AccountNumber: "0123"}.HasBankAccount())
}

func TestNewCRCStatus(t *testing.T) {
	assert.Equal(t, CRCValid, NewCRCStatus(true, true))
	assert.Equal(t, CRCInvalid, NewCRCStatus(false, true))
	assert.Equal(t, CRCMissing, NewCRCStatus(false, false))
	assert.Equal(t, "UNCHECKED", CRCStatus("").StatusString())
	assert.True(t, CRCValid.IsValid())
	assert.True(t, CRCInvalid.IsInvalid())
}
