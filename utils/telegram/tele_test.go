package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vietqr-system/domain/entities"
)

func TestCRCMismatchMessage(t *testing.T) {
	msg := CRCMismatchMessage(entities.ScanRecord{
		ScanID: "scan-1",
		Source: "api",
		Info: entities.PaymentInfo{
			BankBin:       "970436",
			AccountNumber: "0123456789",
			Amount:        "1000",
			CRC:           "ABCD",
		},
		CreatedAt: time.Date(2021, 3, 4, 1, 2, 3, 0, time.UTC),
	})

	assert.Contains(t, msg, "scan-1")
	assert.Contains(t, msg, "970436")
	assert.Contains(t, msg, "0123456789")
	assert.Contains(t, msg, "ABCD")
	assert.Contains(t, msg, "04-03-2021 08:02:03")
}

func TestNotifier_NotConfigured(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		channelId int64
	}{
		{name: "no token", token: "", channelId: 1},
		{name: "no channel", token: "123:abc", channelId: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotifier(tt.token).SendTelegram("hello", tt.channelId)
			assert.Error(t, err)
		})
	}
}
