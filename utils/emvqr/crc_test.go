package emvqr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC16(t *testing.T) {
	assert.Equal(t, uint16(0x29B1), CRC16("123456789"))
	assert.Equal(t, uint16(0xFFFF), CRC16(""))
	assert.Equal(t, "29B1", FormatCRC(CRC16("123456789")))
}

func TestVerifyCRC(t *testing.T) {
	signed := AppendCRC("000201010211" + "5303704" + "5802VN")

	tests := []struct {
		name      string
		payload   string
		wantValid bool
		wantOk    bool
	}{
		{
			name:      "valid",
			payload:   signed,
			wantValid: true,
			wantOk:    true,
		},
		{
			name:      "lower-case checksum",
			payload:   signed[:len(signed)-4] + strings.ToLower(signed[len(signed)-4:]),
			wantValid: true,
			wantOk:    true,
		},
		{
			name:    "tampered body",
			payload: "000201010212" + signed[12:],
			wantOk:  true,
		},
		{
			name:    "no trailer",
			payload: "000201010211",
		},
		{
			name:    "too short",
			payload: "6304",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, ok := VerifyCRC(tt.payload)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}
