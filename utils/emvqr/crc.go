package emvqr

import (
	"fmt"
	"strings"
)

// CRC16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over the
// bytes of s, the checksum EMVCo appends as tag 63.
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// FormatCRC renders a checksum as 4 upper-case hex digits.
func FormatCRC(crc uint16) string {
	return fmt.Sprintf("%04X", crc)
}

// VerifyCRC checks a payload that ends with "6304XXXX". The checksum covers
// everything up to and including "6304". ok is false when the payload has
// no such trailer.
func VerifyCRC(payload string) (valid bool, ok bool) {
	if len(payload) < 8 || payload[len(payload)-8:len(payload)-4] != "6304" {
		return false, false
	}
	body := payload[:len(payload)-4]
	got := strings.ToUpper(payload[len(payload)-4:])
	return FormatCRC(CRC16(body)) == got, true
}

// AppendCRC terminates a payload with its tag 63 checksum.
func AppendCRC(payload string) string {
	body := payload + "6304"
	return body + FormatCRC(CRC16(body))
}
