package errors

import (
	"errors"
)

var (
	// ErrEmptyPayload will throw if the scanned text is blank
	ErrEmptyPayload = errors.New("Vui lòng nhập hoặc quét mã QR")
	ErrNoQRFound    = errors.New("Không tìm thấy mã QR")
	ErrGeneral      = errors.New("Đã có lỗi xảy ra. Vui lòng thử lại sau")
)
