package constants

const (
	MsgCRCMismatch = "Mã QR có CRC không hợp lệ"
	MsgDecodeFail  = "Không giải mã được nội dung QR"
)

const (
	SERVICE_HISTORY_ERROR  = "[SERVICE_HISTORY].error "
	SERVICE_KAFKA_ERROR    = "[SERVICE_KAFKA].error "
	SERVICE_MQTT_ERROR     = "[SERVICE_MQTT].error "
	SERVICE_TELEGRAM_ERROR = "[SERVICE_TELEGRAM].error "
)
