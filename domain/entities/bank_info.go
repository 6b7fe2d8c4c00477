package entities

type Bank struct {
	BankId    int64  `json:"bank_id" bson:"_id"`
	Logo      string `json:"logo"`
	Name      string `json:"name"`
	ShortName string `json:"bank_code" bson:"short_name"`
	//Bin mã BIN NAPAS 6 số, ví dụ 970436
	Bin string `json:"bin" bson:"bin"`
	//Status ACTIVE || PAUSE
	Status string `json:"status"`
}

// DisplayName - short name when present, full name otherwise
func (b Bank) DisplayName() string {
	if b.ShortName != "" {
		return b.ShortName
	}
	return b.Name
}

func (b Bank) IsActive() bool {
	return b.Status == "" || b.Status == "ACTIVE"
}
