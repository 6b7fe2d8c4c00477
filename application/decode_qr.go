package application

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"vietqr-system/domain/entities"
	"vietqr-system/domain/request_params"
	"vietqr-system/errors"
	"vietqr-system/utils/emvqr"
	"vietqr-system/utils/helpers"
)

// Decode - decodes one payload and runs the side effects. Only a blank
// payload is an error; a failed side effect is logged and ignored.
func (us *QRApplication) Decode(ctx context.Context, req request_params.DecodeRequest) (*entities.ScanRecord, error) {
	rawText := strings.TrimSpace(req.RawText)
	if rawText == "" {
		return nil, errors.ErrEmptyPayload
	}

	record := &entities.ScanRecord{
		ScanID:      helpers.GetUUId(),
		Source:      req.Source,
		ClientID:    req.ClientID,
		PayloadHash: helpers.CreateHash(rawText),
		Info:        us.CurrentDecoder().Decode(rawText),
		CRCStatus:   entities.CRCUnchecked,
		CreatedAt:   helpers.GetCurrentTime(),
	}
	if us.Config != nil && us.Config.VerifyCRC {
		record.CRCStatus = entities.NewCRCStatus(emvqr.VerifyCRC(rawText))
	}

	us.Logger.With(
		zap.String("scan_id", record.ScanID),
		zap.String("bank_bin", record.Info.BankBin),
		zap.String("crc_status", record.CRCStatus.StatusString()),
	).Info("decode_qr")

	us.saveHistory(ctx, record)
	us.publishDecoded(record)
	us.pushDecoded(ctx, record)
	if record.CRCStatus.IsInvalid() {
		us.alertCRCMismatch(record)
	}

	return record, nil
}

// DecodeResult - outcome of one request of a batch
type DecodeResult struct {
	Record *entities.ScanRecord
	Err    error
}

// DecodeBatch - decodes reqs on the pool; results[i] belongs to reqs[i]
func (us *QRApplication) DecodeBatch(ctx context.Context, reqs []request_params.DecodeRequest) []DecodeResult {
	results := make([]DecodeResult, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		i := i
		wg.Add(1)
		err := us.IPool.Submit(func() {
			defer wg.Done()
			record, err := us.Decode(ctx, reqs[i])
			results[i] = DecodeResult{Record: record, Err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = DecodeResult{Err: err}
		}
	}
	wg.Wait()

	return results
}


func (us *QRApplication) saveHistory(ctx context.Context, record *entities.ScanRecord) {
	if us.IScanHistory == nil {
		return
	}
	ctx, cancel := helpers.ContextWithTimeOut(ctx)
	defer cancel()

	if err := us.IScanHistory.Insert(ctx, record); err != nil {
		us.Logger.With(zap.Error(err), zap.String("scan_id", record.ScanID)).Error("save_history_fail")
	}
}
