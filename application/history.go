package application

import (
	"context"

	"go.uber.org/zap"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
	"vietqr-system/domain/request_params"
	"vietqr-system/errors"
	"vietqr-system/utils/helpers"
)

const maxHistoryLimit int64 = 100

// ScanHistory - recent scans, newest first
func (us *QRApplication) ScanHistory(ctx context.Context, req request_params.ScanHistoryReq) ([]*entities.ScanRecord, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	if us.IScanHistory == nil {
		return nil, errors.ErrGeneral
	}

	ctx, cancel := helpers.ContextWithTimeOut(ctx)
	defer cancel()

	records, err := us.IScanHistory.FindRecent(ctx, req.ClientID, limit)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.Reflect("request", req)).Error(constants.SERVICE_HISTORY_ERROR + "find_recent")
		return nil, errors.ErrGeneral
	}
	return records, nil
}
