package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"account-analytics-service/internal/ingest/core/domain"
	"account-analytics-service/internal/ingest/core/ports"
)

var (
	ErrInvalidPoint = errors.New("invalid metric point")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrFutureDate   = errors.New("date cannot be in the future")
)

type StorePointUseCase struct {
	repo ports.PointRepositoryPort
	now  func() time.Time
}

func NewStorePointUseCase(repo ports.PointRepositoryPort) *StorePointUseCase {
	return &StorePointUseCase{repo: repo, now: time.Now}
}

type StorePointInput struct {
	AccountID string
	MetricKey string
	Date      string
	Value     float64
}

func (uc *StorePointUseCase) Execute(ctx context.Context, in StorePointInput) (bool, error) {
	day, err := uc.validateInput(in)
	if err != nil {
		return false, err
	}

	p := &domain.MetricPoint{
		AccountID: in.AccountID,
		MetricKey: in.MetricKey,
		Day:       day,
		Value:     in.Value,
	}

	written, err := uc.repo.UpsertPoint(ctx, p)
	if err != nil {
		return false, err
	}

	return written, nil
}

type BulkStorePointsInput struct {
	Points []StorePointInput
}

type BulkStorePointsResult struct {
	Written   int
	Unchanged int
}

// BulkStore validates every point before storing any of them.
func (uc *StorePointUseCase) BulkStore(ctx context.Context, in BulkStorePointsInput) (BulkStorePointsResult, error) {
	var res BulkStorePointsResult

	for _, p := range in.Points {
		if _, err := uc.validateInput(p); err != nil {
			return res, err
		}
	}

	for _, p := range in.Points {
		ok, err := uc.Execute(ctx, p)
		if err != nil {
			return res, err
		}

		if ok {
			res.Written++
		} else {
			res.Unchanged++
		}
	}

	return res, nil
}

func (uc *StorePointUseCase) validateInput(in StorePointInput) (time.Time, error) {
	if in.AccountID == "" || in.MetricKey == "" {
		return time.Time{}, ErrInvalidPoint
	}
	if in.Value < 0 || math.IsNaN(in.Value) || math.IsInf(in.Value, 0) {
		return time.Time{}, ErrInvalidPoint
	}

	day, err := time.Parse(time.DateOnly, in.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	today := uc.now().UTC().Truncate(24 * time.Hour)
	if day.After(today) {
		return time.Time{}, ErrFutureDate
	}

	return day, nil
}
