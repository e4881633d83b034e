package service

import (
	"alcyxob/fitness-planner/internal/export"
	"alcyxob/fitness-planner/internal/logger"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrExportUnavailable = errors.New("plan export is not configured")
	ErrExportFailed      = errors.New("failed to export plan")
	ErrDownloadURLError  = errors.New("failed to generate download URL")
)

// ExportResult points at an uploaded plan workbook.
type ExportResult struct {
	DownloadURL string    `json:"downloadUrl"`
	ObjectKey   string    `json:"objectKey"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type ExportService interface {
	ExportPlan(ctx context.Context, userID, planID primitive.ObjectID) (*ExportResult, error)
}

type exportService struct {
	plans       PlanService
	planRepo    repository.PlanRepository
	fileStorage storage.FileStorage
	expiry      time.Duration
}

// NewExportService creates an export service. fileStorage may be nil, in
// which case every export fails with ErrExportUnavailable.
func NewExportService(plans PlanService, planRepo repository.PlanRepository, fileStorage storage.FileStorage, expiry time.Duration) ExportService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{plans: plans, planRepo: planRepo, fileStorage: fileStorage, expiry: expiry}
}

// ExportPlan renders the plan as a workbook, uploads it and returns a
// temporary download link.
func (s *exportService) ExportPlan(ctx context.Context, userID, planID primitive.ObjectID) (*ExportResult, error) {
	if s.fileStorage == nil {
		return nil, ErrExportUnavailable
	}
	plan, err := s.plans.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	buf, err := export.PlanWorkbook(*plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	key := export.ObjectKey(userID)
	if err := s.fileStorage.PutObject(ctx, key, buf, int64(buf.Len()), export.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	if err := s.planRepo.SetExportKey(ctx, planID, key); err != nil {
		// The object is uploaded; a stale key on the plan is not fatal.
		logger.Warn("failed to record export key", zap.String("planId", planID.Hex()), zap.Error(err))
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, s.expiry)
	if err != nil {
		return nil, ErrDownloadURLError
	}
	return &ExportResult{
		DownloadURL: url,
		ObjectKey:   key,
		ExpiresAt:   time.Now().Add(s.expiry).UTC(),
	}, nil
}
