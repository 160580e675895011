package service

import (
	"context"
	"encoding/json"

	"medfleet-tracker/internal/stockaudit/model"
	"medfleet-tracker/internal/stockaudit/repository"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"gorm.io/datatypes"
)

type StockAuditService struct {
	repo *repository.StockAuditRepository
}

func NewService(repo *repository.StockAuditRepository) *StockAuditService {
	return &StockAuditService{repo: repo}
}

func (s *StockAuditService) List(ctx context.Context) ([]model.StockAudit, error) {
	return s.repo.List(ctx)
}

func (s *StockAuditService) Get(ctx context.Context, id uint) (*model.StockAudit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *StockAuditService) Create(ctx context.Context, req *model.CreateStockAuditRequest) (*model.StockAudit, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "audit_id and name are required", err)
	}

	row := &model.StockAudit{
		AuditID:   req.AuditID,
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
		Status:    model.StatusPending,
		Items:     normalizeItems(req.Items),
		Notes:     req.Notes,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, row.ID)
}

func (s *StockAuditService) Update(ctx context.Context, id uint, req *model.UpdateStockAuditRequest) (*model.StockAudit, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "audit_id and name are required", err)
	}

	row := &model.StockAudit{
		AuditID:   req.AuditID,
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
		Status:    model.StatusPending,
		Items:     normalizeItems(req.Items),
		Notes:     req.Notes,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := s.repo.Update(ctx, id, row); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *StockAuditService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// normalizeItems persists the items document in its serialized form.
// Callers may send either a structured value or a pre-serialized string;
// the contents are opaque to the server either way.
func normalizeItems(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON("[]")
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return datatypes.JSON(asString)
	}

	return datatypes.JSON(raw)
}
