package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// LeaveRequestRepository defines the interface for data access of LeaveRequest
// entities. Listings preload comments so responses carry the full review trail.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *model.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]model.LeaveRequest, error)
	ListByDepartmentAndStatus(ctx context.Context, department string, status model.Status) ([]model.LeaveRequest, error)
	ListByStatus(ctx context.Context, status model.Status) ([]model.LeaveRequest, error)
	ListAll(ctx context.Context, department string, offset, limit int) ([]model.LeaveRequest, int64, error)
	Update(ctx context.Context, req *model.LeaveRequest) error
	AddComment(ctx context.Context, comment *model.LeaveComment) error
}

type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository returns a new instance of LeaveRequestRepository
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepository) ListByApplicant(ctx context.Context, applicantID string) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *leaveRequestRepository) ListByDepartmentAndStatus(ctx context.Context, department string, status model.Status) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("department = ? AND status = ?", department, status).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *leaveRequestRepository) ListByStatus(ctx context.Context, status model.Status) ([]model.LeaveRequest, error) {
	var reqs []model.LeaveRequest
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListAll returns every leave request newest first, optionally filtered by
// department. A limit of 0 disables pagination.
func (r *leaveRequestRepository) ListAll(ctx context.Context, department string, offset, limit int) ([]model.LeaveRequest, int64, error) {
	var reqs []model.LeaveRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&model.LeaveRequest{})
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *leaveRequestRepository) Update(ctx context.Context, req *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *leaveRequestRepository) AddComment(ctx context.Context, comment *model.LeaveComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
