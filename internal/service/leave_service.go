package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/signature"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- DTOs ---

type SubmitLeaveRequest struct {
	Name       string    `json:"name" binding:"required"`
	Department string    `json:"department" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}

type ApplicantUpdateRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

type ReviewRequest struct {
	Status    string `json:"status" binding:"required"`
	Comment   string `json:"comment"`
	Signature string `json:"signature"`
}

type FinalizeRequest struct {
	Signature string `json:"signature" binding:"required"`
}

// Publisher pushes serialized workflow events to connected dashboard clients.
type Publisher interface {
	Publish(message []byte)
}

// LeaveService drives the approval workflow: submission, department-head
// review, process-manager finalization, and the role-scoped listings.
type LeaveService interface {
	Submit(ctx context.Context, applicantID string, req SubmitLeaveRequest) (*model.LeaveRequest, error)
	ListOwn(ctx context.Context, applicantID string) ([]model.LeaveRequest, error)
	UpdateOwn(ctx context.Context, applicantID, id, applicantName string, req ApplicantUpdateRequest) (*model.LeaveRequest, error)
	ListPendingByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error)
	Review(ctx context.Context, id, reviewerName string, req ReviewRequest) (*model.LeaveRequest, error)
	ListApproved(ctx context.Context) ([]model.LeaveRequest, error)
	Finalize(ctx context.Context, id string, req FinalizeRequest) (*model.LeaveRequest, error)
	ListAll(ctx context.Context, department string, offset, limit int) ([]model.LeaveRequest, int64, error)
}

type leaveService struct {
	repo   repository.LeaveRequestRepository
	store  signature.Store
	events Publisher // optional, nil disables event publishing
}

// NewLeaveService returns a new instance of LeaveService. events may be nil.
func NewLeaveService(repo repository.LeaveRequestRepository, store signature.Store, events Publisher) LeaveService {
	return &leaveService{repo: repo, store: store, events: events}
}

// publish emits a workflow event for live dashboards. Failures to marshal are
// impossible for this payload shape, so the error is ignored.
func (s *leaveService) publish(event string, req *model.LeaveRequest) {
	if s.events == nil {
		return
	}
	msg, _ := json.Marshal(map[string]interface{}{
		"event":      event,
		"request_id": req.ID.String(),
		"status":     req.Status,
		"department": req.Department,
	})
	s.events.Publish(msg)
}

func (s *leaveService) Submit(ctx context.Context, applicantID string, req SubmitLeaveRequest) (*model.LeaveRequest, error) {
	parsedID, err := uuid.Parse(applicantID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	leave := &model.LeaveRequest{
		ApplicantID: parsedID,
		Name:        req.Name,
		Department:  req.Department,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      model.StatusPending,
	}

	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, err
	}

	s.publish("leave.submitted", leave)
	return leave, nil
}

func (s *leaveService) ListOwn(ctx context.Context, applicantID string) ([]model.LeaveRequest, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

// UpdateOwn lets an applicant amend their own request. Status changes still go
// through the transition table, so the workflow cannot be bypassed here.
func (s *leaveService) UpdateOwn(ctx context.Context, applicantID, id, applicantName string, req ApplicantUpdateRequest) (*model.LeaveRequest, error) {
	leave, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if leave.ApplicantID.String() != applicantID {
		return nil, ErrNotOwner
	}

	if req.Status != "" && req.Status != string(leave.Status) {
		next, ok := model.ParseStatus(req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		if !leave.Status.CanTransition(next) {
			return nil, ErrInvalidTransition
		}
		leave.Status = next
	}

	if req.Comments != "" {
		if err := s.addComment(ctx, leave, applicantName, req.Comments); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	return s.get(ctx, id)
}

func (s *leaveService) ListPendingByDepartment(ctx context.Context, department string) ([]model.LeaveRequest, error) {
	return s.repo.ListByDepartmentAndStatus(ctx, department, model.StatusPending)
}

// Review applies a department head's decision. Approval requires a signature,
// which is encoded and attached with the decision timestamp.
func (s *leaveService) Review(ctx context.Context, id, reviewerName string, req ReviewRequest) (*model.LeaveRequest, error) {
	next, ok := model.ParseStatus(req.Status)
	if !ok || (next != model.StatusApproved && next != model.StatusDenied) {
		return nil, ErrInvalidStatus
	}

	leave, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !leave.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	if next == model.StatusApproved {
		if req.Signature == "" {
			return nil, ErrSignatureRequired
		}
		imagePath, err := signature.Encode(req.Signature, s.store)
		if err != nil {
			return nil, err
		}
		leave.DepartmentHeadSignature = &model.Signature{
			ImagePath: imagePath,
			Timestamp: time.Now(),
		}
	}

	if req.Comment != "" {
		if err := s.addComment(ctx, leave, reviewerName, req.Comment); err != nil {
			return nil, err
		}
	}

	leave.Status = next
	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	if next == model.StatusApproved {
		s.publish("leave.approved", leave)
	} else {
		s.publish("leave.denied", leave)
	}
	return s.get(ctx, id)
}

func (s *leaveService) ListApproved(ctx context.Context) ([]model.LeaveRequest, error) {
	return s.repo.ListByStatus(ctx, model.StatusApproved)
}

// Finalize attaches the process manager's signature to an approved request.
// Only Approved requests can be finalized.
func (s *leaveService) Finalize(ctx context.Context, id string, req FinalizeRequest) (*model.LeaveRequest, error) {
	leave, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !leave.Status.CanTransition(model.StatusFinalized) {
		return nil, ErrInvalidTransition
	}

	imagePath, err := signature.Encode(req.Signature, s.store)
	if err != nil {
		return nil, err
	}

	leave.ProcessManagerSignature = &model.Signature{
		ImagePath: imagePath,
		Timestamp: time.Now(),
	}
	leave.Status = model.StatusFinalized

	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	s.publish("leave.finalized", leave)
	return s.get(ctx, id)
}

func (s *leaveService) ListAll(ctx context.Context, department string, offset, limit int) ([]model.LeaveRequest, int64, error) {
	return s.repo.ListAll(ctx, department, offset, limit)
}

func (s *leaveService) get(ctx context.Context, id string) (*model.LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	leave, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return leave, nil
}

func (s *leaveService) addComment(ctx context.Context, leave *model.LeaveRequest, author, text string) error {
	return s.repo.AddComment(ctx, &model.LeaveComment{
		LeaveRequestID: leave.ID,
		Author:         author,
		Text:           text,
	})
}
