package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
)

// ReportFilename is the attachment name for the HR export.
const ReportFilename = "leave_requests_report.csv"

// reportColumns is the fixed export column list. Order matters: HR tooling
// downstream consumes these positionally.
var reportColumns = []string{
	"name",
	"department",
	"startDate",
	"endDate",
	"reason",
	"status",
	"departmentHeadSignature.imagePath",
	"departmentHeadSignature.timestamp",
	"processManagerSignature.imagePath",
	"processManagerSignature.timestamp",
}

// ReportService produces the downloadable CSV export of leave requests.
type ReportService interface {
	GenerateCSV(ctx context.Context, department string) ([]byte, error)
}

type reportService struct {
	repo repository.LeaveRequestRepository
}

func NewReportService(repo repository.LeaveRequestRepository) ReportService {
	return &reportService{repo: repo}
}

// GenerateCSV exports every leave request, newest first, optionally filtered
// by department. One row per request, columns per reportColumns.
func (s *reportService) GenerateCSV(ctx context.Context, department string) ([]byte, error) {
	requests, _, err := s.repo.ListAll(ctx, department, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests for report: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportColumns); err != nil {
		return nil, err
	}

	for i := range requests {
		if err := w.Write(reportRow(&requests[i])); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportRow(req *model.LeaveRequest) []string {
	dhPath, dhTime := signatureFields(req.DepartmentHeadSignature)
	pmPath, pmTime := signatureFields(req.ProcessManagerSignature)
	return []string{
		req.Name,
		req.Department,
		req.StartDate.Format(time.RFC3339),
		req.EndDate.Format(time.RFC3339),
		req.Reason,
		string(req.Status),
		dhPath,
		dhTime,
		pmPath,
		pmTime,
	}
}

func signatureFields(sig *model.Signature) (string, string) {
	if sig == nil || sig.ImagePath == "" {
		return "", ""
	}
	return sig.ImagePath, sig.Timestamp.Format(time.RFC3339)
}
