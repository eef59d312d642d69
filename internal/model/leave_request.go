package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the closed set of leave request workflow states.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusDenied    Status = "Denied"
	StatusFinalized Status = "Finalized"
)

// legalTransitions lists every allowed (current, next) status pair.
// Denied and Finalized are terminal.
var legalTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusDenied},
	StatusApproved: {StatusFinalized},
}

// ParseStatus resolves a status string to its canonical Status value.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case string(StatusPending):
		return StatusPending, true
	case string(StatusApproved):
		return StatusApproved, true
	case string(StatusDenied):
		return StatusDenied, true
	case string(StatusFinalized):
		return StatusFinalized, true
	}
	return "", false
}

// CanTransition reports whether moving from the current status to next is legal.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// Signature records an approver's consent: a stored image reference plus the
// moment it was attached.
type Signature struct {
	ImagePath string    `gorm:"type:varchar(255)" json:"image_path"`
	Timestamp time.Time `json:"timestamp"`
}

// LeaveRequest is the workflow entity. It is created by an applicant
// submission, mutated by department-head review and process-manager
// finalization, and never deleted.
type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   *User     `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Department  string    `gorm:"type:varchar(255);not null;index" json:"department"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	Reason      string    `gorm:"type:text;not null" json:"reason"` // Doubles as the leave type in statistics
	Status      Status    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`

	Comments []LeaveComment `gorm:"foreignKey:LeaveRequestID;constraint:OnDelete:CASCADE" json:"comments"`

	DepartmentHeadSignature *Signature `gorm:"embedded;embeddedPrefix:dh_sig_" json:"department_head_signature,omitempty"`
	ProcessManagerSignature *Signature `gorm:"embedded;embeddedPrefix:pm_sig_" json:"process_manager_signature,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DurationDays returns the leave span in days, fractional if the bounds are
// not midnight-aligned.
func (lr *LeaveRequest) DurationDays() float64 {
	return lr.EndDate.Sub(lr.StartDate).Hours() / 24
}

// LeaveComment is a single reviewer remark on a leave request, kept as an
// ordered child row rather than one mutable text field.
type LeaveComment struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"leave_request_id"`
	Author         string    `gorm:"type:varchar(255);not null" json:"author"`
	Text           string    `gorm:"type:text;not null" json:"text"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
