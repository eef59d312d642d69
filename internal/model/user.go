package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles. Parsing is case-insensitive so tokens
// issued with any historical casing keep working.
type Role string

const (
	RoleApplicant      Role = "Applicant"
	RoleDepartmentHead Role = "DepartmentHead"
	RoleProcessManager Role = "ProcessManager"
	RoleHR             Role = "HR"
)

// ParseRole resolves a role string to its canonical Role value.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "applicant":
		return RoleApplicant, true
	case "departmenthead":
		return RoleDepartmentHead, true
	case "processmanager":
		return RoleProcessManager, true
	case "hr":
		return RoleHR, true
	}
	return "", false
}

func (r Role) String() string { return string(r) }

// User represents the central identity record. Users are created at
// registration and never updated afterwards.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"` // Omit password from JSON requests/responses
	Role       Role      `gorm:"type:varchar(50);not null" json:"role"`
	Department *string   `gorm:"type:varchar(255)" json:"department,omitempty"` // Required only for department heads
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RefreshToken stores long-lived tokens allowing users to request new access tokens
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Token     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
