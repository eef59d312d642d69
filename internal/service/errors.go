package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto HTTP
// status codes; anything else surfaces as a 500.
var (
	ErrNotFound           = errors.New("leave request not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidTransition  = errors.New("illegal status transition")
	ErrNotOwner           = errors.New("leave request belongs to another applicant")
	ErrSignatureRequired  = errors.New("signature is required to approve a request")
	ErrNoDepartment       = errors.New("department head not assigned to a department")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role: must be Applicant, DepartmentHead, ProcessManager, or HR")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrDepartmentRequired = errors.New("department is required for department heads")
)
