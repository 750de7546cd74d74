package audit

import "fmt"

// MutateEvent represents a create, update or delete of an entity
type MutateEvent struct {
	UserID       string
	ClientIP     string
	Operation    string // create, update, delete, verify
	EntityKind   string // project, company, job, application, post, comment
	EntityID     string
	Success      bool
	ErrorMessage string
}

func (e MutateEvent) MessageID() string {
	return e.Operation
}

func (e MutateEvent) Message() string {
	subject := fmt.Sprintf("%s %s", e.EntityKind, e.EntityID)
	if e.Success {
		return fmt.Sprintf("%s %sd %s", e.UserID, e.Operation, subject)
	}
	msg := fmt.Sprintf("%s tried to %s %s", e.UserID, e.Operation, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MutateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MutateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e MutateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"kind": e.EntityKind,
			"id":   e.EntityID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
