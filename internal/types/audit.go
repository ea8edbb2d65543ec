package types

// AuditAction is the kind of mutation captured by an audit record.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditEntityType names the record type an audit entry refers to.
type AuditEntityType string

const (
	AuditEntityTypeProduct AuditEntityType = "product"
)
