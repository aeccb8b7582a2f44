package handler

type ContextKey string

var (
	SubCtxKey     ContextKey = "sub"
	EmployeeIDCtx ContextKey = "employeeID"
	SnapshotCtx   ContextKey = "snapshot"
)
