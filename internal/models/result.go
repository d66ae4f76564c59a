package models

// Result is the uniform answer to every named operation.
// Callers must branch on Success before touching Data.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps data in a successful Result.
func OK(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps a message in a failed Result.
func Fail(message string) Result {
	return Result{Success: false, Error: message}
}
