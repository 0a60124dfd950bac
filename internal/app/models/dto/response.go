package dto

// APIResponse is the success envelope for every JSON endpoint:
// {"message": ..., "count": ..., "data": ...}. Count is only present on
// list responses.
type APIResponse struct {
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope for every JSON endpoint, carried
// with a non-2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewListResponse wraps a list result with its row count. The data field is
// always a JSON array, even when the table is empty; clients iterate it
// without a nil check.
func NewListResponse(message string, count int, data interface{}) APIResponse {
	if count == 0 {
		data = []interface{}{}
	}
	return APIResponse{Message: message, Count: &count, Data: data}
}

// NewDataResponse wraps a single-object result.
func NewDataResponse(message string, data interface{}) APIResponse {
	return APIResponse{Message: message, Data: data}
}

// NewErrorResponse builds the error envelope.
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Message: message, Error: detail}
}
