package common

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}

// RejectionResponse reports an illegal clock action. It is a normal business
// outcome, not a server error, so it carries its own shape.
type RejectionResponse struct {
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason"`
}

func NewRejectionResponse(reason string) *RejectionResponse {
	return &RejectionResponse{
		Rejected: true,
		Reason:   reason,
	}
}

type Pagination struct {
	Total int64 `json:"total"`
}

type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewSearchResponse(data interface{}, total int64) *SearchResponse {
	return &SearchResponse{
		Data: data,
		Pagination: Pagination{
			Total: total,
		},
	}
}
