package models

type EnhanceRequest struct {
	JobDescription string `json:"job_description"`
	CV             string `json:"cv"`
}

type EnhanceResponse struct {
	EnhancedCV string `json:"enhanced_cv"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationErrorDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationErrorDetail `json:"detail"`
}

type ExtractResponse struct {
	CV    string `json:"cv"`
	Pages int    `json:"pages"`
}
