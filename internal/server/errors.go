package server

import "github.com/gin-gonic/gin"

// Error codes surfaced in the error body.
const (
	CodeMiddlewareRateLimit = "MIDDLEWARE_RATE_LIMIT"
	CodeProviderRateLimit   = "AI_PROVIDER_RATE_LIMIT"
	CodeGenerationFailed    = "GENERATION_FAILED"
	CodeServerError         = "SERVER_ERROR"
	CodeMissingParameters   = "MISSING_PARAMETERS"
	CodeImageGeneration     = "IMAGE_GENERATION_ERROR"
)

// errorBody is the shape of every failure response.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
	Reset   int64  `json:"reset,omitempty"` // seconds until the rate-limit window resets
}

func writeError(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, errorBody{
		Type:    "error",
		Message: message,
		Code:    code,
		Details: details,
	})
}
