package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSortBy   = "sort"
	RequestParamSortDir  = "dir"
	RequestParamSearch   = "search"
	RequestParamStatus   = "status"
	RequestParamQuick    = "quick"
	RequestParamStart    = "startDate"
	RequestParamEnd      = "endDate"
	RequestParamType     = "type"
	RequestParamMinPrice = "minPrice"
	RequestParamMaxPrice = "maxPrice"
	RequestParamRole     = "role"
	RequestParamCheckIn  = "checkIn"
	RequestParamCheckOut = "checkOut"
	RequestParamRoomID   = "roomId"
)

const (
	RequestParamID   = "id"
	RequestParamCode = "code"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage = 1
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
	HoursPerDay      = 24
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelGatewayScopeName  = "gateway"
	OtelSessionScopeName  = "session"
	OtelExternalScopeName = "external"

	OtelPathAttributeKey = "gateway.path"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderSessionID          = "X-Session-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypePDF               = "application/pdf"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "photo"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
