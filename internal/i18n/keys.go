// Package i18n provides internationalization support for the label service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationOrderID indicates a missing or invalid order id.
	ErrKeyValidationOrderID = "error.validation.order_id"
	// ErrKeyValidationProducts indicates an order without usable products.
	ErrKeyValidationProducts = "error.validation.products"
	// ErrKeyLabelSource indicates an unusable marketplace label document.
	ErrKeyLabelSource = "error.label_source"
	// ErrKeyLabelFetch indicates the marketplace label could not be downloaded.
	ErrKeyLabelFetch = "error.label_fetch"
	// ErrKeyComposeFailed indicates the composition pipeline failed.
	ErrKeyComposeFailed = "error.compose_failed"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyLabelComposed indicates a successful label composition.
	SuccessKeyLabelComposed = "success.label_composed"
)
