package apierror

// Error type URIs following the urn:mentor:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:mentor:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:mentor:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:mentor:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:mentor:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:mentor:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:mentor:error:internal"

	// TypeInvalidID indicates a malformed resource ID in the path (400)
	TypeInvalidID = "urn:mentor:error:invalid_id"

	// TypeInvalidImage indicates an image payload that is not a base64 data URL (400)
	TypeInvalidImage = "urn:mentor:error:invalid_image"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:mentor:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleInternal     = "Internal Server Error"
	TitleInvalidID    = "Invalid ID Format"
	TitleInvalidImage = "Invalid Image"
	TitleBadRequest   = "Bad Request"
)
