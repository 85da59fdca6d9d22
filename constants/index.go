package constants

// User roles
const (
	ROLE_OWNER  = "OWNER"
	ROLE_TENANT = "TENANT"
	ROLE_ADMIN  = "ADMIN"
)

// Access gate messages
const (
	TOKEN_MISSING_OR_MALFORMED = "Authorization token missing or malformed"
	ACCESS_DENIED              = "Access denied"
	AUTHORIZATION_FAILED       = "Authorization failed"
)

// Capability names presented to the authorization service
const (
	RIGHT_SET_HOUSE    = "setHouse"
	RIGHT_GET_HOUSE    = "getHouse"
	RIGHT_UPDATE_HOUSE = "updateHouse"
	RIGHT_DELETE_HOUSE = "deleteHouse"
)

// Validation and ownership messages
const (
	MISSING_REQUIRED_FIELDS   = "Missing required fields"
	INVALID_INPUT             = "Invalid input"
	MISSING_USER_ID           = "Missing userId"
	INVALID_AVAILABLE_FILTER  = "Invalid value for available. Must be true or false."
	INVALID_OWNER_PARAMS      = "Missing or invalid userId/accommodationId"
	USER_NOT_FOUND            = "User not found"
	ONLY_OWNERS_CAN_CREATE    = "Only owners can create accommodations"
	FORBIDDEN_USER_NOT_FOUND  = "Forbidden: User not found"
	FORBIDDEN_NOT_AN_OWNER    = "Forbidden: Not an OWNER"
	FORBIDDEN_NOT_OWNER_OR_NF = "Forbidden: Not an OWNER or user not found"
	ACCOMMODATION_NOT_FOUND   = "Accommodation not found"
	FORBIDDEN_NOT_YOURS       = "Forbidden: You do not own this accommodation"
)

// Outcome messages
const (
	ERROR_CREATING_ACCOMMODATION = "Error creating accommodation"
	INTERNAL_SERVER_ERROR        = "Internal Server Error"
	UPDATED_SUCCESSFULLY         = "Accommodation updated successfully"
	DELETED_SUCCESSFULLY         = "Accommodation and related data deleted successfully"
)
