package constants

// List endpoint defaults. Every master list uses limit/offset query params.
const (
	DefaultLimit  = 10
	MaxLimit      = 50
	DefaultOffset = 0
)

// apiType values accepted by list endpoints.
const (
	APITypeDropdown = "dropdown"
)
