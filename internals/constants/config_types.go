package constants

// Config categories. The configs table stores many unrelated enumerations
// distinguished by config_type_id; every read goes through a typed accessor
// keyed by one of these so ids from different categories never mix.
const (
	ConfigTypeDispositionType uint = 1
	ConfigTypeCaseType        uint = 2
	ConfigTypeVehicleType     uint = 3
	ConfigTypeMembershipType  uint = 4
	ConfigTypeCaseSubjectType uint = 5
	ConfigTypeFuelType        uint = 6
	ConfigTypeServiceRegion   uint = 7
)

var ConfigTypeNames = map[uint]string{
	ConfigTypeDispositionType: "Disposition Type",
	ConfigTypeCaseType:        "Case Type",
	ConfigTypeVehicleType:     "Vehicle Type",
	ConfigTypeMembershipType:  "Membership Type",
	ConfigTypeCaseSubjectType: "Case Subject Type",
	ConfigTypeFuelType:        "Fuel Type",
	ConfigTypeServiceRegion:   "Service Region",
}
