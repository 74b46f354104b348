package dto

// MasterDetailsRequest carries an arbitrary subset of reference ids; only
// the ids that are present get resolved.
type MasterDetailsRequest struct {
	StateID          *uint `json:"stateId"`
	CityID           *uint `json:"cityId"`
	ClientID         *uint `json:"clientId"`
	ServiceID        *uint `json:"serviceId"`
	SubServiceID     *uint `json:"subServiceId"`
	DealerID         *uint `json:"dealerId"`
	AspID            *uint `json:"aspId"`
	AspMechanicID    *uint `json:"aspMechanicId"`
	DispositionID    *uint `json:"dispositionId"`
	ActivityStatusID *uint `json:"activityStatusId"`
	CaseSubjectID    *uint `json:"caseSubjectId"`
	CaseTypeID       *uint `json:"caseTypeId"`
	VehicleTypeID    *uint `json:"vehicleTypeId"`
	MembershipTypeID *uint `json:"membershipTypeId"`
	FuelTypeID       *uint `json:"fuelTypeId"`
	ServiceRegionID  *uint `json:"serviceRegionId"`
}
