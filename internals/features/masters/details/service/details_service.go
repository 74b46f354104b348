package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/constants"
	caseModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/model"
	clientModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/model"
	configModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/model"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/dto"
	geoModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/model"
	partnerModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/model"
	serviceModel "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/model"
	helper "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/helpers"
)

// MasterDetailsResponse fans in every record the request asked for. Absent
// ids stay nil and are dropped from the JSON body.
type MasterDetailsResponse struct {
	State          *geoModel.State            `json:"state,omitempty"`
	City           *geoModel.City             `json:"city,omitempty"`
	Client         *clientModel.Client        `json:"client,omitempty"`
	Service        *serviceModel.Service      `json:"service,omitempty"`
	SubService     *serviceModel.SubService   `json:"subService,omitempty"`
	Dealer         *partnerModel.Dealer       `json:"dealer,omitempty"`
	Asp            *partnerModel.Asp          `json:"asp,omitempty"`
	AspMechanic    *partnerModel.AspMechanic  `json:"aspMechanic,omitempty"`
	Disposition    *caseModel.Disposition     `json:"disposition,omitempty"`
	ActivityStatus *caseModel.ActivityStatus  `json:"activityStatus,omitempty"`
	CaseSubject    *caseModel.CaseSubject     `json:"caseSubject,omitempty"`
	CaseType       *configModel.Config        `json:"caseType,omitempty"`
	VehicleType    *configModel.Config        `json:"vehicleType,omitempty"`
	MembershipType *configModel.Config        `json:"membershipType,omitempty"`
	FuelType       *configModel.Config        `json:"fuelType,omitempty"`
	ServiceRegion  *configModel.Config        `json:"serviceRegion,omitempty"`
}

// MasterDetails resolves every id present in the request in parallel. Each
// lookup writes a distinct response field, so no locking is needed; the
// first unresolved id cancels the rest and fails the whole request.
func MasterDetails(ctx context.Context, db *gorm.DB, req dto.MasterDetailsRequest) (*MasterDetailsResponse, error) {
	out := &MasterDetailsResponse{}
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(id *uint, entity string, dest interface{}, assign func()) {
		if id == nil || *id == 0 {
			return
		}
		g.Go(func() error {
			err := db.WithContext(gctx).First(dest, *id).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.Business("%s not found", entity)
				}
				return err
			}
			assign()
			return nil
		})
	}
	fetchConfig := func(id *uint, typeID uint, entity string, assign func(*configModel.Config)) {
		if id == nil || *id == 0 {
			return
		}
		g.Go(func() error {
			var m configModel.Config
			err := db.WithContext(gctx).
				Where("config_type_id = ?", typeID).First(&m, *id).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.Business("%s not found", entity)
				}
				return err
			}
			assign(&m)
			return nil
		})
	}

	var (
		state       geoModel.State
		city        geoModel.City
		client      clientModel.Client
		svc         serviceModel.Service
		subService  serviceModel.SubService
		dealer      partnerModel.Dealer
		asp         partnerModel.Asp
		aspMechanic partnerModel.AspMechanic
		disposition caseModel.Disposition
		actStatus   caseModel.ActivityStatus
		caseSubject caseModel.CaseSubject
	)

	fetch(req.StateID, "State", &state, func() { out.State = &state })
	fetch(req.CityID, "City", &city, func() { out.City = &city })
	fetch(req.ClientID, "Client", &client, func() { out.Client = &client })
	fetch(req.ServiceID, "Service", &svc, func() { out.Service = &svc })
	fetch(req.SubServiceID, "Sub service", &subService, func() { out.SubService = &subService })
	fetch(req.DealerID, "Dealer", &dealer, func() { out.Dealer = &dealer })
	fetch(req.AspID, "ASP", &asp, func() { out.Asp = &asp })
	fetch(req.AspMechanicID, "ASP mechanic", &aspMechanic, func() { out.AspMechanic = &aspMechanic })
	fetch(req.DispositionID, "Disposition", &disposition, func() { out.Disposition = &disposition })
	fetch(req.ActivityStatusID, "Activity status", &actStatus, func() { out.ActivityStatus = &actStatus })
	fetch(req.CaseSubjectID, "Case subject", &caseSubject, func() { out.CaseSubject = &caseSubject })

	fetchConfig(req.CaseTypeID, constants.ConfigTypeCaseType, "Case type", func(m *configModel.Config) { out.CaseType = m })
	fetchConfig(req.VehicleTypeID, constants.ConfigTypeVehicleType, "Vehicle type", func(m *configModel.Config) { out.VehicleType = m })
	fetchConfig(req.MembershipTypeID, constants.ConfigTypeMembershipType, "Membership type", func(m *configModel.Config) { out.MembershipType = m })
	fetchConfig(req.FuelTypeID, constants.ConfigTypeFuelType, "Fuel type", func(m *configModel.Config) { out.FuelType = m })
	fetchConfig(req.ServiceRegionID, constants.ConfigTypeServiceRegion, "Service region", func(m *configModel.Config) { out.ServiceRegion = m })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
