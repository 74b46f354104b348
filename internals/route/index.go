package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/clients/userservice"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/configs"
	caseRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/cases/route"
	clientRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/clients/route"
	configRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/configs/route"
	detailsRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/details/route"
	geoRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/geo/route"
	importRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/imports/route"
	partnerRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/partners/route"
	serviceRoute "github.com/vinothini1803/rsa-crm-master-service-sub000/internals/features/masters/services/route"
	"github.com/vinothini1803/rsa-crm-master-service-sub000/internals/middlewares/auth"
)

// SetupRoutes mounts every master endpoint under /api, behind JWT auth.
// The acting user id from the token feeds the audit columns.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	users := userservice.NewHTTPClient(configs.UserServiceBaseURL)

	api := app.Group("/api", auth.AuthMiddleware())

	geoRoute.GeoRoutes(api, db)
	clientRoute.ClientRoutes(api, db)
	serviceRoute.ServiceRoutes(api, db)
	partnerRoute.PartnerRoutes(api, db, users)
	caseRoute.CaseRoutes(api, db)
	configRoute.ConfigRoutes(api, db)
	detailsRoute.DetailsRoutes(api, db)
	importRoute.ImportExportRoutes(api, db, users)
}
