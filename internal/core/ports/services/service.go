package services

// ServiceContainer holds all service interfaces needed by the handler layer.
type ServiceContainer struct {
	Customer  CustomerSvcFacade
	Order     OrderSvcFacade
	Remission RemissionSvcFacade
	Reporting ReportingSvc
}
