package services

// ServiceContainer aggregates the service facades handed to route registration.
type ServiceContainer struct {
	CnabImport CnabImportSvcFacade
	Store      StoreSvcFacade
}
