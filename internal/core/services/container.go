package services

import (
	portsrepo "github.com/desafiodev/cnab_import_app/internal/core/ports/repositories"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the service facades handed
// to route registration.
func NewServiceContainer(storeRepo portsrepo.StoreRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CnabImport: NewCnabImportService(storeRepo, txnRepo),
		Store:      NewStoreService(storeRepo, txnRepo),
	}
}
