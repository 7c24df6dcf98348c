package services

import (
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services with their
// dependencies. The report dependencies are nil-able in setups that only
// serve the API without the rendering and delivery stack.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	renderer portssvc.PDFRenderer,
	store portssvc.ObjectStore,
	enqueuer portssvc.ReportEnqueuer,
) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	companySvc := NewCompanyService(repos.CompanyRepo)
	clientSvc := NewClientService(repos.ClientRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	userSvc := NewUserService(repos.UserRepo)
	productSvc := NewProductService(repos.ProductRepo, repos.CategoryRepo, currencySvc)
	orderSvc := NewOrderService(repos.OrderRepo, productSvc, clientSvc, currencySvc, userSvc)
	reportSvc := NewReportService(repos.CompanyRepo, productSvc, renderer, store, enqueuer)

	return &portssvc.ServiceContainer{
		Currency: currencySvc,
		Company:  companySvc,
		Client:   clientSvc,
		Category: categorySvc,
		Product:  productSvc,
		Order:    orderSvc,
		User:     userSvc,
		Report:   reportSvc,
	}
}
