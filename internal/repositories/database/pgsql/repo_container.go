package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jpriva/orders_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		CompanyRepo:  newPgxCompanyRepository(dbPool),
		ClientRepo:   newPgxClientRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		OrderRepo:    newPgxOrderRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
