package queries

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/product"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/errs"
)

// CatalogQueries serves the public storefront reads: workshop listings,
// product listings, partners and map pins.
type CatalogQueries interface {
	ListMasterclasses(ctx context.Context) ([]*masterclass.Masterclass, error)
	GetMasterclass(ctx context.Context, id string) (*masterclass.Masterclass, error)
	ListProducts(ctx context.Context) ([]*product.OnlineProduct, error)
	GetProduct(ctx context.Context, id string) (*product.OnlineProduct, error)
	ListPartners(ctx context.Context) ([]*catalog.Partner, error)
	ListLocations(ctx context.Context) ([]*catalog.MapLocation, error)
}

type catalogQueriesImpl struct {
	masterclasses MasterclassReader
	products      ProductReader
	partners      PartnerReader
	locations     LocationReader
}

func NewCatalogQueries(
	masterclasses MasterclassReader,
	products ProductReader,
	partners PartnerReader,
	locations LocationReader,
) CatalogQueries {
	return &catalogQueriesImpl{
		masterclasses: masterclasses,
		products:      products,
		partners:      partners,
		locations:     locations,
	}
}

func (q *catalogQueriesImpl) ListMasterclasses(ctx context.Context) ([]*masterclass.Masterclass, error) {
	list, err := q.masterclasses.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return list, nil
}

func (q *catalogQueriesImpl) GetMasterclass(ctx context.Context, id string) (*masterclass.Masterclass, error) {
	m, err := q.masterclasses.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMasterclassNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return m, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*product.OnlineProduct, error) {
	list, err := q.products.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return list, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id string) (*product.OnlineProduct, error) {
	p, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

func (q *catalogQueriesImpl) ListPartners(ctx context.Context) ([]*catalog.Partner, error) {
	list, err := q.partners.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return list, nil
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*catalog.MapLocation, error) {
	list, err := q.locations.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return list, nil
}
