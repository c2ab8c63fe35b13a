package commands

import (
	"context"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/product"
	"smakownia-backend/internal/infra"
	"smakownia-backend/internal/pkg/errs"
)

// CatalogCommands is the write side of the admin dashboard: workshop,
// product, partner and map-pin management.
type CatalogCommands interface {
	CreateMasterclass(ctx context.Context, m *masterclass.Masterclass) error
	UpdateMasterclass(ctx context.Context, m *masterclass.Masterclass) error
	DeleteMasterclass(ctx context.Context, id string) error
	// ReduceMasterclassSlot books one seat by hand (phone or on-site sales).
	// At zero capacity it reports ErrNoAvailableSlots and changes nothing.
	ReduceMasterclassSlot(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p *product.OnlineProduct) error
	UpdateProduct(ctx context.Context, p *product.OnlineProduct) error
	DeleteProduct(ctx context.Context, id string) error

	CreatePartner(ctx context.Context, p *catalog.Partner) error
	UpdatePartner(ctx context.Context, p *catalog.Partner) error
	DeletePartner(ctx context.Context, id string) error

	CreateLocation(ctx context.Context, l *catalog.MapLocation) error
	UpdateLocation(ctx context.Context, l *catalog.MapLocation) error
	DeleteLocation(ctx context.Context, id string) error
}

type catalogCommandsImpl struct {
	masterclassRepo MasterclassRepository
	productRepo     ProductRepository
	partnerRepo     PartnerRepository
	locationRepo    LocationRepository
}

func NewCatalogCommands(
	masterclassRepo MasterclassRepository,
	productRepo ProductRepository,
	partnerRepo PartnerRepository,
	locationRepo LocationRepository,
) CatalogCommands {
	return &catalogCommandsImpl{
		masterclassRepo: masterclassRepo,
		productRepo:     productRepo,
		partnerRepo:     partnerRepo,
		locationRepo:    locationRepo,
	}
}

func (c *catalogCommandsImpl) CreateMasterclass(ctx context.Context, m *masterclass.Masterclass) error {
	if err := c.masterclassRepo.Create(ctx, m); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) UpdateMasterclass(ctx context.Context, m *masterclass.Masterclass) error {
	return mapCatalogErr(c.masterclassRepo.Update(ctx, m), errs.ErrMasterclassNotFound)
}

func (c *catalogCommandsImpl) DeleteMasterclass(ctx context.Context, id string) error {
	return mapCatalogErr(c.masterclassRepo.Delete(ctx, id), errs.ErrMasterclassNotFound)
}

func (c *catalogCommandsImpl) ReduceMasterclassSlot(ctx context.Context, id string) error {
	reduced, err := c.masterclassRepo.ReduceSlot(ctx, id)
	if err != nil {
		return mapCatalogErr(err, errs.ErrMasterclassNotFound)
	}
	if !reduced {
		return errs.ErrNoAvailableSlots
	}
	return nil
}

func (c *catalogCommandsImpl) CreateProduct(ctx context.Context, p *product.OnlineProduct) error {
	if err := c.productRepo.Create(ctx, p); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) UpdateProduct(ctx context.Context, p *product.OnlineProduct) error {
	return mapCatalogErr(c.productRepo.Update(ctx, p), errs.ErrProductNotFound)
}

func (c *catalogCommandsImpl) DeleteProduct(ctx context.Context, id string) error {
	return mapCatalogErr(c.productRepo.Delete(ctx, id), errs.ErrProductNotFound)
}

func (c *catalogCommandsImpl) CreatePartner(ctx context.Context, p *catalog.Partner) error {
	if err := c.partnerRepo.Create(ctx, p); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) UpdatePartner(ctx context.Context, p *catalog.Partner) error {
	return mapCatalogErr(c.partnerRepo.Update(ctx, p), errs.ErrPartnerNotFound)
}

func (c *catalogCommandsImpl) DeletePartner(ctx context.Context, id string) error {
	return mapCatalogErr(c.partnerRepo.Delete(ctx, id), errs.ErrPartnerNotFound)
}

func (c *catalogCommandsImpl) CreateLocation(ctx context.Context, l *catalog.MapLocation) error {
	if err := c.locationRepo.Create(ctx, l); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) UpdateLocation(ctx context.Context, l *catalog.MapLocation) error {
	return mapCatalogErr(c.locationRepo.Update(ctx, l), errs.ErrLocationNotFound)
}

func (c *catalogCommandsImpl) DeleteLocation(ctx context.Context, id string) error {
	return mapCatalogErr(c.locationRepo.Delete(ctx, id), errs.ErrLocationNotFound)
}

func mapCatalogErr(err, notFound error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
