package commands

import (
	"context"

	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"
)

// DeleteProductCommandHandler removes products that no order line references.
// Deleting a referenced product would orphan order lines and break the order
// totals, so it is refused with an ObjectConflictError.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	if _, err := repo.Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	referenced, err := repo.IsReferenced(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectConflictErrorWithCause("productId", cmd.ProductID().String(), product.ErrProductInUse)
	}

	if err = repo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
