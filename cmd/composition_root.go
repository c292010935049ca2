package cmd

import (
	"fmt"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/events"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/session"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Every Create* method returns a
// ready handler sharing one connection pool.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	issuer     *session.JWTIssuer
	logger     *zap.Logger
}

// NewCompositionRoot builds the root. A nil publisher disables event delivery.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) (CompositionRoot, error) {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	issuer, err := session.NewJWTIssuer(config.Session.Secret, config.Session.TTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create session issuer: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		issuer:     issuer,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.issuer)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTicketQueryHandler() queries.GetOrderTicketQueryHandler {
	return queries.NewGetOrderTicketQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCashCloseQueryHandler() queries.GetCashCloseQueryHandler {
	return queries.NewGetCashCloseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySalesQueryHandler() queries.GetDailySalesQueryHandler {
	return queries.NewGetDailySalesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductMarginsQueryHandler() queries.GetProductMarginsQueryHandler {
	return queries.NewGetProductMarginsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeadStockQueryHandler() queries.GetDeadStockQueryHandler {
	return queries.NewGetDeadStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTotalMismatchesQueryHandler() queries.GetOrderTotalMismatchesQueryHandler {
	return queries.NewGetOrderTotalMismatchesQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP adapter over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			Login:           c.CreateLoginCommandHandler(),
			CreateProduct:   c.CreateCreateProductCommandHandler(),
			UpdateProduct:   c.CreateUpdateProductCommandHandler(),
			DeleteProduct:   c.CreateDeleteProductCommandHandler(),
			CreateOrder:     c.CreateCreateOrderCommandHandler(),
			UpdateOrder:     c.CreateUpdateOrderCommandHandler(),
			AddOrderItem:    c.CreateAddOrderItemCommandHandler(),
			RemoveOrderItem: c.CreateRemoveOrderItemCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetProducts:       c.CreateGetProductsQueryHandler(),
			GetOrders:         c.CreateGetOrdersQueryHandler(),
			GetOrder:          c.CreateGetOrderQueryHandler(),
			GetOrderTicket:    c.CreateGetOrderTicketQueryHandler(),
			GetCashClose:      c.CreateGetCashCloseQueryHandler(),
			GetDailySales:     c.CreateGetDailySalesQueryHandler(),
			GetProductMargins: c.CreateGetProductMarginsQueryHandler(),
			GetDeadStock:      c.CreateGetDeadStockQueryHandler(),
		},
		httpadapter.CookieConfig{Secure: c.config.Session.SecureCookie},
	)
}

// SessionParser verifies the cookies set by Login.
func (c *CompositionRoot) SessionParser() httpadapter.SessionParser {
	return c.issuer
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderTotalMismatchesQueryHandler(),
		c.config.Jobs.IntegritySpec,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
