package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// QueriesIntegrationTestSuite runs the read side against a real PostgreSQL
// seeded through the repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	reportAt time.Time
}

// orderLine is a seed line: a product, optionally one of its variants.
type orderLine struct {
	product  *product.Product
	variant  *product.Variant
	quantity int
	plate    int
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.reportAt = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_NewestFirstWithStatusFilter() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	older := suite.seedOrder(order.Received, suite.reportAt.Add(9*time.Hour), nil, orderLine{product: taco, quantity: 1})
	newer := suite.seedOrder(order.Preparing, suite.reportAt.Add(10*time.Hour), nil,
		orderLine{product: taco, quantity: 2, plate: 1},
		orderLine{product: taco, quantity: 1, plate: 2},
	)

	query, err := queries.NewGetOrdersQuery(nil, 0)
	suite.Require().NoError(err)
	all, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.True(all[0].ID.IsEqual(newer.ID()))
	suite.True(all[1].ID.IsEqual(older.ID()))
	suite.Len(all[0].Items, 2)
	suite.True(decimal.RequireFromString("5.00").Equal(all[0].Items[0].Subtotal))

	status := "RECEIVED"
	query, err = queries.NewGetOrdersQuery(&status, 10)
	suite.Require().NoError(err)
	received, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(received, 1)
	suite.True(received[0].ID.IsEqual(older.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderTicket_GroupsByPlate() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	agua := suite.seedProduct("Agua", "1.50", "0.20")
	o := suite.seedOrder(order.Preparing, suite.reportAt, nil,
		orderLine{product: taco, quantity: 2, plate: 2},
		orderLine{product: agua, quantity: 1, plate: 1},
		orderLine{product: taco, quantity: 1, plate: 1},
	)

	query, err := queries.NewGetOrderTicketQuery(o.ID())
	suite.Require().NoError(err)
	ticket, err := queries.NewGetOrderTicketQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	type plateSummary struct {
		Number   int
		Quantity int
		Price    string
	}
	got := make([]plateSummary, 0, len(ticket.Plates))
	for _, p := range ticket.Plates {
		got = append(got, plateSummary{Number: p.Number, Quantity: p.TotalQuantity, Price: p.TotalPrice.StringFixed(2)})
	}
	want := []plateSummary{
		{Number: 1, Quantity: 2, Price: "4.00"},
		{Number: 2, Quantity: 2, Price: "5.00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.Failf("unexpected plates", "(-want +got):\n%s", diff)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetProducts_OnlyActiveVariants() {
	suite.seedProduct("Taco", "2.50", "0.90",
		product.VariantDetails{Name: "Pastor", Price: decimal.RequireFromString("3.00"), Cost: decimal.RequireFromString("1.00"), Active: true},
		product.VariantDetails{Name: "Suadero", Price: decimal.RequireFromString("3.20"), Cost: decimal.RequireFromString("1.10"), Active: false},
	)
	suite.seedProduct("Agua", "1.50", "0.20")

	views, err := queries.NewGetProductsQueryHandler(suite.database.DB).Handle(context.Background(), queries.NewGetProductsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal("Agua", views[0].Name)
	suite.Empty(views[0].Variants)
	suite.Equal("Taco", views[1].Name)
	suite.Require().Len(views[1].Variants, 1)
	suite.Equal("Pastor", views[1].Variants[0].Name)
}

func (suite *QueriesIntegrationTestSuite) TestGetCashClose_TotalsPerPaymentMethod() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	cash, card := order.Cash, order.Card
	noon := suite.reportAt.Add(12 * time.Hour)

	suite.seedOrder(order.Delivered, noon, &cash, orderLine{product: taco, quantity: 2})
	suite.seedOrder(order.Ready, noon, &cash, orderLine{product: taco, quantity: 1})
	suite.seedOrder(order.Delivered, noon, &card, orderLine{product: taco, quantity: 4})
	suite.seedOrder(order.Received, noon, nil, orderLine{product: taco, quantity: 1})
	suite.seedOrder(order.Canceled, noon, &card, orderLine{product: taco, quantity: 10})
	suite.seedOrder(order.Delivered, noon.AddDate(0, 0, 1), &cash, orderLine{product: taco, quantity: 10})

	view, err := queries.NewGetCashCloseQueryHandler(suite.database.DB).Handle(
		context.Background(), queries.NewGetCashCloseQuery(noon))
	suite.Require().NoError(err)

	suite.Equal(suite.reportAt, view.Date)
	suite.Equal("7.50", view.Totals["CASH"].StringFixed(2))
	suite.Equal("10.00", view.Totals["CARD"].StringFixed(2))
	suite.Equal("0.00", view.Totals["TRANSFER"].StringFixed(2))
	suite.Equal("2.50", view.Totals[queries.UnspecifiedPaymentMethod].StringFixed(2))
	suite.Equal("20.00", view.DayTotal.StringFixed(2))
}

func (suite *QueriesIntegrationTestSuite) TestGetDailySales_GroupsByDay() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	y, m, d := time.Now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	suite.seedOrder(order.Delivered, today.Add(time.Minute), nil, orderLine{product: taco, quantity: 1})
	suite.seedOrder(order.Received, today.Add(2*time.Minute), nil, orderLine{product: taco, quantity: 1})
	suite.seedOrder(order.Delivered, today.AddDate(0, 0, -2).Add(time.Hour), nil, orderLine{product: taco, quantity: 4})
	suite.seedOrder(order.Canceled, today.AddDate(0, 0, -2).Add(time.Hour), nil, orderLine{product: taco, quantity: 4})
	suite.seedOrder(order.Delivered, today.AddDate(0, 0, -30), nil, orderLine{product: taco, quantity: 4})

	query, err := queries.NewGetDailySalesQuery(0)
	suite.Require().NoError(err)
	sales, err := queries.NewGetDailySalesQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(sales, 2)
	suite.Equal(today.AddDate(0, 0, -2), sales[0].Date)
	suite.Equal(1, sales[0].Orders)
	suite.Equal("10.00", sales[0].Total.StringFixed(2))
	suite.Equal(today, sales[1].Date)
	suite.Equal(2, sales[1].Orders)
	suite.Equal("5.00", sales[1].Total.StringFixed(2))
}

func (suite *QueriesIntegrationTestSuite) TestGetProductMargins_DeliveredOnly() {
	taco := suite.seedProduct("Taco", "2.50", "0.90",
		product.VariantDetails{Name: "Pastor", Price: decimal.RequireFromString("3.00"), Cost: decimal.RequireFromString("1.20"), Active: true},
	)
	agua := suite.seedProduct("Agua", "1.50", "0.20")
	pastor := taco.Variants()[0]
	noon := suite.reportAt.Add(12 * time.Hour)

	suite.seedOrder(order.Delivered, noon, nil,
		orderLine{product: taco, quantity: 2},
		orderLine{product: taco, variant: &pastor, quantity: 1},
		orderLine{product: agua, quantity: 1},
	)
	suite.seedOrder(order.Ready, noon, nil, orderLine{product: agua, quantity: 50})

	report, err := queries.NewGetProductMarginsQueryHandler(suite.database.DB).Handle(
		context.Background(), queries.NewGetProductMarginsQuery(noon))
	suite.Require().NoError(err)
	suite.Require().Len(report, 2)

	suite.True(report[0].ProductID.IsEqual(taco.ID()))
	suite.Equal(3, report[0].Quantity)
	suite.Equal("8.00", report[0].Revenue.StringFixed(2))
	suite.Equal("3.00", report[0].Cost.StringFixed(2))
	suite.Equal("5.00", report[0].Margin.StringFixed(2))

	suite.True(report[1].ProductID.IsEqual(agua.ID()))
	suite.Equal(1, report[1].Quantity)
	suite.Equal("1.30", report[1].Margin.StringFixed(2))
}

func (suite *QueriesIntegrationTestSuite) TestGetDeadStock_ProductsWithoutDeliveredSales() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	agua := suite.seedProduct("Agua", "1.50", "0.20")
	flan := suite.seedProduct("Flan", "3.00", "1.00")
	noon := suite.reportAt.Add(12 * time.Hour)

	suite.seedOrder(order.Delivered, noon, nil, orderLine{product: taco, quantity: 1})
	suite.seedOrder(order.Preparing, noon, nil, orderLine{product: agua, quantity: 1})
	suite.seedOrder(order.Delivered, noon.AddDate(0, 0, -1), nil, orderLine{product: flan, quantity: 1})

	report, err := queries.NewGetDeadStockQueryHandler(suite.database.DB).Handle(
		context.Background(), queries.NewGetDeadStockQuery(noon))
	suite.Require().NoError(err)

	names := make([]string, 0, len(report))
	for _, p := range report {
		names = append(names, p.Name)
	}
	suite.Equal([]string{"Agua", "Flan"}, names)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderTotalMismatches_OpenOrdersOnly() {
	taco := suite.seedProduct("Taco", "2.50", "0.90")
	healthy := suite.seedOrder(order.Received, suite.reportAt, nil, orderLine{product: taco, quantity: 1})
	drifted := suite.seedOrder(order.Preparing, suite.reportAt, nil, orderLine{product: taco, quantity: 2})
	closed := suite.seedOrder(order.Delivered, suite.reportAt, nil, orderLine{product: taco, quantity: 2})

	for _, id := range []kernel.UUID{drifted.ID(), closed.ID()} {
		suite.Require().NoError(suite.database.DB.Exec(
			"UPDATE orders SET total = 1.00 WHERE id = ?", id.Google()).Error)
	}

	mismatches, err := queries.NewGetOrderTotalMismatchesQueryHandler(suite.database.DB).Handle(
		context.Background(), queries.NewGetOrderTotalMismatchesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(mismatches, 1)
	suite.True(mismatches[0].OrderID.IsEqual(drifted.ID()))
	suite.False(mismatches[0].OrderID.IsEqual(healthy.ID()))
	suite.Equal("PREPARING", mismatches[0].Status)
	suite.Equal("1.00", mismatches[0].Stored.StringFixed(2))
	suite.Equal("5.00", mismatches[0].Recomputed.StringFixed(2))
}

func (suite *QueriesIntegrationTestSuite) seedProduct(name, price, cost string, variants ...product.VariantDetails) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Cost:  decimal.RequireFromString(cost),
	}, variants)
	suite.Require().NoError(err)
	suite.Require().NoError(productrepo.NewGormProductRepository(suite.database.DB).Add(context.Background(), p))
	return p
}

// seedOrder stores an order and then forces its status and creation time,
// which the domain would not let a test set directly.
func (suite *QueriesIntegrationTestSuite) seedOrder(
	status order.Status,
	createdAt time.Time,
	method *order.PaymentMethod,
	lines ...orderLine,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "Mesa 3", order.DineIn, method)
	suite.Require().NoError(err)

	for _, l := range lines {
		quote, quoteErr := l.product.Quote(variantID(l.variant))
		suite.Require().NoError(quoteErr)
		item, itemErr := order.NewLineItem(kernel.NewUUID(), order.ItemSource(quote), l.quantity, "", l.plate)
		suite.Require().NoError(itemErr)
		suite.Require().NoError(o.AddItem(item))
	}
	o.CompactPlates()

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB).Add(context.Background(), o))
	suite.Require().NoError(suite.database.DB.Exec(
		"UPDATE orders SET status = ?, created_at = ? WHERE id = ?",
		status.String(), createdAt, o.ID().Google(),
	).Error)

	return o
}

func variantID(v *product.Variant) *kernel.UUID {
	if v == nil {
		return nil
	}
	id := v.ID()
	return &id
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
