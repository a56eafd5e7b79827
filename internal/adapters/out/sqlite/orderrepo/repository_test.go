package orderrepo_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/sqlite/orderrepo"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	gorm_sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.OrderID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	// A named in-memory database per test keeps tests isolated while the
	// shared cache keeps it alive across pooled connections.
	name := strings.ReplaceAll(suite.T().Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(gorm_sqlite.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &orderrepo.WatermarkDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) buildOrder(id string, lineNames ...string) *order.Order {
	orderID, err := kernel.ParseOrderID(id)
	suite.Require().NoError(err)

	profile := customer.NewProfile()
	values := map[customer.Field]string{
		customer.FieldPersonType:   "juridica",
		customer.FieldName:         "Padaria Central Ltda",
		customer.FieldTelephone:    "+55 11 4002-8922",
		customer.FieldZipCode:      "01310-100",
		customer.FieldAddress:      "Avenida Paulista",
		customer.FieldNumber:       "1500",
		customer.FieldState:        "SP",
		customer.FieldCity:         "Sao Paulo",
		customer.FieldNeighborhood: "Bela Vista",
		customer.FieldEmail:        "contato@padariacentral.com",
		customer.FieldCNPJ:         "12.345.678/0001-95",
		customer.FieldCompanyName:  "Padaria Central Ltda",
		customer.FieldBusinessName: "Padaria Central",
	}
	for field, value := range values {
		suite.Require().NoError(profile.Set(field, value))
	}

	lines := make([]product.Line, 0, len(lineNames))
	for i, lineName := range lineNames {
		unitPrice, priceErr := kernel.MoneyFromString(fmt.Sprintf("%d.50", i+1))
		suite.Require().NoError(priceErr)
		line, lineErr := product.NewLine(lineName, unitPrice, i+1)
		suite.Require().NoError(lineErr)
		lines = append(lines, line)
	}

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(orderID, profile, date, lines)
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	original := suite.buildOrder("ORD-001", "Croissant", "Baguette")

	err := suite.repo.Add(ctx, original)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal("ORD-001", loaded.ID().String())
	suite.True(original.Date().Equal(loaded.Date()))
	suite.True(loaded.IsEqual(original))

	profile := loaded.Customer()
	suite.Equal(customer.Business, profile.PersonType())
	suite.Equal("Padaria Central Ltda", profile.Get(customer.FieldName))
	suite.Equal("12.345.678/0001-95", profile.Get(customer.FieldCNPJ))

	lines := loaded.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("Croissant", lines[0].Name())
	suite.Equal("Baguette", lines[1].Name())

	total, err := loaded.Total()
	suite.Require().NoError(err)
	suite.Equal("6.50", total.String())
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	id, err := kernel.ParseOrderID("ORD-404")
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, id)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestGetAll_NewestFirst() {
	ctx := context.Background()
	for _, id := range []string{"ORD-001", "ORD-002", "ORD-003"} {
		err := suite.repo.Add(ctx, suite.buildOrder(id, "Croissant"))
		suite.Require().NoError(err)
	}

	orders, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal("ORD-003", orders[0].ID().String())
	suite.Equal("ORD-002", orders[1].ID().String())
	suite.Equal("ORD-001", orders[2].ID().String())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_KeepsListPosition() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.buildOrder("ORD-001", "Croissant")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.buildOrder("ORD-002", "Baguette")))

	replacement := suite.buildOrder("ORD-001", "Brioche", "Eclair")
	suite.Require().NoError(suite.repo.Update(ctx, replacement))

	orders, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-002", orders[0].ID().String())
	suite.Equal("ORD-001", orders[1].ID().String())

	loaded, err := suite.repo.Get(ctx, replacement.ID())
	suite.Require().NoError(err)
	lines := loaded.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("Brioche", lines[0].Name())
	suite.Equal("Eclair", lines[1].Name())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_AbsentIdentifierIsNoOp() {
	ctx := context.Background()
	err := suite.repo.Update(ctx, suite.buildOrder("ORD-009", "Croissant"))
	suite.Require().NoError(err)

	orders, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *GormOrderRepositoryTestSuite) TestRemove() {
	ctx := context.Background()
	o := suite.buildOrder("ORD-001", "Croissant")
	suite.Require().NoError(suite.repo.Add(ctx, o))

	suite.Require().NoError(suite.repo.Remove(ctx, o.ID()))

	_, err := suite.repo.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Removing again is a no-op.
	suite.Require().NoError(suite.repo.Remove(ctx, o.ID()))
}

func (suite *GormOrderRepositoryTestSuite) TestLastIssuedID() {
	ctx := context.Background()

	_, issued, err := suite.repo.LastIssuedID(ctx)
	suite.Require().NoError(err)
	suite.False(issued)

	suite.Require().NoError(suite.repo.Add(ctx, suite.buildOrder("ORD-001", "Croissant")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.buildOrder("ORD-002", "Baguette")))

	last, issued, err := suite.repo.LastIssuedID(ctx)
	suite.Require().NoError(err)
	suite.True(issued)
	suite.Equal("ORD-002", last.String())
}

func (suite *GormOrderRepositoryTestSuite) TestLastIssuedID_SurvivesRemoval() {
	ctx := context.Background()
	o := suite.buildOrder("ORD-003", "Croissant")
	suite.Require().NoError(suite.repo.Add(ctx, o))
	suite.Require().NoError(suite.repo.Remove(ctx, o.ID()))

	last, issued, err := suite.repo.LastIssuedID(ctx)
	suite.Require().NoError(err)
	suite.True(issued)
	suite.Equal("ORD-003", last.String())
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
