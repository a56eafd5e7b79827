package queries_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/sqlite/orderrepo"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	gorm_sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.OrderID, _ any) {}

type SearchOrdersQueryHandlerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	handler   queries.SearchOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *SearchOrdersQueryHandlerTestSuite) SetupTest() {
	name := strings.ReplaceAll(suite.T().Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(gorm_sqlite.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &orderrepo.WatermarkDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewSearchOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *SearchOrdersQueryHandlerTestSuite) addOrder(id, name string) {
	orderID, err := kernel.ParseOrderID(id)
	suite.Require().NoError(err)

	profile := customer.NewProfile()
	values := map[customer.Field]string{
		customer.FieldPersonType:   "fisica",
		customer.FieldName:         name,
		customer.FieldTelephone:    "+55 11 99999-0000",
		customer.FieldZipCode:      "01310-100",
		customer.FieldAddress:      "Avenida Paulista",
		customer.FieldNumber:       "1000",
		customer.FieldState:        "SP",
		customer.FieldCity:         "Sao Paulo",
		customer.FieldNeighborhood: "Bela Vista",
		customer.FieldEmail:        "cliente@example.com",
		customer.FieldCPF:          "123.456.789-09",
		customer.FieldGovernmentID: "MG-12.345.678",
		customer.FieldDateOfBirth:  "1990-04-01",
		customer.FieldGender:       "female",
	}
	for field, value := range values {
		suite.Require().NoError(profile.Set(field, value))
	}

	unitPrice, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	line, err := product.NewLine("Widget", unitPrice, 2)
	suite.Require().NoError(err)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(orderID, profile, date, []product.Line{line})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewSearchOrdersQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_EmptyFilter_ReturnsAllNewestFirst() {
	suite.addOrder("ORD-001", "Maria Silva")
	suite.addOrder("ORD-002", "Joao Souza")
	suite.addOrder("ORD-003", "Ana Lima")

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchOrdersQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ORD-003", result[0].ID)
	suite.Equal("ORD-002", result[1].ID)
	suite.Equal("ORD-001", result[2].ID)
	suite.Equal("Ana Lima", result[0].Name)
	suite.Equal("Avenida Paulista", result[0].Address)
	suite.Equal("20.00", result[0].Total)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_FiltersByIdentifier_CaseInsensitive() {
	suite.addOrder("ORD-001", "Maria Silva")
	suite.addOrder("ORD-002", "Joao Souza")

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchOrdersQuery("ord-002"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-002", result[0].ID)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_FiltersByCustomerName_CaseInsensitive() {
	suite.addOrder("ORD-001", "Maria Silva")
	suite.addOrder("ORD-002", "Joao Souza")

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchOrdersQuery("SILVA"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-001", result[0].ID)
	suite.Equal("Maria Silva", result[0].Name)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.addOrder("ORD-001", "Maria Silva")

	result, err := suite.handler.Handle(context.Background(), queries.NewSearchOrdersQuery("zzz"))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.SearchOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewSearchOrdersQuery constructor")
}

func TestSearchOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchOrdersQueryHandlerTestSuite))
}
