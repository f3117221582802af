package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	"github.com/desafiodev/cnab_import_app/internal/core/services"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
)

type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) FindTransactionsByStoreID(ctx context.Context, storeID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, storeID)
	txns, _ := args.Get(0).([]domain.Transaction)
	return txns, args.Error(1)
}

func (m *MockTransactionReader) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

type StoreServiceTestSuite struct {
	suite.Suite
	storeRepo *MockStoreRepository
	txnRepo   *MockTransactionReader
	service   portssvc.StoreSvcFacade
	ctx       context.Context
}

func (s *StoreServiceTestSuite) SetupTest() {
	s.storeRepo = new(MockStoreRepository)
	s.txnRepo = new(MockTransactionReader)
	s.service = services.NewStoreService(s.storeRepo, s.txnRepo)
	s.ctx = context.Background()
}

func TestStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoreServiceTestSuite))
}

func (s *StoreServiceTestSuite) TestListStoresWithTransactions() {
	stores := []domain.Store{
		{StoreID: "store-1", Name: "BAR DO JOÃO"},
		{StoreID: "store-2", Name: "LOJA DO Ó - MATRIZ"},
	}
	txnsOne := []domain.Transaction{{TransactionID: "txn-1", StoreID: "store-1"}}

	s.storeRepo.On("ListStores", mock.Anything).Return(stores, nil).Once()
	s.txnRepo.On("FindTransactionsByStoreID", mock.Anything, "store-1").Return(txnsOne, nil).Once()
	s.txnRepo.On("FindTransactionsByStoreID", mock.Anything, "store-2").Return(nil, nil).Once()

	got, err := s.service.ListStoresWithTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	s.Equal("BAR DO JOÃO", got[0].Name)
	s.Len(got[0].Transactions, 1)
	s.Empty(got[1].Transactions)

	s.storeRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *StoreServiceTestSuite) TestListStoresWithTransactions_ListFails() {
	s.storeRepo.On("ListStores", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	got, err := s.service.ListStoresWithTransactions(s.ctx)
	s.Require().Error(err)
	s.Nil(got)
	s.Contains(err.Error(), "failed to list stores")
}

func (s *StoreServiceTestSuite) TestListStoresWithTransactions_LoadFails() {
	stores := []domain.Store{{StoreID: "store-1", Name: "BAR DO JOÃO"}}

	s.storeRepo.On("ListStores", mock.Anything).Return(stores, nil).Once()
	s.txnRepo.On("FindTransactionsByStoreID", mock.Anything, "store-1").Return(nil, errors.New("timeout")).Once()

	got, err := s.service.ListStoresWithTransactions(s.ctx)
	s.Require().Error(err)
	s.Nil(got)
	s.Contains(err.Error(), "failed to load transactions for store store-1")
}
