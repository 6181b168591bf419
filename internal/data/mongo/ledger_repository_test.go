package mongo

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/receipt-rewards-ledger/internal/domain/ledger"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Put(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func TestNewLedgerRepository(t *testing.T) {
	db := &mongo.Database{}
	logger := slog.Default()

	repo := NewLedgerRepository(logger, db)

	assert.NotNil(t, repo)
	assert.IsType(t, &LedgerRepository{}, repo)
}

func TestLedgerRepository_Put(t *testing.T) {
	mockRepo := &MockLedgerRepository{}

	id := uuid.New()
	entry := &ledger.Entry{
		ID:        id,
		Points:    37,
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name          string
		setupMocks    func()
		expectedError error
	}{
		{
			name: "successful put",
			setupMocks: func() {
				mockRepo.On("Put", mock.Anything, entry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "duplicate entry",
			setupMocks: func() {
				mockRepo.On("Put", mock.Anything, entry).Return(ledger.ErrDuplicateEntry{ID: id})
			},
			expectedError: ledger.ErrDuplicateEntry{ID: id},
		},
		{
			name: "database error",
			setupMocks: func() {
				mockRepo.On("Put", mock.Anything, entry).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			tt.setupMocks()

			err := mockRepo.Put(context.Background(), entry)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerRepository_Get(t *testing.T) {
	mockRepo := &MockLedgerRepository{}

	id := uuid.New()
	entry := &ledger.Entry{ID: id, Points: 109, CreatedAt: time.Now().UTC()}

	t.Run("found", func(t *testing.T) {
		mockRepo.ExpectedCalls = nil
		mockRepo.On("Get", mock.Anything, id).Return(entry, nil)

		got, err := mockRepo.Get(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.ExpectedCalls = nil
		mockRepo.On("Get", mock.Anything, id).Return(nil, ledger.ErrEntryNotFound{ID: id})

		got, err := mockRepo.Get(context.Background(), id)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ledger.ErrEntryNotFound{ID: id})
	})
}
