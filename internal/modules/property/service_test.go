package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"dreamsproperty/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetAll(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil {
		// simulate store-side assignment
		p.ID = 7
		p.CreatedAt = time.Now().UTC()
	}
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validRequest() PropertyRequest {
	price := 300000.0
	bedrooms := 3
	bathrooms := 2.0
	area := 1500

	return PropertyRequest{
		Title:        "Test Property",
		Description:  "This is a test property",
		Price:        &price,
		Location:     "Test Location",
		Bedrooms:     &bedrooms,
		Bathrooms:    &bathrooms,
		Area:         &area,
		Amenities:    domain.AmenityList{"Test Amenity"},
		ContactEmail: "test@example.com",
	}
}

func TestService_Create_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	created, err := service.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(7), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Test Property", created.Title)
	assert.Equal(t, 300000.0, created.Price)
	assert.Equal(t, domain.AmenityList{"Test Amenity"}, created.Amenities)

	store.AssertExpectations(t)
}

func TestService_Create_NilAmenitiesNormalizedToEmpty(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	req := validRequest()
	req.Amenities = nil

	created, err := service.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, created.Amenities)
	assert.Empty(t, created.Amenities)
}

func TestService_Create_RejectsNonPositivePrice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	req := validRequest()
	price := -100.0
	req.Price = &price

	_, err := service.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price", ve.Field)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsInvalidEmail(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	req := validRequest()
	req.ContactEmail = "invalid-email"

	_, err := service.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "contactEmail", ve.Field)
}

func TestService_Create_ReportsFirstViolationOnly(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	price := -100.0
	req := PropertyRequest{
		Title:        "A",
		Description:  "Short",
		Price:        &price,
		ContactEmail: "invalid-email",
	}

	_, err := service.Create(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
}

func TestService_Update_PreservesIDAndCreatedAt(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{
		ID:        1,
		Title:     "Old Title",
		CreatedAt: created,
	}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	req := validRequest()
	price := 350000.0
	req.Price = &price

	updated, err := service.Update(context.Background(), 1, req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created))
	assert.Equal(t, 350000.0, updated.Price)
	store.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrPropertyNotFound)

	_, err := service.Update(context.Background(), 999, validRequest())
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_ValidationBeforeWrite(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1}, nil)

	req := validRequest()
	req.Title = "A"

	_, err := service.Update(context.Background(), 1, req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1}, nil)
	store.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, service.Delete(context.Background(), 1))
	store.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrPropertyNotFound)

	err := service.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetByID", mock.Anything, int64(999)).Return(nil, domain.ErrPropertyNotFound)

	_, err := service.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestService_List_NilBecomesEmptySlice(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	store.On("GetAll", mock.Anything).Return(nil, nil)

	properties, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestService_List_StoreError(t *testing.T) {
	store := new(MockStore)
	service := NewService(store)

	storeErr := errors.New("connection reset")
	store.On("GetAll", mock.Anything).Return(nil, storeErr)

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
