package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/sender"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	args := m.Called(ctx, id, set)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) AddCartItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) ([]models.CartItem, error) {
	args := m.Called(ctx, userID, item)
	if c := args.Get(0); c != nil {
		return c.([]models.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) UpdateCartItem(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) ([]models.CartItem, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if c := args.Get(0); c != nil {
		return c.([]models.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) RemoveCartItem(ctx context.Context, userID, itemID primitive.ObjectID) ([]models.CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	if c := args.Get(0); c != nil {
		return c.([]models.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, userID, productID)
	if w := args.Get(0); w != nil {
		return w.([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, userID, productID)
	if w := args.Get(0); w != nil {
		return w.([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) RecentByRole(ctx context.Context, role string, n int64) ([]models.User, error) {
	args := m.Called(ctx, role, n)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) List(ctx context.Context, q repository.ListingQuery) ([]models.Product, int64, error) {
	args := m.Called(ctx, q)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.RelatedProduct, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]models.RelatedProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) ListByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, brandID)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) Related(ctx context.Context, id primitive.ObjectID) ([]models.RelatedProduct, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.([]models.RelatedProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Product, error) {
	args := m.Called(ctx, id, set)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepo) Recent(ctx context.Context, n int64) ([]models.Product, error) {
	args := m.Called(ctx, n)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBrandRepo struct{ mock.Mock }

func (m *MockBrandRepo) All(ctx context.Context) ([]models.Brand, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	args := m.Called(ctx, slug)
	if b := args.Get(0); b != nil {
		return b.(*models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) FindByName(ctx context.Context, name string) (*models.Brand, error) {
	args := m.Called(ctx, name)
	if b := args.Get(0); b != nil {
		return b.(*models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) Resolve(ctx context.Context, ref repository.Reference) (*models.Brand, error) {
	args := m.Called(ctx, ref)
	if b := args.Get(0); b != nil {
		return b.(*models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) Create(ctx context.Context, brand *models.Brand) error {
	return m.Called(ctx, brand).Error(0)
}

func (m *MockBrandRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Brand, error) {
	args := m.Called(ctx, id, set)
	if b := args.Get(0); b != nil {
		return b.(*models.Brand), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBrandRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBrandRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLensRepo struct{ mock.Mock }

func (m *MockLensRepo) All(ctx context.Context) ([]models.Lens, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.Lens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLensRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Lens, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*models.Lens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLensRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lens, error) {
	args := m.Called(ctx, ids)
	if l := args.Get(0); l != nil {
		return l.([]models.Lens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLensRepo) FindByNames(ctx context.Context, names []string, partial bool) ([]models.Lens, error) {
	args := m.Called(ctx, names, partial)
	if l := args.Get(0); l != nil {
		return l.([]models.Lens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLensRepo) Create(ctx context.Context, lens *models.Lens) error {
	return m.Called(ctx, lens).Error(0)
}

func (m *MockLensRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Lens, error) {
	args := m.Called(ctx, id, set)
	if l := args.Get(0); l != nil {
		return l.(*models.Lens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLensRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) UserOrders(ctx context.Context, userID primitive.ObjectID, search, status string) ([]models.UserOrderRow, error) {
	args := m.Called(ctx, userID, search, status)
	if o := args.Get(0); o != nil {
		return o.([]models.UserOrderRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) AdminList(ctx context.Context, page, limit int, search, status string) ([]models.AdminOrderRow, int64, error) {
	args := m.Called(ctx, page, limit, search, status)
	if o := args.Get(0); o != nil {
		return o.([]models.AdminOrderRow), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockAppointmentRepo struct{ mock.Mock }

func (m *MockAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	return m.Called(ctx, appt).Error(0)
}

func (m *MockAppointmentRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepo) UserList(ctx context.Context, userID primitive.ObjectID, search string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID, search)
	if a := args.Get(0); a != nil {
		return a.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepo) AdminList(ctx context.Context, page, limit int, search string) ([]models.AdminAppointmentRow, int64, error) {
	args := m.Called(ctx, page, limit, search)
	if a := args.Get(0); a != nil {
		return a.([]models.AdminAppointmentRow), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockAppointmentRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Appointment, error) {
	args := m.Called(ctx, id, set)
	if a := args.Get(0); a != nil {
		return a.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockClientRepo struct{ mock.Mock }

func (m *MockClientRepo) Create(ctx context.Context, client *models.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepo) List(ctx context.Context, page, limit int, search, sortBy, sortOrder string) ([]models.Client, int64, error) {
	args := m.Called(ctx, page, limit, search, sortBy, sortOrder)
	if c := args.Get(0); c != nil {
		return c.([]models.Client), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, id, req)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockClientRepo) AddPurchase(ctx context.Context, id primitive.ObjectID, purchase models.Purchase) (*models.Client, error) {
	args := m.Called(ctx, id, purchase)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepo) RemovePurchase(ctx context.Context, id primitive.ObjectID, index int) (*models.Client, error) {
	args := m.Called(ctx, id, index)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSender records every outbound email.
type MockSender struct {
	mock.Mock
	Sent []string
}

func (m *MockSender) SendEmail(ctx context.Context, to, subject, body string) (sender.SendResult, error) {
	args := m.Called(ctx, to, subject, body)
	if args.Error(1) == nil {
		m.Sent = append(m.Sent, to)
	}
	return args.Get(0).(sender.SendResult), args.Error(1)
}
