package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentpark/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestCreateUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "marc@gmail.com").Return(nil, gorm.ErrRecordNotFound)
	var stored string
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		stored = u.PasswordHash
		return u.Email == "marc@gmail.com" && u.PasswordHash != "secret123"
	})).Return(nil)

	u, err := svc.Create(ctx, CreateUserRequest{
		LastName:  "Petit",
		FirstName: "Marc",
		Email:     "Marc@Gmail.com",
		Password:  "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleClient, u.Role)
	assert.Equal(t, "active", u.AccountStatus)
	assert.Empty(t, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret123")))
}

func TestCreateUser_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "marc@gmail.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Create(ctx, CreateUserRequest{
		LastName:  "Petit",
		FirstName: "Marc",
		Email:     "marc@gmail.com",
		Password:  "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_RejectsUnknownRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "marc@gmail.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, CreateUserRequest{
		LastName:  "Petit",
		FirstName: "Marc",
		Email:     "marc@gmail.com",
		Password:  "secret123",
		Role:      "superuser",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", ctx, "marc@gmail.com").Return(&domain.User{
		ID:           42,
		Email:        "marc@gmail.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)
	jwt.On("GenerateToken", int64(42), "client").Return("tok123", nil)

	res, err := svc.Login(ctx, LoginRequest{Email: "marc@gmail.com", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "tok123", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", ctx, "marc@gmail.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "marc@gmail.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@gmail.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@gmail.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUser_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))
	ctx := context.Background()

	users.On("GetByID", ctx, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, 404, UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
