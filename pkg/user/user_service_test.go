package user

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"NutriSnap-Backend/pkg/jwt"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byID:    map[string]*entities.User{},
		byEmail: map[string]*entities.User{},
	}
	for _, u := range users {
		repo.byID[u.ID.String()] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	f.byID[user.ID.String()] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) ListVerifiedUsers(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.byID {
		if u.Verified {
			out = append(out, u)
		}
	}
	return out, nil
}

func seedUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &entities.User{
		ID:       uuid.New(),
		Name:     "Ayu",
		Email:    "ayu@example.com",
		Password: string(hashed),
		Verified: true,
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	existing := seedUser(t, "correct-horse")
	svc := NewUserService(newFakeUserRepo(existing), jwt.NewJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    existing.Email,
		Password: "battery-staple",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("err = %v, want ErrCredentialsInvalid", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(), jwt.NewJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrCredentialsInvalid) {
		t.Fatalf("err = %v, want ErrCredentialsInvalid", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	existing := seedUser(t, "correct-horse")
	svc := NewUserService(newFakeUserRepo(existing), jwt.NewJWTService())

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    existing.Email,
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected a token")
	}
	if res.Role != domain.RoleUser {
		t.Fatalf("role = %q, want %q", res.Role, domain.RoleUser)
	}
}

func TestLoginUnverifiedAccount(t *testing.T) {
	t.Parallel()

	existing := seedUser(t, "correct-horse")
	existing.Verified = false
	svc := NewUserService(newFakeUserRepo(existing), jwt.NewJWTService())

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    existing.Email,
		Password: "correct-horse",
	})
	if !errors.Is(err, domain.ErrAccountNotVerified) {
		t.Fatalf("err = %v, want ErrAccountNotVerified", err)
	}
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	t.Parallel()

	existing := seedUser(t, "pw")
	existing.Age = 30
	existing.DailyCalorieGoal = 1800
	existing.DailyProteinGoal = 120
	repo := newFakeUserRepo(existing)
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	protein := 140.0
	err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{
		Name:             "Ayu Lestari",
		DailyProteinGoal: &protein,
	}, existing.ID.String())
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	updated, err := repo.GetUserByID(ctx, existing.ID.String())
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if updated.Name != "Ayu Lestari" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.DailyProteinGoal != 140 {
		t.Fatalf("protein goal = %v, want 140", updated.DailyProteinGoal)
	}
	// untouched fields survive the merge
	if updated.Age != 30 || updated.DailyCalorieGoal != 1800 {
		t.Fatalf("age/calories = %d/%d, want 30/1800", updated.Age, updated.DailyCalorieGoal)
	}
}

func TestMeAppliesGoalDefaults(t *testing.T) {
	t.Parallel()

	existing := seedUser(t, "pw")
	svc := NewUserService(newFakeUserRepo(existing), jwt.NewJWTService())

	res, err := svc.Me(context.Background(), existing.ID.String())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if res.Goals.Calories != domain.DefaultCalorieGoal {
		t.Fatalf("calorie goal = %d, want %d", res.Goals.Calories, domain.DefaultCalorieGoal)
	}
	if res.Goals.Protein != domain.DefaultProteinGoal {
		t.Fatalf("protein goal = %v, want %v", res.Goals.Protein, domain.DefaultProteinGoal)
	}
	if res.Goals.Water != domain.DefaultWaterGoal {
		t.Fatalf("water goal = %d, want %d", res.Goals.Water, domain.DefaultWaterGoal)
	}
}

func TestMeUnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(), jwt.NewJWTService())

	_, err := svc.Me(context.Background(), uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
