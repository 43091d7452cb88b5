package user

import (
	"NutriSnap-Backend/domain"
	"NutriSnap-Backend/entities"
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/mailing"
	"NutriSnap-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.SendVerificationEmail(ctx, user.Email); err != nil {
		utils.Logger.Warn("verification_email_failed",
			zap.Error(err),
			zap.String("email", user.Email),
		)
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if !user.Verified {
		return domain.LoginResponse{}, domain.ErrAccountNotVerified
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)
	return domain.LoginResponse{Token: token, Role: domain.RoleUser}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenVerification(
		map[string]any{"user_id": user.ID.String()},
		24*time.Hour,
	)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Confirm your NutriSnap account by clicking <a href=%q>this link</a>. The link expires in 24 hours.</p>",
		user.Name, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your NutriSnap account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenVerification(token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	user.Verified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return userResponse(user), nil
}

// UpdateProfile merges partially: unspecified fields keep their prior
// values.
func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age > 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.HeightCm > 0 {
		user.HeightCm = req.HeightCm
	}
	if req.TargetWeight > 0 {
		user.TargetWeight = req.TargetWeight
	}
	if req.DailyCalorieGoal > 0 {
		user.DailyCalorieGoal = req.DailyCalorieGoal
	}
	if req.DailyProteinGoal != nil {
		user.DailyProteinGoal = *req.DailyProteinGoal
	}
	if req.DailyCarbsGoal != nil {
		user.DailyCarbsGoal = *req.DailyCarbsGoal
	}
	if req.DailyFatsGoal != nil {
		user.DailyFatsGoal = *req.DailyFatsGoal
	}
	if req.DailyWaterGoal > 0 {
		user.DailyWaterGoal = req.DailyWaterGoal
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func userResponse(user *entities.User) domain.UserResponse {
	goals := domain.Goals{
		Calories: user.DailyCalorieGoal,
		Protein:  user.DailyProteinGoal,
		Carbs:    user.DailyCarbsGoal,
		Fats:     user.DailyFatsGoal,
		Water:    user.DailyWaterGoal,
	}
	if goals.Calories == 0 {
		goals.Calories = domain.DefaultCalorieGoal
	}
	if goals.Protein == 0 {
		goals.Protein = domain.DefaultProteinGoal
	}
	if goals.Carbs == 0 {
		goals.Carbs = domain.DefaultCarbsGoal
	}
	if goals.Fats == 0 {
		goals.Fats = domain.DefaultFatsGoal
	}
	if goals.Water == 0 {
		goals.Water = domain.DefaultWaterGoal
	}

	return domain.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Verified:     user.Verified,
		Age:          user.Age,
		Gender:       user.Gender,
		HeightCm:     user.HeightCm,
		TargetWeight: user.TargetWeight,
		Goals:        goals,
	}
}
