package identity

import (
	"context"
	"time"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/alimenta/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration, authentication and session operations
type AuthService struct {
	scope      RegistrationScope
	userRepo   identity.UserRepository
	orgRepo    charity.OrganizationRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	scope RegistrationScope,
	userRepo identity.UserRepository,
	orgRepo charity.OrganizationRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		scope:      scope,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Register creates a new donor or organization account. Organization signups
// create the user and the organization profile in one transaction. Admin
// accounts are seeded, never self-registered.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := identity.Role(req.Role)
	if role != identity.RoleDonor && role != identity.RoleOrganization {
		return nil, shared.NewDomainError("INVALID_ROLE", "Only donor and organization accounts can register")
	}

	if exists, err := s.userRepo.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already taken")
	}
	if exists, err := s.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "Email address is already registered")
	}

	user, err := identity.NewUser(req.Username, req.Email, req.Password, role)
	if err != nil {
		return nil, err
	}
	user.SetProfile(req.FirstName, req.LastName, req.Phone, req.Address)

	var org *charity.Organization
	if role == identity.RoleOrganization {
		if req.OrganizationName == "" || req.RegistrationNumber == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Organization name and registration number are required")
		}
		if exists, err := s.orgRepo.ExistsByRegistrationNumber(ctx, req.RegistrationNumber); err != nil {
			return nil, err
		} else if exists {
			return nil, shared.NewDomainError("REGISTRATION_TAKEN", "An organization with this registration number already exists")
		}
		org, err = charity.NewOrganization(user.ID, req.OrganizationName, req.RegistrationNumber)
		if err != nil {
			return nil, err
		}
		org.SetContact("", req.Address, req.Phone, req.Email, user.DisplayName())
	}

	err = s.scope.Execute(ctx, func(repos RegistrationRepositories) error {
		if err := repos.UserRepo().Save(ctx, user); err != nil {
			return err
		}
		if org != nil {
			return repos.OrganizationRepo().Save(ctx, org)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", user.Role.String()))

	return s.issueTokens(user, org)
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown username", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}
	if !user.Active {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", req.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	var org *charity.Organization
	if user.Role == identity.RoleOrganization {
		org, err = s.orgRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			s.logger.Error("Organization account without organization row",
				zap.String("user_id", user.ID.String()), zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load organization profile")
		}
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		// login still succeeds
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return s.issueTokens(user, org)
}

// Logout revokes the access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		return shared.ErrUnauthorized
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	var org *charity.Organization
	var orgID *uuid.UUID
	if user.Role == identity.RoleOrganization {
		org, err = s.orgRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load organization profile")
		}
		orgID = &org.ID
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken, user.Username, orgID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	return &AuthResponse{
		Tokens: *pair,
		User:   ToUserResponse(user, orgID),
	}, nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var orgID *uuid.UUID
	if user.Role == identity.RoleOrganization {
		if org, err := s.orgRepo.FindByUserID(ctx, user.ID); err == nil {
			orgID = &org.ID
		}
	}

	resp := ToUserResponse(user, orgID)
	return &resp, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (s *AuthService) issueTokens(user *identity.User, org *charity.Organization) (*AuthResponse, error) {
	var orgID *uuid.UUID
	if org != nil {
		orgID = &org.ID
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:         user.ID,
		Username:       user.Username,
		Role:           user.Role.String(),
		OrganizationID: orgID,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResponse{
		Tokens: *pair,
		User:   ToUserResponse(user, orgID),
	}, nil
}
