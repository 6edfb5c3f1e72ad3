package services

import (
	"errors"
	"os"
	"time"

	"github.com/estateregistry-api/database"
	"github.com/estateregistry-api/dto"
	"github.com/estateregistry-api/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens are stateless: logout only clears the cookie, so a
// token stays valid until this expiry.
const sessionLifetime = 15 * 24 * time.Hour

// Register creates a new user account and issues a session token.
func Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	// Check if login id already exists
	var existingUser models.User
	result := database.DB.Where("login_id = ?", req.LoginID).First(&existingUser)
	if result.RowsAffected > 0 {
		return nil, ErrConflict
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		LoginID:  req.LoginID,
		Password: string(hashedPassword),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, expiresAt, err := GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
}

// Login authenticates a user and issues a session token. Unknown
// login id and wrong password fail identically.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	result := database.DB.Where("login_id = ?", req.LoginID).First(&user)
	if result.Error != nil {
		return nil, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
}

// GetUser retrieves a user by ID
func GetUser(id string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GenerateToken generates a signed session token for a user
func GenerateToken(userID string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(sessionLifetime)

	claims := dto.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns claims if
// valid. Expired, malformed and badly signed tokens all come back as
// an error; callers treat any error as "not authenticated".
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
