package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"foodcycle-backend/domain"
	"foodcycle-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type (
	JWTService interface {
		GenerateToken(userID, businessID uint) string
		ValidateToken(token string) (*jwt.Token, error)
		GetSessionByToken(token string) (userID, businessID uint, err error)
	}

	jwtSessionClaim struct {
		UserID     uint `json:"user_id"`
		BusinessID uint `json:"business_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "FOODCYCLE",
	}
}

// GenerateToken encodes the session scope (user and its business) so write
// paths never depend on ambient mutable state.
func (j *jwtService) GenerateToken(userID, businessID uint) string {
	claims := jwtSessionClaim{
		userID,
		businessID,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 2)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return signed
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
}

func (j *jwtService) GetSessionByToken(token string) (uint, uint, error) {
	parsed, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, 0, domain.ErrTokenExpired
		}
		return 0, 0, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return 0, 0, domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*jwtSessionClaim)
	return claims.UserID, claims.BusinessID, nil
}
