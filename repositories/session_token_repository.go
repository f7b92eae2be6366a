package repositories

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/coursedesk/coursedesk-backend/models"
)

type SessionTokenRepository struct {
	signingSecret []byte
}

func NewSessionTokenRepository(signingSecret []byte) SessionTokenRepository {
	return SessionTokenRepository{
		signingSecret: signingSecret,
	}
}

// Claims embeds jwt.RegisteredClaims for expiry handling.
type Claims struct {
	UserId int64  `json:"uid"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

var validationAlgo = jwt.SigningMethodHS256

func (repo SessionTokenRepository) EncodeSessionToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		UserId: creds.ActorId,
		Role:   string(creds.Role),
		Name:   creds.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "coursedesk",
		},
	}

	token := jwt.NewWithClaims(validationAlgo, claims)
	return token.SignedString(repo.signingSecret)
}

func (repo SessionTokenRepository) ValidateSessionToken(sessionToken string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return repo.signingSecret, nil
	}

	token, err := jwt.ParseWithClaims(sessionToken, &Claims{}, keyFunc)
	if err != nil {
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "error parsing session token claims"),
		)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid session token")
	}
	return models.Credentials{
		ActorId: claims.UserId,
		Role:    models.UserRole(claims.Role),
		Name:    claims.Name,
	}, nil
}
