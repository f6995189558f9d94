// Package services содержит реализации сервисов безопасности.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"notesapi/internal/domain/entities"
	"notesapi/internal/domain/services"
	svc "notesapi/internal/ports/services"
	"notesapi/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue          = "Issue"
	methodExtractSubject = "ExtractSubject"
	methodValidate       = "Validate"

	msgIssuingToken   = "issuing access token"
	msgTokenIssued    = "token issued successfully"
	msgParsingToken   = "parsing token"
	msgTokenExpired   = "token has expired"
	msgTokenMalformed = "token cannot be parsed"
	//nolint:gosec
	msgBadSignature = "token signature does not verify"

	errCtxIssuingToken   = "issuing token"
	errCtxExtractSubject = "extracting subject"
)

// ErrInvalidAlgorithm возвращается при неожиданном алгоритме подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims адаптирует доменную модель к формату библиотеки JWT.
type Claims struct {
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService поверх HS256.
// Конфигурация неизменна после создания, сервис безопасен для
// конкурентного использования.
type ServiceJWT struct {
	config services.TokenConfig
}

// NewJWT создает новый сервис токенов. Секрет трактуется как сырые байты,
// для HMAC-SHA256 рекомендуется не менее 32 байт.
func NewJWT(secret string, ttl time.Duration, issuer string) svc.TokenService {
	return &ServiceJWT{
		config: services.TokenConfig{
			Secret: []byte(secret),
			TTL:    ttl,
			Issuer: issuer,
		},
	}
}

// Issue выпускает подписанный токен для пользователя. Субъект токена - email.
func (s *ServiceJWT) Issue(ctx context.Context, user *entities.User) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("userID", user.ID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.Secret) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, services.ErrSigningToken)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.TTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.Secret)
	if err != nil {
		log.Error(ctx, "error signing token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrSigningToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// ExtractSubject проверяет подпись токена и возвращает его субъект.
func (s *ServiceJWT) ExtractSubject(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodExtractSubject))
	log.Debug(ctx, msgParsingToken)

	claims, err := s.parseClaims(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExpiredToken):
			log.Debug(ctx, msgTokenExpired)
		case errors.Is(err, services.ErrBadSignature):
			log.Debug(ctx, msgBadSignature)
		default:
			log.Debug(ctx, msgTokenMalformed, zap.Error(err))
		}
		return "", fmt.Errorf("%s: %w", errCtxExtractSubject, err)
	}

	return claims.Subject, nil
}

// Validate сверяет токен с ожидаемым субъектом. Токен действителен, только
// если подпись верна, субъект присутствует и побайтово совпадает с ожидаемым,
// а срок действия строго в будущем.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString, expectedSubject string) services.TokenStatus {
	log := logger.Log(ctx).With(zap.String("method", methodValidate))

	claims, err := s.parseClaims(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyToken):
			return services.TokenEmpty
		case errors.Is(err, services.ErrExpiredToken):
			log.Debug(ctx, msgTokenExpired)
			return services.TokenExpired
		case errors.Is(err, services.ErrBadSignature):
			log.Debug(ctx, msgBadSignature)
			return services.TokenBadSignature
		default:
			log.Debug(ctx, msgTokenMalformed, zap.Error(err))
			return services.TokenMalformed
		}
	}

	if claims.Subject == "" || expectedSubject == "" || claims.Subject != expectedSubject {
		return services.TokenSubjectMismatch
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return services.TokenExpired
	}

	return services.TokenValid
}

// parseClaims разбирает строку токена и проверяет подпись.
func (s *ServiceJWT) parseClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, services.ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.Secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", services.ErrExpiredToken, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %w", services.ErrBadSignature, err)
		default:
			return nil, fmt.Errorf("%w: %w", services.ErrMalformedToken, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, services.ErrMalformedToken
	}

	return claims, nil
}
