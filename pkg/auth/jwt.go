package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenGameMatch = errors.New("token was issued for another game")
)

// GameClaims binds a bearer to the game it created. There are no user accounts,
// holding the token is what allows dropping pieces into that game.
type GameClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateGameToken creates a HS256 token for gameID, valid for the configured TTL
func (tm *TokenManager) GenerateGameToken(gameID string) (string, error) {
	id, err := newTokenID()
	if err != nil {
		return "", err
	}

	now := tm.now()
	claims := &GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   gameID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ValidateGameToken checks the signature and expiry and returns the claims
func (tm *TokenManager) ValidateGameToken(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &GameClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))

	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*GameClaims); ok && token.Valid && claims.GameID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateForGame is ValidateGameToken plus a check that the token belongs to gameID.
func (tm *TokenManager) ValidateForGame(tokenString, gameID string) (*GameClaims, error) {
	claims, err := tm.ValidateGameToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.GameID != gameID {
		return nil, ErrTokenGameMatch
	}
	return claims, nil
}
