// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

// Package sec provides the identity and authorization primitives for Melodia.
//
// # Architecture
//
// Melodia does not issue credentials itself — actor tokens are minted by an
// external identity provider and verified here. This package isolates the
// security-sensitive code (JWT verification, the role set, the policy table)
// from the domain logic, and is injected into the transport layer via the
// middleware's TokenVerifier interface.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside an actor token.
//
// # Why custom claims?
//
// By embedding the actor's ID and role directly inside the JWT, the
// middleware can reconstruct the acting principal WITHOUT querying a user
// store on every API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	ActorID string `json:"uid"`
	Role    string `json:"rol"`
}

// Actor converts verified claims into the acting principal.
func (c *AuthClaims) Actor() *Actor {
	return &Actor{ID: c.ActorID, Role: Role(c.Role)}
}

// TokenService verifies RS256-signed actor tokens.
type TokenService struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenService creates a new TokenService.
// It reads the identity provider's RSA public key from the given path.
func NewTokenService(publicKeyPath, issuer string) (*TokenService, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenService{
		publicKey: publicKey,
		issuer:    issuer,
	}, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// Tokens carrying a role outside the closed set are rejected outright, so
// downstream policy evaluation only ever sees known roles.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if !Role(claims.Role).Valid() {
		return nil, fmt.Errorf("sec: unknown role %q", claims.Role)
	}

	return claims, nil
}
