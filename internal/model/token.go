package model

import "time"

// TokenIssuer signs and validates access tokens.
type TokenIssuer interface {
	IssueAccessToken(principal Principal) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (Principal, error)
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
