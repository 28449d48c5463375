package token

import "time"

type CreateTokenInput struct {
	// TTL is how long the token stays valid
	TTL time.Duration
}

type CreateTokenOutput struct {
	Token string
}

type ValidateTokenInput struct {
	Token string
}

type DeleteTokenInput struct {
	Token string
}
