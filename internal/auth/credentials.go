package auth

import (
	"context"
	"errors"
	"os"
)

// Static errors for credential loading.
var (
	ErrCredentialsRequired = errors.New("API key and token are required")
	ErrEnvNotSet           = errors.New("TRELLO_KEY and TRELLO_TOKEN must be set")
)

// Environment variables read by NewEnvCredentials.
const (
	EnvKey   = "TRELLO_KEY"
	EnvToken = "TRELLO_TOKEN"
)

// Credentials is the key/token pair Trello authenticates with.
type Credentials struct {
	Key   string
	Token string
}

// CredentialsProvider supplies the credential pair attached to every
// request.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentials is a provider backed by a fixed key/token pair.
type StaticCredentials struct {
	creds Credentials
}

// NewStaticCredentials creates a static provider. Empty values are
// rejected so a misconfigured caller fails at construction rather than
// on the first request.
func NewStaticCredentials(key, token string) (*StaticCredentials, error) {
	if key == "" || token == "" {
		return nil, ErrCredentialsRequired
	}

	return &StaticCredentials{
		creds: Credentials{Key: key, Token: token},
	}, nil
}

// Credentials implements CredentialsProvider.
func (p *StaticCredentials) Credentials(ctx context.Context) (Credentials, error) {
	return p.creds, nil
}

// NewEnvCredentials creates a static provider from the TRELLO_KEY and
// TRELLO_TOKEN environment variables.
func NewEnvCredentials() (*StaticCredentials, error) {
	key := os.Getenv(EnvKey)
	token := os.Getenv(EnvToken)

	if key == "" || token == "" {
		return nil, ErrEnvNotSet
	}

	return NewStaticCredentials(key, token)
}
