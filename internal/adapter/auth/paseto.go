package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/core/domain"
	"github.com/rgladkov/shopcheckout/internal/core/port"
)

// PasetoToken verifies tokens issued by the accounts service. Both sides
// share the symmetric key, provided through configuration.
type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New(conf *config.Auth) (port.TokenService, error) {
	key, err := paseto.V4SymmetricKeyFromHex(conf.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("error parsing token key: %w", err)
	}

	parser := paseto.NewParser()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(payload *port.TokenPayload) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(1000 * time.Hour))

	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
