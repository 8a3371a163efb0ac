package token

import (
	"strings"
	"time"

	paseto "aidanwoods.dev/go-paseto"

	"github.com/medisage/medisage_backend/config"
)

type Config struct {
	Issuer   string
	Audience string

	// AccessTTL applies to every token regardless of account kind.
	AccessTTL time.Duration
}

// Manager issues and verifies v4.local PASETO tokens. There is no refresh,
// revocation, or rotation: a token is valid until its expiry and nothing else.
type Manager struct {
	cfg   Config
	key   paseto.V4SymmetricKey
	parse paseto.Parser
}

func New(cfg Config, key paseto.V4SymmetricKey) (*Manager, error) {
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	// Zero means unset. A negative TTL is honored as-is so expiry
	// behavior stays testable.
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = 24 * time.Hour
	}

	p := paseto.NewParser()
	p.AddRule(paseto.IssuedBy(cfg.Issuer))
	p.AddRule(paseto.ForAudience(cfg.Audience))
	p.AddRule(paseto.NotExpired())

	return &Manager{cfg: cfg, key: key, parse: p}, nil
}

// NewFromCentral builds a Manager from the central config block.
func NewFromCentral(cfg config.PasetoConfig) (*Manager, error) {
	hex := strings.TrimSpace(cfg.LocalKeyHex)
	if hex == "" {
		return nil, ErrConfig{Msg: "local_key_hex is required"}
	}
	key, err := paseto.V4SymmetricKeyFromHex(hex)
	if err != nil {
		return nil, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return New(Config{
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
		AccessTTL: time.Duration(cfg.AccessTTLHours) * time.Hour,
	}, key)
}

// Issue creates a token for the given account id and kind.
func (m *Manager) Issue(accountID string, kind Kind) (string, error) {
	if kind != KindUser && kind != KindClinic {
		return "", ErrConfig{Msg: "unknown account kind"}
	}

	now := time.Now()

	tok := paseto.NewToken()
	tok.SetIssuer(m.cfg.Issuer)
	tok.SetAudience(m.cfg.Audience)
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(m.cfg.AccessTTL))
	tok.SetSubject(accountID)

	tok.SetString("uid", accountID)
	tok.SetString("act", string(kind))

	return tok.V4Encrypt(m.key, nil), nil
}

// Verify parses and validates a token string and returns its claims.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	tok, err := m.parse.ParseV4Local(m.key, tokenStr, nil)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	claims, err := extractClaims(tok)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	return claims, nil
}

func extractClaims(tok *paseto.Token) (*Claims, error) {
	iat, err := tok.GetIssuedAt()
	if err != nil {
		return nil, err
	}
	exp, err := tok.GetExpiration()
	if err != nil {
		return nil, err
	}

	uid, err := tok.GetString("uid")
	if err != nil {
		return nil, err
	}
	act, err := tok.GetString("act")
	if err != nil {
		return nil, err
	}
	kind := Kind(act)
	if kind != KindUser && kind != KindClinic {
		return nil, ErrConfig{Msg: "unknown account kind in token"}
	}

	return &Claims{
		AccountID: uid,
		Kind:      kind,
		IssuedAt:  iat,
		ExpiresAt: exp,
	}, nil
}
