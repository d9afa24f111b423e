// Package identity validates tokens minted by the external identity
// provider and resolves the caller's user and company ids from claims.
package identity

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opservo/fieldops/internal/config"
)

type Client struct {
	config config.AuthConfig

	mu        sync.Mutex
	publicKey *rsa.PublicKey
}

func NewClient(cfg config.AuthConfig) *Client {
	return &Client{config: cfg}
}

// ValidateToken parses an IdP-issued RS256 token and returns its claims.
func (c *Client) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	key, err := c.signingKey()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims format")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, fmt.Errorf("token expired")
		}
	}

	return claims, nil
}

func (c *Client) signingKey() (*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.publicKey != nil {
		return c.publicKey, nil
	}

	realmURL := fmt.Sprintf("%s/realms/%s", c.config.IdentityURL, c.config.Realm)
	resp, err := http.Get(realmURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned %s", resp.Status)
	}

	var realm struct {
		PublicKey string `json:"public_key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&realm); err != nil {
		return nil, err
	}

	key, err := parseRSAPublicKey(realm.PublicKey)
	if err != nil {
		return nil, err
	}

	c.publicKey = key
	return key, nil
}

func parseRSAPublicKey(b64 string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("identity provider key is not RSA")
	}
	return key, nil
}
