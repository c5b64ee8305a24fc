package fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/pkg/crypto"
)

const identityKey = "identity"

// extractBearer pulls the token out of the Authorization header.
func extractBearer(c fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", core.ErrMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", core.ErrInvalidAuthHeader
	}
	return parts[1], nil
}

// resolveIdentity verifies the token, consulting the cache first so hot
// tokens skip the store read. Cache failures fall through to the real
// verification path.
func (a *Adapter) resolveIdentity(c fiber.Ctx, token string) (*core.Identity, error) {
	var tokenHash string
	if a.cache != nil {
		tokenHash = crypto.HashToken(token)
		if identity, err := a.cache.Get(tokenHash); err == nil {
			return identity, nil
		}
	}

	identity, err := a.auth.Identify(c.Context(), token)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		_ = a.cache.Set(tokenHash, identity)
	}
	return identity, nil
}

// requireAuth rejects the request unless a valid bearer token is
// presented.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	token, err := extractBearer(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}

	identity, err := a.resolveIdentity(c, token)
	if err != nil {
		return respondError(c, mapErrorToStatus(err), err.Error())
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// optionalAuth attaches an identity when a valid token is presented and
// lets the request through either way. Used on guest-accessible code
// routes.
func (a *Adapter) optionalAuth(c fiber.Ctx) error {
	token, err := extractBearer(c)
	if err != nil {
		return c.Next()
	}

	if identity, err := a.resolveIdentity(c, token); err == nil {
		c.Locals(identityKey, identity)
	}
	return c.Next()
}

func identityFromCtx(c fiber.Ctx) *core.Identity {
	identity, _ := c.Locals(identityKey).(*core.Identity)
	return identity
}
