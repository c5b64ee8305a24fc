package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/heuristic"
)

type signupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type codeInput struct {
	Code           string `json:"code"`
	Language       string `json:"language"`
	TargetLanguage string `json:"targetLanguage"`
}

func (a *Adapter) signup(c fiber.Ctx) error {
	var input signupInput
	if err := c.Bind().Body(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := a.auth.SignUp(c.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		return a.handleError(c, err)
	}

	return respondData(c, http.StatusCreated, fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := a.auth.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return a.handleError(c, err)
	}

	return respondData(c, http.StatusOK, fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

func (a *Adapter) me(c fiber.Ctx) error {
	identity := identityFromCtx(c)

	user, err := a.auth.GetUser(c.Context(), identity.ID)
	if err != nil {
		return a.handleError(c, err)
	}

	return respondData(c, http.StatusOK, fiber.Map{"user": user.Public()})
}

// verify confirms the bearer token is still good. The middleware did
// the actual work; reaching the handler means success.
func (a *Adapter) verify(c fiber.Ctx) error {
	identity := identityFromCtx(c)
	return respondData(c, http.StatusOK, fiber.Map{"user": identity})
}

func (a *Adapter) analyze(c fiber.Ctx) error {
	var input codeInput
	if err := c.Bind().Body(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := a.code.Analyze(c.Context(), identityFromCtx(c), input.Code, input.Language)
	if err != nil {
		return a.handleError(c, err)
	}
	return respondData(c, http.StatusOK, result)
}

func (a *Adapter) debug(c fiber.Ctx) error {
	var input codeInput
	if err := c.Bind().Body(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := a.code.Debug(c.Context(), identityFromCtx(c), input.Code, input.Language)
	if err != nil {
		return a.handleError(c, err)
	}
	return respondData(c, http.StatusOK, result)
}

func (a *Adapter) translate(c fiber.Ctx) error {
	var input codeInput
	if err := c.Bind().Body(&input); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := a.code.Translate(c.Context(), identityFromCtx(c), input.Code, input.Language, input.TargetLanguage)
	if err != nil {
		return a.handleError(c, err)
	}
	return respondData(c, http.StatusOK, result)
}

func (a *Adapter) languages(c fiber.Ctx) error {
	return respondData(c, http.StatusOK, fiber.Map{
		"languages": heuristic.SupportedLanguages,
	})
}

func (a *Adapter) health(c fiber.Ctx) error {
	return respondData(c, http.StatusOK, fiber.Map{
		"status":    "ok",
		"providers": a.providers,
	})
}

func respondData(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func (a *Adapter) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)

	if status == http.StatusInternalServerError {
		a.logger.Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		if !a.devMode {
			return respondError(c, status, "internal server error")
		}
	}
	return respondError(c, status, err.Error())
}

// mapErrorToStatus maps core error values to HTTP status codes.
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, core.ErrInvalidAuthHeader),
		errors.Is(err, core.ErrTokenInvalid),
		errors.Is(err, core.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrCodeRequired),
		errors.Is(err, core.ErrLanguageRequired),
		errors.Is(err, core.ErrCodeTooLong):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
