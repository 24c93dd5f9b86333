package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/weblarek/weblarek/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "product",
			ID:       "854cef69-976b-4c2a-a18c-2aa45046c390",
		}
		assert.Equal(t, "product with ID 854cef69-976b-4c2a-a18c-2aa45046c390 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("product", "abc")
		assert.Equal(t, "product with ID abc not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "email",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field email: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "field does not belong to step"}
		assert.Equal(t, "validation failed: field does not belong to step", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("phone", "required")
		assert.Equal(t, "validation failed for field phone: required", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewAPIError("/product/", 404, "not found")
		assert.Equal(t, "shop API error at /product/ (status 404): not found", err.Error())
		assert.False(t, errors.Is(err, pkgerrors.ErrShopUnavailable))
	})

	t.Run("without status code", func(t *testing.T) {
		err := &pkgerrors.APIError{Endpoint: "/order", Message: "connection refused"}
		assert.Equal(t, "shop API error at /order: connection refused", err.Error())
	})

	t.Run("server errors map to unavailable", func(t *testing.T) {
		for _, code := range []int{500, 502, 503} {
			err := pkgerrors.NewAPIError("/product/", code, "boom")
			assert.True(t, errors.Is(err, pkgerrors.ErrShopUnavailable), "status %d", code)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("dial tcp: refused")
		err := pkgerrors.WrapAPI("/order", 0, base)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("server", "catalog path missing", nil)
		assert.Equal(t, "configuration error in server: catalog path missing", err.Error())
	})

	t.Run("without component", func(t *testing.T) {
		err := &pkgerrors.ConfigError{Message: "bad value"}
		assert.Equal(t, "configuration error: bad value", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("no such file")
		err := pkgerrors.NewConfigError("server", "load catalog", base)
		assert.True(t, errors.Is(err, base))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapAPI("/order", 500, nil))
		assert.NoError(t, pkgerrors.WrapResource("fetch", "product", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "/product/", nil))
	})

	t.Run("wrap resource with id", func(t *testing.T) {
		err := pkgerrors.WrapResource("fetch", "product", "abc", pkgerrors.ErrNotFound)
		assert.Equal(t, "fetch product abc: not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrap resource without id", func(t *testing.T) {
		err := pkgerrors.WrapResource("load", "catalog", "", pkgerrors.ErrNotFound)
		assert.Equal(t, "load catalog: not found", err.Error())
	})

	t.Run("wrap parse", func(t *testing.T) {
		base := errors.New("unexpected end of input")
		err := pkgerrors.WrapParse("json", "/product/", base)
		assert.Equal(t, "parse json from /product/: unexpected end of input", err.Error())
		assert.True(t, errors.Is(err, base))
	})
}
