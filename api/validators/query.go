package validators

import (
	"net/url"
	"strconv"

	pkgerrors "github.com/stridewell/storefront-backend/pkg/errors"
)

// QueryInt parses an optional integer query parameter, returning def when
// absent.
func QueryInt(values url.Values, key string, def int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" must be an integer")
	}
	return parsed, nil
}
