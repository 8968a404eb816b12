package echoapi

import (
	"crypto/subtle"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zyraworkhub/zyra/core"
)

// adminKeyMiddleware gates admin-facing routes behind a static bearer key
// when one is configured. Returns nil (no gate) otherwise — whether these
// routes need protection is a deployment decision, not ours.
func adminKeyMiddleware(conf *core.Config) echo.MiddlewareFunc {
	key := conf.Server.AdminAPIKey
	if key == "" {
		return nil
	}
	return middleware.KeyAuth(func(got string, ctx echo.Context) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1, nil
	})
}

// asMiddlewares lifts an optional middleware into the variadic form echo's
// route registration expects.
func asMiddlewares(mw echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if mw == nil {
		return nil
	}
	return []echo.MiddlewareFunc{mw}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// queryLimit parses the optional ?limit=N parameter; 0 means no truncation.
func queryLimit(ctx echo.Context) int {
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func queryFlag(ctx echo.Context, name string) bool {
	return ctx.QueryParam(name) == "true"
}
