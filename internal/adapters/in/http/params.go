package http

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func bindOrderID(c echo.Context) (kernel.OrderID, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.OrderID(id), nil
}

func bindQueryParty(c echo.Context, name string) (kernel.Party, error) {
	var raw string
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &raw); err != nil {
		return kernel.Party{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewParty(raw)
}

// bindBody decodes the JSON body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
