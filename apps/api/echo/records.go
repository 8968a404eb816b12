package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/record"
	"github.com/zyraworkhub/zyra/services/metrics"
)

type recordApi struct {
	svc      *record.Service
	validate *validator.Validate
}

func registerRecordAPI(g *echo.Group, conf *core.Config, svc *record.Service, validate *validator.Validate, adminMW echo.MiddlewareFunc) {
	api := recordApi{
		svc:      svc,
		validate: validate,
	}
	admin := asMiddlewares(adminMW)

	// public submission endpoints
	g.POST("/contact", api.createContact)
	g.POST("/speakers", api.createSpeaker)

	// admin-facing endpoints
	g.GET("/speakers", api.querySpeakers, admin...)
	g.GET("/contact", api.queryContacts, admin...)
	g.GET("/admins", api.queryAdmins, admin...)
	g.POST("/admins", api.createAdmin, admin...)

	if conf.Debug {
		g.GET("/debug-write", api.debugWrite)
	}
}

// Handlers

func (api *recordApi) createSpeaker(ctx echo.Context) error {
	var data record.NewSpeakerApplication
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSpeakerApplication")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	app, err := api.svc.CreateSpeaker(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating speaker application")
	}
	metrics.RecordCreated(record.CollectionSpeakers)

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": app.ID})
}

func (api *recordApi) querySpeakers(ctx echo.Context) error {
	apps, err := api.svc.ListSpeakers(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing speaker applications")
	}
	return ctx.JSON(http.StatusOK, apps)
}

func (api *recordApi) createContact(ctx echo.Context) error {
	var data record.NewContactSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewContactSubmission")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.CreateContact(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "creating contact submission")
	}
	metrics.RecordCreated(record.CollectionContacts)

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true})
}

func (api *recordApi) queryContacts(ctx echo.Context) error {
	subs, err := api.svc.ListContacts(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing contact submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *recordApi) createAdmin(ctx echo.Context) error {
	var data record.NewAdminEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAdminEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	entry, err := api.svc.CreateAdmin(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating admin entry")
	}
	metrics.RecordCreated(record.CollectionAdmins)

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "entry": entry})
}

func (api *recordApi) queryAdmins(ctx echo.Context) error {
	entries, err := api.svc.ListAdmins(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing admin entries")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *recordApi) debugWrite(ctx echo.Context) error {
	entry, err := api.svc.DebugWriteSpeaker(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "writing debug entry")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"ok": true, "entry": entry})
}
