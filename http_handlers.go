package main

// this file contains implementation of HTTP handlers - REST API

import (
	"net/http"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

var (
	jwtSecret []byte
	registry  *Registry
	editor    *Editor
	session   *Session

	// one coarse lock around registry, editor and session: every
	// operation runs to completion under it, so no request can observe
	// a half-applied mutation.
	stateMu sync.Mutex
)

func NewHTTPRouter(_registry *Registry, _editor *Editor, _session *Session, secret []byte) *echo.Echo {
	registry = _registry
	editor = _editor
	session = _session
	jwtSecret = secret

	r := echo.New()
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
	}))
	router := r.Group("/api")
	router.GET("/health", healthCheckHandler)
	router.POST("/login", loginHandler)
	router.GET("/stations", listStationsHandler)
	router.GET("/stations/:id", stationByIdHandler)

	editGroup := router.Group("/edit")
	editGroup.Use(middleware.JWT(jwtSecret))
	{
		editGroup.POST("/stations", newStationHandler)
		editGroup.PUT("/stations/:id", updateStationHandler)
		editGroup.DELETE("/stations/:id", deleteStationHandler)
	}

	radioGroup := router.Group("/radio")
	{
		radioGroup.GET("/now_playing", radioGetNowPlayingHandler)
		radioGroup.POST("/tune/:id", radioTuneHandler)
	}

	return r
}

func healthCheckHandler(c echo.Context) error {
	return c.String(http.StatusOK, "I am up and running!")
}

func loginHandler(c echo.Context) error {
	listenerID := c.FormValue("listener_id")
	if listenerID == "" {
		listenerID = uuid.New().String()
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["listener_id"] = listenerID
	claims["exp"] = time.Now().Add(time.Hour * 72).Unix()
	t, err := token.SignedString(jwtSecret)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":       t,
		"listener_id": listenerID,
	})
}

func listStationsHandler(c echo.Context) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	return c.JSON(http.StatusOK, *registry)
}

func stationByIdHandler(c echo.Context) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	i := FindIndex(*registry, c.Param("id"))
	if i == -1 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": ErrStationNotFound.Error(),
		})
	}
	return c.JSON(http.StatusOK, (*registry)[i])
}

type stationForm struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Source      []Source `json:"source"`
}

func newStationHandler(c echo.Context) error {
	form := stationForm{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Malformed station data",
		})
	}

	stateMu.Lock()
	defer stateMu.Unlock()

	draft := editor.OpenForNew()
	draft.Title = form.Title
	draft.Description = form.Description
	if len(form.Source) > 0 {
		draft.Source = form.Source
	}
	if err := editor.CommitAdd(draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": err.Error(),
		})
	}

	i := FindIndex(*registry, DeriveStationID(form.Title))
	return c.JSON(http.StatusOK, (*registry)[i])
}

func updateStationHandler(c echo.Context) error {
	form := stationForm{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Malformed station data",
		})
	}

	stateMu.Lock()
	defer stateMu.Unlock()

	draft, err := editor.OpenForEdit(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": err.Error(),
		})
	}
	draft.Title = form.Title
	draft.Description = form.Description
	if len(form.Source) > 0 {
		draft.Source = form.Source
	}
	if err := editor.CommitEdit(draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, draft)
}

func deleteStationHandler(c echo.Context) error {
	id := c.Param("id")

	stateMu.Lock()
	defer stateMu.Unlock()

	editor.CommitDelete(id)
	if session.Detach(id) {
		// retune so the player is never left on a removed station
		session.HandleRoute("/")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Done",
	})
}

func radioGetNowPlayingHandler(c echo.Context) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	cur := session.Current()
	if cur == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"state":   "idle",
			"station": nil,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"state":   "tuned",
		"station": cur,
		"source":  cur.Source,
	})
}

func radioTuneHandler(c echo.Context) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	// the request path ends in the candidate station id, so it feeds
	// the session the same way a navigation event would
	session.HandleRoute(c.Request().URL.Path)

	cur := session.Current()
	if cur == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": ErrUnknownStation.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"station": cur,
		"route":   "/" + cur.ID,
	})
}
