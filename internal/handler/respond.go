package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storeapi/internal/domain/model"
	"storeapi/internal/middleware"
	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errJSON(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// usecaseのerrorをHTTPレスポンスに変換する。
// 内部エラーの文言はクライアントに漏らさない。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		ve *usecase.ValidationError
		nf *usecase.NotFoundError
		is *usecase.InvalidSelectionError
		st *usecase.InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, errJSON(ve.Message))
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, errJSON(nf.Error()))
	case errors.As(err, &is):
		return c.JSON(http.StatusBadRequest, errJSON(is.Error()))
	case errors.As(err, &st):
		return c.JSON(http.StatusBadRequest, errJSON(st.Error()))
	}

	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, errJSON(he.Message))
	}

	//500
	return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
}

// AuthJWTが入れた値からActorを組み立てる
func actorFromContext(c echo.Context) (usecase.Actor, bool) {
	id, _ := c.Get(middleware.CtxUserIDKey).(string)
	if id == "" {
		return usecase.Actor{}, false
	}
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	name, _ := c.Get(middleware.CtxUserNameKey).(string)
	return usecase.Actor{ID: id, Name: name, Role: model.Role(role)}, true
}

// flexNumber は数値でも引用符付き数値（"42"）でも受け付ける。
type flexNumber struct {
	Value float64
	Set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("not a number")
		}
		n.Value = f
		n.Set = true
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	n.Value = f
	n.Set = true
	return nil
}

func queryInt(c echo.Context, key string, def int) int {
	v := c.QueryParam(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
