package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/forkd-labs/backend/internal/model"
	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(r.Context(), r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
		ctx = xcontext.WithSessionStore(ctx, router.sessionStore)
		ctx = xcontext.WithStartTime(ctx, time.Now())
		ctx = xcontext.WithResponseHolder(ctx)

		if token := extractAccessToken(r, router.cfg.Auth.AccessToken.Name); token != "" {
			var info model.AccessToken
			if err := router.tokenEngine.Verify(token, &info); err == nil {
				ctx = xcontext.WithRequestUserID(ctx, info.ID)
			}
		}

		defer func() {
			for _, closer := range router.closers {
				closer(ctx)
			}
		}()

		if r.Method != method {
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Not supported method %s", r.Method))
			return
		}

		var req Request
		if err := bindRequest(r, method, &req); err != nil {
			router.logger.Debugf("cannot bind the request: %v", err)
			xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		for _, middleware := range router.befores {
			if err := middleware(ctx); err != nil {
				xcontext.SetError(ctx, err)
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.SetError(ctx, err)
			return
		}

		xcontext.SetResponse(ctx, resp)
		for _, middleware := range router.afters {
			if err := middleware(ctx); err != nil {
				xcontext.SetError(ctx, err)
				return
			}
		}
	}
}

func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		values := map[string]string{}
		for key, value := range r.URL.Query() {
			if len(value) > 0 {
				values[key] = value[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           req,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(values)

	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		return nil
	}

	return errorx.New(errorx.BadRequest, "Not supported method %s", method)
}

func extractAccessToken(r *http.Request, cookieName string) string {
	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}
		return ""
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
