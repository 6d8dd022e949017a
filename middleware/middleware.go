// Package middleware decodes HTTP request bodies with a skemata codec before
// they reach a handler.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/reoring/skemata"
	"github.com/reoring/skemata/report"
	"github.com/reoring/skemata/source"
)

// ctxKeyValue is a typed context key for storing decoded values.
// Using a generic struct type ensures uniqueness per A.
type ctxKeyValue[A any] struct{}

// ContextWithValue attaches a decoded value to the context.
func ContextWithValue[A any](ctx context.Context, v A) context.Context {
	return context.WithValue(ctx, ctxKeyValue[A]{}, v)
}

// ValueFromContext retrieves a decoded value from context.
func ValueFromContext[A any](ctx context.Context) (A, bool) {
	v, ok := ctx.Value(ctxKeyValue[A]{}).(A)
	return v, ok
}

// Options configures Decode.
type Options struct {
	// Format is used when the request carries no recognizable Content-Type.
	Format source.Format
	// MaxBytes bounds the request body; zero or negative means unbounded.
	MaxBytes int64
	// RejectDuplicateKeys fails JSON bodies that repeat a key within one object.
	RejectDuplicateKeys bool
	// Logger receives one entry per rejected request. Nil uses the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Bodies are limited to 1 MiB
func DefaultOptions() Options {
	return Options{Format: source.JSON, MaxBytes: 1 << 20, RejectDuplicateKeys: true}
}

// Decode returns middleware that decodes the request body with c. Failures
// are answered with 400 and the report.JSON payload; oversized bodies with
// 413. On success the value is available through ValueFromContext[A].
func Decode[A, O any](c skemata.Codec[A, O], opt Options) func(http.Handler) http.Handler {
	log := opt.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			format := opt.Format
			if ct := r.Header.Get("Content-Type"); ct != "" {
				if f, err := source.ParseFormat(ct); err == nil {
					format = f
				}
			}

			body := r.Body
			if opt.MaxBytes > 0 {
				body = http.MaxBytesReader(w, r.Body, opt.MaxBytes)
			}
			data, err := io.ReadAll(body)
			if err != nil {
				var tooBig *http.MaxBytesError
				if errors.As(err, &tooBig) {
					log.WithFields(logrus.Fields{"codec": c.Name(), "limit": tooBig.Limit}).Warn("request body too large")
					http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
					return
				}
				log.WithError(err).WithField("codec", c.Name()).Warn("reading request body")
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}

			v := source.DecodeWith(r.Context(), c, data, source.Options{Format: format, RejectDuplicateKeys: opt.RejectDuplicateKeys})
			if !v.IsOk() {
				fs := v.Err()
				log.WithFields(logrus.Fields{
					"codec":  c.Name(),
					"format": format.String(),
					"issues": len(fs),
				}).Debug("request rejected: " + fs.Error())
				writeFailures(w, fs)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v.Value())))
		})
	}
}

func writeFailures(w http.ResponseWriter, fs skemata.Failures) {
	payload, err := report.JSON(fs)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(payload)
}
