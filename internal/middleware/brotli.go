package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// DefaultMinLength is the smallest body worth compressing.
const DefaultMinLength = 1024

// bufferedWriter holds the whole body until the handler returns. Payloads here
// are a single overview or workbook, so buffering is bounded by the record size.
type bufferedWriter struct {
	gin.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferedWriter) WriteHeader(code int) { w.status = code }

func (w *bufferedWriter) WriteHeaderNow() {}

func (w *bufferedWriter) Write(data []byte) (int, error) { return w.body.Write(data) }

func (w *bufferedWriter) WriteString(s string) (int, error) { return w.body.WriteString(s) }

func (w *bufferedWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *bufferedWriter) Size() int { return w.body.Len() }

func (w *bufferedWriter) Written() bool { return w.body.Len() > 0 || w.status != 0 }

// Brotli compresses responses of at least minLength bytes for clients that
// send "Accept-Encoding: br". Smaller bodies are passed through untouched.
func Brotli(minLength int) gin.HandlerFunc {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	return func(c *gin.Context) {
		if !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		orig := c.Writer
		bw := &bufferedWriter{ResponseWriter: orig}
		c.Writer = bw
		// A panicking handler must leave the real writer to gin.Recovery.
		defer func() { c.Writer = orig }()
		c.Next()
		c.Writer = orig

		orig.Header().Add("Vary", "Accept-Encoding")
		status := bw.Status()
		if bw.body.Len() < minLength || status == http.StatusNoContent || status == http.StatusNotModified {
			orig.WriteHeader(status)
			_, _ = orig.Write(bw.body.Bytes())
			return
		}

		var compressed bytes.Buffer
		enc := brotli.NewWriterLevel(&compressed, brotli.DefaultCompression)
		if _, err := enc.Write(bw.body.Bytes()); err != nil {
			_ = c.Error(err)
		}
		if err := enc.Close(); err != nil {
			_ = c.Error(err)
		}

		h := orig.Header()
		h.Set("Content-Encoding", "br")
		h.Set("Content-Length", strconv.Itoa(compressed.Len()))
		orig.WriteHeader(status)
		_, _ = orig.Write(compressed.Bytes())
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		// drop any ";q=" weight
		name, _, _ := strings.Cut(enc, ";")
		if strings.EqualFold(strings.TrimSpace(name), "br") {
			return true
		}
	}
	return false
}
