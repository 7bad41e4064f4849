package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Pools are shared across requests. Configuration documents are small, but
// resolve traffic from pipeline launchers arrives in bursts.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and, for clients
// that advertise gzip support, compresses responses.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		// Headers must be in place before the handler's first write flushes
		// them, including the implicit 200 path.
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// inflateRequestBody swaps req.Body for a pooled gzip reader and strips the
// Content-Encoding header. It reports false after answering 400 when the
// body is not actual gzip data.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		http.Error(w, "invalid gzip body", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledBody{Reader: zr, release: func() {
		zr.Close()
		gzipReaderPool.Put(zr)
	}}
	req.Header.Del("Content-Encoding")

	return true
}

// pooledBody is the replacement request body. Close returns the underlying
// gzip reader to its pool exactly once; a second Put of the same reader
// would hand it out to two requests at once.
type pooledBody struct {
	io.Reader
	release func()
}

func (b *pooledBody) Close() error {
	if b.release != nil {
		b.release()
		b.release = nil
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
