// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-phonebook/restdata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// maxLoggedBody is the most request body the access log will copy.
const maxLoggedBody = 4096

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diffeo",
			Subsystem: "phonebook",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method and status code",
		},
		[]string{"method", "code"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "diffeo",
			Subsystem: "phonebook",
			Name:      "http_request_duration_seconds",
			Help:      "Time to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration)
}

// unknownEndpoint answers any request that matched no route.
func unknownEndpoint(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Content-Type", restdata.JSONMediaType)
	resp.WriteHeader(http.StatusNotFound)
	_ = restdata.Encode(resp, restdata.ErrorResponse{Error: "unknown endpoint"})
}

// cors permits requests from any origin.  Preflight requests are
// answered here and never reach the router.
func cors(resp http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	h := resp.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
		h.Set("Access-Control-Allow-Methods", "GET, HEAD, PUT, POST, DELETE")
		if headers := req.Header.Get("Access-Control-Request-Headers"); headers != "" {
			h.Set("Access-Control-Allow-Headers", headers)
		}
		h.Set("Access-Control-Max-Age", "86400")
		resp.WriteHeader(http.StatusNoContent)
		return
	}
	next(resp, req)
}

// accessLog writes one log line per request with its method, path,
// status, latency, and body.
type accessLog struct {
	Logger *logrus.Logger
	Clock  clock.Clock
}

func (l *accessLog) ServeHTTP(resp http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := l.Clock.Now()
	body := peekBody(req)

	next(resp, req)

	res := resp.(negroni.ResponseWriter)
	fields := logrus.Fields{
		"method":   req.Method,
		"path":     req.URL.RequestURI(),
		"status":   res.Status(),
		"duration": l.Clock.Now().Sub(start),
		"remote":   req.RemoteAddr,
	}
	if body != "" {
		fields["body"] = body
	}
	l.Logger.WithFields(fields).Info("request")
}

// peekBody copies the start of a request body for logging, leaving
// the full body readable by later handlers.
func peekBody(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	prefix, err := ioutil.ReadAll(io.LimitReader(req.Body, maxLoggedBody))
	req.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(prefix), req.Body),
		Closer: req.Body,
	}
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(prefix))
}

type readCloser struct {
	io.Reader
	io.Closer
}

// requestMetrics records Prometheus request counters.
type requestMetrics struct {
	Clock clock.Clock
}

func (m *requestMetrics) ServeHTTP(resp http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := m.Clock.Now()
	next(resp, req)
	res := resp.(negroni.ResponseWriter)
	httpRequests.WithLabelValues(req.Method, strconv.Itoa(res.Status())).Inc()
	httpDuration.WithLabelValues(req.Method).Observe(m.Clock.Now().Sub(start).Seconds())
}
