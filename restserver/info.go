// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

// infoTimeFormat renders the /info timestamp the way a browser's
// Date.toString() would.
const infoTimeFormat = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

var infoTemplate = template.Must(template.New("info").Parse(
	`<p>Phonebook has info for {{.Count}} people</p>
<p>{{.Time}}</p>
`))

type infoData struct {
	Count int
	Time  string
}

// Info serves a small HTML summary of the phonebook.
func (api *restAPI) Info(resp http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		resp.Header().Set("Allow", "GET, HEAD")
		http.Error(resp, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := api.Phonebook.Count(req.Context())
	if err != nil {
		api.Config.Logger.WithError(err).Error("Could not count entries")
		http.Error(resp, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = infoTemplate.Execute(&buf, infoData{
		Count: count,
		Time:  api.Config.Clock.Now().Format(infoTimeFormat),
	})
	if err != nil {
		api.Config.Logger.WithError(err).Error("Could not render info page")
		http.Error(resp, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp.Header().Set("Content-Type", "text/html; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(resp); err != nil {
		api.Config.Logger.WithFields(logrus.Fields{
			"path": req.URL.Path,
		}).WithError(err).Warn("Error writing response")
	}
}
