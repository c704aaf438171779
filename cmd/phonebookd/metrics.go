// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"time"

	"github.com/diffeo/go-phonebook/phonebook"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var phonebookEntries = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "diffeo",
		Subsystem: "phonebook",
		Name:      "entries",
		Help:      "Number of entries in the phonebook",
	},
)

func init() {
	prometheus.MustRegister(phonebookEntries)
}

// observe refreshes the entries gauge every interval until ctx is
// canceled.
func observe(ctx context.Context, pb phonebook.Phonebook, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		updateEntries(ctx, pb)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func updateEntries(ctx context.Context, pb phonebook.Phonebook) {
	count, err := pb.Count(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logrus.WithError(err).Warn("Could not count entries")
		}
		return
	}
	phonebookEntries.Set(float64(count))
}
