package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/Egor213/LogStream/internal/domain"
)

func SetupLogger(level string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)

	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}

func LogReceived(tenantID, level, application string) {
	log.WithFields(log.Fields{
		"tenant":      tenantID,
		"level":       level,
		"application": application,
	}).Info("Received log entry")
}

func LogIngested(entry *domain.LogEntry) {
	log.WithFields(log.Fields{
		"tenant": entry.TenantID,
		"level":  entry.Level,
		"id":     entry.ID,
		"bytes":  entry.SizeBytes,
	}).Info("Log entry ingested")
}

func LogIngestError(tenantID domain.TenantID, err error) {
	log.WithFields(log.Fields{
		"tenant": tenantID,
		"error":  err,
	}).Error("Failed to ingest log entry")
}
