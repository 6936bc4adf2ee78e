// Package bootstrap wires process-wide infrastructure from configuration.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/next-trace/scg-catalog/internal/config"
)

// InitLogger configures the standard logrus logger.
func InitLogger(cfg config.LogConfig) error {
	switch cfg.Format {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	log.SetReportCaller(cfg.ReportCaller)

	if !cfg.File.Enabled {
		log.SetOutput(os.Stdout)
		return nil
	}

	w, err := rotatingWriter(cfg.File)
	if err != nil {
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, w))

	return nil
}

func rotatingWriter(cfg config.LogFileConfig) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	w, err := rotatelogs.New(
		filepath.Join(cfg.Dir, cfg.Filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(cfg.Dir, cfg.Filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(cfg.RotationDays)*24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("open rotating log: %w", err)
	}

	return w, nil
}
