// Package obs contains observability utilities such as logging.
package obs

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is the structured logger shared by the service.
var Logger = logrus.New()

// InitLogger sets the level and formatter of Logger. format is "json" or "text".
func InitLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}

	Logger.SetOutput(os.Stdout)
	Logger.SetLevel(lvl)
	switch format {
	case "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
