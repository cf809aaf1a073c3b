package notifysvc

import (
	"log"

	"github.com/gauravw/coachcenter/core"
)

type consoleNotifier struct {
	std    *log.Logger
	prefix string
}

var _ core.Notifier = (*consoleNotifier)(nil)

// NewConsoleNotifier returns a Notifier that prints messages to std.
// Used in DEV and TEST environments.
func NewConsoleNotifier(std *log.Logger, conf *core.Config) core.Notifier {
	return &consoleNotifier{
		std:    std,
		prefix: "[" + conf.AppName + "] ",
	}
}

func (n *consoleNotifier) Notify(message string) {
	n.std.Println(n.prefix + message)
}
