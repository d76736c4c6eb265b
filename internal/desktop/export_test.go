package desktop

import (
	log "github.com/sirupsen/logrus"
)

var BrowserCommand = browserCommand

func NewPrefixWriter(prefix string) *prefixWriter {
	return newPrefixWriter(log.InfoLevel, prefix)
}
