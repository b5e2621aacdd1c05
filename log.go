package yars

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("game", "yars")

// NewSession tags every following log line with a fresh session id and returns it.
func NewSession() string {
	id := uuid.New().String()
	log = logrus.WithFields(logrus.Fields{"game": "yars", "session": id})
	return id
}

// SetLevel adjusts the verbosity of the game logger.
func SetLevel(level logrus.Level) {
	logrus.SetLevel(level)
}
