package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log  *logrus.Logger
	once sync.Once
)

type Fields = logrus.Fields

// New builds the process logger: nested formatter on stderr, plus a rotated
// file unless running in the test environment.
func New() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.SetLevel(logrus.DebugLevel)

		log.SetFormatter(&formatter.Formatter{
			NoColors:        false,
			TimestampFormat: "02 Jan 06 - 15:04",
			HideKeys:        false,
		})

		writers := []io.Writer{os.Stderr}
		if os.Getenv("ENV") != "test" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   fmt.Sprintf("./storage/logs/server-%s.log", time.Now().Format("2006-01-02")),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    100,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}
		log.SetOutput(io.MultiWriter(writers...))
	})

	return log
}

func Debug(fields Fields, msg string) { entry(fields).Debug(msg) }
func Info(fields Fields, msg string)  { entry(fields).Info(msg) }
func Warn(fields Fields, msg string)  { entry(fields).Warn(msg) }
func Error(fields Fields, msg string) { entry(fields).Error(msg) }
func Fatal(fields Fields, msg string) { entry(fields).Fatal(msg) }

func entry(fields Fields) *logrus.Entry {
	if fields == nil {
		fields = Fields{}
	}
	return New().WithFields(fields)
}
