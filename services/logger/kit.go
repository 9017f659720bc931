package logsvc

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/masonbrown9/gradebook/core"
)

// KitLogger implements core.Logger on top of go-kit's logfmt logger.
type KitLogger struct {
	kit kitlog.Logger
}

var _ core.Logger = (*KitLogger)(nil)

func NewKitLogger(conf *core.Config, out ...io.Writer) *KitLogger {
	var w io.Writer = os.Stdout
	if len(out) > 0 {
		w = out[0]
	}
	kl := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	kl = kitlog.With(kl, "ts", kitlog.DefaultTimestampUTC, "app", conf.AppName)
	if !conf.Debug {
		kl = level.NewFilter(kl, level.AllowInfo())
	}
	return &KitLogger{kit: kl}
}

// expected args: error, map[string]interface{}
func (l *KitLogger) keyvals(msg string, args []interface{}) []interface{} {
	kvs := []interface{}{"msg", msg}
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			kvs = append(kvs, "err", a)
		case map[string]interface{}:
			for k, v := range a {
				kvs = append(kvs, k, v)
			}
		default:
			kvs = append(kvs, "detail", a)
		}
	}
	return kvs
}

func (l *KitLogger) Debug(msg string, args ...interface{}) {
	_ = level.Debug(l.kit).Log(l.keyvals(msg, args)...)
}

func (l *KitLogger) Info(msg string, args ...interface{}) {
	_ = level.Info(l.kit).Log(l.keyvals(msg, args)...)
}

func (l *KitLogger) Warn(msg string, args ...interface{}) {
	_ = level.Warn(l.kit).Log(l.keyvals(msg, args)...)
}

func (l *KitLogger) Error(msg string, args ...interface{}) {
	_ = level.Error(l.kit).Log(l.keyvals(msg, args)...)
}

func (l *KitLogger) Fatal(msg string, args ...interface{}) {
	_ = level.Error(l.kit).Log(l.keyvals(msg, args)...)
	os.Exit(1)
}
