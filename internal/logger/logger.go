package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MrSnakeDoc/tango/internal/printer"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level string    // "debug","info","warn","error"
	JSON  bool      // JSON output (CI)
	Color bool      // colorize (console)
	Out   io.Writer // default os.Stdout
}

var (
	mu       sync.RWMutex
	zlog     *zap.SugaredLogger
	out      io.Writer = os.Stdout
	p                  = printer.NewColorPrinter()
	curLevel           = zapcore.InfoLevel
	useColor           = true
)

func init() {
	Configure(Options{Color: true})
}

// Configure rebuilds the global logger.
func Configure(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	configureLocked(opts)
}

func configureLocked(opts Options) {
	if opts.Out != nil {
		out = opts.Out
	}
	curLevel = parseLevel(opts.Level)
	useColor = opts.Color && !opts.JSON

	var enc zapcore.Encoder
	if opts.JSON {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = ""
		encCfg.CallerKey = ""
		encCfg.MessageKey = "msg"
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: "msg"})
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(writerAdapter{out}), curLevel)
	zlog = zap.New(core).Sugar()
}

// UseTestMode silences logs during tests.
func UseTestMode() {
	Configure(Options{Level: "error", Out: io.Discard})
}

// Out returns the current output writer.
func Out() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

func Info(msg string, args ...any) {
	emit(zapcore.InfoLevel, p.Info, "✨ ", msg, args)
}

func Success(msg string, args ...any) {
	emit(zapcore.InfoLevel, p.Success, "✅ ", msg, args)
}

func Warn(msg string, args ...any) {
	emit(zapcore.WarnLevel, p.Warning, "⚠️ ", msg, args)
}

func LogError(msg string, args ...any) {
	emit(zapcore.ErrorLevel, p.Error, "❌ ", msg, args)
}

func Debug(msg string, args ...any) {
	emit(zapcore.DebugLevel, p.Debug, "🛠️ ", msg, args)
}

func CreateTable(headers []string) *tablewriter.Table {
	mu.RLock()
	defer mu.RUnlock()
	t := tablewriter.NewTable(out)
	t.Header(headers)
	return t
}

func emit(level zapcore.Level, paint func(string, ...any) string, prefix, msg string, args []any) {
	mu.RLock()
	defer mu.RUnlock()
	if zlog == nil {
		return
	}
	line := render(paint, prefix, msg, args)
	switch level {
	case zapcore.DebugLevel:
		zlog.Debug(line)
	case zapcore.WarnLevel:
		zlog.Warn(line)
	case zapcore.ErrorLevel:
		zlog.Error(line)
	default:
		zlog.Info(line)
	}
}

func render(paint func(string, ...any) string, prefix, msg string, args []any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	if !useColor {
		return prefix + msg
	}
	return paint("%s", prefix+msg)
}

type writerAdapter struct{ w io.Writer }

func (wa writerAdapter) Write(b []byte) (int, error) { return wa.w.Write(b) }

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
