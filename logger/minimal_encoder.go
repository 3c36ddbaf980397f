package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Everforest Dark palette, the only theme enumgen ships
var (
	colorTime      = "\x1b[38;5;107m" // Mid forest green
	colorComponent = "\x1b[38;5;208m" // Autumn orange
	colorKey       = "\x1b[38;5;65m"  // Deep forest green
	colorWarnFg    = "\x1b[38;5;179m"
	colorWarnBg    = "\x1b[48;5;58m"
	colorErrorFg   = "\x1b[38;5;167m"
	colorErrorBg   = "\x1b[48;5;52m"
	colorDebugFg   = "\x1b[38;5;109m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  WARN  generator  Module skipped  module=Payments reason=..."
//
// Every field is rendered as key=value; nothing is dropped.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder // context fields added via Logger.With
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown when it is not INFO
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if pairs := enc.renderFields(fields); pairs != "" {
		final.AppendString("  ")
		final.AppendString(pairs)
	}

	final.AppendString("\n")
	return final, nil
}

// renderFields renders context fields (sorted) followed by entry fields (in call order)
func (enc *minimalEncoder) renderFields(fields []zapcore.Field) string {
	var parts []string

	contextKeys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		contextKeys = append(contextKeys, k)
	}
	sort.Strings(contextKeys)
	for _, k := range contextKeys {
		parts = append(parts, formatPair(k, enc.Fields[k]))
	}

	if len(fields) > 0 {
		values := zapcore.NewMapObjectEncoder()
		for _, f := range fields {
			f.AddTo(values)
		}
		for _, f := range fields {
			v, ok := values.Fields[f.Key]
			if !ok {
				continue
			}
			parts = append(parts, formatPair(f.Key, v))
		}
	}

	return strings.Join(parts, " ")
}

func formatPair(key string, value interface{}) string {
	return colorKey + key + "=" + colorReset + fmt.Sprintf("%v", value)
}

// levelColorString returns bold + colored + background for non-INFO levels
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorDebugFg + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarnFg + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrorBg + colorErrorFg + "ERROR" + colorReset
	default:
		return colorBold + colorErrorBg + colorErrorFg + level.CapitalString() + colorReset
	}
}
