package metadata

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
Recorder captures structured command events on top of a zap logger.
It must not:
- affect control flow
- write to the command's result stream

Events are recorded synchronously in the order they are received.
*/
type Recorder struct {
	logger *zap.Logger
}

func NewRecorder(logger *zap.Logger) Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Recorder{
		logger: logger,
	}
}

// NewLogger builds a JSON logger writing entries at or above level to w.
func NewLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	fields := make([]zap.Field, 0, len(attrs)+4)
	fields = append(fields,
		zap.Time("observed_at", observedAt),
		zap.String("package", packageName),
		zap.String("cause", cause.String()),
		zap.String("details", details),
	)
	fields = appendAttrs(fields, attrs)
	r.logger.Error(action, fields...)
}

// RecordOperation logs a completed operation at debug level.
func (r *Recorder) RecordOperation(action string, input string, attrs []Attribute) {
	fields := make([]zap.Field, 0, len(attrs)+1)
	fields = append(fields, zap.String(string(AttrInput), input))
	fields = appendAttrs(fields, attrs)
	r.logger.Debug(action, fields...)
}

// Sync flushes buffered entries.
func (r *Recorder) Sync() error {
	return r.logger.Sync()
}

func appendAttrs(fields []zap.Field, attrs []Attribute) []zap.Field {
	for _, attr := range attrs {
		fields = append(fields, zap.String(string(attr.Key), attr.Value))
	}
	return fields
}

type MetadataSink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)

	RecordOperation(action string, input string, attrs []Attribute)
}

// NoopSink, struct that implements metadata.MetadataSink but does nothing
// Commands (or Tests) can decide whether to inject Recorder or NoopSink

type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordOperation(action string, input string, attrs []Attribute) {}
