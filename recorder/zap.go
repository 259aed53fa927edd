package recorder

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loaderkit/diaglog/core"
)

// ZapRecorder is an adapter that forwards diagnostic messages to a zap
// logger as structured entries. This lets an embedding application
// route loader diagnostics into whatever logging pipeline it already
// runs.
type ZapRecorder struct {
	id         uint64
	severities core.Severity
	categories core.Category
	logger     *zap.Logger
}

// NewZapRecorder creates a recorder forwarding to the given zap
// logger. Zero filters default to accepting everything.
func NewZapRecorder(logger *zap.Logger, severities core.Severity, categories core.Category) *ZapRecorder {
	if severities == 0 {
		severities = core.AllSeverities
	}
	if categories == 0 {
		categories = core.AllCategories
	}
	return &ZapRecorder{
		id:         NewID(),
		severities: severities,
		categories: categories,
		logger:     logger,
	}
}

// ID returns the recorder identifier.
func (r *ZapRecorder) ID() uint64 { return r.id }

// Kind returns KindStandard.
func (r *ZapRecorder) Kind() Kind { return KindStandard }

// Severities returns the severity filter.
func (r *ZapRecorder) Severities() core.Severity { return r.severities }

// Categories returns the category filter.
func (r *ZapRecorder) Categories() core.Category { return r.categories }

// Record writes the message through the zap logger. Zap recorders
// never request termination.
func (r *ZapRecorder) Record(msg *core.Message) bool {
	ce := r.logger.Check(zapLevel(msg.Severity), msg.Text)
	if ce == nil {
		return false
	}

	fields := []zapcore.Field{
		zap.String("message_id", msg.ID),
		zap.String("command", msg.Command),
		zap.Stringer("category", msg.Category),
	}
	if len(msg.Objects) > 0 {
		objs := make([]string, len(msg.Objects))
		for i, obj := range msg.Objects {
			if obj.Name != "" {
				objs[i] = fmt.Sprintf("%s(0x%x) %q", obj.Type, obj.Handle, obj.Name)
			} else {
				objs[i] = fmt.Sprintf("%s(0x%x)", obj.Type, obj.Handle)
			}
		}
		fields = append(fields, zap.Strings("objects", objs))
	}
	if len(msg.Labels) > 0 {
		fields = append(fields, zap.Strings("labels", msg.Labels))
	}

	ce.Write(fields...)
	return false
}

// RecordDebugUtils is a no-op; zap recorders are standard kind.
func (r *ZapRecorder) RecordDebugUtils(core.DebugUtilsSeverity, core.DebugUtilsType, *core.CallbackData) bool {
	return false
}

// zapLevel maps a single severity bit onto the zap level scale.
func zapLevel(s core.Severity) zapcore.Level {
	switch s {
	case core.SeverityError:
		return zapcore.ErrorLevel
	case core.SeverityWarning:
		return zapcore.WarnLevel
	case core.SeverityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
