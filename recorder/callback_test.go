package recorder

import (
	"testing"

	"github.com/loaderkit/diaglog/core"
)

func TestDebugUtilsRecorderTranslatesFiltersAtConstruction(t *testing.T) {
	r := NewDebugUtilsRecorder(42,
		core.DebugUtilsSeverityError|core.DebugUtilsSeverityWarning,
		core.DebugUtilsTypeValidation,
		nil)

	if r.ID() != 42 {
		t.Errorf("ID() = %d, want 42", r.ID())
	}
	if r.Kind() != KindDebugUtils {
		t.Errorf("Kind() = %v, want debug-utils", r.Kind())
	}
	if want := core.SeverityError | core.SeverityWarning; r.Severities() != want {
		t.Errorf("Severities() = %v, want %v", r.Severities(), want)
	}
	if r.Categories() != core.CategorySpecification {
		t.Errorf("Categories() = %v, want SPECIFICATION", r.Categories())
	}
}

func TestDebugUtilsRecorderForwardsPayload(t *testing.T) {
	var gotSev core.DebugUtilsSeverity
	var gotTypes core.DebugUtilsType
	var gotData *core.CallbackData

	r := NewDebugUtilsRecorder(1, core.AllDebugUtilsSeverities, core.AllDebugUtilsTypes,
		func(sev core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool {
			gotSev, gotTypes, gotData = sev, types, data
			return true
		})

	data := core.CallbackData{MessageID: "M", Message: "payload"}
	exit := r.RecordDebugUtils(core.DebugUtilsSeverityError, core.DebugUtilsTypeGeneral, &data)

	if !exit {
		t.Error("callback's terminate request was not propagated")
	}
	if gotSev != core.DebugUtilsSeverityError || gotTypes != core.DebugUtilsTypeGeneral {
		t.Errorf("callback received sev=%#x types=%#x", uint32(gotSev), uint32(gotTypes))
	}
	if gotData == nil || gotData.Message != "payload" {
		t.Errorf("callback received wrong payload: %+v", gotData)
	}
}

func TestDebugUtilsRecorderConvertsGenericMessages(t *testing.T) {
	var gotSev core.DebugUtilsSeverity
	var gotTypes core.DebugUtilsType
	var gotData *core.CallbackData

	r := NewDebugUtilsRecorder(1, core.AllDebugUtilsSeverities, core.AllDebugUtilsTypes,
		func(sev core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool {
			gotSev, gotTypes, gotData = sev, types, data
			return false
		})

	msg := &core.Message{
		Severity: core.SeverityWarning,
		Category: core.CategorySpecification,
		ID:       "VAL-7",
		Command:  "xrBeginSession",
		Text:     "generic text",
		Objects:  []core.ObjectInfo{{Handle: 0x99, Type: core.ObjectTypeSession, Name: "sess"}},
		Labels:   []string{"outer"},
	}
	if exit := r.Record(msg); exit {
		t.Error("callback returned false but terminate was requested")
	}

	if gotSev != core.DebugUtilsSeverityWarning {
		t.Errorf("severity not translated: %#x", uint32(gotSev))
	}
	if gotTypes != core.DebugUtilsTypeValidation {
		t.Errorf("SPECIFICATION not translated to validation: %#x", uint32(gotTypes))
	}
	if gotData.MessageID != "VAL-7" || gotData.CommandName != "xrBeginSession" || gotData.Message != "generic text" {
		t.Errorf("payload fields wrong: %+v", gotData)
	}
	if len(gotData.Objects) != 1 || gotData.Objects[0].Name != "sess" {
		t.Errorf("objects not carried over: %+v", gotData.Objects)
	}
	if len(gotData.Labels) != 1 || gotData.Labels[0].Name != "outer" {
		t.Errorf("labels not carried over: %+v", gotData.Labels)
	}
}

func TestDebugUtilsRecorderNilCallback(t *testing.T) {
	r := NewDebugUtilsRecorder(1, core.AllDebugUtilsSeverities, core.AllDebugUtilsTypes, nil)

	if r.RecordDebugUtils(core.DebugUtilsSeverityError, core.DebugUtilsTypeGeneral, &core.CallbackData{}) {
		t.Error("nil callback must not request termination")
	}
}
