package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/loaderkit/diaglog/core"
)

// TextFormatter renders diagnostic messages as human-readable text
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format renders a message as text
func (f *TextFormatter) Format(msg *core.Message) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(msg, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a message and writes it directly to the writer
func (f *TextFormatter) FormatTo(msg *core.Message, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(msg, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted message into the given buffer
func (f *TextFormatter) formatToBuffer(msg *core.Message, buf *bytes.Buffer) {
	buf.WriteString(msg.Severity.String())
	buf.WriteString(" [")
	buf.WriteString(msg.Category.String())
	buf.WriteString("] ")
	if msg.Command != "" {
		buf.WriteString(msg.Command)
		buf.WriteByte(' ')
	}
	buf.WriteByte('(')
	buf.WriteString(msg.ID)
	buf.WriteString("): ")
	buf.WriteString(msg.Text)
	buf.WriteByte('\n')

	for i, obj := range msg.Objects {
		buf.WriteString("    object ")
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(": ")
		buf.WriteString(obj.Type.String())
		buf.WriteString(" 0x")
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), obj.Handle, 16))
		if obj.Name != "" {
			buf.WriteString(" \"")
			buf.WriteString(obj.Name)
			buf.WriteByte('"')
		}
		buf.WriteByte('\n')
	}

	for _, label := range msg.Labels {
		buf.WriteString("    label: ")
		buf.WriteString(label)
		buf.WriteByte('\n')
	}
}
