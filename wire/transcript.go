package wire

import (
	"strconv"
	"strings"

	"github.com/luojia65/coruscant/format"
)

// TranscriptFormatter renders tags as indented human-readable text, driven
// by the same encode path as BinaryFormatter. Indent is two spaces per
// level; the very last line (the one that closes the outermost container)
// omits its trailing newline, so a complete transcript never ends in "\n".
type TranscriptFormatter struct {
	buf    strings.Builder
	indent int
}

var _ Formatter = (*TranscriptFormatter)(nil)

// NewTranscriptFormatter creates an empty transcript formatter.
func NewTranscriptFormatter() *TranscriptFormatter {
	return &TranscriptFormatter{}
}

func (f *TranscriptFormatter) writeIndent() {
	for range f.indent {
		f.buf.WriteString("  ")
	}
}

// writeLine writes line at the current indent, preceded by a newline
// unless it is the first line, so only the final line of the whole
// transcript ends up without a trailing newline.
func (f *TranscriptFormatter) writeLine(line string) {
	if f.buf.Len() > 0 {
		f.buf.WriteByte('\n')
	}
	f.writeIndent()
	f.buf.WriteString(line)
}

func (f *TranscriptFormatter) WriteByteTag(name string, v int8) {
	f.writeLine("Byte '" + name + "' " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteShortTag(name string, v int16) {
	f.writeLine("Short '" + name + "' " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteIntTag(name string, v int32) {
	f.writeLine("Int '" + name + "' " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteLongTag(name string, v int64) {
	f.writeLine("Long '" + name + "' " + strconv.FormatInt(v, 10))
}

func (f *TranscriptFormatter) WriteFloatTag(name string, v float32) {
	f.writeLine("Float '" + name + "' " + strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (f *TranscriptFormatter) WriteDoubleTag(name string, v float64) {
	f.writeLine("Double '" + name + "' " + strconv.FormatFloat(v, 'g', -1, 64))
}

func (f *TranscriptFormatter) WriteStringTag(name string, v string) {
	f.writeLine("String '" + name + "' " + v)
}

func (f *TranscriptFormatter) WriteCompoundTag(name string) {
	f.writeLine("Compound '" + name + "'")
	f.indent++
}

func (f *TranscriptFormatter) WriteEndTag() {
	f.indent--
	f.writeLine("EndCompound")
}

func (f *TranscriptFormatter) WriteListTag(elementID format.TypeID, length int32, name string) {
	f.writeLine("List '" + name + "': [" + strconv.Itoa(int(elementID)) + "; " + strconv.Itoa(int(length)) + "]")
	f.indent++
}

func (f *TranscriptFormatter) WriteArrayHead(arrayID format.TypeID, length int32, name string) {
	f.writeLine(arrayID.String() + " '" + name + "': [" + strconv.Itoa(int(length)) + "]")
	f.indent++
}

func (f *TranscriptFormatter) WriteByteInner(v int8) {
	f.writeLine("Byte " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteShortInner(v int16) {
	f.writeLine("Short " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteIntInner(v int32) {
	f.writeLine("Int " + strconv.FormatInt(int64(v), 10))
}

func (f *TranscriptFormatter) WriteLongInner(v int64) {
	f.writeLine("Long " + strconv.FormatInt(v, 10))
}

func (f *TranscriptFormatter) WriteFloatInner(v float32) {
	f.writeLine("Float " + strconv.FormatFloat(float64(v), 'g', -1, 32))
}

func (f *TranscriptFormatter) WriteDoubleInner(v float64) {
	f.writeLine("Double " + strconv.FormatFloat(v, 'g', -1, 64))
}

func (f *TranscriptFormatter) WriteStringInner(v string) {
	f.writeLine("String " + v)
}

func (f *TranscriptFormatter) WriteCompoundInner() {
	f.writeLine("Compound")
	f.indent++
}

func (f *TranscriptFormatter) CloseList() {
	f.indent--
	f.writeLine("EndList")
}

func (f *TranscriptFormatter) CloseArray() {
	f.indent--
	f.writeLine("EndArray")
}

func (f *TranscriptFormatter) Bytes() []byte {
	return []byte(f.buf.String())
}
