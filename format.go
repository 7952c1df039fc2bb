package solelog

import (
	"bytes"
	"encoding/json"
)

const hexChars = "0123456789abcdef"

// formatter serializes records into the configured on-disk representation.
// All options are resolved once at engine construction; formatting itself is
// a pure function of the record and is safe for concurrent use.
type formatter struct {
	format          string // "txt" or "json"
	timestampFormat string
	pretty          bool
	session         string // empty when the session field is disabled
}

func newFormatter(cfg *Config, session string) *formatter {
	f := &formatter{
		format:          cfg.Format,
		timestampFormat: cfg.TimestampFormat,
		pretty:          cfg.PrettyJSON,
	}
	if cfg.IncludeSession {
		f.session = session
	}
	return f
}

// serialize converts a record to its newline-terminated byte representation.
// Formatting never fails on a well-formed record.
func (f *formatter) serialize(rec Record) []byte {
	if f.format == "json" {
		return f.serializeJSON(rec)
	}
	return f.serializeTxt(rec)
}

// serializeTxt renders "[timestamp] LEVEL: message\n". The bracketed segment
// is omitted entirely when the record carries no timestamp.
func (f *formatter) serializeTxt(rec Record) []byte {
	buf := make([]byte, 0, len(rec.Message)+48)

	if !rec.TimeStamp.IsZero() {
		buf = append(buf, '[')
		buf = rec.TimeStamp.AppendFormat(buf, f.timestampFormat)
		buf = append(buf, ']', ' ')
	}

	buf = append(buf, levelToString(rec.Level)...)
	buf = append(buf, ':', ' ')
	buf = append(buf, rec.Message...)
	buf = append(buf, '\n')
	return buf
}

// serializeJSON renders one self-contained JSON object per record, terminated
// by exactly one newline. In pretty mode the object is indented over multiple
// lines but still ends with a single newline, so line-counting tools see one
// boundary per entry even though the stream is no longer strict JSON-Lines.
func (f *formatter) serializeJSON(rec Record) []byte {
	buf := make([]byte, 0, len(rec.Message)+96)

	buf = append(buf, '{')
	buf = append(buf, `"level":"`...)
	buf = append(buf, levelToString(rec.Level)...)
	buf = append(buf, '"')

	buf = append(buf, `,"message":"`...)
	buf = appendEscaped(buf, rec.Message)
	buf = append(buf, '"')

	if !rec.TimeStamp.IsZero() {
		buf = append(buf, `,"time":"`...)
		buf = rec.TimeStamp.AppendFormat(buf, f.timestampFormat)
		buf = append(buf, '"')
	}

	if f.session != "" {
		buf = append(buf, `,"session":"`...)
		buf = appendEscaped(buf, f.session)
		buf = append(buf, '"')
	}

	buf = append(buf, '}')

	if f.pretty {
		var indented bytes.Buffer
		indented.Grow(len(buf) * 2)
		if err := json.Indent(&indented, buf, "", "  "); err == nil {
			buf = append(buf[:0], indented.Bytes()...)
		}
	}

	buf = append(buf, '\n')
	return buf
}

// appendEscaped appends a string, escaping JSON special characters.
func appendEscaped(buf []byte, str string) []byte {
	lenStr := len(str)
	for i := 0; i < lenStr; {
		if c := str[i]; c < ' ' || c == '"' || c == '\\' {
			switch c {
			case '\\', '"':
				buf = append(buf, '\\', c)
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\r':
				buf = append(buf, '\\', 'r')
			case '\t':
				buf = append(buf, '\\', 't')
			case '\b':
				buf = append(buf, '\\', 'b')
			case '\f':
				buf = append(buf, '\\', 'f')
			default:
				buf = append(buf, `\u00`...)
				buf = append(buf, hexChars[c>>4], hexChars[c&0xF])
			}
			i++
		} else {
			start := i
			for i < lenStr && str[i] >= ' ' && str[i] != '"' && str[i] != '\\' {
				i++
			}
			buf = append(buf, str[start:i]...)
		}
	}
	return buf
}
