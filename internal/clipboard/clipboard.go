// Package clipboard reads and writes the system clipboard. Plain text
// goes through the atotto bindings; the text/html target needs a platform
// tool (xclip or wl-paste) since the bindings expose only text. HTML
// payloads are decoded to UTF-8 before use: browsers hand them over in
// UTF-16 with a BOM on some platforms, otherwise the declared meta
// charset decides.
package clipboard

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText returns the clipboard's plain-text content.
func ReadText() (string, error) {
	return atotto.ReadAll()
}

// WriteText replaces the clipboard content with text.
func WriteText(text string) error {
	return atotto.WriteAll(text)
}

// Seams for tests; production code never swaps these.
var (
	lookPath  = exec.LookPath
	runOutput = func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}
)

// htmlTools can expose the text/html clipboard target, in preference
// order. xclip serves X11 sessions, wl-paste serves Wayland.
var htmlTools = []struct {
	name string
	args []string
}{
	{name: "xclip", args: []string{"-selection", "clipboard", "-t", "text/html", "-o"}},
	{name: "wl-paste", args: []string{"--type", "text/html"}},
}

// ReadHTML returns the text/html clipboard target decoded to UTF-8, or
// ok=false when no tool is installed or no HTML content is on offer.
// Tool failures are not errors; the caller falls back to plain text.
func ReadHTML() (html string, ok bool) {
	for _, tool := range htmlTools {
		if _, err := lookPath(tool.name); err != nil {
			continue
		}
		out, err := runOutput(tool.name, tool.args...)
		if err != nil || len(bytes.TrimSpace(out)) == 0 {
			continue
		}
		decoded, err := decodeHTML(out)
		if err != nil {
			continue
		}
		decoded = stripCFHeader(decoded)
		if strings.TrimSpace(decoded) == "" {
			continue
		}
		return decoded, true
	}
	return "", false
}

// decodeHTML converts a raw clipboard payload to UTF-8. A UTF-16 BOM is
// honored directly; everything else goes through charset sniffing, which
// reads the document's meta declaration.
func decodeHTML(raw []byte) (string, error) {
	if len(raw) >= 2 && (raw[0] == 0xFF && raw[1] == 0xFE || raw[0] == 0xFE && raw[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return "", fmt.Errorf("decode utf-16 clipboard payload: %w", err)
		}
		return string(out), nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return "", fmt.Errorf("sniff clipboard charset: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode clipboard payload: %w", err)
	}
	return string(out), nil
}

// stripCFHeader removes the CF_HTML descriptor block some sources prepend
// (Version/StartHTML/EndHTML key lines) so the document starts at its
// first tag.
func stripCFHeader(s string) string {
	if !strings.HasPrefix(s, "Version:") {
		return s
	}
	if i := strings.Index(s, "<"); i >= 0 {
		return s[i:]
	}
	return s
}
