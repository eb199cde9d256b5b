package syndication

import (
	"fmt"
	"io"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&apos;",
)

func escapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

// writeElement emits one prefixed element with escaped text content,
// newline-terminated. No namespace declaration is written: output is a
// fragment valid inside a host document that declares the prefix.
func writeElement(w io.Writer, prefix, local, value string) error {
	_, err := fmt.Fprintf(w, "<%s:%s>%s</%s:%s>\n", prefix, local, escapeXML(value), prefix, local)
	return err
}
