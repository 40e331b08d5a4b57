package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

func Name(s string) string {
	return title.String(strings.ToLower(strings.TrimSpace(s)))
}

func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
