package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy drops every tag and attribute, including the content of
// script/style elements.
var policy = bluemonday.StrictPolicy()

// DisplayName reduces a client-supplied identity to plain text so it is safe
// to render wherever the token's claims end up. "<script>x</script>Ann"
// becomes "Ann".
func DisplayName(name string) string {
	clean := policy.Sanitize(name)
	return strings.TrimSpace(html.UnescapeString(clean))
}
