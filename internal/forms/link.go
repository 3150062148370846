package forms

import (
	"net/url"
	"strings"
)

// PublicLink builds <base>/form/<formID>, adding a query parameter for each field
// that has a non-blank prefill value. Parameters follow field order; prefill keys
// that are not field ids are dropped.
func PublicLink(base, formID string, fields []Field, prefill url.Values) string {
	link := strings.TrimRight(base, "/") + "/form/" + url.PathEscape(formID)

	var params []string
	for _, f := range fields {
		value := strings.TrimSpace(prefill.Get(f.ID))
		if value == "" {
			continue
		}
		params = append(params, url.QueryEscape(f.ID)+"="+url.QueryEscape(value))
	}
	if len(params) == 0 {
		return link
	}
	return link + "?" + strings.Join(params, "&")
}
