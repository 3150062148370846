package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicLink(t *testing.T) {
	fields := []Field{{ID: "name"}, {ID: "email"}, {ID: "customerType"}}

	tests := []struct {
		name    string
		base    string
		prefill url.Values
		want    string
	}{
		{
			name: "no prefill",
			base: "https://forms.example.com",
			want: "https://forms.example.com/form/f1",
		},
		{
			name:    "trailing slash and field order",
			base:    "https://forms.example.com/",
			prefill: url.Values{"customerType": {"VIP"}, "name": {" Alice Smith "}},
			want:    "https://forms.example.com/form/f1?name=Alice+Smith&customerType=VIP",
		},
		{
			name:    "blank and unknown keys dropped",
			base:    "http://localhost:5173",
			prefill: url.Values{"email": {"  "}, "ref": {"x"}},
			want:    "http://localhost:5173/form/f1",
		},
		{
			name:    "values escaped",
			base:    "http://localhost:5173",
			prefill: url.Values{"email": {"a+b@example.com"}},
			want:    "http://localhost:5173/form/f1?email=a%2Bb%40example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicLink(tt.base, "f1", fields, tt.prefill))
		})
	}
}
