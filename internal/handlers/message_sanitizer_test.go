package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMessageBody(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain text passes", input: "Is this available?", want: "Is this available?"},
		{name: "surrounding whitespace trimmed", input: "  hello  ", want: "hello"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "whitespace only rejected", input: "   \t\n", wantErr: true},
		{name: "script tag stripped", input: "hi <script>alert(1)</script> there", want: "hi  there"},
		{name: "script only becomes empty and is rejected", input: "<script>alert(1)</script>", wantErr: true},
		{name: "inline event handler stripped", input: `hello onclick=steal()`, want: "hello steal()"},
		{name: "html escaped", input: "price < 100 & rising", want: "price &lt; 100 &amp; rising"},
		{name: "over max length rejected", input: strings.Repeat("a", MaxMessageLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeMessageBody(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
