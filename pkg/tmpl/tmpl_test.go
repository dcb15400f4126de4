package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "{{ .Title }} ({{ .ID }})",
			data: struct {
				Title string
				ID    string
			}{Title: "Taxes", ID: "TAX-1"},
			want: "Taxes (TAX-1)",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "empty value is valid",
			tmpl: "prefix{{ .Name }}suffix",
			data: map[string]string{"Name": ""},
			want: "prefixsuffix",
		},
		{
			name: "join",
			tmpl: `{{ join .Keys ", " }}`,
			data: map[string][]string{"Keys": {"a", "b", "c"}},
			want: "a, b, c",
		},
		{
			name: "upper and lower",
			tmpl: "{{ upper .A }} {{ lower .B }}",
			data: map[string]string{"A": "stuck", "B": "NOW"},
			want: "STUCK now",
		},
		{
			name: "pad",
			tmpl: "[{{ pad 6 .Name }}]",
			data: map[string]string{"Name": "abc"},
			want: "[abc   ]",
		},
		{
			name: "pad shorter than value",
			tmpl: "[{{ pad 2 .Name }}]",
			data: map[string]string{"Name": "abc"},
			want: "[abc]",
		},
		{
			name: "trunc",
			tmpl: "{{ trunc 8 .Name }}",
			data: map[string]string{"Name": "a very long title"},
			want: "a ver...",
		},
		{
			name: "trunc short value untouched",
			tmpl: "{{ trunc 8 .Name }}",
			data: map[string]string{"Name": "short"},
			want: "short",
		},
		{
			name: "default on empty",
			tmpl: `{{ default "-" .ID }}`,
			data: map[string]string{"ID": ""},
			want: "-",
		},
		{
			name: "default keeps value",
			tmpl: `{{ .ID | default "-" }}`,
			data: map[string]string{"ID": "X-1"},
			want: "X-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	require.NoError(t, Parse("{{ .Anything | upper }}"))

	err := Parse("{{ .Name ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse template")

	require.Error(t, Parse("{{ unknownFunc .Name }}"))
}

func TestTruncate_Narrow(t *testing.T) {
	assert.Equal(t, "ab", truncate(2, "abcdef"))
}
