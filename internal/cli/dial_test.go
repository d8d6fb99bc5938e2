package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/cli"
)

func TestDialValidate(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "e164", args: []string{"+14155550100"}, want: "OK +14155550100"},
		{name: "formatting stripped", args: []string{"(415) 555-0100"}, want: "OK 4155550100"},
		{name: "too short", args: []string{"12"}, wantErr: cli.ErrInvalidDialNumber},
		{name: "letters only", args: []string{"call-me"}, wantErr: cli.ErrInvalidDialNumber},
		{
			name: "known ani",
			args: []string{"+14155550100", "--ani", "+18005550199"},
			want: "(caller id +18005550199)",
		},
		{name: "unknown ani", args: []string{"+14155550100", "--ani", "+18005550000"}, wantErr: cli.ErrUnknownANI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"dial", "validate"}, tt.args...)...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
