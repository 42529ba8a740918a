// SPDX-License-Identifier: MIT

package toolbox

import (
	"errors"
	"strings"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "no command, not interactive",
			req:     Request{},
			wantErr: ErrMissingCommand,
		},
		{
			name: "no command, interactive",
			req:  Request{Interactive: true},
		},
		{
			name: "command present",
			req:  Request{Command: []string{"ansible", "--version"}},
		},
		{
			name: "command and interactive",
			req:  Request{Command: []string{"ansible"}, Interactive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMissingCommandErrorMentionsCommand(t *testing.T) {
	t.Parallel()
	err := Request{}.Validate()
	if err == nil || !strings.Contains(err.Error(), "command") {
		t.Errorf("missing-command error must mention %q, got %v", "command", err)
	}
}
