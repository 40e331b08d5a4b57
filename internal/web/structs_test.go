package web

import (
	"reflect"
	"testing"
)

func Test_validateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid",
			email:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "empty",
			email:   "",
			wantErr: true,
		},
		{
			name:    "no at sign",
			email:   "alice.example.com",
			wantErr: true,
		},
		{
			name:    "no domain",
			email:   "alice@",
			wantErr: true,
		},
		{
			name:    "spaces",
			email:   "alice smith@example.com",
			wantErr: true,
		},
		{
			name:    "subdomain",
			email:   "alice@mail.example.co.uk",
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateEmail(tt.email); (err != nil) != tt.wantErr {
				t.Errorf("validateEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_validatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "long enough",
			password: "hunter2hunter2",
			wantErr:  false,
		},
		{
			name:     "exactly six",
			password: "hunt3r",
			wantErr:  false,
		},
		{
			name:     "too short",
			password: "hunt",
			wantErr:  true,
		},
		{
			name:     "empty",
			password: "",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validatePassword(tt.password); (err != nil) != tt.wantErr {
				t.Errorf("validatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_splitInterests(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "simple",
			raw:  "music,art",
			want: []string{"music", "art"},
		},
		{
			name: "spaces and empties",
			raw:  " music , , art ,",
			want: []string{"music", "art"},
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitInterests(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitInterests() = %v, want %v", got, tt.want)
			}
		})
	}
}
