package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		tls  bool
		want string
	}{
		{"tls disabled keeps dsn", "host=db sslmode=disable", false, "host=db sslmode=disable"},
		{"replaces existing sslmode", "host=db sslmode=disable port=5432", true, "host=db sslmode=require port=5432"},
		{"replaces mixed case", "host=db SSLMODE = prefer", true, "host=db sslmode=require"},
		{"appends when missing", "host=db", true, "host=db sslmode=require"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDSN(tt.dsn, tt.tls))
		})
	}
}
