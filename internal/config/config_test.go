package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabase_IsConfigured(t *testing.T) {
	tests := []struct {
		name string
		db   Database
		want bool
	}{
		{
			name: "credenciais reais",
			db:   Database{URL: "db.example.com:5432/painel", Password: "s3cr3t"},
			want: true,
		},
		{
			name: "senha ainda com o valor de exemplo",
			db:   Database{URL: "db.example.com:5432/painel", Password: PlaceholderCredential},
			want: false,
		},
		{
			name: "sem URL",
			db:   Database{Password: "s3cr3t"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.IsConfigured())
		})
	}
}
