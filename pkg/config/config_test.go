package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		set      func(v *viper.Viper)
		def      int
		expected int
	}{
		{
			name:     "tidak di-set pakai default",
			set:      func(v *viper.Viper) {},
			def:      5432,
			expected: 5432,
		},
		{
			name:     "string numerik diparse",
			set:      func(v *viper.Viper) { v.Set("DB_PORT", "5433") },
			def:      5432,
			expected: 5433,
		},
		{
			name:     "string numerik dengan spasi",
			set:      func(v *viper.Viper) { v.Set("DB_PORT", " 5433 ") },
			def:      5432,
			expected: 5433,
		},
		{
			name:     "string tidak numerik jatuh ke default",
			set:      func(v *viper.Viper) { v.Set("DB_PORT", "abc") },
			def:      5432,
			expected: 5432,
		},
		{
			name:     "nilai int langsung",
			set:      func(v *viper.Viper) { v.Set("DB_PORT", 9000) },
			def:      5432,
			expected: 9000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.set(v)
			assert.Equal(t, tt.expected, getInt(v, "DB_PORT", tt.def))
		})
	}
}

func TestLoad_EnvTidakNumerikPakaiDefault(t *testing.T) {
	t.Setenv("DB_PORT", "bukan-angka")
	t.Setenv("JWT_EXPIRATION_MINUTES", "60m")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}
