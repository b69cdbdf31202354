package logger

import (
	"testing"

	"github.com/sellerboard/sellerboard/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "Info level", logLvl: "info"},
		{name: "Debug level", logLvl: "debug"},
		{name: "Error level", logLvl: "error"},
		{name: "Unsupported level", logLvl: "trace", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
