package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l := NewZapLogger(env)
		assert.NotNil(t, l)

		child := l.With(zap.String("component", "test"))
		assert.NotPanics(t, func() {
			child.Info("info")
			child.Warn("warn")
			child.Error("error", errors.New("boom"))
			child.Error("error without cause", nil)
		})
	}
}
