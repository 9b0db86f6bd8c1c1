package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		validate func(t *testing.T, id string)
	}{
		{
			name: "Gera um UUID quando vazio",
			id:   "",
			validate: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name: "Mantém o ID recebido",
			id:   "req-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "req-123", id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.id)

			tt.validate(t, id)
			assert.Equal(t, id, GetCorrelationID(ctx))
		})
	}
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithFields(Fields{"path": "/v1/kpis/latest", "user_agent": "curl"}).Info("ok")

	assert.Contains(t, buf.String(), "path=/v1/kpis/latest")
	assert.NotContains(t, buf.String(), "curl")
}

func TestLogger_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	l := &logger{entry: logrus.NewEntry(base)}
	ctx, _ := WithCorrelationID(context.Background(), "abc")
	l.WithContext(ctx).WithField("user_agent", "curl").Info("ok")

	assert.Contains(t, buf.String(), "correlation_id=abc")
	assert.Contains(t, buf.String(), "user_agent=curl")
}

func TestLogger_DevelopmentSameFilterForFieldAndFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	tests := []struct {
		name string
		log  func(l Logger)
	}{
		{
			name: "WithField descarta campo fora da lista",
			log: func(l Logger) {
				l.WithField("user_id", "42").WithField("run_id", "r1").Info("ok")
			},
		},
		{
			name: "WithFields descarta campo fora da lista",
			log: func(l Logger) {
				l.WithFields(Fields{"user_id": "42", "run_id": "r1"}).Info("ok")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := logrus.New()
			base.SetOutput(&buf)
			base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

			tt.log(&logger{entry: logrus.NewEntry(base)})

			assert.Contains(t, buf.String(), "run_id=r1")
			assert.NotContains(t, buf.String(), "user_id")
		})
	}
}
