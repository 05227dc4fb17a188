package logging_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pdfstream/logging"
)

func TestSetLogger(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logging.Logger().Debug("test message", "key", "value")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetLoggerNil(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	logging.SetLogger(nil)

	log := logging.Logger()
	require.NotNil(t, log)
	assert.Equal(t, slog.DiscardHandler, log.Handler())
}

func TestLoggerConcurrentAccess(t *testing.T) {
	old := logging.Logger()
	defer logging.SetLogger(old)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			logging.SetLogger(slog.New(logging.NewRecorder()))
		}()
		go func() {
			defer wg.Done()
			logging.Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}

func TestRecorder(t *testing.T) {
	rec := logging.NewRecorder()
	log := slog.New(rec).With("stream", 7).WithGroup("filter")

	log.Debug("filter applied", "name", "FlateDecode")
	log.Info("done")

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Equal(t, slog.LevelDebug, records[0].Level)
	assert.Equal(t, "7", records[0].Attrs["stream"])
	assert.Equal(t, "FlateDecode", records[0].Attrs["filter.name"])
	assert.Equal(t, []string{"filter applied", "done"}, rec.Messages())
	assert.True(t, rec.Contains("applied"))
	assert.False(t, rec.Contains("missing"))
}
