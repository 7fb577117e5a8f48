package commands

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkrul/toast/internal/core/notify"
)

// stubArchive collects saved records in memory.
type stubArchive struct {
	records []notify.Record
}

func (a *stubArchive) Save(_ context.Context, r notify.Record) error {
	a.records = append(a.records, r)
	return nil
}

func (a *stubArchive) List(_ context.Context) ([]notify.Record, error) {
	out := make([]notify.Record, len(a.records))
	copy(out, a.records)
	return out, nil
}

func (a *stubArchive) Clear(_ context.Context) error {
	a.records = nil
	return nil
}

func (a *stubArchive) Count(_ context.Context) (int64, error) {
	return int64(len(a.records)), nil
}

func testFlags() (*Flags, *stubArchive) {
	arch := &stubArchive{}
	store := notify.NewStore(notify.WithArchive(arch))
	return &Flags{Store: store, Archive: arch}, arch
}

func TestSendCmd_run_records_notification(t *testing.T) {
	flags, arch := testFlags()
	cmd := &SendCmd{
		flags:      flags,
		kind:       string(notify.KindError),
		title:      "Deploy failed",
		message:    "exit status 1",
		durationMs: -1,
		source:     "ci/deploy",
	}

	err := cmd.run(t.Context(), nil)
	require.NoError(t, err)

	require.Len(t, arch.records, 1)
	saved := arch.records[0]
	assert.Equal(t, notify.KindError, saved.Kind)
	assert.Equal(t, "Deploy failed", saved.Title)
	assert.Equal(t, "exit status 1", saved.Message)
	assert.Equal(t, "ci/deploy", saved.Source)
	assert.Equal(t, notify.DefaultErrorDuration, saved.Duration)
}

func TestSendCmd_run_fails_when_history_disabled(t *testing.T) {
	cmd := &SendCmd{
		flags:      &Flags{Store: notify.NewStore()},
		kind:       string(notify.KindInfo),
		title:      "Lost",
		durationMs: -1,
	}

	err := cmd.run(t.Context(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is disabled")
}

func TestComposeCmd_run_fails_when_history_disabled(t *testing.T) {
	cmd := &ComposeCmd{flags: &Flags{Store: notify.NewStore()}}

	err := cmd.run(t.Context(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is disabled")
}

func TestSendCmd_run_zero_duration_is_sticky(t *testing.T) {
	flags, arch := testFlags()
	cmd := &SendCmd{
		flags:      flags,
		kind:       string(notify.KindInfo),
		title:      "Pinned note",
		durationMs: 0,
	}

	err := cmd.run(t.Context(), nil)
	require.NoError(t, err)

	require.Len(t, arch.records, 1)
	assert.True(t, arch.records[0].Sticky())
}

func TestSendCmd_run_explicit_duration(t *testing.T) {
	flags, arch := testFlags()
	cmd := &SendCmd{
		flags:      flags,
		kind:       string(notify.KindInfo),
		title:      "Quick",
		durationMs: 1500,
	}

	err := cmd.run(t.Context(), nil)
	require.NoError(t, err)

	require.Len(t, arch.records, 1)
	assert.Equal(t, 1500*time.Millisecond, arch.records[0].Duration)
}

func TestSendCmd_run_rejects_invalid_input(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		title string
	}{
		{name: "empty title", kind: "info", title: "   "},
		{name: "unknown kind", kind: "fatal", title: "Boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, arch := testFlags()
			cmd := &SendCmd{
				flags:      flags,
				kind:       tt.kind,
				title:      tt.title,
				durationMs: -1,
			}

			err := cmd.run(t.Context(), nil)
			require.Error(t, err)
			assert.Empty(t, arch.records)
		})
	}
}

func TestFormatHistoryEntry(t *testing.T) {
	r := notify.Record{
		Kind:      notify.KindWarning,
		Title:     "Disk almost full",
		Source:    "sys/disk",
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	line := formatHistoryEntry(r)
	assert.Contains(t, line, "2026-03-14 09:26:53")
	assert.Contains(t, line, "Disk almost full")
	assert.Contains(t, line, "(sys/disk)")
}

func TestDefaultPaths_honor_xdg(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	assert.Equal(t, filepath.Join("/tmp/xdg-config", "toast", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "toast"), DefaultDataDir())
	assert.Equal(t, filepath.Join("/tmp/xdg-state", "toast", "toast.log"), DefaultLogFile())
}
