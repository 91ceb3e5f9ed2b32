package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/testutil"
)

type fakeArchive struct {
	key  string
	body []byte
	err  error
}

func (f *fakeArchive) Upload(_ context.Context, key string, r io.Reader, size int64) error {
	if f.err != nil {
		return f.err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if int64(len(body)) != size {
		return errors.New("size mismatch")
	}
	f.key, f.body = key, body
	return nil
}

func TestRecorder_TokenReuse_Archives(t *testing.T) {
	archive := &fakeArchive{}
	r := NewRecorder(archive, testutil.MakeNoopLogger())
	r.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	userID := uuid.New()

	r.TokenReuse(context.Background(), userID, 3)

	require.NotEmpty(t, archive.body)
	assert.True(t, strings.HasPrefix(archive.key, "refresh_token_reuse/2026/03/04/"))
	assert.True(t, strings.HasSuffix(archive.key, ".json"))

	var got Incident
	require.NoError(t, json.Unmarshal(archive.body, &got))
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, int64(3), got.RevokedTokens)
	assert.Equal(t, KindRefreshTokenReuse, got.Kind)
}

func TestRecorder_TokenReuse_LogsWarning(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(nil, logger.NewWithWriter(&buf, 0))

	r.TokenReuse(context.Background(), uuid.New(), 1)

	assert.Contains(t, buf.String(), "refresh token reuse detected")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestRecorder_TokenReuse_ArchiveFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&fakeArchive{err: errors.New("s3 down")}, logger.NewWithWriter(&buf, 0))

	assert.NotPanics(t, func() {
		r.TokenReuse(context.Background(), uuid.New(), 2)
	})
	assert.Contains(t, buf.String(), "failed to archive incident")
}
