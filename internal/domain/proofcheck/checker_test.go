package proofcheck

import (
	"context"
	"testing"
	"time"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/logger"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return xcontext.WithLogger(context.Background(), logger.NewLogger(logger.ERROR))
}

func requireCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
}

func Test_imageChecker(t *testing.T) {
	ctx := testContext()
	checker, err := NewChecker(ctx, entity.ProofImage, nil)
	require.NoError(t, err)

	require.NoError(t, checker.Check(ctx, "https://cdn.example.com/photo.jpg"))
	requireCode(t, checker.Check(ctx, "not a url"), errorx.BadRequest)
	requireCode(t, checker.Check(ctx, "ftp://example.com/photo.jpg"), errorx.BadRequest)
}

func Test_linkChecker(t *testing.T) {
	ctx := testContext()
	checker, err := NewChecker(ctx, entity.ProofLink, map[string]any{
		"required_host": "instagram.com",
	})
	require.NoError(t, err)

	require.NoError(t, checker.Check(ctx, "https://www.instagram.com/p/abc123"))
	requireCode(t, checker.Check(ctx, "https://example.com/p/abc123"), errorx.BadRequest)
}

func Test_textChecker(t *testing.T) {
	ctx := testContext()
	checker, err := NewChecker(ctx, entity.ProofText, map[string]any{
		"min_length": 10,
	})
	require.NoError(t, err)

	require.NoError(t, checker.Check(ctx, "a sufficiently long report"))
	requireCode(t, checker.Check(ctx, "   "), errorx.BadRequest)
	requireCode(t, checker.Check(ctx, "short"), errorx.BadRequest)
}

func Test_qrScanChecker(t *testing.T) {
	ctx := testContext()
	checker, err := NewChecker(ctx, entity.ProofQRScan, map[string]any{
		"code": "EVENT-42",
	})
	require.NoError(t, err)

	require.NoError(t, checker.Check(ctx, "EVENT-42"))
	requireCode(t, checker.Check(ctx, "EVENT-41"), errorx.BadRequest)

	// A check-in deliverable without a configured code is a setup error.
	_, err = NewChecker(ctx, entity.ProofQRScan, nil)
	requireCode(t, err, errorx.BadRequest)
}

func Test_attendanceChecker(t *testing.T) {
	ctx := testContext()

	past := time.Now().Add(-48 * time.Hour).Format("2006-01-02")
	checker, err := NewChecker(ctx, entity.ProofAttendance, map[string]any{
		"event_date": past,
	})
	require.NoError(t, err)
	require.NoError(t, checker.Check(ctx, "I was there, here is my story"))

	future := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	checker, err = NewChecker(ctx, entity.ProofAttendance, map[string]any{
		"event_date": future,
	})
	require.NoError(t, err)
	requireCode(t, checker.Check(ctx, "I was there"), errorx.Unavailable)
}
