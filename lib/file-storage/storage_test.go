package filestorage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResumeObjectName(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "resumes/2026/03/abc.pdf", resumeObjectName(ts, "abc", ".pdf"))
	require.Equal(t, "resumes/2026/03/abc", resumeObjectName(ts, "abc", ""))
}

func TestNewHandlerWithoutClient(t *testing.T) {
	err := NewHandler(context.TODO(), nil, "bucket")
	require.NotNil(t, err)
}
