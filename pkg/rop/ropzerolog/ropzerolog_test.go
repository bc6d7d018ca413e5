package ropzerolog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := rop.FailWith[int](rop.NewError("bad email").WithTag("Field", "email"))
	Log(logger.Info(), r.WithSuccess(rop.NewSuccess("parsed"))).Msg("signup")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "signup", lines[0]["message"])
	assert.Equal(t, false, lines[0]["success"])

	errs := lines[0]["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, map[string]any{
		"message": "bad email",
		"kind":    "error",
		"tags":    map[string]any{"Field": "email"},
	}, errs[0])

	successes := lines[0]["successes"].([]any)
	assert.Equal(t, map[string]any{"message": "parsed", "kind": "success"}, successes[0])
}

func TestLog_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Log(zerolog.New(&buf).Info(), rop.Ok("x")).Send()

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, true, lines[0]["success"])
	assert.NotContains(t, lines[0], "errors")
}

func TestLogFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	onFailure := LogFailure(zerolog.New(&buf), "rejected")
	onFailure(context.Background(), []rop.Error{rop.NewError("a"), rop.NewError("b")})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Len(t, lines[0]["errors"], 2)
}
