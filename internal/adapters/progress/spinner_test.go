package progress

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaldao/veto-cli/internal/usecase"
)

func TestSpinnerSink_Stages(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	sink := NewSpinnerSinkWithWriter(&out)
	clock := time.Unix(1_700_000_000, 0)
	sink.now = func() time.Time { return clock }
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "approve", Current: 1, Total: 2, Message: "Approving token spend", Spinner: true})
	assert.Equal(t, "● [1/2] Approving token spend", sink.display())

	clock = clock.Add(1500 * time.Millisecond)
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "deposit", Current: 2, Total: 2, Message: "Depositing", Spinner: true})
	assert.Equal(t, "✓ [1/2] Approving token spend (1.5s) → ● [2/2] Depositing", sink.display())

	// same stage only refreshes the message
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "deposit", Current: 2, Total: 2, Message: "Waiting for confirmation", Spinner: true})
	require.Len(t, sink.stages, 2)
	assert.Equal(t, "Waiting for confirmation", sink.stages[1].Message)

	clock = clock.Add(time.Second)
	sink.Stop()
	assert.Equal(t, clock, sink.stages[1].EndTime)
	assert.False(t, sink.spinner.Active())
}

func TestSpinnerSink_Messages(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	sink := NewSpinnerSinkWithWriter(&out)

	sink.Info("Deposited 1.5 tokens")
	sink.Error("transaction reverted")

	assert.Equal(t, "Deposited 1.5 tokens\ntransaction reverted\n", out.String())
}

func TestSpinnerSink_StageWithoutMessage(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	sink := NewSpinnerSinkWithWriter(&bytes.Buffer{})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "token"})

	assert.Equal(t, "● token", sink.display())
}
