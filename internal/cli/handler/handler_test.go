package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/models"
	"github.com/thenoetrevino/shsenroll/internal/notifications"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
	"github.com/thenoetrevino/shsenroll/internal/testutil"
)

func newTestCLI(buf *bytes.Buffer) *cli.CLI {
	notifier := notifications.NewTerminal(buf, config.DefaultColorScheme())
	return cli.New(nil, notifier, config.DefaultColorScheme())
}

func runWith(t *testing.T, c *cli.CLI, h Handler, args ...string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: SimpleCommand(h)}
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.Flags().String("name", "", "")
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	})
	return out, err
}

func TestCommand_PassesFlags(t *testing.T) {
	var banners bytes.Buffer
	c := newTestCLI(&banners)

	var got string
	_, err := runWith(t, c, HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		got = args.GetString("name", "default")
		assert.Same(t, c, args.CLI)
		assert.False(t, args.IsSet("json"))
		return nil, nil
	}), "--name=Ana")

	require.NoError(t, err)
	assert.Equal(t, "Ana", got)
}

func TestCommand_MutesNotificationsForJSON(t *testing.T) {
	var banners bytes.Buffer
	c := newTestCLI(&banners)

	out, err := runWith(t, c, HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		args.CLI.Notifier.Notify(student.KindInfo, "Success", "saved")
		return &cli.MessageResult{ID: "S000001", Action: cli.ActionUpdated, Message: "saved"}, nil
	}), "--json")

	require.NoError(t, err)
	assert.Empty(t, banners.String())
	assert.Contains(t, out, `"success":true`)
}

func TestCommand_ErrorIsReportedOnce(t *testing.T) {
	var banners bytes.Buffer
	c := newTestCLI(&banners)

	// A notification already explained the failure, so nothing else is printed
	out, err := runWith(t, c, HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		args.CLI.Notifier.Notify(student.KindWarning, "Not Found", "Student not found!")
		return nil, fmt.Errorf("%w: student S000009", models.ErrNotFound)
	}))

	require.Error(t, err)
	assert.True(t, cli.IsReported(err))
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Empty(t, out)
	assert.Contains(t, banners.String(), "Student not found!")
}

func TestCommand_JSONErrorUsesValidationMessage(t *testing.T) {
	var banners bytes.Buffer
	c := newTestCLI(&banners)

	out, err := runWith(t, c, HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		return nil, &student.ValidationError{Kind: student.ErrUnderage, Title: "Age Restriction", Message: "too young"}
	}), "--json")

	require.Error(t, err)
	assert.Contains(t, out, `"code":"VALIDATION_ERROR"`)
	assert.Contains(t, out, `"message":"too young"`)
}

func TestCommand_ParseFlagsFailure(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: Command(HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		t.Fatal("handler should not run")
		return nil, nil
	}), func(cmd *cobra.Command) error {
		return fmt.Errorf("%w: --id is required", cli.ErrUsage)
	})}
	cmd.Flags().Bool("json", true, "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = cmd.ExecuteContext(context.Background())
	})

	assert.True(t, errors.Is(err, cli.ErrUsage))
	assert.Contains(t, out, "USAGE_ERROR")
}
