package cli

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultPager = "less -FRSX"

// pagerCommand resolves the configured pager; "" means output is not paged.
func pagerCommand(cmd *cobra.Command) string {
	p := strings.TrimSpace(getApp(cmd).Cfg.GetString("pager"))
	switch {
	case strings.EqualFold(p, "none"):
		return ""
	case p != "":
		return p
	}
	if env := strings.TrimSpace(os.Getenv("PAGER")); env != "" {
		return env
	}
	return defaultPager
}

// withPager sends what write produces through the pager when the command's
// stdout is a terminal, and straight to stdout otherwise.
func withPager(cmd *cobra.Command, write func(io.Writer) error) error {
	out := cmd.OutOrStdout()
	tty, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(tty.Fd())) {
		return write(out)
	}
	pager := pagerCommand(cmd)
	if pager == "" {
		return write(out)
	}

	p := exec.CommandContext(cmd.Context(), "sh", "-c", pager)
	p.Stdout = tty
	p.Stderr = cmd.ErrOrStderr()
	in, err := p.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := p.Start(); err != nil {
		getApp(cmd).Log.Debugw("pager failed to start", "pager", pager, "err", err)
		return write(out)
	}
	writeErr := write(in)
	// Quitting the pager early closes the pipe under us.
	if errors.Is(writeErr, syscall.EPIPE) {
		writeErr = nil
	}
	return errors.Join(writeErr, in.Close(), p.Wait())
}
