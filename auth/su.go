package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

var ErrAuthBackend = errors.New("auth backend error")

const defaultSuTimeout = 6 * time.Second

// verifyWithSu runs `su -s /bin/sh -c true <user>` behind a PTY so su
// can prompt for a password, and answers the prompt. BusyBox su and
// shadow-utils su both work this way.
func (a *Authenticator) verifyWithSu(username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, ErrInvalidCredentials
	}
	timeout := a.SuTimeout
	if timeout <= 0 {
		timeout = defaultSuTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "su", "-s", "/bin/sh", "-c", "true", username)
	f, err := pty.Start(cmd)
	if err != nil {
		return false, fmt.Errorf("%w: start su: %v", ErrAuthBackend, err)
	}
	defer func() { _ = f.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		answerPrompt(f, password)
	}()

	err = cmd.Wait()
	<-done

	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		return false, fmt.Errorf("%w: su timed out", ErrAuthBackend)
	}
	return false, nil
}

// answerPrompt drains PTY output and writes the password once after the
// first line containing "password" (case-insensitive) appears. It keeps
// draining until the PTY closes so su never blocks on a full buffer.
func answerPrompt(f *os.File, password string) {
	var seen bytes.Buffer
	buf := make([]byte, 4096)
	answered := false
	for {
		_ = f.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		n, err := f.Read(buf)
		if n > 0 && !answered {
			seen.Write(buf[:n])
			if strings.Contains(strings.ToLower(seen.String()), "password") {
				answered = true
				_, _ = io.WriteString(f, password+"\n")
			}
		}
		if err != nil {
			return
		}
	}
}
