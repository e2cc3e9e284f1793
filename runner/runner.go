// Package runner executes stored command lines on this host.
package runner

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractParams returns the names of the {{param}} placeholders in line, in
// order of first appearance.
func ExtractParams(line string) []string {
	var names []string
	seen := map[string]struct{}{}
	for _, m := range placeholder.FindAllStringSubmatch(line, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// SubstituteParams fills placeholders from values. Placeholders without a
// value are left as they are.
func SubstituteParams(line string, values map[string]string) string {
	return placeholder.ReplaceAllStringFunc(line, func(p string) string {
		if v, ok := values[p[2:len(p)-2]]; ok {
			return v
		}
		return p
	})
}

var platformAliases = map[string]string{
	"linux":   "linux",
	"ubuntu":  "linux",
	"debian":  "linux",
	"windows": "windows",
	"win":     "windows",
	"macos":   "darwin",
	"mac":     "darwin",
	"osx":     "darwin",
	"darwin":  "darwin",
	"freebsd": "freebsd",
}

// MatchesPlatform reports whether a command labelled with platform can run on
// this host. Empty, "any" and unknown labels match every host.
func MatchesPlatform(platform string) bool {
	return matchesOS(platform, runtime.GOOS)
}

func matchesOS(platform, goos string) bool {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "" || p == "any" || p == "all" {
		return true
	}
	if p == "unix" {
		return goos != "windows"
	}
	want, ok := platformAliases[p]
	if !ok {
		return true
	}
	return want == goos
}

// OutputMsg is one line of output, or the end of the run when Done is set.
type OutputMsg struct {
	Line   string
	IsErr  bool
	Done   bool
	ErrMsg string
}

// Run executes line in the host shell and streams its output to output,
// closing it when the command ends. Cancelling ctx kills the command; from
// then on messages nobody reads are dropped.
func Run(ctx context.Context, line string, output chan<- OutputMsg) {
	defer close(output)

	send := func(msg OutputMsg) {
		select {
		case output <- msg:
		case <-ctx.Done():
		}
	}
	fail := func(err error) { send(OutputMsg{Done: true, ErrMsg: err.Error()}) }

	c := shell(ctx, line)
	stdout, err := c.StdoutPipe()
	if err != nil {
		fail(err)
		return
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		fail(err)
		return
	}
	if err := c.Start(); err != nil {
		fail(err)
		return
	}

	var wg sync.WaitGroup
	stream := func(r io.Reader, isErr bool) {
		defer wg.Done()
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			send(OutputMsg{Line: sc.Text(), IsErr: isErr})
		}
	}
	wg.Add(2)
	go stream(stdout, false)
	go stream(stderr, true)
	wg.Wait()

	if err := c.Wait(); err != nil {
		fail(err)
		return
	}
	send(OutputMsg{Done: true})
}

func shell(ctx context.Context, line string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", line)
	}
	return exec.CommandContext(ctx, "sh", "-c", line)
}
