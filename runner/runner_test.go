package runner

import (
	"context"
	"reflect"
	"runtime"
	"testing"
	"time"
)

func TestExtractParams(t *testing.T) {
	for cmd, want := range map[string][]string{
		"ls -la":                          nil,
		"ssh {{host}}":                    {"host"},
		"scp {{file}} {{host}}:{{file}}":  {"file", "host"},
		"echo {{ not_a_param }} {{ok_1}}": {"ok_1"},
	} {
		t.Run(cmd, func(t *testing.T) {
			if got := ExtractParams(cmd); !reflect.DeepEqual(got, want) {
				t.Errorf("ExtractParams(%q) = %v, want %v", cmd, got, want)
			}
		})
	}
}

func TestSubstituteParams(t *testing.T) {
	got := SubstituteParams(
		"scp {{file}} {{host}}:{{file}} {{missing}}",
		map[string]string{"file": "a.txt", "host": "box"},
	)
	want := "scp a.txt box:a.txt {{missing}}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMatchesOS(t *testing.T) {
	for _, testcase := range []struct {
		platform string
		goos     string
		want     bool
	}{
		{"Linux", "linux", true},
		{"Linux", "windows", false},
		{" ubuntu ", "linux", true},
		{"Windows", "windows", true},
		{"macOS", "darwin", true},
		{"macOS", "linux", false},
		{"unix", "darwin", true},
		{"unix", "windows", false},
		{"", "windows", true},
		{"Any", "linux", true},
		{"Some Platform", "linux", true},
	} {
		if got := matchesOS(testcase.platform, testcase.goos); got != testcase.want {
			t.Errorf("matchesOS(%q, %q) = %v, want %v", testcase.platform, testcase.goos, got, testcase.want)
		}
	}
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	output := make(chan OutputMsg)
	go Run(context.Background(), "echo out; echo err 1>&2; exit 3", output)

	var stdout, stderr []string
	var last OutputMsg
	for msg := range output {
		switch {
		case msg.Done:
			last = msg
		case msg.IsErr:
			stderr = append(stderr, msg.Line)
		default:
			stdout = append(stdout, msg.Line)
		}
	}

	if !reflect.DeepEqual(stdout, []string{"out"}) {
		t.Errorf("stdout = %v", stdout)
	}
	if !reflect.DeepEqual(stderr, []string{"err"}) {
		t.Errorf("stderr = %v", stderr)
	}
	if !last.Done || last.ErrMsg == "" {
		t.Errorf("last message = %+v, want Done with error", last)
	}
}

func TestRun_Cancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	ctx, cancel := context.WithCancel(context.Background())
	output := make(chan OutputMsg)
	go Run(ctx, "sleep 30", output)
	cancel()

	// the command is killed and the channel closed
	select {
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	case _, ok := <-drained(output):
		if ok {
			t.Fatal("unexpected value")
		}
	}
}

func drained(ch <-chan OutputMsg) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		for range ch {
		}
		close(done)
	}()
	return done
}
