package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const testRecordJSON = `{
  "text": "Lunch with @chef\nrecipe http://pf.io/r #dinner",
  "created_at": "Wed Jun 09 18:31:55 +0000 2010",
  "source": "web",
  "user": {
    "screen_name": "punchfork",
    "name": "Punchfork",
    "profile_image_url": "http://a0.twimg.com/pf.png",
    "profile_background_color": "FFFFFF",
    "profile_background_image_url": "http://a0.twimg.com/bg.png",
    "utc_offset": -18000
  }
}`

// resetGlobals restores every package-level flag after the test and
// silences logging.
func resetGlobals(t *testing.T) {
	t.Helper()

	oldConfigDir := configDir
	oldVerbose := verbose
	oldUnitTest := unitTest
	oldLogOutput := logOutput
	oldCSS := embedCSS
	oldRecord := embedRecord
	oldSanitize := embedSanitize
	oldFormat := embedFormat
	oldNoColor := noColor
	t.Cleanup(func() {
		configDir = oldConfigDir
		verbose = oldVerbose
		unitTest = oldUnitTest
		logOutput = oldLogOutput
		embedCSS = oldCSS
		embedRecord = oldRecord
		embedSanitize = oldSanitize
		embedFormat = oldFormat
		noColor = oldNoColor
	})

	configDir = t.TempDir()
	verbose = false
	unitTest = false
	logOutput = io.Discard
	embedCSS = ""
	embedRecord = ""
	embedSanitize = false
	embedFormat = ""
	noColor = true
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func writeTestConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("open stdout pipe: %v", err)
	}

	os.Stdout = writer
	runErr := fn()
	_ = writer.Close()
	os.Stdout = oldStdout

	out, readErr := io.ReadAll(reader)
	_ = reader.Close()
	if readErr != nil {
		t.Fatalf("read stdout pipe: %v", readErr)
	}
	return string(out), runErr
}

func requireContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Fatalf("output missing %q:\n%s", want, got)
	}
}
