package probe

import (
	"fmt"
	"os"
)

// writeDebugArtifact dumps the raw and sanitized screen text of one
// attempt to a freshly created, uniquely named temp file and returns
// its path. The file is left behind deliberately; it is the debug
// output the caller asked for.
func writeDebugArtifact(agent string, attempt int, raw, clean string) (string, error) {
	f, err := os.CreateTemp("", fmt.Sprintf("rstatus_%s_*.txt", agent))
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "=== ATTEMPT %d ===\n=== RAW SCREEN ===\n%s\n\n=== CLEANED ===\n%s", attempt, raw, clean)
	if err != nil {
		return "", err
	}
	return f.Name(), nil
}
