// Package snapshot compares JSON encodings against files kept under testdata
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"truco-server/internal/util"
)

var (
	lock  sync.Mutex
	calls = make(map[string]int)
)

// ValidateSnapshot compares the JSON encoding of obj with the next snapshot of the calling test
// Snapshots are named after the test function and the call count. A missing snapshot is written,
// as is every snapshot when UPDATE_SNAPSHOTS is set.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(depth + 2)

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv("UPDATE_SNAPSHOTS", "") != "" {
		write(t, filename, got)
		return true
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(got)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	name := filepath.Base(runtime.FuncForPC(pc).Name())

	lock.Lock()
	call := calls[name]
	calls[name] = call + 1
	lock.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
