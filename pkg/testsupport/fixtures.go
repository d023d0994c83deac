package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ionform/pkg/model"
)

// UpdateGoldensEnv is the environment variable that switches golden helpers
// into write mode.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// MustLoadForm loads a JSON or YAML form fixture.
func MustLoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// LoadForm reads a form fixture without requiring testing.T. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func LoadForm(path string) (model.Form, error) {
	if path == "" {
		return model.Form{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: read form: %w", err)
	}

	var out model.Form
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	default:
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: unmarshal form: %w", err)
	}
	if out.Fields == nil {
		out.Fields = []model.Field{}
	}
	return out, nil
}

// AssertJSONGolden marshals value as indented JSON and compares it with the
// golden file at path as decoded JSON, so key order and layout do not matter.
// With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertJSONGolden(t *testing.T, path string, value any) {
	t.Helper()

	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	payload = append(payload, '\n')
	if WriteMaybeGolden(t, path, payload) {
		return
	}

	var want, got any
	if err := json.Unmarshal(MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
