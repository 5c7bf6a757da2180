package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "state.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok := s.Get("token"); ok {
		t.Error("fresh store must be empty")
	}
	if err := s.Set("token", "tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := s.Get("token"); !ok || v != "tok-123" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Set("token", "tok-123")
	s.Set("user", `{"id":1}`)
	s.Delete("user")

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := reopened.Get("token"); !ok || v != "tok-123" {
		t.Errorf("token after reopen = %q, %v", v, ok)
	}
	if _, ok := reopened.Get("user"); ok {
		t.Error("deleted key survived reopen")
	}
}

func TestFileStore_DeleteAbsentKeyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Delete("nope"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
	// No mutation happened, so no file should have been written either.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no-op delete must not create the state file")
	}
}

func TestFileStore_CorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFileStore(path); err == nil {
		t.Fatal("corrupt state file must fail open")
	}
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, _ := OpenFileStore(path)
	s.Set("token", "secret")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("state file mode = %o, want 600", perm)
	}
}
