package config

import (
	"os"
	"testing"
	"time"
)

// MockFileOps implements FileOps entirely in memory, grounded on the
// teacher's own config_test.go mock of the same interface.
type MockFileOps struct {
	files map[string][]byte
	dirs  map[string]bool
}

func NewMockFileOps() *MockFileOps {
	return &MockFileOps{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true, ".": true},
	}
}

func (m *MockFileOps) ReadFile(filename string) ([]byte, error) {
	if data, ok := m.files[filename]; ok {
		return data, nil
	}
	return nil, &os.PathError{Op: "open", Path: filename, Err: os.ErrNotExist}
}

func (m *MockFileOps) WriteFile(filename string, data []byte, perm os.FileMode) error {
	m.files[filename] = data
	return nil
}

func (m *MockFileOps) Stat(name string) (os.FileInfo, error) {
	if _, ok := m.files[name]; ok {
		return &mockFileInfo{name: name, size: int64(len(m.files[name]))}, nil
	}
	if m.dirs[name] {
		return &mockFileInfo{name: name, isDir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

func (m *MockFileOps) MkdirAll(path string, perm os.FileMode) error {
	m.dirs[path] = true
	return nil
}

func (m *MockFileOps) CreateTemp(dir, pattern string) (TempFile, error) {
	if !m.dirs[dir] && dir != "." && dir != "/" {
		return nil, &os.PathError{Op: "createtemp", Path: dir, Err: os.ErrNotExist}
	}
	name := dir + "/temp_" + pattern
	return &mockTempFile{name: name, fs: m}, nil
}

func (m *MockFileOps) Remove(name string) error {
	delete(m.files, name)
	return nil
}

func (m *MockFileOps) Rename(oldpath, newpath string) error {
	if data, ok := m.files[oldpath]; ok {
		m.files[newpath] = data
		delete(m.files, oldpath)
	}
	return nil
}

func (m *MockFileOps) Chmod(name string, mode os.FileMode) error { return nil }

type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return 0644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

type mockTempFile struct {
	name string
	data []byte
	fs   *MockFileOps
}

func (m *mockTempFile) Write(p []byte) (int, error) {
	m.data = append(m.data, p...)
	return len(p), nil
}

func (m *mockTempFile) Close() error {
	m.fs.files[m.name] = m.data
	return nil
}

func (m *mockTempFile) Name() string { return m.name }

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()
	if cfg.Editing.Tabstop != 8 {
		t.Errorf("expected default tabstop 8, got %d", cfg.Editing.Tabstop)
	}
	if cfg.Editing.ExtraWordChars != "" {
		t.Errorf("expected empty default extra-word-chars, got %q", cfg.Editing.ExtraWordChars)
	}
	if !cfg.UI.Color {
		t.Error("expected UI color to default true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidateTabstopRange(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Editing.Tabstop = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tabstop 0")
	}
	cfg.Editing.Tabstop = 17
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tabstop 17")
	}
	cfg.Editing.Tabstop = 4
	if err := cfg.Validate(); err != nil {
		t.Errorf("tabstop 4 should validate, got: %v", err)
	}
}

func TestValidateExtraWordCharsRejectsWhitespace(t *testing.T) {
	cfg := getDefaultConfig()
	cfg.Editing.ExtraWordChars = "_-\t"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for whitespace in extra-word-chars")
	}
	cfg.Editing.ExtraWordChars = "_-"
	if err := cfg.Validate(); err != nil {
		t.Errorf("non-whitespace extra-word-chars should validate, got: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	fileOps := NewMockFileOps()
	fileOps.dirs["/home/user/.config/selectengine"] = true

	mgr := NewConfigManager()
	mgr.configPath = "/home/user/.config/selectengine/config.yaml"
	mgr.config.Editing.Tabstop = 4
	mgr.config.Editing.ExtraWordChars = "_"

	if err := mgr.SaveWithFileOps(fileOps); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewConfigManager()
	loaded.configPath = mgr.configPath
	if err := loaded.loadFromFileWithOps(mgr.configPath, fileOps); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.config.Editing.Tabstop != 4 {
		t.Errorf("expected loaded tabstop 4, got %d", loaded.config.Editing.Tabstop)
	}
	if loaded.config.Editing.ExtraWordChars != "_" {
		t.Errorf("expected loaded extra-word-chars '_', got %q", loaded.config.Editing.ExtraWordChars)
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	fileOps := NewMockFileOps()
	fileOps.dirs["/home/user/.config/selectengine"] = true

	mgr := NewConfigManager()
	mgr.configPath = "/home/user/.config/selectengine/config.yaml"
	mgr.config.Editing.Tabstop = 99

	if err := mgr.SaveWithFileOps(fileOps); err == nil {
		t.Error("expected save to reject an invalid tabstop")
	}
}

func TestLoadWithFileOpsFallsBackToDefaults(t *testing.T) {
	fileOps := NewMockFileOps()
	mgr := NewConfigManager()
	if err := mgr.LoadWithFileOps(fileOps); err != nil {
		t.Fatalf("expected no error when no config file exists, got: %v", err)
	}
	if mgr.config.Editing.Tabstop != 8 {
		t.Errorf("expected default tabstop to remain 8, got %d", mgr.config.Editing.Tabstop)
	}
}
