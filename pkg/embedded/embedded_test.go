package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Fatal("IsInitialized() = true after Init(nil)")
	}
	if _, err := ReadFile("data/health_bar.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/health_bar.yaml") {
		t.Error("Exists() = true before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/health_bar.yaml": {Data: []byte("maxHealth: 80\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/health_bar.yaml"},
		{name: "带 ./ 前缀", path: "./data/health_bar.yaml"},
		{name: "未知前缀", path: "assets/health_bar.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "maxHealth: 80\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/health_bar.yaml") {
		t.Error("Exists() = false for embedded file")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists() = true for missing file")
	}
}
