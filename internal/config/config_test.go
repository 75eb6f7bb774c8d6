package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
log_level = "debug"

[engine]
backfill_depth = 2
send_timeout = "30s"

[engine.backoff]
initial = "500ms"
max_retries = 5

[archive]
restore_messages = 100

[hooks]
on_new_message = "notify-send \"$CHATTERS_SENDER_NAME\""

[export]
url = "nats://127.0.0.1:4222"

[http]
addr = "127.0.0.1:7070"

[[backends]]
id = "wa"
kind = "whatsapp"

[[backends]]
id = "mx"
kind = "matrix"
homeserver = "https://matrix.example.org"
user_id = "@me:example.org"
password = "secret"
disabled = true

[[backends]]
id = "rl"
kind = "relay"
url = "https://relay.example.org"
token = "tok"
heartbeat_interval = "10s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.Archive.Enabled || cfg.Archive.RestoreMessages != 100 {
		t.Errorf("cfg = %+v", cfg)
	}
	p := cfg.Engine.Policy()
	if p.BackfillDepth != 2 || p.SendTimeout != 30*time.Second || p.Backoff.Initial != 500*time.Millisecond || p.Backoff.MaxRetries != 5 {
		t.Errorf("policy = %+v", p)
	}
	if cfg.Export.Prefix != "chatters" || cfg.Export.URL == "" {
		t.Errorf("export = %+v", cfg.Export)
	}
	if !strings.HasPrefix(cfg.Hooks.OnNewMessage, "notify-send") {
		t.Errorf("hooks = %+v", cfg.Hooks)
	}
	if len(cfg.Backends) != 3 || cfg.Backends[0].DeviceName != "Chatters" || cfg.Backends[2].HeartbeatInterval != 10*time.Second {
		t.Errorf("backends = %+v", cfg.Backends)
	}
	enabled := cfg.Enabled()
	if len(enabled) != 2 || enabled[1].ID != "rl" {
		t.Errorf("enabled = %+v", enabled)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "[[backends]]\nid = \"x\"\nkind = \"irc\"\n",
		"missing id":     "[[backends]]\nkind = \"local\"\n",
		"colon in id":    "[[backends]]\nid = \"a:b\"\nkind = \"local\"\n",
		"duplicate id":   "[[backends]]\nid = \"a\"\nkind = \"local\"\n[[backends]]\nid = \"a\"\nkind = \"local\"\n",
		"matrix no auth": "[[backends]]\nid = \"mx\"\nkind = \"matrix\"\nhomeserver = \"h\"\nuser_id = \"u\"\n",
		"relay no token": "[[backends]]\nid = \"rl\"\nkind = \"relay\"\nurl = \"https://x\"\n",
		"bad level":      "log_level = \"loud\"\n",
		"unknown key":    "colour = \"blue\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(write(t, content)); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := &Config{LogLevel: "info", Backends: []Backend{{Kind: "local"}, {ID: "x", Kind: "irc"}}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if msg := err.Error(); !strings.Contains(msg, "id is required") || !strings.Contains(msg, "unknown kind") {
		t.Errorf("error = %q", msg)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Backends) != 1 || cfg.Backends[0].Kind != KindLocal || !cfg.Archive.Enabled {
		t.Errorf("default = %+v", cfg)
	}

	if _, err := LoadOrDefault(write(t, "[[backends]]\nkind = \"local\"\n")); err == nil {
		t.Error("invalid file fell back to defaults")
	}
}

func TestArchiveCanBeDisabled(t *testing.T) {
	cfg, err := Load(write(t, "[archive]\nenabled = false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Archive.Enabled {
		t.Error("archive still enabled")
	}
}

func TestSaveAndLoadGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := SaveGlobal(path, &Global{DefaultProfile: "work"}); err != nil {
		t.Fatalf("SaveGlobal() error = %v", err)
	}
	loaded, err := LoadGlobal(path)
	if err != nil {
		t.Fatalf("LoadGlobal() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestLoadGlobalMissing(t *testing.T) {
	if _, err := LoadGlobal("/nonexistent/config.toml"); err == nil {
		t.Error("LoadGlobal() expected error for missing file")
	}
}
