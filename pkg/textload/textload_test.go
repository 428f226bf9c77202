package textload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode_ValidUTF8WinsFirst(t *testing.T) {
	text, enc, err := NewLoader().Decode([]byte("привет мир"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if enc != "utf-8" {
		t.Errorf("encoding = %q, want utf-8", enc)
	}
	if text != "привет мир" {
		t.Errorf("text = %q, want %q", text, "привет мир")
	}
}

func TestDecode_FallsBackToWindows1251(t *testing.T) {
	// "привет" in windows-1251.
	data := []byte{0xEF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}

	text, enc, err := NewLoader().Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if enc != "windows-1251" {
		t.Errorf("encoding = %q, want windows-1251", enc)
	}
	if text != "привет" {
		t.Errorf("text = %q, want %q", text, "привет")
	}
}

func TestDecode_SkipsEncodingWithUndefinedBytes(t *testing.T) {
	// 0x98 is undefined in windows-1251 but maps to a box-drawing rune in
	// KOI8-R, so the loader must fall through to the last encoding.
	data := []byte{0x98, 0xC1}

	_, enc, err := NewLoader().Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if enc != "koi8-r" {
		t.Errorf("encoding = %q, want koi8-r", enc)
	}
}

func TestLoadFile_ReadsPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("кот и пес"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, enc, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if text != "кот и пес" || enc != "utf-8" {
		t.Errorf("LoadFile() = (%q, %q)", text, enc)
	}
}

func TestLoadFile_MissingFileFails(t *testing.T) {
	_, _, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("LoadFile() on missing file succeeded, want error")
	}
}

func TestLoadFile_FlattensHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.html")
	html := `<html><head><title>Отчет</title></head><body>
		<h1>Заголовок</h1>
		<p>Первый абзац про кота.</p>
		<p>Второй абзац про пса.</p>
	</body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	text, _, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if strings.Contains(text, "<p>") || strings.Contains(text, "<h1>") {
		t.Errorf("flattened text still contains markup: %q", text)
	}
	if !strings.Contains(text, "кота") || !strings.Contains(text, "пса") {
		t.Errorf("flattened text lost content: %q", text)
	}
}
