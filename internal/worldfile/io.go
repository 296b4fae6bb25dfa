package worldfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/lawnchairsociety/cartograph/internal/template"
	"gopkg.in/yaml.v3"
)

const compressedExt = ".zst"

// Load reads a world file from disk, decompressing it when the name ends in .zst.
func Load(path string) (*template.Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates a world document and decodes it into a catalog.
func Parse(data []byte) (*template.Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc WorldYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse world YAML: %w", err)
	}
	return doc.ToCatalog()
}

// Marshal encodes c as a world document.
func Marshal(c *template.Catalog) ([]byte, error) {
	return yaml.Marshal(FromCatalog(c))
}

// Write saves c to path, compressing it when the name ends in .zst.
func Write(path string, c *template.Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode world: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if !isCompressed(path) {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write world file: %w", err)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write world file: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("failed to compress world file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to compress world file: %w", err)
	}
	return f.Close()
}

// Exists reports whether a world file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), compressedExt)
}

func readFile(path string) ([]byte, error) {
	if !isCompressed(path) {
		return os.ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, dec); err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return buf.Bytes(), nil
}
