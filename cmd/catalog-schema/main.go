package main

import (
	"bestiary/pkg/catalog"
	"bestiary/pkg/logger"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	logger.Init()
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the theme catalog JSON schema")
	flag.Parse()

	if outPath == "" {
		logger.Log.Fatal("-out is required")
	}

	if err := writeSchema(outPath); err != nil {
		logger.Log.Fatal("Failed to write schema: ", err)
	}
	logger.Log.WithField("path", outPath).Info("Schema written")
}

func writeSchema(outPath string) error {
	data, err := json.MarshalIndent(catalog.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	// tmp + rename, чтобы не оставить полузаписанный файл
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
