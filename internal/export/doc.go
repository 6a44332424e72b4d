// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides conversation export functionality for chatbox.
//
// # Key Types
//
//   - Exporter: interface implemented by each output format
//   - MarkdownExporter: Markdown with YAML frontmatter
//   - JSONExporter: complete machine-readable dump
//   - Options: metadata and timestamp toggles
//
// # Usage
//
//	exporter, err := export.ForFormat("markdown", nil)
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(conv, exporter, nil, "")
//
// Files are written atomically; a failed export never leaves a partial file
// at the destination.
package export
