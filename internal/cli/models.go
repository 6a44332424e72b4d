// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// models.go - Model listing command for the chatbox CLI.
//
// Command: models
// Short:   List available models
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
)

// HandleModels handles the "models" command: prints the model allow-list
// with provider, context window, and credential status.
// SECURITY: Reports only whether a credential is set, never its value.
func HandleModels(args Args) {
	currentID := model.DefaultModelID
	if cfg, err := config.Load(); err == nil {
		currentID = cfg.DefaultModel
	}

	fmt.Println(summaryHeaderStyle.Render("Available models"))
	for _, id := range model.ModelIDs() {
		info := model.Models[id]
		marker := "  "
		if id == currentID {
			marker = commandStyle.Render("* ")
		}

		credNote := mutedStyle.Render("set " + info.CredentialEnv)
		if os.Getenv(info.CredentialEnv) != "" {
			credNote = summaryValueStyle.Render("ready")
		}

		fmt.Printf("%s%-20s %-10s %8s ctx  %s\n",
			marker, id, info.Provider, formatNumber(info.MaxContext), credNote)
		if !args.Quiet && info.Description != "" {
			fmt.Printf("    %s\n", mutedStyle.Render(info.Description))
		}
	}
	fmt.Println()
	fmt.Println(mutedStyle.Render("* = configured default"))
}
