// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/doccheckproj/doccheck/internal/tool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell check tool over the Model Context Protocol",
	Long: `Start an MCP server on stdio exposing the run_shell_check tool, so MCP
clients can run shell commands against code block content without
touching any document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		server := mcp.NewServer(&mcp.Implementation{
			Name:    "doccheck",
			Version: version,
		}, nil)
		mcp.AddTool(server, tool.MetadataRunShellCheck, tool.RunShellCheck)
		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}
