package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/session"
)

// MCPDeps holds dependencies for the MCP server. It reuses the HTTP
// Deps wiring so both surfaces see the same state.
type MCPDeps struct {
	Deps
}

// NewMCPServer creates an MCP server exposing the lesson catalog,
// progress and the writing coach to local AI assistants.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"storylab",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("StoryLab — interactive creative-writing lessons with progress tracking and an AI writing coach."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("list_modules",
			mcp.WithDescription("List all course modules with level, duration and step count."),
		),
		mcpListModules(),
	)

	s.AddTool(
		mcp.NewTool("lesson_step",
			mcp.WithDescription("Fetch one step of a module's lesson."),
			mcp.WithString("module_id", mcp.Description("Module id, e.g. brainstorming"), mcp.Required()),
			mcp.WithNumber("step", mcp.Description("Zero-based step index (default 0)")),
		),
		mcpLessonStep(),
	)

	s.AddTool(
		mcp.NewTool("get_progress",
			mcp.WithDescription("List the completed step ids for a module."),
			mcp.WithString("module_id", mcp.Description("Module id"), mcp.Required()),
		),
		mcpGetProgress(deps),
	)

	s.AddTool(
		mcp.NewTool("mark_step_complete",
			mcp.WithDescription("Record a lesson step as completed."),
			mcp.WithString("module_id", mcp.Description("Module id"), mcp.Required()),
			mcp.WithString("step_id", mcp.Description("Step id within the module"), mcp.Required()),
		),
		mcpMarkStepComplete(deps),
	)

	s.AddTool(
		mcp.NewTool("writing_feedback",
			mcp.WithDescription("Ask the writing coach for feedback on work for a lesson step."),
			mcp.WithString("module_id", mcp.Description("Module id"), mcp.Required()),
			mcp.WithString("step_id", mcp.Description("Step id of an exercise or prompt step"), mcp.Required()),
			mcp.WithString("text", mcp.Description("The user's writing to review"), mcp.Required()),
		),
		mcpWritingFeedback(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"storylab://modules",
			"Lesson Catalog",
			mcp.WithResourceDescription("All course modules and their summaries as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceModules(),
	)

	return s
}

func mcpListModules() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := json.Marshal(catalog.List())
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal modules: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpLessonStep() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moduleID, err := req.RequireString("module_id")
		if err != nil {
			return mcpError("module_id is required"), nil
		}

		m, err := catalog.Get(moduleID)
		if errors.Is(err, catalog.ErrNotFound) {
			return mcpError(fmt.Sprintf("module not found: %s", moduleID)), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("loading module: %v", err)), nil
		}

		idx := req.GetInt("step", 0)
		if idx < 0 || idx >= len(m.Steps) {
			return mcpError(fmt.Sprintf("step index %d out of range (module has %d steps)", idx, len(m.Steps))), nil
		}

		b, err := json.Marshal(m.Steps[idx])
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal step: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpGetProgress(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moduleID, err := req.RequireString("module_id")
		if err != nil {
			return mcpError("module_id is required"), nil
		}

		set, err := deps.Tracker.Load(session.Local(), moduleID)
		if err != nil {
			return mcpError(fmt.Sprintf("loading progress: %v", err)), nil
		}

		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		b, err := json.Marshal(ids)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal progress: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpMarkStepComplete(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moduleID, err := req.RequireString("module_id")
		if err != nil {
			return mcpError("module_id is required"), nil
		}
		stepID, err := req.RequireString("step_id")
		if err != nil {
			return mcpError("step_id is required"), nil
		}

		m, err := catalog.Get(moduleID)
		if errors.Is(err, catalog.ErrNotFound) {
			return mcpError(fmt.Sprintf("module not found: %s", moduleID)), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("loading module: %v", err)), nil
		}

		known := false
		for _, st := range m.Steps {
			if st.ID == stepID {
				known = true
				break
			}
		}
		if !known {
			return mcpError(fmt.Sprintf("unknown step %q for module %s", stepID, moduleID)), nil
		}

		set, err := deps.Tracker.MarkComplete(session.Local(), moduleID, stepID)
		if err != nil {
			return mcpError(fmt.Sprintf("saving progress: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Marked %s/%s complete (%d of %d steps done)",
			moduleID, stepID, len(set), len(m.Steps))), nil
	}
}

func mcpWritingFeedback(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		moduleID, err := req.RequireString("module_id")
		if err != nil {
			return mcpError("module_id is required"), nil
		}
		stepID, err := req.RequireString("step_id")
		if err != nil {
			return mcpError("step_id is required"), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return mcpError("text is required"), nil
		}

		m, err := catalog.Get(moduleID)
		if errors.Is(err, catalog.ErrNotFound) {
			return mcpError(fmt.Sprintf("module not found: %s", moduleID)), nil
		}
		if err != nil {
			return mcpError(fmt.Sprintf("loading module: %v", err)), nil
		}

		var step catalog.Step
		found := false
		for _, st := range m.Steps {
			if st.ID == stepID {
				step = st
				found = true
				break
			}
		}
		if !found {
			return mcpError(fmt.Sprintf("unknown step %q for module %s", stepID, moduleID)), nil
		}
		if !step.Interactive() {
			return mcpError(fmt.Sprintf("step %s is a tutorial and does not take feedback", stepID)), nil
		}

		label := fmt.Sprintf("Module: %s, Step: %s", m.Title, step.Title)
		reply, err := deps.Coach.Feedback(ctx, step.AIPrompt, text, label)
		if err != nil {
			return mcpError(fmt.Sprintf("feedback failed: %v", err)), nil
		}
		return mcpText(reply), nil
	}
}

func mcpResourceModules() server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(catalog.List())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal modules: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
