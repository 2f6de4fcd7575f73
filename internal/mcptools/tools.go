package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/quantity"
)

// handleParseFormula handles the parse_formula tool invocation
func (s *Server) handleParseFormula(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	src, ok := args["formula"].(string)
	if !ok || src == "" {
		return mcp.NewToolResultError("formula parameter is required"), nil
	}
	c, err := formula.ParseHydrate(src, s.opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("parse %q: %v", src, err)), nil
	}
	counts := make(map[string]interface{}, len(c))
	for k, v := range c {
		counts[k] = v
	}
	response := map[string]interface{}{
		"formula": c.String(),
		"counts":  counts,
		"atoms":   c.Atoms(),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleMolarMass handles the molar_mass tool invocation
func (s *Server) handleMolarMass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	src, ok := args["formula"].(string)
	if !ok || src == "" {
		return mcp.NewToolResultError("formula parameter is required"), nil
	}
	m, err := formula.MolarMass(src, s.table, s.opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("molar mass of %q: %v", src, err)), nil
	}
	response := map[string]interface{}{
		"formula":    src,
		"molar_mass": m,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleConvert handles the convert tool invocation
func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	var v float64
	switch x := args["value"].(type) {
	case float64:
		v = x
	case string:
		var err error
		v, err = quantity.Amount(x)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("value %q: %v", x, err)), nil
		}
	default:
		return mcp.NewToolResultError("value parameter is required"), nil
	}
	from, err := unitArg(args, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := unitArg(args, "to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var m float64
	if src, _ := args["formula"].(string); src != "" {
		m, err = formula.MolarMass(src, s.table, s.opts...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("molar mass of %q: %v", src, err)), nil
		}
	}
	r, err := formula.Convert(v, from, to, m)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	response := map[string]interface{}{
		"value": r,
		"unit":  to.String(),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// unitArg extracts a required unit parameter.
func unitArg(args map[string]interface{}, name string) (formula.Unit, error) {
	s, ok := args[name].(string)
	if !ok || s == "" {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	u, err := formula.ParseUnit(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return u, nil
}

// formatJSON formats a response object as indented JSON.
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}
