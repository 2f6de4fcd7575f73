package mcptools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// parseFormulaTool returns the tool definition for parse_formula
func parseFormulaTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_formula",
		Description: "Count the atoms of each element in a chemical formula, including groups like Ca(OH)2 and hydrates like CuSO4·5H2O",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"formula": map[string]interface{}{
					"type":        "string",
					"description": "Chemical formula, e.g. Al2(SO4)3",
				},
			},
			Required: []string{"formula"},
		},
	}
}

// molarMassTool returns the tool definition for molar_mass
func molarMassTool() mcp.Tool {
	return mcp.Tool{
		Name:        "molar_mass",
		Description: "Compute the molar mass of a chemical formula in g/mol",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"formula": map[string]interface{}{
					"type":        "string",
					"description": "Chemical formula, e.g. CuSO4·5H2O",
				},
			},
			Required: []string{"formula"},
		},
	}
}

// convertTool returns the tool definition for convert
func convertTool() mcp.Tool {
	return mcp.Tool{
		Name:        "convert",
		Description: "Convert an amount of substance between grams, moles, particles, and liters of gas at STP",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"value": map[string]interface{}{
					"type":        []string{"number", "string"},
					"description": "Amount to convert, as a number or an expression like \"6.022×10^23\" or \"0.5 NA\"",
				},
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Unit of value",
					"enum":        []string{"g", "mol", "particles", "L"},
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Unit of the result",
					"enum":        []string{"g", "mol", "particles", "L"},
				},
				"formula": map[string]interface{}{
					"type":        "string",
					"description": "Chemical formula of the substance, required when either unit is grams",
				},
			},
			Required: []string{"value", "from", "to"},
		},
	}
}
