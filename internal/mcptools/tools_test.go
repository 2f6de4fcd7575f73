package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/formula"
)

var testTable = formula.MassTable{
	"H":  1.008,
	"O":  15.999,
	"S":  32.06,
	"Cu": 63.546,
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]interface{}) (*mcp.CallToolResult, string) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return res, text.Text
}

func TestParseFormula(t *testing.T) {
	s := NewServer(testTable)
	res, text := call(t, s.handleParseFormula, map[string]interface{}{"formula": "CuSO4·5H2O"})
	require.False(t, res.IsError, text)

	var got struct {
		Formula string         `json:"formula"`
		Counts  map[string]int `json:"counts"`
		Atoms   int            `json:"atoms"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "CuH10O9S", got.Formula)
	assert.Equal(t, map[string]int{"Cu": 1, "S": 1, "O": 9, "H": 10}, got.Counts)
	assert.Equal(t, 21, got.Atoms)
}

func TestParseFormulaErrors(t *testing.T) {
	s := NewServer(testTable)
	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing", map[string]interface{}{}, "required"},
		{"wrong-type", map[string]interface{}{"formula": 7}, "required"},
		{"unbalanced", map[string]interface{}{"formula": "Ca(OH2"}, "bracket"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, text := call(t, s.handleParseFormula, c.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text, c.want)
		})
	}
}

func TestMolarMass(t *testing.T) {
	s := NewServer(testTable)
	res, text := call(t, s.handleMolarMass, map[string]interface{}{"formula": "CuSO4·5H2O"})
	require.False(t, res.IsError, text)
	var got struct {
		Formula   string  `json:"formula"`
		MolarMass float64 `json:"molar_mass"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "CuSO4·5H2O", got.Formula)
	assert.InDelta(t, 249.677, got.MolarMass, 1e-9)

	res, text = call(t, s.handleMolarMass, map[string]interface{}{"formula": "NaCl"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, `"Cl"`)
}

func TestConvert(t *testing.T) {
	s := NewServer(testTable)
	cases := []struct {
		name string
		args map[string]interface{}
		want float64
		unit string
	}{
		{"number", map[string]interface{}{"value": 2.0, "from": "mol", "to": "L"}, 44.8, "L"},
		{"expression", map[string]interface{}{"value": "0.5 NA", "from": "atoms", "to": "mol"}, 0.5, "mol"},
		{"grams", map[string]interface{}{"value": "36.03", "from": "g", "to": "mol", "formula": "H2O"}, 2, "mol"},
		{"to-grams", map[string]interface{}{"value": 1.0, "from": "moles", "to": "grams", "formula": "CuSO4·5H2O"}, 249.677, "g"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, text := call(t, s.handleConvert, c.args)
			require.False(t, res.IsError, text)
			var got struct {
				Value float64 `json:"value"`
				Unit  string  `json:"unit"`
			}
			require.NoError(t, json.Unmarshal([]byte(text), &got))
			assert.InDelta(t, c.want, got.Value, 1e-9*c.want)
			assert.Equal(t, c.unit, got.Unit)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	s := NewServer(testTable)
	cases := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"no-value", map[string]interface{}{"from": "g", "to": "mol"}, "value"},
		{"bad-value", map[string]interface{}{"value": "2 x", "from": "mol", "to": "L"}, "value"},
		{"no-from", map[string]interface{}{"value": 1.0, "to": "mol"}, "from"},
		{"bad-to", map[string]interface{}{"value": 1.0, "from": "mol", "to": "kg"}, "kg"},
		{"no-formula", map[string]interface{}{"value": 1.0, "from": "g", "to": "mol"}, "molar mass"},
		{"bad-formula", map[string]interface{}{"value": 1.0, "from": "g", "to": "mol", "formula": "Xx"}, "Xx"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, text := call(t, s.handleConvert, c.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text, c.want)
		})
	}
}

func TestToolSchemas(t *testing.T) {
	for _, tool := range []mcp.Tool{parseFormulaTool(), molarMassTool(), convertTool()} {
		assert.NotEmpty(t, tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type)
		for _, req := range tool.InputSchema.Required {
			assert.Contains(t, tool.InputSchema.Properties, req, tool.Name)
		}
	}
}
