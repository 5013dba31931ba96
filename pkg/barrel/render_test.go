package barrel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHeader = "// generated\n"

func TestRenderHeaderOnly(t *testing.T) {
	out := render(testHeader, nil, DefaultSingleLineThreshold)

	assert.Equal(t, "// generated\n", out)
}

func TestRenderHeaderWithoutTrailingNewline(t *testing.T) {
	out := render("// generated", nil, DefaultSingleLineThreshold)

	assert.Equal(t, "// generated\n", out)
}

func TestRenderSingleLine(t *testing.T) {
	components := []Component{
		{Key: "button", Specifier: "./button", Values: []string{"Button"}, Types: []string{"ButtonProps"}},
		{Key: "card", Specifier: "./card", Values: []string{"Card"}},
	}

	out := render(testHeader, components, 3)

	assert.Equal(t, "// generated\n\n"+
		"export { Button, type ButtonProps } from \"./button\";\n"+
		"export { Card } from \"./card\";\n", out)
}

func TestRenderThresholdBoundary(t *testing.T) {
	atThreshold := Component{
		Key: "menu", Specifier: "./menu",
		Values: []string{"Menu", "MenuItem"},
		Types:  []string{"MenuProps"},
	}

	out := render(testHeader, []Component{atThreshold}, 3)
	assert.Contains(t, out, `export { Menu, MenuItem, type MenuProps } from "./menu";`)

	overThreshold := atThreshold
	overThreshold.Values = append([]string{"MenuBar"}, atThreshold.Values...)

	out = render(testHeader, []Component{overThreshold}, 3)
	assert.Equal(t, "// generated\n\n"+
		"export {\n"+
		"  MenuBar,\n"+
		"  Menu,\n"+
		"  MenuItem,\n"+
		"  type MenuProps,\n"+
		"} from \"./menu\";\n", out)
}

func TestRenderPreservesInFileOrderWithinStatement(t *testing.T) {
	c := Component{
		Key: "z", Specifier: "./z",
		Values: []string{"Zeta", "Alpha"},
		Types:  []string{"Omega", "Beta"},
	}

	out := render(testHeader, []Component{c}, 10)

	assert.Contains(t, out, `export { Zeta, Alpha, type Omega, type Beta } from "./z";`)
}
