package barrel

import (
	"fmt"
	"strings"
)

// render composes the final barrel text: the header comment followed by one
// re-export statement per component, in the order given.
func render(header string, components []Component, singleLineThreshold int) string {
	var b strings.Builder

	b.WriteString(header)

	if !strings.HasSuffix(header, "\n") {
		b.WriteByte('\n')
	}

	if len(components) == 0 {
		return b.String()
	}

	b.WriteByte('\n')

	for _, c := range components {
		writeStatement(&b, c, singleLineThreshold)
	}

	return b.String()
}

// writeStatement emits one re-export statement. Value names come first, then
// type names with a specifier-level type modifier, preserving in-file order
// within each group.
func writeStatement(b *strings.Builder, c Component, singleLineThreshold int) {
	names := make([]string, 0, c.exportCount())
	names = append(names, c.Values...)

	for _, t := range c.Types {
		names = append(names, "type "+t)
	}

	if len(names) <= singleLineThreshold {
		fmt.Fprintf(b, "export { %s } from %q;\n", strings.Join(names, ", "), c.Specifier)

		return
	}

	b.WriteString("export {\n")

	for _, name := range names {
		fmt.Fprintf(b, "  %s,\n", name)
	}

	fmt.Fprintf(b, "} from %q;\n", c.Specifier)
}
