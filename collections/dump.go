package collections

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hasbyte1/ds-transformer/arr"
)

const dumpIndent = 4

var dumpKey = color.New(color.FgCyan).SprintFunc()

// PrintR renders a in the layout of PHP's print_r. Keys are coloured when
// colour output is enabled (see [color.NoColor]). An array that contains
// itself is printed as "*RECURSION*" on re-entry.
//
//	Array
//	(
//	    [0] => 1
//	    [1] => Array
//	        (
//	            [0] => 2
//	        )
//
//	)
func PrintR(a *arr.Array) string {
	var b strings.Builder
	printR(&b, a, 0, map[*arr.Array]bool{})
	return b.String()
}

func printR(b *strings.Builder, a *arr.Array, indent int, onPath map[*arr.Array]bool) {
	b.WriteString("Array\n")
	if onPath[a] {
		b.WriteString(" *RECURSION*")
		return
	}
	onPath[a] = true
	defer delete(onPath, a)

	pad := strings.Repeat(" ", indent)
	b.WriteString(pad + "(\n")
	for k, v := range a.All() {
		b.WriteString(pad + strings.Repeat(" ", dumpIndent) + "[" + dumpKey(k.String()) + "] => ")
		if nested, ok := v.(*arr.Array); ok && nested != nil {
			printR(b, nested, indent+2*dumpIndent, onPath)
		} else {
			b.WriteString(arr.ToString(v))
		}
		b.WriteByte('\n')
	}
	b.WriteString(pad + ")\n")
}

// DumpTo writes the print_r rendering of the sequence to out.
func (w *ArrayWrapper) DumpTo(out io.Writer) error {
	_, err := io.WriteString(out, PrintR(w.data))
	return err
}

// Dump prints the sequence to [color.Output] and returns w for chaining.
func (w *ArrayWrapper) Dump() *ArrayWrapper {
	_ = w.DumpTo(color.Output)
	return w
}
